package loader

import (
	"errors"
	"fmt"
	"io"

	"github.com/desertwitch/skeleton/internal/schema"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes the first YAML document of r into a schema.
func DecodeYAML(r io.Reader) (*schema.Directory, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrRootNotMapping, root.Line)
	}

	return yamlDirectory(root)
}

func yamlDirectory(n *yaml.Node) (*schema.Directory, error) {
	d := schema.Dir()

	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolveAlias(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar key (line %d)", ErrInvalidNode, key.Line)
		}

		node, err := yamlNode(resolveAlias(n.Content[i+1]))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key.Value, err)
		}
		d.Set(key.Value, node)
	}

	return d, nil
}

func yamlNode(n *yaml.Node) (schema.Node, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return yamlDirectory(n)

	case yaml.SequenceNode:
		fl := &schema.FileList{Files: make([]string, 0, len(n.Content))}
		for _, c := range n.Content {
			c = resolveAlias(c)
			if c.Kind != yaml.ScalarNode || c.Tag == "!!null" {
				return nil, fmt.Errorf("%w (line %d)", ErrInvalidFilename, c.Line)
			}
			fl.Files = append(fl.Files, c.Value)
		}

		return fl, nil

	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return schema.EmptyFile{}, nil
		}

		return nil, fmt.Errorf("%w: scalar %q (line %d)", ErrInvalidNode, n.Value, n.Line)

	default:
		return nil, fmt.Errorf("%w (line %d)", ErrInvalidNode, n.Line)
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	return n
}

// EncodeYAML writes root as a YAML document to w, in a form [DecodeYAML]
// reads back into an equal schema.
func EncodeYAML(w io.Writer, root *schema.Directory) error {
	doc := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlFromDirectory(root)},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("(loader) failed to encode yaml: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("(loader) failed to encode yaml: %w", err)
	}

	return nil
}

func yamlFromDirectory(d *schema.Directory) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, e := range d.Entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}

		var value *yaml.Node
		switch n := e.Node.(type) {
		case *schema.Directory:
			value = yamlFromDirectory(n)

		case *schema.FileList:
			value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, f := range n.Files {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f})
			}

		default:
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}

		m.Content = append(m.Content, key, value)
	}

	return m
}
