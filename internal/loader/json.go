package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/desertwitch/skeleton/internal/schema"
	"github.com/goccy/go-json"
)

// DecodeJSON decodes a single JSON object from r into a schema. The input is
// checked for well-formedness first, then read as a token stream so that key
// order survives.
func DecodeJSON(r io.Reader) (*schema.Directory, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read json: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	// The token stream does not check separators between values.
	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to parse json: %w", ErrMalformedDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("failed to parse json: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrRootNotMapping
	}

	root, err := jsonDirectory(dec)
	if err != nil {
		return nil, err
	}

	return root, nil
}

// jsonDirectory reads the members of an object whose opening brace was
// already consumed, up to and including the closing brace.
func jsonDirectory(dec *json.Decoder) (*schema.Directory, error) {
	d := schema.Dir()

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return d, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrInvalidNode, tok)
		}

		node, err := jsonNode(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		d.Set(key, node)
	}
}

func jsonNode(dec *json.Decoder) (schema.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}

	switch v := tok.(type) {
	case nil:
		return schema.EmptyFile{}, nil

	case json.Delim:
		switch v {
		case '{':
			return jsonDirectory(dec)
		case '[':
			return jsonFileList(dec)
		}

		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrInvalidNode, v)

	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidNode, v)
	}
}

func jsonFileList(dec *json.Decoder) (*schema.FileList, error) {
	fl := &schema.FileList{Files: []string{}}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}

		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return fl, nil
		}

		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilename, tok)
		}
		fl.Files = append(fl.Files, name)
	}
}
