// Package loader reads schemas from YAML or JSON documents. A mapping becomes
// a [schema.Directory], a list of strings a [schema.FileList] and null a
// [schema.EmptyFile]. Key order is preserved, and a repeated key replaces the
// earlier value in place.
package loader

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertwitch/skeleton/internal/schema"
)

// Format is a supported schema document format.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath derives the [Format] from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

type osProvider interface {
	ReadFile(name string) ([]byte, error)
}

// Handler is the principal implementation for loading schema files.
type Handler struct {
	OSOps osProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osOps osProvider) *Handler {
	return &Handler{
		OSOps: osOps,
	}
}

// Load reads and decodes the schema file at path.
func (l *Handler) Load(path string) (*schema.Directory, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("(loader) %w", err)
	}

	data, err := l.OSOps.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("(loader) failed to read %s: %w", path, err)
	}

	root, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("(loader) %s: %w", path, err)
	}

	return root, nil
}

// Decode decodes a schema document of the given format.
func Decode(data []byte, format Format) (*schema.Directory, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(bytes.NewReader(data))
	case FormatJSON:
		return DecodeJSON(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}
