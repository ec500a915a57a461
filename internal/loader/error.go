package loader

import "errors"

var (
	// ErrUnknownFormat occurs when the format of a schema file cannot be
	// derived from its extension.
	ErrUnknownFormat = errors.New("unknown schema file format")

	// ErrRootNotMapping occurs when the document root is not a mapping of
	// names to nodes.
	ErrRootNotMapping = errors.New("schema root is not a mapping")

	// ErrInvalidNode occurs when a value is neither a mapping, a list of
	// filenames nor null.
	ErrInvalidNode = errors.New("invalid schema node")

	// ErrInvalidFilename occurs when a file list holds something other than
	// a plain filename.
	ErrInvalidFilename = errors.New("invalid filename in file list")

	// ErrEmptyDocument occurs when the input holds no document at all.
	ErrEmptyDocument = errors.New("empty schema document")

	// ErrMalformedDocument occurs when the input is not syntactically valid.
	ErrMalformedDocument = errors.New("malformed schema document")
)
