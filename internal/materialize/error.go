package materialize

import "errors"

var (
	// ErrDirectoryConflict occurs when a path that has to be a directory
	// already exists as something else, for example a regular file.
	ErrDirectoryConflict = errors.New("path exists and is not a directory")

	// ErrFileConflict occurs when a path that has to be a file already exists
	// as a directory.
	ErrFileConflict = errors.New("path exists and is a directory")

	// ErrUnknownNode occurs when a schema entry holds a node of no known kind.
	ErrUnknownNode = errors.New("unknown schema node")

	// ErrInvalidPolicy occurs when an existing-file policy cannot be parsed.
	ErrInvalidPolicy = errors.New("invalid existing-file policy")
)
