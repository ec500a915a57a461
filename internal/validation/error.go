package validation

import "errors"

var (
	// ErrEmptyName occurs when an entry or filename is the empty string.
	ErrEmptyName = errors.New("empty name")

	// ErrReservedName occurs when an entry or filename is "." or "..", which
	// would resolve outside of its parent directory.
	ErrReservedName = errors.New("reserved name")

	// ErrNameHasSeparator occurs when an entry or filename contains a path
	// separator, a name must address exactly one path element.
	ErrNameHasSeparator = errors.New("name contains path separator")

	// ErrNameHasNUL occurs when an entry or filename contains a NUL byte.
	ErrNameHasNUL = errors.New("name contains NUL byte")

	// ErrNilNode occurs when an entry carries no node.
	ErrNilNode = errors.New("entry has no node")

	// ErrNilSchema occurs when no schema was given at all.
	ErrNilSchema = errors.New("schema is nil")
)
