package materialize

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultDirPerms  os.FileMode = 0o777
	defaultFilePerms os.FileMode = 0o666
)

// ExistingFilePolicy decides what happens to a file that already exists where
// the schema places an empty file.
type ExistingFilePolicy int

const (
	// PolicyTruncate truncates existing files to zero length.
	PolicyTruncate ExistingFilePolicy = iota

	// PolicyKeep leaves existing files and their content untouched.
	PolicyKeep
)

func (p ExistingFilePolicy) String() string {
	switch p {
	case PolicyTruncate:
		return "truncate"
	case PolicyKeep:
		return "keep"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses "truncate" or "keep" (case-insensitive). The empty string
// yields [PolicyTruncate].
func ParsePolicy(s string) (ExistingFilePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truncate":
		return PolicyTruncate, nil
	case "keep":
		return PolicyKeep, nil
	default:
		return PolicyTruncate, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Options holds the tunables of a [Handler]. Permissions are subject to the
// process umask.
type Options struct {
	DirPerms   os.FileMode
	FilePerms  os.FileMode
	OnExisting ExistingFilePolicy
}

// DefaultOptions returns the permissions and policy of a plain run:
// directories 0777, files 0666, existing files truncated.
func DefaultOptions() Options {
	return Options{
		DirPerms:   defaultDirPerms,
		FilePerms:  defaultFilePerms,
		OnExisting: PolicyTruncate,
	}
}
