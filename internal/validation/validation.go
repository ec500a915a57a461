// Package validation checks schemas before they are materialized, so that an
// invalid schema fails without mutating the filesystem.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertwitch/skeleton/internal/schema"
)

// ValidateSchema checks every entry name, filename and node of the tree. The
// first problem found is returned, wrapped with the offending relative path.
func ValidateSchema(root *schema.Directory) error {
	if root == nil {
		return ErrNilSchema
	}

	return validateDirectory("", root)
}

func validateDirectory(prefix string, d *schema.Directory) error {
	for _, e := range d.Entries {
		rel := join(prefix, e.Name)

		if err := ValidateName(e.Name); err != nil {
			return fmt.Errorf("%q: %w", rel, err)
		}

		switch n := e.Node.(type) {
		case nil:
			return fmt.Errorf("%q: %w", rel, ErrNilNode)

		case *schema.Directory:
			if n == nil {
				return fmt.Errorf("%q: %w", rel, ErrNilNode)
			}
			if err := validateDirectory(rel, n); err != nil {
				return err
			}

		case *schema.FileList:
			if n == nil {
				return fmt.Errorf("%q: %w", rel, ErrNilNode)
			}
			for _, f := range n.Files {
				if err := ValidateName(f); err != nil {
					return fmt.Errorf("%q: %w", join(rel, f), err)
				}
			}
		}
	}

	return nil
}

// ValidateName checks that name addresses exactly one path element below its
// parent directory.
func ValidateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyName

	case name == "." || name == "..":
		return ErrReservedName

	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return ErrNameHasSeparator

	case strings.ContainsRune(name, 0):
		return ErrNameHasNUL
	}

	return nil
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}
