// Package preview performs dry runs: a schema is materialized into an
// in-memory filesystem and the resulting tree is rendered for the terminal,
// leaving the real filesystem untouched.
package preview

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/desertwitch/skeleton/internal/materialize"
	"github.com/desertwitch/skeleton/internal/schema"
	"github.com/go-git/go-billy/v5"
)

//nolint:gochecknoglobals
var (
	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	enumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// DryRun materializes root below basePath into a fresh in-memory filesystem.
// It returns the report of that run and the rendered tree below basePath.
func DryRun(basePath string, root *schema.Directory, opts materialize.Options) (*materialize.Report, string, error) {
	absBase, err := filepath.Abs(basePath)
	if err != nil {
		return nil, "", fmt.Errorf("(preview) failed to resolve %s: %w", basePath, err)
	}

	mem := NewMemFS()
	handler := materialize.NewHandler(mem, mem, opts)

	report, err := handler.Materialize(absBase, root)
	report.DryRun = true
	if err != nil {
		return report, "", fmt.Errorf("(preview) %w", err)
	}

	out, err := Render(mem.FS, absBase)
	if err != nil {
		return report, "", err
	}

	return report, out, nil
}

// Render draws the directory tree of fsys below dir, entries sorted by name.
func Render(fsys billy.Filesystem, dir string) (string, error) {
	t := tree.Root(dirStyle.Render(dir)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)

	if err := addChildren(fsys, dir, t); err != nil {
		return "", fmt.Errorf("(preview) %w", err)
	}

	return t.String(), nil
}

func addChildren(fsys billy.Filesystem, dir string, t *tree.Tree) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			t.Child(fileStyle.Render(e.Name()))

			continue
		}

		sub := tree.Root(dirStyle.Render(e.Name() + "/")).
			Enumerator(tree.RoundedEnumerator).
			EnumeratorStyle(enumStyle)

		if err := addChildren(fsys, fsys.Join(dir, e.Name()), sub); err != nil {
			return err
		}
		t.Child(sub)
	}

	return nil
}
