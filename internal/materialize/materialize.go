// Package materialize creates the directories and empty files described by a
// [schema.Directory] below a base path.
//
// The traversal is depth first in schema order. Directories are created when
// absent and accepted when present. Files are created, and by default
// truncated when they already exist. The first failure aborts the run and
// leaves everything created so far in place.
package materialize

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/skeleton/internal/schema"
	"github.com/desertwitch/skeleton/internal/validation"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	CreateFile(name string, flag int, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Mkdir(path string, mode uint32) error
}

// Handler is the principal implementation for materializing schemas.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
	Options Options
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider, opts Options) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
		Options: opts,
	}
}

// Materialize validates root and creates its tree below basePath. The
// returned [Report] is never nil, on error it reflects the work done before
// the failure.
func (h *Handler) Materialize(basePath string, root *schema.Directory) (*Report, error) {
	if err := validation.ValidateSchema(root); err != nil {
		return newReport(basePath, ""), fmt.Errorf("(materialize) invalid schema: %w", err)
	}

	report := newReport(basePath, schema.Digest(root))

	if err := h.ensureBase(basePath); err != nil {
		return report, fmt.Errorf("(materialize) %w", err)
	}

	if err := h.materializeDirectory(basePath, root, report); err != nil {
		return report, fmt.Errorf("(materialize) %w", err)
	}

	return report, nil
}

func (h *Handler) ensureBase(basePath string) error {
	info, err := h.OSOps.Stat(basePath)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := h.OSOps.MkdirAll(basePath, h.Options.DirPerms); err != nil {
			return fmt.Errorf("failed to create base directory %s: %w", basePath, err)
		}
		slog.Debug("Created base directory", "path", basePath)

	case errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("%w: %s: %w", ErrDirectoryConflict, basePath, err)

	case err != nil:
		return fmt.Errorf("failed to stat base directory %s: %w", basePath, err)

	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrDirectoryConflict, basePath)
	}

	return nil
}

func (h *Handler) materializeDirectory(basePath string, d *schema.Directory, report *Report) error {
	for _, e := range d.Entries {
		path := filepath.Join(basePath, e.Name)

		switch n := e.Node.(type) {
		case *schema.FileList:
			if err := h.ensureDirectory(path, report); err != nil {
				return err
			}
			for _, f := range n.Files {
				if err := h.ensureFile(filepath.Join(path, f), report); err != nil {
					return err
				}
			}

		case *schema.Directory:
			if err := h.ensureDirectory(path, report); err != nil {
				return err
			}
			if err := h.materializeDirectory(path, n, report); err != nil {
				return err
			}

		case schema.EmptyFile:
			if err := h.ensureFile(path, report); err != nil {
				return err
			}

		default:
			return fmt.Errorf("%w: %T at %s", ErrUnknownNode, e.Node, path)
		}
	}

	return nil
}

func (h *Handler) ensureDirectory(path string, report *Report) error {
	info, err := h.OSOps.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := h.UnixOps.Mkdir(path, uint32(h.Options.DirPerms.Perm())); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		report.DirsCreated = append(report.DirsCreated, path)
		slog.Debug("Created directory", "path", path)

	case errors.Is(err, unix.ENOTDIR):
		return fmt.Errorf("%w: %s: %w", ErrDirectoryConflict, path, err)

	case err != nil:
		return fmt.Errorf("failed to stat directory %s: %w", path, err)

	case !info.IsDir():
		return fmt.Errorf("%w: %s", ErrDirectoryConflict, path)

	default:
		report.DirsExisting = append(report.DirsExisting, path)
		slog.Debug("Directory exists", "path", path)
	}

	return nil
}

func (h *Handler) ensureFile(path string, report *Report) error {
	var existing os.FileInfo

	info, err := h.OSOps.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):

	case err != nil:
		return fmt.Errorf("failed to stat file %s: %w", path, err)

	case info.IsDir():
		return fmt.Errorf("%w: %s", ErrFileConflict, path)

	default:
		existing = info
	}

	if existing != nil && h.Options.OnExisting == PolicyKeep {
		report.FilesKept = append(report.FilesKept, path)
		slog.Debug("Kept existing file", "path", path)

		return nil
	}

	if err := h.OSOps.CreateFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, h.Options.FilePerms.Perm()); err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if existing != nil {
		report.FilesTruncated = append(report.FilesTruncated, path)
		if existing.Size() > 0 {
			report.BytesTruncated += uint64(existing.Size())
		}
		slog.Debug("Truncated file", "path", path, "size", existing.Size())

		return nil
	}

	report.FilesCreated = append(report.FilesCreated, path)
	slog.Debug("Created file", "path", path)

	return nil
}
