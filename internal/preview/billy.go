package preview

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"golang.org/x/sys/unix"
)

// BillyFS adapts a [billy.Filesystem] to the OS and Unix providers used by
// the materialize package.
type BillyFS struct {
	FS billy.Filesystem
}

// NewMemFS returns a [BillyFS] backed by an empty in-memory filesystem.
func NewMemFS() *BillyFS {
	return &BillyFS{FS: memfs.New()}
}

// Stat wraps around [billy.Filesystem.Stat].
func (b *BillyFS) Stat(name string) (os.FileInfo, error) {
	return b.FS.Stat(name)
}

// MkdirAll wraps around [billy.Filesystem.MkdirAll].
func (b *BillyFS) MkdirAll(path string, perm os.FileMode) error {
	return b.FS.MkdirAll(path, perm)
}

// Mkdir creates a single directory, failing like [unix.Mkdir] when the
// parent is missing or not a directory, or when path already exists.
func (b *BillyFS) Mkdir(path string, mode uint32) error {
	if _, err := b.FS.Stat(path); err == nil {
		return &os.PathError{Op: "mkdir", Path: path, Err: unix.EEXIST}
	}

	parent, err := b.FS.Stat(filepath.Dir(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &os.PathError{Op: "mkdir", Path: path, Err: unix.ENOENT}

	case err != nil:
		return &os.PathError{Op: "mkdir", Path: path, Err: err}

	case !parent.IsDir():
		return &os.PathError{Op: "mkdir", Path: path, Err: unix.ENOTDIR}
	}

	return b.FS.MkdirAll(path, os.FileMode(mode))
}

// CreateFile opens name with the given flags and closes it right away.
func (b *BillyFS) CreateFile(name string, flag int, perm os.FileMode) error {
	f, err := b.FS.OpenFile(name, flag, perm)
	if err != nil {
		return err
	}

	return f.Close()
}
