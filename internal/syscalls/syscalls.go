// Package syscalls wraps the operating system functions used for
// materialization, so that consumers can depend on small interfaces and
// substitute them in tests.
package syscalls

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// MkdirAll wraps around [os.MkdirAll].
func (*OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CreateFile opens name with [os.OpenFile] using the given flags and closes it
// right away. With [os.O_CREATE] and [os.O_TRUNC] this leaves an empty file.
func (*OS) CreateFile(name string, flag int, perm os.FileMode) error {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return err
	}

	return f.Close()
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}
