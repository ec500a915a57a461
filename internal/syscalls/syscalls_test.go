package syscalls

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestOS_CreateFile_Truncates(t *testing.T) {
	t.Parallel()

	osProv := &OS{}
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o600))

	err := osProv.CreateFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	require.NoError(t, err)

	info, err := osProv.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestOS_CreateFile_MissingParent(t *testing.T) {
	t.Parallel()

	osProv := &OS{}
	path := filepath.Join(t.TempDir(), "missing", "file.txt")

	err := osProv.CreateFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOS_MkdirAll(t *testing.T) {
	t.Parallel()

	osProv := &OS{}
	path := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, osProv.MkdirAll(path, 0o777))

	info, err := osProv.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUnix_Mkdir(t *testing.T) {
	t.Parallel()

	unixProv := &Unix{}
	path := filepath.Join(t.TempDir(), "dir")

	require.NoError(t, unixProv.Mkdir(path, 0o777))

	err := unixProv.Mkdir(path, 0o777)
	require.ErrorIs(t, err, unix.EEXIST, "second mkdir should report EEXIST")
	require.ErrorIs(t, err, fs.ErrExist)
}
