package filesystem_test

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pngico/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAferoFS_CreateAndOpen(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/icons", 0755))

	w, err := fsys.Create("/icons/16.png")
	require.NoError(t, err)
	_, err = w.Write([]byte("data"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := fsys.Open("/icons/16.png")
	require.NoError(t, err)
	content, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "data", string(content))
}

func TestAferoFS_DirectoriesAreNotFiles(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/icons/32.png", 0755))

	_, err := fsys.Open("/icons/32.png")
	assert.ErrorIs(t, err, fs.ErrInvalid)

	_, err = fsys.Create("/icons/32.png")
	assert.ErrorIs(t, err, fs.ErrExist)

	_, err = fsys.ReadFile("/icons/32.png")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}

func TestAferoFS_MissingFile(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := fsys.Open("/nope.png")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestAferoFS_RemoveAndWriteFile(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	require.NoError(t, fsys.WriteFile("/out.ico", []byte{1, 2}, 0644))
	info, err := fsys.Stat("/out.ico")
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size())

	require.NoError(t, fsys.Remove("/out.ico"))
	_, err = fsys.Stat("/out.ico")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFS(t *testing.T) {
	fsys := filesystem.NewOS()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "a.txt")

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte("x"), 0644))

	content, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))

	_, err = os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, fsys.Remove(path))
}
