package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	dir := filepath.Join(root, "state", "xsltview")
	require.NoError(t, fsys.MkdirAll(dir, 0755))

	tmp := filepath.Join(dir, "recent.toml.tmp")
	final := filepath.Join(dir, "recent.toml")
	require.NoError(t, fsys.WriteFile(tmp, []byte("files = []\n"), 0644))
	require.NoError(t, fsys.Rename(tmp, final))

	data, err := fsys.ReadFile(final)
	require.NoError(t, err)
	assert.Equal(t, "files = []\n", string(data))

	_, err = fsys.ReadFile(dir)
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fsys.Remove(final))
	_, err = fsys.Stat(final)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFS(t *testing.T) {
	exerciseFS(t, filesystem.NewOS(), t.TempDir())
}

func TestAferoMemoryFS(t *testing.T) {
	exerciseFS(t, filesystem.NewMemory(), "/virtual")
}
