package recent_test

import (
	"testing"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/recent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/state/xsltview/recent.toml"

func validated(t *testing.T, p string) paths.ValidatedPath {
	t.Helper()
	v, err := paths.NewResolver("/nonexistent-temp").Validate(p, paths.Location{})
	require.NoError(t, err)
	return v
}

func TestOpenMissingFile(t *testing.T) {
	s, err := recent.Open(filesystem.NewMemory(), storePath, 0)
	require.NoError(t, err)
	assert.Empty(t, s.Files())
}

func TestAddRecentFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	s, err := recent.Open(fsys, storePath, 3)
	require.NoError(t, err)

	for _, p := range []string{"/x/a.xsl", "/x/b.xsl", "/x/a.xsl", "/x/c.xsl", "/x/d.xsl"} {
		require.NoError(t, s.AddRecentFile(validated(t, p)))
	}
	assert.Equal(t, []string{"/x/d.xsl", "/x/c.xsl", "/x/a.xsl"}, s.Files())

	require.NoError(t, s.AddRecentFile(paths.ValidatedPath{}))
	assert.Len(t, s.Files(), 3)

	reopened, err := recent.Open(fsys, storePath, 3)
	require.NoError(t, err)
	assert.Equal(t, s.Files(), reopened.Files())

	_, err = fsys.Stat(storePath + ".tmp")
	assert.Error(t, err, "temp file renamed away")
}

func TestOpenTruncatesToMax(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/state/xsltview", 0755))
	require.NoError(t, fsys.WriteFile(storePath, []byte(`files = ["/a.xsl", "", "/b.xsl", "/c.xsl"]`), 0644))

	s, err := recent.Open(fsys, storePath, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.xsl", "/b.xsl"}, s.Files())
}

func TestOpenRejectsGarbage(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/state/xsltview", 0755))
	require.NoError(t, fsys.WriteFile(storePath, []byte(`files = [`), 0644))

	_, err := recent.Open(fsys, storePath, 2)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestDisplayUsesBase(t *testing.T) {
	s, err := recent.Open(filesystem.NewMemory(), storePath, 0)
	require.NoError(t, err)
	require.NoError(t, s.AddRecentFile(validated(t, "/work/xsl/report.xsl")))
	require.NoError(t, s.AddRecentFile(validated(t, "/elsewhere/deep/tree/s.xsl")))

	r := paths.NewResolver("/nonexistent-temp")
	assert.Equal(t, []string{"/elsewhere/deep/tree/s.xsl", "/work/xsl/report.xsl"}, s.Display(r))

	base := paths.MustLocation("/work/doc.xml")
	s.SetBase(base)
	assert.Equal(t, base, s.Base())
	assert.Equal(t, []string{"/elsewhere/deep/tree/s.xsl", "xsl/report.xsl"}, s.Display(r))
}
