package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Virtual tree on an in-memory filesystem
	EnvIsolated                  // Real filesystem in a temp directory
)

// TestEnvironment redirects every per-user location for one test.
type TestEnvironment struct {
	Root      string
	WorkDir   string
	ConfigDir string
	StateDir  string
	CacheDir  string
	// ScratchDir stands in for the platform temp directory.
	ScratchDir string

	FS    types.FS
	Paths paths.Paths
	Type  EnvType

	t *testing.T
}

// NewTestEnvironment creates the directories and sets the environment.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = "/virtual"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}

	env.WorkDir = filepath.Join(env.Root, "work")
	env.ConfigDir = filepath.Join(env.Root, "config")
	env.StateDir = filepath.Join(env.Root, "state")
	env.CacheDir = filepath.Join(env.Root, "cache")
	env.ScratchDir = filepath.Join(env.Root, "scratch")
	for _, dir := range []string{env.WorkDir, env.ConfigDir, env.StateDir, env.CacheDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv(paths.EnvCacheDir, env.CacheDir)
	if envType == EnvIsolated {
		// the log file follows XDG_STATE_HOME directly
		t.Setenv("XDG_STATE_HOME", filepath.Join(env.Root, "xdg-state"))
	}
	env.Paths = paths.New()
	return env
}

// Path joins a relative name onto WorkDir; absolute names pass through.
func (env *TestEnvironment) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(env.WorkDir, name)
}

// WriteFile writes content under WorkDir, creating parents, and returns the
// absolute path.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()
	path := env.Path(name)
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
