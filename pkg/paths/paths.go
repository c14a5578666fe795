package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for xsltview
	EnvConfigDir = "XSLTVIEW_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for xsltview
	EnvStateDir = "XSLTVIEW_STATE_DIR"

	// EnvCacheDir overrides the XDG cache directory for xsltview
	EnvCacheDir = "XSLTVIEW_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for xsltview-specific files
	AppDirName = "xsltview"

	// RecentFileName stores the recently used stylesheets
	RecentFileName = "recent.toml"

	// LogFileName is the name of the log file
	LogFileName = "xsltview.log"
)

// Paths provides the per-user storage locations
type Paths interface {
	ConfigDir() string
	StateDir() string
	CacheDir() string
	RecentFilePath() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
	xdgCache  string
}

// New resolves the storage directories, honoring the XSLTVIEW_* overrides.
func New() Paths {
	// xdg caches the environment at init; tests change it with t.Setenv.
	xdg.Reload()

	p := &paths{
		xdgConfig: filepath.Join(xdg.ConfigHome, AppDirName),
		xdgState:  filepath.Join(xdg.StateHome, AppDirName),
		xdgCache:  filepath.Join(xdg.CacheHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.xdgConfig = expandHome(dir)
	}
	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.xdgState = expandHome(dir)
	}
	if dir := os.Getenv(EnvCacheDir); dir != "" {
		p.xdgCache = expandHome(dir)
	}
	return p
}

// ConfigDir returns the XDG config directory for xsltview
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// StateDir returns the XDG state directory for xsltview
func (p *paths) StateDir() string {
	return p.xdgState
}

// CacheDir returns the XDG cache directory for xsltview
func (p *paths) CacheDir() string {
	return p.xdgCache
}

// RecentFilePath returns the default location of the recent stylesheets list
func (p *paths) RecentFilePath() string {
	return filepath.Join(p.xdgState, RecentFileName)
}

// LogFilePath returns the path to the xsltview log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// ExpandHome is a utility function that expands ~ in paths
func ExpandHome(path string) string {
	return expandHome(path)
}

// TempDir returns the platform temporary-files location. Paths below it are
// never relativized for display.
func TempDir() string {
	return filepath.Clean(os.TempDir())
}
