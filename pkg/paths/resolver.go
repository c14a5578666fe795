package paths

import (
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/xsltview/pkg/errors"
)

// ValidatedPath is a candidate proven to be a well-formed filesystem
// location. The location may not exist yet. The zero value is the empty path.
type ValidatedPath struct {
	text string
	abs  string
}

// String returns the candidate text the path was validated from.
func (v ValidatedPath) String() string { return v.text }

// Abs returns the absolute filesystem form.
func (v ValidatedPath) Abs() string { return v.abs }

// IsZero reports whether v is the empty path.
func (v ValidatedPath) IsZero() bool { return v.abs == "" }

// Location is an absolute anchor used for relative resolution and display,
// normally the loaded document's own path. A trailing separator marks a
// directory; otherwise the parent directory is the anchor.
type Location struct {
	path string
}

// NewLocation builds a Location from a file URI or a filesystem path.
// Relative paths are made absolute against the working directory.
func NewLocation(s string) (Location, error) {
	local := s
	if HasURIScheme(s) {
		p, err := fileURIPath(s)
		if err != nil {
			return Location{}, err.WithDetail("location", s)
		}
		local = p
	}
	if err := validatePath(local); err != nil {
		return Location{}, err.WithDetail("location", s)
	}

	trailing := os.IsPathSeparator(local[len(local)-1])
	abs, err := filepath.Abs(expandHome(local))
	if err != nil {
		return Location{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", s)
	}
	if trailing && !strings.HasSuffix(abs, string(filepath.Separator)) {
		abs += string(filepath.Separator)
	}
	return Location{path: abs}, nil
}

// MustLocation is NewLocation for literals known to be valid.
func MustLocation(s string) Location {
	l, err := NewLocation(s)
	if err != nil {
		panic(err)
	}
	return l
}

// String returns the absolute location.
func (l Location) String() string { return l.path }

// IsZero reports whether no location is set.
func (l Location) IsZero() bool { return l.path == "" }

// Dir returns the directory relative paths are resolved against.
func (l Location) Dir() string {
	if l.path == "" {
		return ""
	}
	if os.IsPathSeparator(l.path[len(l.path)-1]) {
		return filepath.Clean(l.path)
	}
	return filepath.Dir(l.path)
}

// Resolver validates path candidates and computes display forms.
type Resolver struct {
	tempDir string
}

// NewResolver returns a Resolver that treats tempDir as the ephemeral
// output location. An empty tempDir means the platform temp directory.
func NewResolver(tempDir string) *Resolver {
	if tempDir == "" {
		tempDir = TempDir()
	}
	return &Resolver{tempDir: filepath.Clean(tempDir)}
}

// TempDir returns the directory whose contents are never relativized.
func (r *Resolver) TempDir() string { return r.tempDir }

// Validate accepts a file: URI, an absolute path, or a path relative to
// base. Nothing is touched on disk. Failures carry ErrInvalidPath.
func (r *Resolver) Validate(candidate string, base Location) (ValidatedPath, error) {
	local := candidate
	if HasURIScheme(candidate) {
		p, err := fileURIPath(candidate)
		if err != nil {
			return ValidatedPath{}, err.WithDetail("candidate", candidate)
		}
		local = p
	}
	if err := validatePath(local); err != nil {
		return ValidatedPath{}, err.WithDetail("candidate", candidate)
	}

	abs := expandHome(local)
	if !filepath.IsAbs(abs) {
		dir := base.Dir()
		if dir == "" {
			wd, err := os.Getwd()
			if err != nil {
				return ValidatedPath{}, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
			}
			dir = wd
		}
		abs = filepath.Join(dir, abs)
	}

	return ValidatedPath{text: candidate, abs: filepath.Clean(abs)}, nil
}

// DisplayForm returns the shortest safe representation of absolutePath
// relative to base. Temp paths and non-absolute inputs come back unchanged;
// a relative form longer than the absolute one is not used.
func (r *Resolver) DisplayForm(absolutePath string, base Location) string {
	if absolutePath == "" || r.isTemp(absolutePath) {
		return absolutePath
	}

	local := absolutePath
	if HasURIScheme(absolutePath) {
		p, err := fileURIPath(absolutePath)
		if err != nil {
			return absolutePath
		}
		if r.isTemp(p) {
			return p
		}
		local = p
	}
	if !filepath.IsAbs(local) {
		return absolutePath
	}
	if base.IsZero() {
		return local
	}

	rel, err := filepath.Rel(base.Dir(), local)
	if err != nil {
		return local
	}
	rel = filepath.FromSlash(rel)
	if utf8.RuneCountInString(rel) > utf8.RuneCountInString(local) {
		return local
	}
	return rel
}

func (r *Resolver) isTemp(p string) bool {
	cleaned := filepath.Clean(p)
	if cleaned == r.tempDir {
		return true
	}
	prefix := r.tempDir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(cleaned, prefix)
}

// fileURIPath decodes a file: URI into a local path.
func fileURIPath(s string) (string, *errors.XsltviewError) {
	u, err := url.Parse(s)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidPath, "cannot parse URI %q", s)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", errors.Newf(errors.ErrInvalidPath, "unsupported URI scheme %q", u.Scheme)
	}
	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", errors.Newf(errors.ErrInvalidPath, "remote file URI host %q is not supported", u.Host)
	}
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	if p == "" {
		return "", errors.New(errors.ErrInvalidPath, "file URI has no path")
	}
	if runtime.GOOS == "windows" && len(p) > 2 && p[0] == '/' && p[2] == ':' {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
