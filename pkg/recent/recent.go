// Package recent keeps the most-recently-used stylesheet list.
package recent

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/fileops"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// DefaultMax is the list length used when none is configured.
const DefaultMax = 10

type fileFormat struct {
	Files []string `toml:"files"`
}

// Store is a persisted MRU list of absolute stylesheet paths.
type Store struct {
	mu    sync.Mutex
	fs    types.FS
	path  string
	max   int
	base  paths.Location
	files []string
}

// Open loads the list at path. A missing file is an empty list.
func Open(fsys types.FS, path string, max int) (*Store, error) {
	if max <= 0 {
		max = DefaultMax
	}
	s := &Store{fs: fsys, path: path, max: max}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if _, statErr := fsys.Stat(path); statErr != nil {
			return s, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path)
	}
	for _, file := range f.Files {
		if file != "" && len(s.files) < s.max {
			s.files = append(s.files, file)
		}
	}
	return s, nil
}

// AddRecentFile moves p to the front of the list and saves it.
func (s *Store) AddRecentFile(p paths.ValidatedPath) error {
	if p.IsZero() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	abs := p.Abs()
	files := make([]string, 0, len(s.files)+1)
	files = append(files, abs)
	for _, f := range s.files {
		if f != abs {
			files = append(files, f)
		}
	}
	if len(files) > s.max {
		files = files[:s.max]
	}
	s.files = files

	logger := logging.GetLogger("recent")
	logger.Debug().Str("path", abs).Int("count", len(files)).Msg("Recorded recent file")
	return s.save()
}

// SetBase sets the location entries are displayed relative to.
func (s *Store) SetBase(base paths.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = base
}

// Base returns the current display base.
func (s *Store) Base() paths.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.base
}

// Files returns the absolute paths, most recent first.
func (s *Store) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

// Display returns the entries in display form against the current base.
func (s *Store) Display(r *paths.Resolver) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.files))
	for i, f := range s.files {
		out[i] = r.DisplayForm(f, s.base)
	}
	return out
}

// save writes through a temp file so readers never see a partial list.
func (s *Store) save() error {
	data, err := toml.Marshal(fileFormat{Files: s.files})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode recent files")
	}
	tmp := s.path + ".tmp"
	return fileops.New(s.fs, "recent").
		MkdirAll(filepath.Dir(s.path), 0755).
		WriteFile(tmp, data, 0644).
		Rename(tmp, s.path).
		Run(context.Background())
}
