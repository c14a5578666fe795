package document

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a document whenever its file is written or replaced.
type Watcher struct {
	fsys    types.FS
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher watches the directory holding path. Editors commonly save by
// renaming a new file over the old one, which a watch on the file itself
// would lose.
func NewWatcher(fsys types.FS, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDocumentWatch, "cannot create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, errors.ErrDocumentWatch, "cannot watch %s", filepath.Dir(abs))
	}
	return &Watcher{fsys: fsys, path: abs, watcher: fw}, nil
}

// Run delivers a freshly loaded document to onReload after every change
// until ctx is done. Parse failures are logged and skipped so that a
// half-written file does not stop the watch.
func (w *Watcher) Run(ctx context.Context, onReload func(*Document)) error {
	logger := logging.GetLogger("document.watcher")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug().Str("path", w.path).Str("op", ev.Op.String()).Msg("Document changed")
			doc, err := Load(w.fsys, w.path)
			if err != nil {
				logger.Warn().Err(err).Str("path", w.path).Msg("Skipping unreadable document")
				continue
			}
			onReload(doc)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, errors.ErrDocumentWatch, "file watcher failed")
		}
	}
}

// Close releases the underlying watch.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
