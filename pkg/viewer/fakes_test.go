package viewer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/arthur-debert/xsltview/pkg/viewer"
	"github.com/stretchr/testify/require"
)

const tempDir = "/nonexistent-temp"

type fakeDisplay struct {
	mu     sync.Mutex
	source string
	output string
	sets   int
}

func (d *fakeDisplay) SetSourceText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.source = text
}

func (d *fakeDisplay) SetOutputText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.output = text
	d.sets++
}

func (d *fakeDisplay) Output() (string, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.output, d.sets
}

type fakeRecent struct {
	mu    sync.Mutex
	added []string
	bases []paths.Location
}

func (r *fakeRecent) AddRecentFile(p paths.ValidatedPath) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.added = append(r.added, p.Abs())
	return nil
}

func (r *fakeRecent) SetBase(base paths.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bases = append(r.bases, base)
}

func (r *fakeRecent) Added() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.added...)
}

// fakeEngine picks destinations the way ExecEngine does without running anything.
type fakeEngine struct {
	mu      sync.Mutex
	calls   []transform.Request
	err     error
	started chan struct{}
	release chan struct{}
}

func (e *fakeEngine) Run(ctx context.Context, req transform.Request) (string, error) {
	e.mu.Lock()
	e.calls = append(e.calls, req)
	err := e.err
	started, release := e.started, e.release
	e.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if err != nil {
		return "", err
	}
	return transform.Destination(req, tempDir, nil), nil
}

func (e *fakeEngine) Calls() []transform.Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]transform.Request(nil), e.calls...)
}

type harness struct {
	v       *viewer.Viewer
	display *fakeDisplay
	recent  *fakeRecent
	engine  *fakeEngine
}

func newHarness(t *testing.T, configure ...func(*viewer.Options)) *harness {
	t.Helper()
	h := &harness{display: &fakeDisplay{}, recent: &fakeRecent{}, engine: &fakeEngine{}}
	opts := viewer.Options{
		Resolver:     paths.NewResolver(tempDir),
		Transformer:  h.engine,
		Display:      h.display,
		Recent:       h.recent,
		RefreshDelay: time.Hour,
	}
	for _, c := range configure {
		c(&opts)
	}
	h.v = viewer.New(opts)
	t.Cleanup(h.v.Close)
	return h
}

func parseDoc(t *testing.T, location, xml string) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(xml), paths.MustLocation(location))
	require.NoError(t, err)
	return doc
}

func (h *harness) load(t *testing.T, kind document.ChangeKind, location, xml string) {
	t.Helper()
	h.v.OnModelChanged(document.NewChange(kind, parseDoc(t, location, xml)))
}
