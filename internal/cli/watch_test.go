package cli

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/policy"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/arthur-debert/xsltview/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hintTransformer returns the hint when honoured and a temp name otherwise.
type hintTransformer struct {
	mu   sync.Mutex
	reqs []transform.Request
}

func (h *hintTransformer) Run(_ context.Context, req transform.Request) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reqs = append(h.reqs, req)
	if req.HonorsHint() {
		return req.OutputHint, nil
	}
	return "/nonexistent-temp/doc_output.htm", nil
}

func TestReloadKeepsOutputFlag(t *testing.T) {
	work := t.TempDir()
	docPath := filepath.Join(work, "doc.xml")
	doc, err := document.Parse([]byte(`<doc/>`), paths.MustLocation(docPath))
	require.NoError(t, err)

	engine := &hintTransformer{}
	done := make(chan viewer.RunInfo, 4)
	v := viewer.New(viewer.Options{
		Transformer:  engine,
		RefreshDelay: 10 * time.Millisecond,
		OnCompleted:  func(info viewer.RunInfo) { done <- info },
	})
	defer v.Close()

	ctx := context.Background()
	fields := &fieldFlags{output: "out/report.htm"}
	v.OnModelChanged(document.NewChange(document.Other, doc))
	require.NoError(t, v.OutputKey(ctx, fields.output, false))

	first, err := v.Run(ctx)
	require.NoError(t, err)
	want := filepath.Join(work, "out", "report.htm")
	assert.Equal(t, want, first.Output)
	<-done

	require.NoError(t, fields.reload(ctx, v, doc))
	assert.Equal(t, policy.Explicit, v.Intent())

	select {
	case info := <-done:
		assert.Equal(t, want, info.Output, "refresh after a save keeps --output")
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not run")
	}
}

func TestReloadWithoutOutputFlag(t *testing.T) {
	doc, err := document.Parse([]byte(`<doc/>`), paths.MustLocation(filepath.Join(t.TempDir(), "doc.xml")))
	require.NoError(t, err)

	v := viewer.New(viewer.Options{Transformer: &hintTransformer{}, RefreshDelay: time.Hour})
	defer v.Close()

	require.NoError(t, (&fieldFlags{}).reload(context.Background(), v, doc))
	assert.Equal(t, policy.Unset, v.Intent())
	assert.True(t, v.RefreshPending())
}
