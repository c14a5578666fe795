package transform_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument(t *testing.T) *document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(`<root><item>1</item></root>`), paths.MustLocation("/data/report.xml"))
	require.NoError(t, err)
	return doc
}

func TestInvokerPassesRequestThrough(t *testing.T) {
	var got transform.Request
	engine := transform.EngineFunc(func(_ context.Context, req transform.Request) (string, error) {
		got = req
		return "/out/report.htm", nil
	})

	req := transform.Request{
		Document:           testDocument(t),
		Program:            "/data/report.xsl",
		OutputHint:         "/out/report.htm",
		OutputExplicit:     true,
		HasDocumentDefault: false,
	}
	out, err := transform.NewInvoker(engine, time.Second).Run(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "/out/report.htm", out)
	assert.Equal(t, req, got)
}

func TestInvokerErrors(t *testing.T) {
	tests := []struct {
		name     string
		engine   transform.EngineFunc
		timeout  time.Duration
		wantCode errors.ErrorCode
		wantMsg  string
	}{
		{
			name: "engine failure is wrapped",
			engine: func(context.Context, transform.Request) (string, error) {
				return "", stderrors.New("exit status 5")
			},
			wantCode: errors.ErrTransform,
			wantMsg:  "transform failed",
		},
		{
			name: "coded transform error kept",
			engine: func(context.Context, transform.Request) (string, error) {
				return "", errors.New(errors.ErrTransform, "xsltproc: compilation error")
			},
			wantCode: errors.ErrTransform,
			wantMsg:  "xsltproc: compilation error",
		},
		{
			name: "empty output",
			engine: func(context.Context, transform.Request) (string, error) {
				return "", nil
			},
			wantCode: errors.ErrTransform,
			wantMsg:  "no output location",
		},
		{
			name: "timeout",
			engine: func(ctx context.Context, _ transform.Request) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
			timeout:  20 * time.Millisecond,
			wantCode: errors.ErrTransform,
			wantMsg:  "timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := transform.NewInvoker(tt.engine, tt.timeout).
				Run(context.Background(), transform.Request{Document: testDocument(t)})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestInvokerRequiresDocument(t *testing.T) {
	called := false
	engine := transform.EngineFunc(func(context.Context, transform.Request) (string, error) {
		called = true
		return "x", nil
	})
	_, err := transform.NewInvoker(engine, 0).Run(context.Background(), transform.Request{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoDocument))
	assert.False(t, called)
}
