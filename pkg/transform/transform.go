package transform

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/rs/zerolog"
)

// Request describes one transform run.
type Request struct {
	Document *document.Document
	// Program is the absolute stylesheet path. Empty selects the built-in
	// default stylesheet.
	Program string
	// OutputHint is the absolute output path decided by the caller, if any.
	OutputHint         string
	OutputExplicit     bool
	HasDocumentDefault bool
}

// HonorsHint reports whether the engine must write to OutputHint.
func (r Request) HonorsHint() bool {
	return r.OutputHint != "" && (r.OutputExplicit || r.HasDocumentDefault)
}

// Engine performs a transform and returns the output location it used.
type Engine interface {
	Transform(ctx context.Context, req Request) (string, error)
}

// EngineFunc adapts a function to Engine.
type EngineFunc func(ctx context.Context, req Request) (string, error)

// Transform calls f.
func (f EngineFunc) Transform(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

// Invoker wraps an Engine with a timeout, logging and error coding.
// It never retries.
type Invoker struct {
	engine  Engine
	timeout time.Duration
	logger  zerolog.Logger
}

// NewInvoker returns an Invoker over engine. A zero timeout disables it.
func NewInvoker(engine Engine, timeout time.Duration) *Invoker {
	return &Invoker{
		engine:  engine,
		timeout: timeout,
		logger:  logging.GetLogger("transform"),
	}
}

// Run invokes the engine and returns the actual output location.
func (i *Invoker) Run(ctx context.Context, req Request) (string, error) {
	if req.Document == nil {
		return "", errors.New(errors.ErrNoDocument, "no document loaded")
	}
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	i.logger.Debug().
		Str("document", req.Document.Location.String()).
		Str("program", req.Program).
		Str("outputHint", req.OutputHint).
		Bool("outputExplicit", req.OutputExplicit).
		Bool("hasDocumentDefault", req.HasDocumentDefault).
		Msg("Invoking transform engine")
	done := logging.LogOperationStart(i.logger, "transform")
	defer done()

	out, err := i.engine.Transform(ctx, req)
	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Wrapf(err, errors.ErrTransform, "transform timed out after %s", i.timeout)
		}
		if errors.IsErrorCode(err, errors.ErrTransform) {
			return "", err
		}
		return "", errors.Wrap(err, errors.ErrTransform, "transform failed")
	}
	if out == "" {
		return "", errors.New(errors.ErrTransform, "engine returned no output location")
	}
	return out, nil
}
