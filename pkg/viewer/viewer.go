package viewer

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/xsltview/pkg/document"
	"github.com/arthur-debert/xsltview/pkg/errors"
	"github.com/arthur-debert/xsltview/pkg/filesystem"
	"github.com/arthur-debert/xsltview/pkg/logging"
	"github.com/arthur-debert/xsltview/pkg/paths"
	"github.com/arthur-debert/xsltview/pkg/policy"
	"github.com/arthur-debert/xsltview/pkg/scheduler"
	"github.com/arthur-debert/xsltview/pkg/transform"
	"github.com/arthur-debert/xsltview/pkg/types"
	"github.com/rs/zerolog"
)

// RefreshTask names the debounced re-run scheduled on reload.
const RefreshTask = "UpdateXslt"

// DefaultRefreshDelay is used when Options.RefreshDelay is zero.
const DefaultRefreshDelay = 500 * time.Millisecond

// RunInfo describes a completed run.
type RunInfo struct {
	// Source is the absolute stylesheet path, empty for the default one.
	Source string
	// Output is the location the engine wrote.
	Output string
	// Display is Output as shown in the output field.
	Display  string
	Duration time.Duration
}

// Options configures a Viewer. Transformer is required.
type Options struct {
	Resolver    Resolver
	Transformer Transformer
	Display     Display
	Recent      RecentFiles
	// RefreshDelay is the reload debounce window.
	RefreshDelay time.Duration
	// Dispatcher runs debounced refreshes; nil runs them on the timer goroutine.
	Dispatcher scheduler.Dispatcher
	// FS reads stylesheets for OutputFilter.
	FS types.FS
	// OnCompleted is called after each successful run, outside the lock.
	OnCompleted func(RunInfo)
	// OnError receives failures of debounced refreshes, which have no caller.
	OnError func(error)
	Logger  zerolog.Logger
}

// Viewer is the orchestrator for one document view.
type Viewer struct {
	mu sync.Mutex
	// displayMu orders display flushes; it is taken before mu is released.
	displayMu sync.Mutex
	inFlight  atomic.Bool
	pending   []fieldWrite

	resolver    Resolver
	transformer Transformer
	display     Display
	recent      RecentFiles
	fs          types.FS
	delay       time.Duration
	sched       *scheduler.DelayedActions
	onCompleted func(RunInfo)
	onError     func(error)
	logger      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	base          paths.Location
	intent        policy.Intent
	doc           *document.Document
	defaultOutput string
	sourceText    string
	outputText    string
	visible       bool
	closed        bool
}

// New creates a visible Viewer with no document.
func New(opts Options) *Viewer {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("viewer")
	}

	v := &Viewer{
		resolver:    opts.Resolver,
		transformer: opts.Transformer,
		display:     opts.Display,
		recent:      opts.Recent,
		fs:          opts.FS,
		delay:       opts.RefreshDelay,
		sched:       scheduler.New(opts.Dispatcher),
		onCompleted: opts.OnCompleted,
		onError:     opts.OnError,
		logger:      logger,
		visible:     true,
	}
	if v.resolver == nil {
		v.resolver = paths.NewResolver("")
	}
	if v.display == nil {
		v.display = nopDisplay{}
	}
	if v.recent == nil {
		v.recent = nopRecent{}
	}
	if v.fs == nil {
		v.fs = filesystem.NewOS()
	}
	if v.delay <= 0 {
		v.delay = DefaultRefreshDelay
	}
	v.ctx, v.cancel = context.WithCancel(context.Background())
	return v
}

// OnModelChanged applies a document notification.
func (v *Viewer) OnModelChanged(c document.Change) {
	v.mu.Lock()
	defer v.unlock()

	if v.closed {
		v.logger.Debug().Str("kind", c.Kind.String()).Msg("View closed, ignoring model change")
		return
	}

	v.doc = c.Document
	v.defaultOutput = c.DefaultOutput

	moved := !c.Location.IsZero() && c.Location != v.base
	if moved {
		v.logger.Debug().
			Str("from", v.base.String()).
			Str("to", c.Location.String()).
			Msg("Document location changed")
		v.base = c.Location
		v.recent.SetBase(c.Location)
		// the output type may differ for the new document
		v.setOutput("")
	}
	if moved || c.Kind == document.Reloaded {
		v.intent = v.intent.Next(policy.DocumentReloaded)
	}
	if c.DefaultOutput != "" {
		v.intent = v.intent.Next(policy.DefaultDeclared)
	}
	if c.StylesheetLocation != "" {
		v.setSource(c.StylesheetLocation)
	}

	if c.Kind == document.Reloaded && v.visible {
		v.sched.Schedule(RefreshTask, v.refresh, v.delay)
	}
}

// SourceKey handles a key in the source field. Any key invalidates the
// output field; Enter also runs.
func (v *Viewer) SourceKey(ctx context.Context, text string, enter bool) error {
	v.mu.Lock()
	v.sourceText = text
	v.setOutput("")
	v.intent = v.intent.Next(policy.SourceEdited)
	v.unlock()

	if enter {
		_, err := v.Run(ctx)
		return err
	}
	return nil
}

// OutputKey handles a key in the output field. Enter runs; any other key
// marks the output as chosen by the user.
func (v *Viewer) OutputKey(ctx context.Context, text string, enter bool) error {
	v.mu.Lock()
	v.outputText = text
	if !enter {
		if cleanField(text) == "" {
			v.intent = v.intent.Next(policy.OutputCleared)
		} else {
			v.intent = v.intent.Next(policy.OutputEdited)
		}
	}
	v.mu.Unlock()

	if enter {
		_, err := v.Run(ctx)
		return err
	}
	return nil
}

// BrowseSource applies a stylesheet chosen in a file dialog.
func (v *Viewer) BrowseSource(path string) {
	v.mu.Lock()
	defer v.unlock()
	v.setSource(v.resolver.DisplayForm(path, v.base))
}

// SelectRecent applies an entry picked from the recent stylesheet list.
func (v *Viewer) SelectRecent(path string) {
	v.BrowseSource(path)
}

// BrowseOutput applies an output file chosen in a save dialog.
func (v *Viewer) BrowseOutput(path string) {
	v.mu.Lock()
	defer v.unlock()
	v.setOutput(v.resolver.DisplayForm(path, v.base))
	v.intent = v.intent.Next(policy.OutputBrowsed)
}

// OutputFilter returns the save-dialog filter for the current stylesheet.
func (v *Viewer) OutputFilter() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	text := cleanField(v.sourceText)
	if text == "" {
		return transform.FileFilter(transform.DefaultStylesheet())
	}
	p, err := v.resolver.Validate(text, v.base)
	if err != nil {
		return transform.FileFilter(nil)
	}
	data, err := v.fs.ReadFile(p.Abs())
	if err != nil {
		return transform.FileFilter(nil)
	}
	return transform.FileFilter(data)
}

// SetVisible shows or hides the view. Refreshes firing while hidden are dropped.
func (v *Viewer) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

// Close stops pending refreshes and cancels a running transform.
func (v *Viewer) Close() {
	v.cancel()
	v.sched.Stop()

	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// Run transforms the document with the current fields.
func (v *Viewer) Run(ctx context.Context) (RunInfo, error) {
	if !v.inFlight.CompareAndSwap(false, true) {
		return RunInfo{}, errors.New(errors.ErrRunInFlight, "a transform is already running")
	}
	defer v.inFlight.Store(false)

	info, err := v.runSerialized(ctx, false)
	if err != nil {
		return RunInfo{}, err
	}
	v.completed(info)
	return info, nil
}

// refresh is the debounced reload action.
func (v *Viewer) refresh() {
	if owned := v.inFlight.CompareAndSwap(false, true); owned {
		defer v.inFlight.Store(false)
	}

	info, err := v.runSerialized(v.ctx, true)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrStaleState) {
			v.logger.Debug().Err(err).Msg("Dropping refresh")
			return
		}
		v.logger.Warn().Err(err).Msg("Refresh failed")
		if v.onError != nil {
			v.onError(err)
		}
		return
	}
	v.completed(info)
}

func (v *Viewer) runSerialized(ctx context.Context, debounced bool) (RunInfo, error) {
	v.mu.Lock()
	defer v.unlock()

	if v.closed {
		return RunInfo{}, errors.New(errors.ErrStaleState, "view is closed")
	}
	if debounced && !v.visible {
		return RunInfo{}, errors.New(errors.ErrStaleState, "view is hidden")
	}
	return v.runLocked(ctx)
}

func (v *Viewer) runLocked(ctx context.Context) (RunInfo, error) {
	if v.doc == nil {
		return RunInfo{}, errors.New(errors.ErrNoDocument, "no document loaded")
	}
	start := time.Now()

	var program paths.ValidatedPath
	if text := cleanField(v.sourceText); text != "" {
		p, err := v.resolver.Validate(text, v.base)
		if err != nil {
			return RunInfo{}, withField(err, "source")
		}
		program = p
	}

	intent := v.intent
	outputText := cleanField(v.outputText)
	if outputText == "" {
		intent = intent.Next(policy.OutputCleared)
	} else if _, err := v.resolver.Validate(outputText, v.base); err != nil {
		return RunInfo{}, withField(err, "output")
	}

	effective, err := policy.ResolveEffectiveOutput(v.resolver, outputText, intent, v.defaultOutput, v.base)
	if err != nil {
		return RunInfo{}, withField(err, "output")
	}
	v.intent = intent

	if !program.IsZero() {
		if err := v.recent.AddRecentFile(program); err != nil {
			v.logger.Warn().Err(err).Str("path", program.Abs()).Msg("Failed to record recent stylesheet")
		}
	}

	req := transform.Request{
		Document:           v.doc,
		Program:            program.Abs(),
		OutputHint:         effective.Abs(),
		OutputExplicit:     intent.IsExplicit(),
		HasDocumentDefault: v.defaultOutput != "",
	}
	v.logger.Info().
		Str("source", req.Program).
		Str("output", req.OutputHint).
		Str("intent", intent.String()).
		Msg("Running transform")

	out, err := v.transformer.Run(ctx, req)
	if err != nil {
		return RunInfo{}, err
	}

	display := v.resolver.DisplayForm(out, v.base)
	v.setOutput(display)
	return RunInfo{
		Source:   req.Program,
		Output:   out,
		Display:  display,
		Duration: time.Since(start),
	}, nil
}

func (v *Viewer) completed(info RunInfo) {
	v.logger.Info().Str("output", info.Output).Dur("duration", info.Duration).Msg("Transform completed")
	if v.onCompleted != nil {
		v.onCompleted(info)
	}
}

// fieldWrite is a display update queued under mu.
type fieldWrite struct {
	source bool
	text   string
}

func (v *Viewer) setSource(text string) {
	v.sourceText = text
	v.pending = append(v.pending, fieldWrite{source: true, text: text})
}

func (v *Viewer) setOutput(text string) {
	v.outputText = text
	v.pending = append(v.pending, fieldWrite{text: text})
}

// unlock releases mu and then pushes the queued field texts to the display,
// so a display may read the viewer back without deadlocking.
func (v *Viewer) unlock() {
	writes := v.pending
	v.pending = nil
	v.displayMu.Lock()
	v.mu.Unlock()
	defer v.displayMu.Unlock()

	for _, w := range writes {
		if w.source {
			v.display.SetSourceText(w.text)
		} else {
			v.display.SetOutputText(w.text)
		}
	}
}

// SourceText returns the source field.
func (v *Viewer) SourceText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sourceText
}

// OutputText returns the output field.
func (v *Viewer) OutputText() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.outputText
}

// Intent returns the current output intent.
func (v *Viewer) Intent() policy.Intent {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.intent
}

// Base returns the current base location.
func (v *Viewer) Base() paths.Location {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.base
}

// RefreshPending reports whether a debounced refresh is armed.
func (v *Viewer) RefreshPending() bool {
	return v.sched.Pending(RefreshTask)
}

// cleanField trims whitespace and then surrounding double quotes.
func cleanField(text string) string {
	return strings.Trim(strings.TrimSpace(text), `"`)
}

func withField(err error, field string) error {
	if coded, ok := err.(*errors.XsltviewError); ok {
		return coded.WithDetail("field", field)
	}
	return err
}
