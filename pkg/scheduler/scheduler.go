package scheduler

import (
	"sync"
	"time"

	"github.com/arthur-debert/xsltview/pkg/logging"
)

// Dispatcher runs a fired action. It is called from a timer goroutine and
// must marshal the action onto whatever thread owns the state it touches.
type Dispatcher func(action func())

// Direct runs actions on the timer goroutine.
func Direct(action func()) { action() }

type task struct {
	gen   uint64
	timer *time.Timer
}

// DelayedActions holds at most one pending action per name.
type DelayedActions struct {
	mu       sync.Mutex
	tasks    map[string]*task
	gen      uint64
	stopped  bool
	dispatch Dispatcher
}

// New creates an empty scheduler. A nil dispatch means Direct.
func New(dispatch Dispatcher) *DelayedActions {
	if dispatch == nil {
		dispatch = Direct
	}
	return &DelayedActions{
		tasks:    make(map[string]*task),
		dispatch: dispatch,
	}
}

// Schedule arms action to run after delay, replacing any pending action
// with the same name. It returns false once the scheduler is stopped.
func (d *DelayedActions) Schedule(name string, action func(), delay time.Duration) bool {
	logger := logging.GetLogger("scheduler")

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		logger.Debug().Str("task", name).Msg("Scheduler stopped, dropping task")
		return false
	}

	if prev, ok := d.tasks[name]; ok {
		prev.timer.Stop()
		logger.Trace().Str("task", name).Uint64("gen", prev.gen).Msg("Replacing pending task")
	}

	d.gen++
	gen := d.gen
	d.tasks[name] = &task{
		gen:   gen,
		timer: time.AfterFunc(delay, func() { d.fire(name, gen, action) }),
	}
	logger.Trace().Str("task", name).Uint64("gen", gen).Dur("delay", delay).Msg("Task scheduled")
	return true
}

// fire runs action only if gen is still the live generation for name. A
// timer whose Stop lost the race against expiry ends up here and is ignored.
func (d *DelayedActions) fire(name string, gen uint64, action func()) {
	d.mu.Lock()
	t, ok := d.tasks[name]
	if !ok || t.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.tasks, name)
	d.mu.Unlock()

	d.dispatch(action)
}

// Cancel drops the pending action for name, reporting whether one existed.
func (d *DelayedActions) Cancel(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	t, ok := d.tasks[name]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(d.tasks, name)
	return true
}

// Pending reports whether an action is armed under name.
func (d *DelayedActions) Pending(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.tasks[name]
	return ok
}

// Stop cancels everything and refuses further scheduling.
func (d *DelayedActions) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for name, t := range d.tasks {
		t.timer.Stop()
		delete(d.tasks, name)
	}
	d.stopped = true
}
