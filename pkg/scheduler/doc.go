// Package scheduler provides named, debounced delayed actions.
//
// Scheduling under a name that already has a pending action replaces it:
// the old timer is stopped and its generation retired before the new timer
// is armed, so only the most recent Schedule call within the delay window
// ever runs. Actions are handed to a Dispatcher rather than run on the timer
// goroutine, letting the owner serialize them with its own state.
package scheduler
