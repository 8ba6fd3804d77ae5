// Package debounce coalesces rapid-fire events into a single delayed
// invocation.
//
// Text-edit keystrokes feeding the repair parser and bursty filesystem or
// style events feeding reloads must not each trigger work. A Debouncer
// runs the latest function a fixed delay after the last trigger, canceling
// any pending invocation when superseded, so no partial or stale result is
// ever published.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is a fixed delay on the order of a few hundred
// milliseconds, long enough to swallow a keystroke burst.
const DefaultDelay = 300 * time.Millisecond

// Debouncer schedules at most one pending invocation at a time.
// The zero value is not usable; create one with New.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a Debouncer with the given delay.
// A non-positive delay falls back to [DefaultDelay].
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay. A Trigger before the delay
// elapses cancels the pending fn and starts over with the new one: only
// the most recent function ever runs.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
