package query

import (
	"sync"
	"time"
)

// DefaultSearchDelay is the quiesce window for search inputs.
const DefaultSearchDelay = 500 * time.Millisecond

// Debouncer collapses a burst of calls into a single deferred one: only
// the function passed to the last Do within the delay window runs.
type Debouncer struct {
	delay time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given delay; zero or
// negative falls back to DefaultSearchDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultSearchDelay
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn after the delay, cancelling any previously scheduled
// call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
