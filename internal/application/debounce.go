package application

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of triggers into one call that runs once no
// trigger arrived for the configured delay.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	action func()
	gen    uint64
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger (re)starts the quiet period; action replaces any pending one.
func (d *Debouncer) Trigger(action func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	d.action = action
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.action == nil {
		// superseded by a later Trigger, Flush or Stop
		d.mu.Unlock()
		return
	}
	action := d.take()
	d.mu.Unlock()

	action()
}

// Flush runs the pending action now, if any. Reports whether one ran.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	action := d.take()
	d.mu.Unlock()

	if action == nil {
		return false
	}
	action()
	return true
}

// Stop drops the pending action without running it
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.take() != nil
}

// Pending reports whether an action is waiting for the quiet period
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.action != nil
}

// take clears the pending state; d.mu must be held.
func (d *Debouncer) take() func() {
	action := d.action
	d.action = nil
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	return action
}
