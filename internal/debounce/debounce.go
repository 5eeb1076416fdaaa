package debounce

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Debouncer coalesces bursts of Trigger calls into a single call of fn.
type Debouncer[T any] struct {
	mu    sync.Mutex
	clock clockwork.Clock
	delay time.Duration
	fn    func(T)
	timer clockwork.Timer
	gen   uint64
}

// New returns a Debouncer that calls fn delay after the last Trigger.
func New[T any](clock clockwork.Clock, delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{clock: clock, delay: delay, fn: fn}
}

// Trigger schedules fn(v), replacing any pending call.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A Trigger or Cancel that raced the timer wins.
		if gen != d.gen || d.timer == nil {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		d.fn(v)
	})
}

// Cancel drops the pending call, if any.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

// Pending reports whether a call is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer[T]) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
