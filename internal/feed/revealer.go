package feed

import (
	"sync"
	"time"
)

const (
	// DefaultBatch is how many records one growth step reveals.
	DefaultBatch = 12
	// LoadDelay simulates a remote page fetch; the data is already in
	// memory.
	LoadDelay = 500 * time.Millisecond
	// ScrollThreshold is the scroll-position fraction at which clients
	// auto-trigger LoadMore.
	ScrollThreshold = 0.8
)

// Revealer exposes a monotonically growing prefix of a collection, one
// batch at a time, with an artificial delay per growth step. Safe for
// concurrent use; the deferred growth callback is guarded by a generation
// counter so a reset (or a view teardown) invalidates timers still in
// flight.
type Revealer struct {
	mu       sync.Mutex
	batch    int
	total    int
	revealed int
	loading  bool
	gen      uint64

	delay    time.Duration
	schedule func(d time.Duration, f func())
}

type Option func(*Revealer)

// WithBatch overrides the growth step size.
func WithBatch(n int) Option {
	return func(r *Revealer) {
		if n > 0 {
			r.batch = n
		}
	}
}

// WithDelay overrides the simulated fetch delay.
func WithDelay(d time.Duration) Option {
	return func(r *Revealer) { r.delay = d }
}

// WithScheduler replaces the timer; tests use a synchronous one.
func WithScheduler(schedule func(d time.Duration, f func())) Option {
	return func(r *Revealer) { r.schedule = schedule }
}

func NewRevealer(total int, opts ...Option) *Revealer {
	if total < 0 {
		total = 0
	}
	r := &Revealer{
		batch: DefaultBatch,
		total: total,
		delay: LoadDelay,
		schedule: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.revealed = min(r.batch, r.total)
	return r
}

func (r *Revealer) Revealed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed
}

func (r *Revealer) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

func (r *Revealer) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *Revealer) HasMore() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed < r.total
}

// LoadMore schedules one growth step. It reports whether a load was
// started: calls while loading or exhausted are no-ops, so the explicit
// button path and the scroll trigger share one guard and never
// double-load.
func (r *Revealer) LoadMore() bool {
	r.mu.Lock()
	if r.loading || r.revealed >= r.total {
		r.mu.Unlock()
		return false
	}
	r.loading = true
	gen := r.gen
	r.mu.Unlock()

	r.schedule(r.delay, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.gen != gen {
			// The view reset or resized while the timer was pending.
			return
		}
		r.revealed = min(r.revealed+r.batch, r.total)
		r.loading = false
	})
	return true
}

// Reset restores the initial batch and clears any in-flight load.
func (r *Revealer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	r.revealed = min(r.batch, r.total)
	r.loading = false
}

// Resize points the revealer at a collection of n items. If the revealed
// count would run past the end (a filter narrowed the results), progress
// is not trimmed partially; it snaps back to the initial batch.
func (r *Revealer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = n
	if r.revealed > r.total || r.revealed < min(r.batch, r.total) {
		r.gen++
		r.revealed = min(r.batch, r.total)
		r.loading = false
	}
}

// Window slices the revealed prefix out of items.
func Window[T any](items []T, r *Revealer) []T {
	n := r.Revealed()
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
