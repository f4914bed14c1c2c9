package sched

import (
	"sync"
	"time"
)

// Deadline is the time budget granted for one idle slice.
type Deadline interface {
	// Remaining returns how much of the slice's budget is left. It may be
	// negative once the budget is exhausted.
	Remaining() time.Duration
}

// Idler is the host scheduling capability: a one-shot "call me when idle,
// with a budget" primitive. The scheduler re-arms it every time its work
// loop returns, even with nothing pending, so it stays reachable for later
// mounts.
type Idler interface {
	RequestIdleSlice(func(Deadline))
}

// sliceDeadline is a wall-clock Deadline.
type sliceDeadline struct {
	end time.Time
}

func (d sliceDeadline) Remaining() time.Duration { return time.Until(d.end) }

// Budget returns a Deadline that expires the given duration from now.
// Budget(0) is already expired, which still lets a work loop process
// exactly one fiber.
func Budget(d time.Duration) Deadline {
	return sliceDeadline{end: time.Now().Add(d)}
}

// DefaultSliceBudget is the time budget Loop grants per idle slice.
const DefaultSliceBudget = 5 * time.Millisecond

// DefaultFrameInterval is the pacing interval between granted slices.
const DefaultFrameInterval = 16 * time.Millisecond

// Loop is a single-goroutine run loop granting fixed time budgets to queued
// callbacks, the cooperative equivalent of a browser's requestIdleCallback.
// Callbacks run one at a time on the loop goroutine, so everything a
// scheduler touches from its slices stays in a single scheduling context.
//
// Grants are paced to one slice per frame interval. A client that re-arms
// on every return therefore costs one queued function per frame while idle,
// not a busy spin.
type Loop struct {
	budget time.Duration
	frame  time.Duration

	queue     chan func(Deadline)
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithSliceBudget sets the budget granted per slice.
func WithSliceBudget(d time.Duration) LoopOption {
	return func(l *Loop) {
		l.budget = d
	}
}

// WithFrameInterval sets the pacing interval between slices.
func WithFrameInterval(d time.Duration) LoopOption {
	return func(l *Loop) {
		l.frame = d
	}
}

// NewLoop starts a run loop. Callers must Close it when done.
func NewLoop(opts ...LoopOption) *Loop {
	l := &Loop{
		budget: DefaultSliceBudget,
		frame:  DefaultFrameInterval,
		queue:  make(chan func(Deadline), 64),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.quit:
			return
		case cb := <-l.queue:
			cb(sliceDeadline{end: time.Now().Add(l.budget)})
			if l.frame > 0 {
				select {
				case <-l.quit:
					return
				case <-time.After(l.frame):
				}
			}
		}
	}
}

// RequestIdleSlice queues cb for the next idle slice. Slices are granted in
// FIFO order. Requests made after Close are dropped.
func (l *Loop) RequestIdleSlice(cb func(Deadline)) {
	select {
	case l.queue <- cb:
	case <-l.quit:
	}
}

// Close stops the loop and waits for it to drain. Queued callbacks that
// were never granted a slice are discarded.
func (l *Loop) Close() {
	l.closeOnce.Do(func() { close(l.quit) })
	<-l.done
}

// Manual is an Idler driven by hand, for tests and the step harness.
// Requested callbacks accumulate until Step grants them a slice, one per
// call, in FIFO order.
type Manual struct {
	mu      sync.Mutex
	pending []func(Deadline)
}

// NewManual creates a hand-stepped idler.
func NewManual() *Manual {
	return &Manual{}
}

// RequestIdleSlice queues cb for the next Step.
func (m *Manual) RequestIdleSlice(cb func(Deadline)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, cb)
}

// Pending returns the number of callbacks waiting for a slice.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Step grants one idle slice with the given budget to the oldest pending
// callback and reports whether one ran. A zero budget still lets the work
// loop process one fiber.
func (m *Manual) Step(budget time.Duration) bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	cb := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	cb(Budget(budget))
	return true
}
