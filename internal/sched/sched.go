// Package sched provides cancelable one-shot scheduled callbacks.
// All "async" behavior in the app is cosmetic delay simulation (sensor
// refresh, notice expiry, counter animation); modeling it as explicit
// handles keeps stale callbacks from firing after state has moved on.
package sched

import (
	"sync"
	"time"
)

// Handle is a scheduled callback that can be canceled before it fires.
type Handle interface {
	// Cancel stops the callback from firing. Canceling an already-fired
	// or already-canceled handle is a no-op.
	Cancel()
}

// Scheduler schedules one-shot callbacks after a delay.
type Scheduler interface {
	// After runs fn once the delay elapses and returns a cancelable handle.
	After(delay time.Duration, fn func()) Handle
}

// timerHandle wraps a time.Timer.
type timerHandle struct {
	timer *time.Timer
}

func (h *timerHandle) Cancel() {
	h.timer.Stop()
}

// realScheduler schedules callbacks on the runtime timer heap.
type realScheduler struct{}

// New returns a Scheduler backed by time.AfterFunc.
func New() Scheduler {
	return realScheduler{}
}

func (realScheduler) After(delay time.Duration, fn func()) Handle {
	return &timerHandle{timer: time.AfterFunc(delay, fn)}
}

// FakeScheduler is a deterministic Scheduler for tests. Callbacks fire
// only when Advance moves the fake clock past their deadline.
type FakeScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending map[int]fakeEntry
}

type fakeEntry struct {
	deadline time.Duration
	fn       func()
}

// NewFake creates a FakeScheduler at time zero.
func NewFake() *FakeScheduler {
	return &FakeScheduler{pending: make(map[int]fakeEntry)}
}

// After registers fn to fire when the fake clock reaches now+delay.
func (s *FakeScheduler) After(delay time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.pending[id] = fakeEntry{deadline: s.now + delay, fn: fn}
	return &fakeHandle{sched: s, id: id}
}

// Advance moves the fake clock forward and fires every callback whose
// deadline has passed, in registration order.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []func()
	for id := 0; id < s.nextID; id++ {
		entry, ok := s.pending[id]
		if !ok || entry.deadline > s.now {
			continue
		}
		due = append(due, entry.fn)
		delete(s.pending, id)
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of callbacks still scheduled.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type fakeHandle struct {
	sched *FakeScheduler
	id    int
}

func (h *fakeHandle) Cancel() {
	h.sched.mu.Lock()
	defer h.sched.mu.Unlock()
	delete(h.sched.pending, h.id)
}
