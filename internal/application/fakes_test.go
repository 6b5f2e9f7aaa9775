package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/lapwatch/internal/ports"
	"github.com/stretchr/testify/mock"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// manualScheduler never fires on its own; tests drive ticks explicitly.
type manualScheduler struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	stopped  bool
	stops    int
}

func (s *manualScheduler) Every(interval time.Duration, fn func()) ports.Ticker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &manualTicker{interval: interval, fn: fn}
	s.tickers = append(s.tickers, t)
	return t
}

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.stops++
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

func (s *manualScheduler) all() []*manualTicker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*manualTicker, len(s.tickers))
	copy(out, s.tickers)
	return out
}

func (s *manualScheduler) active() []*manualTicker {
	var out []*manualTicker
	for _, t := range s.all() {
		if !t.isStopped() {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the callbacks of active tickers.
func (s *manualScheduler) fire() {
	for _, t := range s.active() {
		t.fn()
	}
}

// fireStale runs every callback ever scheduled, including stopped ones, the
// way a callback already in flight would land after cancellation.
func (s *manualScheduler) fireStale() {
	for _, t := range s.all() {
		t.fn()
	}
}

type snapshotRecorder struct {
	mu        sync.Mutex
	snapshots []Snapshot
}

func (r *snapshotRecorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, s)
}

func (r *snapshotRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *snapshotRecorder) last() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshots[len(r.snapshots)-1]
}

func (r *snapshotRecorder) all() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.snapshots))
	copy(out, r.snapshots)
	return out
}

func newTestEngine() (*Engine, *fakeClock, *manualScheduler) {
	clock := newFakeClock()
	scheduler := &manualScheduler{}
	engine := NewEngine(EngineOptions{Clock: clock, Scheduler: scheduler, TickInterval: 5 * time.Millisecond})
	return engine, clock, scheduler
}

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(context.Context) bool { return true })
}

func mockAnyDocument() interface{} {
	return mock.AnythingOfType("domain.ExportDocument")
}
