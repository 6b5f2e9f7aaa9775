package application

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/lapwatch/internal/domain"
	"github.com/bnema/lapwatch/internal/ports"
)

const DefaultTickInterval = 10 * time.Millisecond

// Snapshot is a consistent view of the engine taken under a single lock.
// Version grows with every delivered snapshot so observers can drop stale ones.
type Snapshot struct {
	Version   uint64
	State     domain.RunState
	ElapsedMs int64
	Laps      []domain.LapRecord
	Metrics   domain.Metrics
}

type EngineOptions struct {
	Clock        ports.Clock
	Scheduler    ports.Scheduler
	TickInterval time.Duration
	Logger       *slog.Logger
}

// Engine is the stopwatch state machine. Commands and ticks are serialized;
// observers are called in order, outside the state lock, and must not issue
// commands synchronously.
type Engine struct {
	clock     ports.Clock
	scheduler ports.Scheduler
	interval  time.Duration
	logger    *slog.Logger

	// deliverMu orders observer delivery; mu guards everything below it.
	deliverMu sync.Mutex
	mu        sync.Mutex

	session    domain.Session
	ledger     domain.LapLedger
	version    uint64
	ticker     ports.Ticker
	generation uint64
	closed     bool

	observers    map[uint64]func(Snapshot)
	nextObserver uint64
}

func NewEngine(opts EngineOptions) *Engine {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = ports.SystemScheduler{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		interval:  opts.TickInterval,
		logger:    opts.Logger,
		session:   domain.NewSession(),
		observers: make(map[uint64]func(Snapshot)),
	}
}

func (e *Engine) Start() error {
	return e.apply(domain.CommandStart, func(now time.Time) error {
		if err := e.session.Start(now); err != nil {
			return err
		}
		e.startTickingLocked()
		return nil
	})
}

func (e *Engine) Pause() error {
	return e.apply(domain.CommandPause, func(now time.Time) error {
		if err := e.session.Pause(now); err != nil {
			return err
		}
		e.stopTickingLocked()
		return nil
	})
}

// Toggle pauses a running stopwatch and starts it otherwise.
func (e *Engine) Toggle() error {
	e.mu.Lock()
	running := e.session.State == domain.RunStateRunning
	e.mu.Unlock()

	if running {
		return e.Pause()
	}
	return e.Start()
}

// Reset zeroes the elapsed time. Laps are kept until ClearLaps.
func (e *Engine) Reset() error {
	return e.apply(domain.CommandReset, func(time.Time) error {
		e.session.Reset()
		e.stopTickingLocked()
		return nil
	})
}

func (e *Engine) Lap() error {
	return e.apply(domain.CommandLap, func(now time.Time) error {
		if _, err := domain.NextState(e.session.State, domain.CommandLap); err != nil {
			return err
		}

		record, err := e.ledger.Append(e.session.ElapsedMs(now), now)
		if err != nil {
			return fmt.Errorf("append lap: %w", err)
		}

		e.logger.Debug("lap recorded", "sequence", record.Sequence, "cumulative_ms", record.CumulativeMs, "split_ms", record.SplitMs)
		return nil
	})
}

func (e *Engine) ClearLaps() error {
	return e.apply(domain.CommandClearLaps, func(time.Time) error {
		e.ledger.Clear()
		return nil
	})
}

func (e *Engine) CurrentElapsedMs() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.ElapsedMs(e.clock.Now())
}

func (e *Engine) State() domain.RunState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.session.State
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked(e.clock.Now())
}

// Subscribe registers fn for every state change and every tick while running.
// The returned func removes it and is safe to call more than once.
func (e *Engine) Subscribe(fn func(Snapshot)) func() {
	e.mu.Lock()
	id := e.nextObserver
	e.nextObserver++
	e.observers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.observers, id)
		e.mu.Unlock()
	}
}

// Close stops ticking for good. It does not change the run state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	e.stopTickingLocked()
}

func (e *Engine) apply(cmd domain.Command, fn func(now time.Time) error) error {
	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()

	e.mu.Lock()
	from := e.session.State
	now := e.clock.Now()
	if err := fn(now); err != nil {
		e.mu.Unlock()
		e.logger.Debug("command ignored", "command", cmd, "state", from, "error", err)
		return err
	}

	e.logger.Debug("command applied", "command", cmd, "from", from, "to", e.session.State)
	snapshot, observers := e.publishLocked(now)
	e.mu.Unlock()

	deliver(observers, snapshot)
	return nil
}

func (e *Engine) tick(generation uint64) {
	e.deliverMu.Lock()
	defer e.deliverMu.Unlock()

	e.mu.Lock()
	if generation != e.generation || e.session.State != domain.RunStateRunning {
		e.mu.Unlock()
		return
	}

	snapshot, observers := e.publishLocked(e.clock.Now())
	e.mu.Unlock()

	deliver(observers, snapshot)
}

func (e *Engine) startTickingLocked() {
	e.stopTickingLocked()
	if e.closed {
		return
	}

	generation := e.generation
	e.ticker = e.scheduler.Every(e.interval, func() {
		e.tick(generation)
	})
}

// stopTickingLocked invalidates any tick already in flight by bumping the
// generation before stopping the ticker.
func (e *Engine) stopTickingLocked() {
	e.generation++
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) publishLocked(now time.Time) (Snapshot, []func(Snapshot)) {
	e.version++
	snapshot := e.snapshotLocked(now)

	observers := make([]func(Snapshot), 0, len(e.observers))
	for _, fn := range e.observers {
		observers = append(observers, fn)
	}

	return snapshot, observers
}

func (e *Engine) snapshotLocked(now time.Time) Snapshot {
	elapsed := e.session.ElapsedMs(now)

	return Snapshot{
		Version:   e.version,
		State:     e.session.State,
		ElapsedMs: elapsed,
		Laps:      e.ledger.All(),
		Metrics:   e.ledger.Metrics(elapsed),
	}
}

func deliver(observers []func(Snapshot), snapshot Snapshot) {
	for _, fn := range observers {
		fn(snapshot)
	}
}
