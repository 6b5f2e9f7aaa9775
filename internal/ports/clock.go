package ports

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Ticker is a cancellable periodic callback. Stop must be safe to call more
// than once.
type Ticker interface {
	Stop()
}

type Scheduler interface {
	Every(interval time.Duration, fn func()) Ticker
}

// SystemScheduler runs fn on its own goroutine for every tick of a time.Ticker.
type SystemScheduler struct{}

func (SystemScheduler) Every(interval time.Duration, fn func()) Ticker {
	t := &systemTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.ticker.C:
				select {
				case <-t.done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return t
}

type systemTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *systemTicker) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
