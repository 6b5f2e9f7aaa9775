package ports

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemSchedulerStopsFiring(t *testing.T) {
	var fired atomic.Int64
	ticker := SystemScheduler{}.Every(time.Millisecond, func() {
		fired.Add(1)
	})

	assert.Eventually(t, func() bool { return fired.Load() > 0 }, time.Second, time.Millisecond)

	ticker.Stop()
	ticker.Stop()

	// A callback already past the done check may still land once.
	time.Sleep(5 * time.Millisecond)
	settled := fired.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, fired.Load())
}

func TestSystemClockIsMonotonic(t *testing.T) {
	a := SystemClock{}.Now()
	b := SystemClock{}.Now()
	assert.GreaterOrEqual(t, b.Sub(a), time.Duration(0))
}
