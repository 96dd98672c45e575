package call

import (
	"sync"
	"time"
)

// TickInterval is the cadence of the call duration timer
const TickInterval = time.Second

// Scheduler runs a recurring callback until cancelled.
type Scheduler interface {
	// Every invokes fn once per interval until stop is called. stop must not
	// block and may be called more than once. A callback that was already
	// due when stop is called may still run once; callers filter it.
	Every(interval time.Duration, fn func()) (stop func())
}

// TickerScheduler backs each recurring callback with a time.Ticker and a
// goroutine that exits on stop.
type TickerScheduler struct{}

// NewTickerScheduler returns the production scheduler
func NewTickerScheduler() TickerScheduler {
	return TickerScheduler{}
}

// Every implements Scheduler
func (TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
