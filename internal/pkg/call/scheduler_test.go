package call

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler fires registered callbacks only when Tick is called
type manualScheduler struct {
	mu      sync.Mutex
	entries []*manualEntry
}

type manualEntry struct {
	interval time.Duration
	fn       func()
	stopped  bool
}

func (m *manualScheduler) Every(interval time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &manualEntry{interval: interval, fn: fn}
	m.entries = append(m.entries, e)
	return func() {
		m.mu.Lock()
		e.stopped = true
		m.mu.Unlock()
	}
}

// Tick fires every live callback once
func (m *manualScheduler) Tick() {
	m.mu.Lock()
	var due []func()
	for _, e := range m.entries {
		if !e.stopped {
			due = append(due, e.fn)
		}
	}
	m.mu.Unlock()
	for _, fn := range due {
		fn()
	}
}

// TickN fires n ticks
func (m *manualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// Live returns the number of callbacks that have not been stopped
func (m *manualScheduler) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.stopped {
			n++
		}
	}
	return n
}

// Started returns the number of callbacks ever registered
func (m *manualScheduler) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// fireStale invokes the callback of a stopped entry, as a ticker would when
// its tick was already due at the moment of cancellation
func (m *manualScheduler) fireStale(i int) {
	m.mu.Lock()
	fn := m.entries[i].fn
	m.mu.Unlock()
	fn()
}

func TestTickerScheduler_FiresUntilStopped(t *testing.T) {
	var count atomic.Int32
	stop := NewTickerScheduler().Every(5*time.Millisecond, func() {
		count.Add(1)
	})

	require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, time.Millisecond)

	stop()
	stop() // idempotent

	// At most one tick may already have been due when stop was called.
	settled := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.LessOrEqual(t, count.Load(), settled+1)
}
