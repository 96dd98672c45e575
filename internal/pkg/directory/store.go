package directory

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Store holds the current directory. Readers never block; a reload swaps
// the whole directory in one step.
type Store struct {
	current atomic.Pointer[Directory]

	mu        sync.Mutex
	listeners []func(*Directory)
}

// NewStore creates a store holding d
func NewStore(d *Directory) *Store {
	s := &Store{}
	s.current.Store(d)
	return s
}

// Get returns the current directory
func (s *Store) Get() *Directory {
	return s.current.Load()
}

// Swap installs d and notifies subscribers
func (s *Store) Swap(d *Directory) {
	s.current.Store(d)

	s.mu.Lock()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(d)
	}
}

// Subscribe registers fn to be called after every Swap
func (s *Store) Subscribe(fn func(*Directory)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}
