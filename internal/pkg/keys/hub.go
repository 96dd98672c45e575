// Package keys routes keyboard events to a stack of registered listeners so a
// single keystroke is handled exactly once.
package keys

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Event is a single key press as seen by listeners.
type Event struct {
	// Key is the bubbletea KeyMsg string form ("m", "esc", "ctrl+c", "#").
	Key string
	// InTextField is true when keyboard focus is inside a text-entry field.
	InTextField bool
}

// Normalized returns the key in canonical form: single letters lower-cased,
// "escape" folded to "esc". Chords are returned unchanged.
func (e Event) Normalized() string {
	k := e.Key
	if utf8.RuneCountInString(k) == 1 {
		return strings.ToLower(k)
	}
	if strings.EqualFold(k, "escape") || strings.EqualFold(k, "esc") {
		return "esc"
	}
	return k
}

// Listener handles a key event and reports whether it consumed it.
type Listener func(Event) bool

type registration struct {
	id       uint64
	name     string
	listener Listener
}

// Hub dispatches key events to registered listeners, newest first.
type Hub struct {
	mu        sync.Mutex
	listeners []registration
	nextID    uint64
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{}
}

// Register adds a listener on top of the stack. The returned function removes
// it; calling it more than once is harmless.
func (h *Hub) Register(name string, l Listener) (unregister func()) {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, registration{id: id, name: name, listener: l})
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, r := range h.listeners {
		if r.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// Dispatch offers the event to listeners from the most recently registered to
// the oldest and stops at the first one that consumes it.
func (h *Hub) Dispatch(ev Event) bool {
	// Snapshot so listeners may register/unregister while handling.
	h.mu.Lock()
	stack := make([]registration, len(h.listeners))
	copy(stack, h.listeners)
	h.mu.Unlock()

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].listener(ev) {
			return true
		}
	}
	return false
}

// Listeners returns the registered listener names, oldest first
func (h *Hub) Listeners() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, len(h.listeners))
	for i, r := range h.listeners {
		names[i] = r.name
	}
	return names
}

// Len returns the number of registered listeners
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}
