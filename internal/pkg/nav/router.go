// Package nav tracks which top-level section of the softphone is active and
// whether the global dialer overlay is shown.
package nav

import (
	"fmt"
	"strings"
	"sync"

	"github.com/endorses/lippyphone/internal/pkg/logger"
)

// Section is one of the top-level application views
type Section string

const (
	SectionChats    Section = "chats"
	SectionDialer   Section = "dialer"
	SectionContacts Section = "contacts"
	SectionSettings Section = "settings"
)

// CloseGlobalDialer is the reserved navigation target asking the router to
// close the globally presented dialer overlay. It never names a section.
const CloseGlobalDialer = "close-global-dialer"

// Sections lists the sections in display order
var Sections = []Section{SectionChats, SectionDialer, SectionContacts, SectionSettings}

// ParseSection validates a section name (case-insensitive)
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q (want one of chats, dialer, contacts, settings)", name)
}

// Index returns the display position of the section, or -1
func (s Section) Index() int {
	for i, known := range Sections {
		if s == known {
			return i
		}
	}
	return -1
}

// Title returns the capitalised label
func (s Section) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Router owns the active section. Every change is reported once to the
// registered listeners, after the router's own state has been updated.
type Router struct {
	mu          sync.RWMutex
	active      Section
	overlayOpen bool
	listeners   []func(Section)
}

// NewRouter creates a router starting at the given section. An unknown start
// section falls back to chats.
func NewRouter(start Section) *Router {
	if start.Index() < 0 {
		start = SectionChats
	}
	return &Router{active: start}
}

// OnSectionChange registers a listener invoked after each section change
func (r *Router) OnSectionChange(fn func(Section)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Active returns the active section
func (r *Router) Active() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// OverlayOpen reports whether the global dialer overlay is shown
func (r *Router) OverlayOpen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.overlayOpen
}

// OpenOverlay shows the global dialer overlay
func (r *Router) OpenOverlay() {
	r.mu.Lock()
	r.overlayOpen = true
	r.mu.Unlock()
}

// CloseOverlay hides the global dialer overlay
func (r *Router) CloseOverlay() {
	r.mu.Lock()
	r.overlayOpen = false
	r.mu.Unlock()
}

// Navigate handles a navigation request: a section name or CloseGlobalDialer.
// Unknown targets are logged and ignored.
func (r *Router) Navigate(target string) {
	if target == CloseGlobalDialer {
		r.CloseOverlay()
		return
	}
	section, err := ParseSection(target)
	if err != nil {
		logger.Warn("Ignoring navigation request", "target", target, "error", err)
		return
	}
	r.SetActive(section)
}

// SetActive switches to the section and notifies listeners. Selecting the
// already active section does nothing.
func (r *Router) SetActive(section Section) {
	if section.Index() < 0 {
		return
	}

	r.mu.Lock()
	if r.active == section {
		r.mu.Unlock()
		return
	}
	r.active = section
	listeners := make([]func(Section), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	logger.Debug("Section changed", "section", string(section))
	for _, fn := range listeners {
		fn(section)
	}
}

// Next switches to the following section, wrapping around
func (r *Router) Next() {
	i := r.Active().Index()
	r.SetActive(Sections[(i+1)%len(Sections)])
}

// Previous switches to the preceding section, wrapping around
func (r *Router) Previous() {
	i := r.Active().Index()
	r.SetActive(Sections[(i-1+len(Sections))%len(Sections)])
}
