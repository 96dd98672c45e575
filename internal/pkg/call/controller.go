package call

import (
	"log/slog"
	"sync"
	"time"

	"github.com/endorses/lippyphone/internal/pkg/keys"
	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/google/uuid"
)

// Navigator receives navigation requests from the controller: a section name
// or nav.CloseGlobalDialer.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(target string)

// Navigate implements Navigator
func (f NavigatorFunc) Navigate(target string) { f(target) }

// Option configures a Controller
type Option func(*Controller)

// WithScheduler replaces the ticker-backed scheduler
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithNavigator sets the navigation collaborator
func WithNavigator(n Navigator) Option {
	return func(c *Controller) { c.navigator = n }
}

// WithKeyboard makes the controller register its shortcuts on the hub for
// the lifetime of each call
func WithKeyboard(h *keys.Hub) Option {
	return func(c *Controller) { c.keyboard = h }
}

// WithOnChange sets a hook invoked with the new snapshot after every state
// change, including timer ticks. It runs outside the controller lock and may
// be called from the timer goroutine.
func WithOnChange(fn func(Session)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller owns the single call session. All methods are safe for
// concurrent use; none of them fail. Actions that make no sense in the
// current state are no-ops.
type Controller struct {
	mu      sync.Mutex
	session Session

	scheduler Scheduler
	navigator Navigator
	keyboard  *keys.Hub
	onChange  func(Session)

	// Timer bookkeeping. timerGen is bumped on every start and stop so a
	// tick delivered by a cancelled timer is recognised and dropped.
	stopTimer func()
	timerGen  uint64

	unregisterKeys func()

	log *slog.Logger
}

// NewController creates an idle controller
func NewController(opts ...Option) *Controller {
	c := &Controller{
		scheduler: NewTickerScheduler(),
		log:       logger.With("component", "call"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetNavigator replaces the navigation collaborator
func (c *Controller) SetNavigator(n Navigator) {
	c.mu.Lock()
	c.navigator = n
	c.mu.Unlock()
}

// Snapshot returns a copy of the current session
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Active reports whether a call is in progress
func (c *Controller) Active() bool {
	return c.Snapshot().Active
}

// InitiateCall starts a call to number. The number is stored as given.
// Ignored while a call is already active.
func (c *Controller) InitiateCall(number string, opts ...CallerOption) {
	c.mu.Lock()
	if c.session.Active {
		id := c.session.ID
		c.mu.Unlock()
		c.log.Debug("Ignoring call initiation during active call", "call_id", id, "number", number)
		return
	}

	s := Session{
		ID:           uuid.NewString(),
		StartedAt:    time.Now(),
		Active:       true,
		DialedNumber: number,
		CallerName:   DefaultCallerName,
	}
	for _, opt := range opts {
		opt(&s)
	}
	c.session = s
	c.syncTimerLocked()
	if c.keyboard != nil && c.unregisterKeys == nil {
		c.unregisterKeys = c.keyboard.Register("call", c.HandleKey)
	}
	c.mu.Unlock()

	c.log.Info("Call started", "call_id", s.ID, "number", s.DialedNumber, "caller", s.CallerName)
	c.notify(s)
}

// EndCall resets the session to the idle baseline, cancels the timer and
// releases the keyboard shortcuts
func (c *Controller) EndCall() {
	c.mu.Lock()
	if !c.session.Active {
		c.mu.Unlock()
		return
	}
	ended := c.session
	c.session = Session{}
	c.syncTimerLocked()
	unregister := c.unregisterKeys
	c.unregisterKeys = nil
	c.mu.Unlock()

	if unregister != nil {
		unregister()
	}
	c.log.Info("Call ended",
		"call_id", ended.ID,
		"number", ended.DialedNumber,
		"duration", FormatDuration(ended.DurationSeconds))
	c.notify(Session{})
}

// ToggleMute flips the mute flag
func (c *Controller) ToggleMute() {
	c.toggle("muted", func(s *Session) *bool { return &s.Muted })
}

// ToggleHold flips the hold flag. Holding stops the duration timer;
// resuming starts a fresh one-second cadence.
func (c *Controller) ToggleHold() {
	c.toggle("on_hold", func(s *Session) *bool { return &s.OnHold })
}

// ToggleSpeaker flips the speaker flag
func (c *Controller) ToggleSpeaker() {
	c.toggle("speaker", func(s *Session) *bool { return &s.SpeakerOn })
}

// ToggleRecording flips the recording flag
func (c *Controller) ToggleRecording() {
	c.toggle("recording", func(s *Session) *bool { return &s.Recording })
}

// ToggleInCallDialer shows or hides the in-call dial pad
func (c *Controller) ToggleInCallDialer() {
	c.toggle("in_call_dialer", func(s *Session) *bool { return &s.InCallDialerOpen })
}

// ToggleCallMinimized flips between the full call view and the corner
// widget. Minimizing also asks the navigator to close the global dialer.
func (c *Controller) ToggleCallMinimized() {
	snap, ok := c.update(func(s *Session) bool {
		if !s.Active {
			return false
		}
		s.Minimized = !s.Minimized
		return true
	})
	if !ok {
		return
	}
	c.notify(snap)
	if snap.Minimized {
		c.navigate(nav.CloseGlobalDialer)
	}
}

// MaximizeCall restores the full call view and navigates to the dialer
func (c *Controller) MaximizeCall() {
	snap, ok := c.update(func(s *Session) bool {
		if !s.Active {
			return false
		}
		s.Minimized = false
		return true
	})
	if !ok {
		return
	}
	c.notify(snap)
	c.navigate(string(nav.SectionDialer))
}

// UpdateDialedNumber replaces the dialed number of the active call
func (c *Controller) UpdateDialedNumber(number string) {
	snap, ok := c.update(func(s *Session) bool {
		if !s.Active {
			return false
		}
		s.DialedNumber = number
		return true
	})
	if ok {
		c.notify(snap)
	}
}

// HandleSectionChange applies the auto-minimize policy: leaving the dialer
// minimizes the call, returning to it restores the full view. Calls that
// find the session already in the target state change nothing.
func (c *Controller) HandleSectionChange(section nav.Section) {
	snap, ok := c.update(func(s *Session) bool {
		switch {
		case s.Active && !s.Minimized && section != nav.SectionDialer:
			s.Minimized = true
			return true
		case s.Active && s.Minimized && section == nav.SectionDialer:
			s.Minimized = false
			return true
		}
		return false
	})
	if !ok {
		return
	}
	c.log.Debug("Call view follows section", "section", string(section), "minimized", snap.Minimized)
	c.notify(snap)
	if snap.Minimized {
		c.navigate(nav.CloseGlobalDialer)
	}
}

// toggle flips one flag of an active call and logs the new value
func (c *Controller) toggle(name string, flag func(*Session) *bool) {
	var value bool
	snap, ok := c.update(func(s *Session) bool {
		if !s.Active {
			return false
		}
		f := flag(s)
		*f = !*f
		value = *f
		return true
	})
	if !ok {
		return
	}
	c.log.Debug("Call flag toggled", "call_id", snap.ID, "flag", name, "value", value)
	c.notify(snap)
}

// update applies fn under the lock and reconciles the timer. It returns the
// resulting snapshot and fn's report of whether anything changed.
func (c *Controller) update(fn func(*Session) bool) (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !fn(&c.session) {
		return c.session, false
	}
	c.syncTimerLocked()
	return c.session, true
}

// syncTimerLocked starts or cancels the duration timer so that it runs
// exactly while the session is ticking. Caller holds c.mu.
func (c *Controller) syncTimerLocked() {
	running := c.stopTimer != nil
	want := c.session.Ticking()

	switch {
	case want && !running:
		c.timerGen++
		gen := c.timerGen
		c.stopTimer = c.scheduler.Every(TickInterval, func() { c.tick(gen) })
	case !want && running:
		c.stopTimer()
		c.stopTimer = nil
		c.timerGen++
	}
}

// tick advances the duration by one second if gen is still current
func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if gen != c.timerGen || !c.session.Ticking() {
		c.mu.Unlock()
		return
	}
	c.session.DurationSeconds++
	snap := c.session
	c.mu.Unlock()

	c.notify(snap)
}

func (c *Controller) notify(s Session) {
	if c.onChange != nil {
		c.onChange(s)
	}
}

func (c *Controller) navigate(target string) {
	c.mu.Lock()
	n := c.navigator
	c.mu.Unlock()
	if n != nil {
		n.Navigate(target)
	}
}
