// Package call implements the softphone's single call session: its state
// machine, duration timer, keyboard shortcuts and the coupling between the
// call's minimized state and the active application section.
package call

import "time"

// DefaultCallerName is used when a call is initiated without a display name
const DefaultCallerName = "Unknown"

// Session is a snapshot of the active call. The zero value is the idle
// baseline: an inactive session always equals Session{}.
type Session struct {
	// ID identifies the call in logs; empty when idle.
	ID        string
	StartedAt time.Time

	Active       bool
	DialedNumber string
	CallerName   string
	CallerAvatar string

	Muted            bool
	OnHold           bool
	SpeakerOn        bool
	Recording        bool
	InCallDialerOpen bool
	// Minimized is only meaningful while Active.
	Minimized bool

	DurationSeconds int
}

// IsIdle reports whether the session equals the idle baseline
func (s Session) IsIdle() bool {
	return s == Session{}
}

// Ticking reports whether the duration timer should be running
func (s Session) Ticking() bool {
	return s.Active && !s.OnHold
}

// Duration returns the formatted elapsed time
func (s Session) Duration() string {
	return FormatDuration(s.DurationSeconds)
}

// CallerOption customises the caller identity at call initiation
type CallerOption func(*Session)

// WithCallerName sets the caller display name. Empty names keep the default.
func WithCallerName(name string) CallerOption {
	return func(s *Session) {
		if name != "" {
			s.CallerName = name
		}
	}
}

// WithCallerAvatar sets the caller avatar reference
func WithCallerAvatar(avatar string) CallerOption {
	return func(s *Session) {
		s.CallerAvatar = avatar
	}
}
