package call

import (
	"github.com/endorses/lippyphone/internal/pkg/keys"
)

// Shortcut keys while a call is active
const (
	KeyMute         = "m"
	KeyHold         = "h"
	KeySpeaker      = "s"
	KeyInCallDialer = "d"
	KeyRecording    = "r"
	KeyMinimize     = "q"
	KeyEscape       = "esc"
)

// IsDTMF reports whether r is a dial pad symbol (0-9, *, #)
func IsDTMF(r rune) bool {
	return (r >= '0' && r <= '9') || r == '*' || r == '#'
}

// HandleKey maps a key press to exactly one call action. It does nothing
// while idle or when focus is inside a text-entry field, and reports whether
// the key was consumed.
func (c *Controller) HandleKey(ev keys.Event) bool {
	if ev.InTextField {
		return false
	}
	snap := c.Snapshot()
	if !snap.Active {
		return false
	}

	switch key := ev.Normalized(); key {
	case KeyMute:
		c.ToggleMute()
	case KeyHold:
		c.ToggleHold()
	case KeySpeaker:
		c.ToggleSpeaker()
	case KeyInCallDialer:
		c.ToggleInCallDialer()
	case KeyRecording:
		c.ToggleRecording()
	case KeyMinimize:
		c.ToggleCallMinimized()
	case KeyEscape:
		if snap.InCallDialerOpen {
			c.ToggleInCallDialer()
		} else {
			c.EndCall()
		}
	default:
		runes := []rune(key)
		if len(runes) != 1 || !snap.InCallDialerOpen {
			return false
		}
		return c.SendDTMF(runes[0])
	}
	return true
}

// SendDTMF appends a dial pad symbol to the dialed number while the in-call
// dialer is open. No tone is generated; the digit is logged.
func (c *Controller) SendDTMF(digit rune) bool {
	if !IsDTMF(digit) {
		return false
	}
	snap, ok := c.update(func(s *Session) bool {
		if !s.Active || !s.InCallDialerOpen {
			return false
		}
		s.DialedNumber += string(digit)
		return true
	})
	if !ok {
		return false
	}
	c.log.Info("DTMF tone sent", "call_id", snap.ID, "digit", string(digit))
	c.notify(snap)
	return true
}
