package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/constants"
)

// CallBridge carries call state changes into the bubbletea program.
//
// The controller reports changes from whichever goroutine caused them,
// including the update loop itself (key shortcuts) and the timer goroutine.
// Calling program.Send from inside the update loop would deadlock, so
// changes only mark the bridge dirty and a separate goroutine forwards them.
// A burst of changes collapses into one CallStateMsg; the model reads the
// latest snapshot when it handles it.
type CallBridge struct {
	refresh  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCallBridge creates a bridge. Call Run to start forwarding.
func NewCallBridge() *CallBridge {
	return &CallBridge{
		refresh: make(chan struct{}, constants.RefreshChannelBuffer),
		stop:    make(chan struct{}),
	}
}

// Notify marks the call state dirty. It never blocks and has the signature
// of a controller change hook.
func (b *CallBridge) Notify(call.Session) {
	select {
	case b.refresh <- struct{}{}:
	default:
		// A refresh is already pending
	}
}

// Run forwards refreshes to send until Stop is called
func (b *CallBridge) Run(send func(tea.Msg)) {
	for {
		select {
		case <-b.stop:
			return
		case <-b.refresh:
			send(CallStateMsg{})
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (b *CallBridge) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
}
