package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/endorses/lippyphone/internal/pkg/call"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialerView_AcceptsOnlyDialSymbols(t *testing.T) {
	d := NewDialerView()

	typeText(d.HandleKey, "+1a5*#")

	assert.Equal(t, "+15*#", d.Number())
	assert.Equal(t, '#', d.dialpad.Pressed())

	d.HandleKey(key(tea.KeyBackspace))
	assert.Equal(t, "+15*", d.Number())
}

func TestDialerView_Editing(t *testing.T) {
	d := NewDialerView()
	assert.True(t, d.Editing(), "idle dialer shows the number field")

	s := activeCall()
	d.SetSession(s)
	assert.False(t, d.Editing(), "full call view replaces the field")

	s.Minimized = true
	d.SetSession(s)
	assert.True(t, d.Editing())
}

func TestDialerView_EnterDialsNumber(t *testing.T) {
	d := NewDialerView()
	typeText(d.HandleKey, "5551234")

	msg := runCmd(d.HandleKey(key(tea.KeyEnter)))

	assert.Equal(t, DialRequestMsg{Number: "5551234"}, msg)
	assert.Empty(t, d.Number(), "input is cleared after dialing")
}

func TestDialerView_EnterDialsSelectedRecent(t *testing.T) {
	d := NewDialerView()
	d.SetRecents(sampleDirectory(t).Recents())

	assert.Nil(t, runCmd(d.HandleKey(key(tea.KeyEnter))), "nothing to dial")

	d.HandleKey(key(tea.KeyDown))
	d.HandleKey(key(tea.KeyDown))
	msg := runCmd(d.HandleKey(key(tea.KeyEnter)))

	req, ok := msg.(DialRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "+1 (555) 987-6543", req.Number)
	assert.Equal(t, "Mike Johnson", req.Name)
}

func TestDialerView_EscClears(t *testing.T) {
	d := NewDialerView()
	d.SetRecents(sampleDirectory(t).Recents())
	typeText(d.HandleKey, "12")
	d.HandleKey(key(tea.KeyDown))

	d.HandleKey(key(tea.KeyEsc))

	assert.Empty(t, d.Number())
	_, ok := d.SelectedRecent()
	assert.False(t, ok)
}

func TestDialerView_ShowsCallWhileMaximized(t *testing.T) {
	d := NewDialerView()
	d.SetSize(100, 30)
	d.SetSession(call.Session{ID: "c1", Active: true, CallerName: "Sarah Wilson", DialedNumber: "555", DurationSeconds: 65})

	assert.Nil(t, d.HandleKey(runes("7")))
	assert.Empty(t, d.Number(), "dial keys are ignored under the call view")

	view := d.View()
	assert.Contains(t, view, "Sarah Wilson")
	assert.Contains(t, view, "Connected · 01:05")
}

func TestDialerView_NoDialDuringMinimizedCall(t *testing.T) {
	d := NewDialerView()
	d.SetSession(call.Session{ID: "c1", Active: true, Minimized: true, CallerName: "Unknown"})
	typeText(d.HandleKey, "555")

	assert.Nil(t, runCmd(d.HandleKey(key(tea.KeyEnter))))
	assert.Contains(t, d.View(), "Call in progress")
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "just now"},
		{now.Add(-30 * time.Minute), "30m ago"},
		{now.Add(-5 * time.Hour), "5h ago"},
		{now.Add(-72 * time.Hour), "3d ago"},
		{time.Time{}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, relativeTime(now, tt.at))
	}
}

func TestCallTypeIcon(t *testing.T) {
	d := NewDialerView()
	icon, _ := callTypeIcon(directory.CallMissed, d.theme)
	assert.Equal(t, "✗", icon)
	icon, _ = callTypeIcon(directory.CallIncoming, d.theme)
	assert.Equal(t, "↙", icon)
}
