package components

import (
	"log/slog"
	"testing"
	"time"

	"github.com/endorses/lippyphone/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevConsole_UnavailableWithoutBuffer(t *testing.T) {
	d := NewDevConsoleWithBuffer(nil)
	d.Toggle()

	assert.False(t, d.Available())
	assert.False(t, d.IsVisible())
	assert.Empty(t, d.View())
}

func TestDevConsole_ShowsNewestEntries(t *testing.T) {
	buf := logger.NewConsoleBuffer(10)
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	buf.Add(logger.LogEntry{Time: at, Level: slog.LevelInfo, Message: "Call started", Attrs: "number=555"})
	buf.Add(logger.LogEntry{Time: at, Level: slog.LevelDebug, Message: "Call flag toggled", Attrs: "flag=muted"})

	d := NewDevConsoleWithBuffer(buf)
	d.SetSize(100, 8)
	d.Toggle()
	require.True(t, d.IsVisible())

	view := d.View()
	assert.Contains(t, view, "INF Call started number=555")
	assert.Contains(t, view, "DBG Call flag toggled flag=muted")
	assert.Contains(t, view, "Dev Console (2)")
}

func TestDevConsole_ScrollAndClear(t *testing.T) {
	buf := logger.NewConsoleBuffer(10)
	for i := 0; i < 3; i++ {
		buf.Add(logger.LogEntry{Time: time.Now(), Level: slog.LevelInfo, Message: "tick"})
	}
	d := NewDevConsoleWithBuffer(buf)
	d.SetSize(80, 6)
	d.Toggle()

	assert.True(t, d.HandleKey("pgup"))
	assert.Contains(t, d.View(), "[+1]")
	assert.True(t, d.HandleKey("end"))
	assert.Contains(t, d.View(), "[live]")

	assert.True(t, d.HandleKey("c"))
	assert.Equal(t, 0, buf.Count())
	assert.False(t, d.HandleKey("x"))
}

func TestFormatEntry_Truncates(t *testing.T) {
	e := logger.LogEntry{Time: time.Now(), Level: slog.LevelWarn, Message: "a very long message that will not fit"}
	line := formatEntry(e, 24)
	assert.Equal(t, 24, len([]rune(line)))
	assert.Contains(t, line, "WRN")
}
