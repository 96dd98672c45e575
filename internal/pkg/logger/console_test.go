package logger

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleBuffer_Ring(t *testing.T) {
	buf := NewConsoleBuffer(3)
	for i, msg := range []string{"a", "b", "c", "d"} {
		buf.Add(LogEntry{Time: time.Unix(int64(i), 0), Message: msg})
	}

	assert.Equal(t, 3, buf.Count())

	var all []string
	for _, e := range buf.GetAll() {
		all = append(all, e.Message)
	}
	assert.Equal(t, []string{"b", "c", "d"}, all)

	var recent []string
	for _, e := range buf.GetRecent(2) {
		recent = append(recent, e.Message)
	}
	assert.Equal(t, []string{"d", "c"}, recent)

	buf.Clear()
	assert.Zero(t, buf.Count())
	assert.Nil(t, buf.GetRecent(5))
}

func TestConsoleHandler_FormatsAttrs(t *testing.T) {
	buf := NewConsoleBuffer(10)
	l := slog.New(NewConsoleHandler(buf, slog.LevelDebug)).
		With("component", "call").
		WithGroup("dtmf")

	l.Info("DTMF tone sent", "digit", "5")

	entries := buf.GetAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "DTMF tone sent", entries[0].Message)
	assert.Equal(t, slog.LevelInfo, entries[0].Level)
	assert.Equal(t, "component=call dtmf.digit=5", entries[0].Attrs)
}

func TestConsoleHandler_RespectsLevel(t *testing.T) {
	buf := NewConsoleBuffer(10)
	var lv slog.LevelVar
	lv.Set(slog.LevelWarn)
	l := slog.New(NewConsoleHandler(buf, &lv))

	l.Info("quiet")
	l.Warn("loud")

	assert.Equal(t, 1, buf.Count())
}

func TestFormatLevel(t *testing.T) {
	assert.Equal(t, "DBG", FormatLevel(slog.LevelDebug))
	assert.Equal(t, "INF", FormatLevel(slog.LevelInfo))
	assert.Equal(t, "WRN", FormatLevel(slog.LevelWarn))
	assert.Equal(t, "ERR", FormatLevel(slog.LevelError))
	assert.Equal(t, "???", FormatLevel(slog.Level(2)))
}
