package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	defaultLogger *slog.Logger
	once          sync.Once

	// level is shared by every handler the package installs
	level = new(slog.LevelVar)

	// router holds the handler currently receiving records. Loggers derived
	// with With or WithGroup keep following it after a swap.
	router = &handlerRouter{}

	disabledMux sync.Mutex
	disabled    bool
	saved       slog.Handler
)

// Initialize sets up the structured logger
func Initialize() {
	once.Do(func() {
		// JSON on stderr so command output on stdout stays clean
		router.set(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     level,
			AddSource: false,
		}))
		defaultLogger = slog.New(&dynamicHandler{router: router})
	})
}

// Get returns the default structured logger
func Get() *slog.Logger {
	Initialize() // Always call Initialize, sync.Once ensures it only runs once
	return defaultLogger
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}

// SetLevel changes the minimum level for all output
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current minimum level
func Level() slog.Level {
	return level.Level()
}

// SetOutput sends JSON records to w
func SetOutput(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetHandler routes all records, including those of previously derived
// loggers, to h
func SetHandler(h slog.Handler) {
	Initialize()
	disabledMux.Lock()
	defer disabledMux.Unlock()
	if disabled {
		saved = h
		return
	}
	router.set(h)
}

// Disable discards all log output until Enable is called. Used while a
// full-screen UI owns the terminal.
func Disable() {
	Initialize()
	disabledMux.Lock()
	defer disabledMux.Unlock()
	if disabled {
		return
	}
	disabled = true
	saved = router.get()
	router.set(discardHandler{})
}

// Enable restores the output that was active before Disable
func Enable() {
	disabledMux.Lock()
	defer disabledMux.Unlock()
	if !disabled {
		return
	}
	disabled = false
	router.set(saved)
	saved = nil
}

// Info logs an info level message
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// InfoContext logs an info level message with context
func InfoContext(ctx context.Context, msg string, args ...any) {
	Get().InfoContext(ctx, msg, args...)
}

// Warn logs a warning level message
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// WarnContext logs a warning level message with context
func WarnContext(ctx context.Context, msg string, args ...any) {
	Get().WarnContext(ctx, msg, args...)
}

// Error logs an error level message
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// ErrorContext logs an error level message with context
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Get().ErrorContext(ctx, msg, args...)
}

// Debug logs a debug level message
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// DebugContext logs a debug level message with context
func DebugContext(ctx context.Context, msg string, args ...any) {
	Get().DebugContext(ctx, msg, args...)
}

// With returns a logger with the given attributes
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

// WithGroup returns a logger with the given group name
func WithGroup(name string) *slog.Logger {
	return Get().WithGroup(name)
}
