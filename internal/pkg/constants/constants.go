// Package constants provides shared constants used across lippyphone components.
package constants

import "time"

// Shutdown and graceful termination timeouts
const (
	// GracefulShutdownTimeout is the time to wait for background watchers to stop
	GracefulShutdownTimeout = 2 * time.Second
)

// TUI timing
const (
	// TUITickInterval drives toast expiry and other animation in the TUI
	TUITickInterval = 100 * time.Millisecond

	// ToastDurationShort is used for confirmations
	ToastDurationShort = 2 * time.Second

	// ToastDurationNormal is the default toast lifetime
	ToastDurationNormal = 3 * time.Second

	// ToastDurationLong is used for errors the user should read
	ToastDurationLong = 5 * time.Second
)

// Channel buffer sizes
const (
	// SignalChannelBuffer is the buffer size for OS signal channels
	SignalChannelBuffer = 1

	// RefreshChannelBuffer is the buffer between state changes and the TUI
	// program. A single slot coalesces bursts: pending refreshes are merged.
	RefreshChannelBuffer = 1
)

// Terminal limits
const (
	// MinTerminalWidth is the narrowest terminal the TUI lays out for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the TUI lays out for
	MinTerminalHeight = 12
)
