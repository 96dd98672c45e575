// Package help provides the embedded help pages of the TUI.
package help

import "embed"

//go:embed *.md
var Files embed.FS
