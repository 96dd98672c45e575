// Package themes defines the color themes of the TUI.
package themes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// General UI colors
	Background         lipgloss.Color
	Foreground         lipgloss.Color
	MutedColor         lipgloss.Color // secondary text, timestamps
	HeaderBg           lipgloss.Color
	HeaderFg           lipgloss.Color
	StatusBarBg        lipgloss.Color
	StatusBarFg        lipgloss.Color
	SelectionBg        lipgloss.Color
	SelectionFg        lipgloss.Color
	BorderColor        lipgloss.Color
	FocusedBorderColor lipgloss.Color

	// Section colors, indexed like nav.Sections
	ChatsColor    lipgloss.Color
	DialerColor   lipgloss.Color
	ContactsColor lipgloss.Color
	SettingsColor lipgloss.Color

	// Call state colors
	ConnectedColor lipgloss.Color
	HoldColor      lipgloss.Color
	RecordingColor lipgloss.Color
	MissedColor    lipgloss.Color

	// Presence colors
	OnlineColor  lipgloss.Color
	BusyColor    lipgloss.Color
	OfflineColor lipgloss.Color

	// Emphasis colors
	ErrorColor   lipgloss.Color
	WarningColor lipgloss.Color
	SuccessColor lipgloss.Color
	InfoColor    lipgloss.Color
	AccentColor  lipgloss.Color
	OnAccent     lipgloss.Color // text drawn on accent backgrounds
}

// Theme names accepted by GetTheme and the tui.theme setting
const (
	NameDark  = "dark"
	NameLight = "light"
)

// Solarized color palette
var (
	solarizedBase03 = lipgloss.Color("#002b36") // background
	solarizedBase02 = lipgloss.Color("#073642") // background highlights
	solarizedBase01 = lipgloss.Color("#586e75") // comments / secondary content
	solarizedBase00 = lipgloss.Color("#657b83") // body text (light)
	solarizedBase0  = lipgloss.Color("#839496") // body text (dark)
	solarizedBase1  = lipgloss.Color("#93a1a1") // optional emphasized content
	solarizedBase2  = lipgloss.Color("#eee8d5") // background highlights (light)
	solarizedBase3  = lipgloss.Color("#fdf6e3") // background (light)

	solarizedYellow  = lipgloss.Color("#b58900")
	solarizedOrange  = lipgloss.Color("#cb4b16")
	solarizedRed     = lipgloss.Color("#dc322f")
	solarizedMagenta = lipgloss.Color("#d33682")
	solarizedViolet  = lipgloss.Color("#6c71c4")
	solarizedBlue    = lipgloss.Color("#268bd2")
	solarizedCyan    = lipgloss.Color("#2aa198")
	solarizedGreen   = lipgloss.Color("#859900")
)

// accents are shared by both variants; Solarized keeps accent hues constant
func accents(t Theme) Theme {
	t.ChatsColor = solarizedBlue
	t.DialerColor = solarizedGreen
	t.ContactsColor = solarizedYellow
	t.SettingsColor = solarizedViolet

	t.ConnectedColor = solarizedGreen
	t.HoldColor = solarizedYellow
	t.RecordingColor = solarizedRed
	t.MissedColor = solarizedRed

	t.OnlineColor = solarizedGreen
	t.BusyColor = solarizedOrange
	t.OfflineColor = solarizedBase01

	t.ErrorColor = solarizedRed
	t.WarningColor = solarizedOrange
	t.SuccessColor = solarizedGreen
	t.InfoColor = solarizedBlue
	t.AccentColor = solarizedCyan
	t.OnAccent = solarizedBase3
	return t
}

// Solarized returns the dark Solarized theme. The background is left to the
// terminal.
func Solarized() Theme {
	return accents(Theme{
		Name:               "Solarized Dark",
		Background:         lipgloss.Color("0"),
		Foreground:         solarizedBase0,
		MutedColor:         solarizedBase01,
		HeaderBg:           solarizedBase02,
		HeaderFg:           solarizedBase1,
		StatusBarBg:        solarizedBase02,
		StatusBarFg:        solarizedBase0,
		SelectionBg:        solarizedCyan,
		SelectionFg:        solarizedBase03,
		BorderColor:        solarizedBase01,
		FocusedBorderColor: solarizedBlue,
	})
}

// SolarizedLight returns the light Solarized theme
func SolarizedLight() Theme {
	return accents(Theme{
		Name:               "Solarized Light",
		Background:         solarizedBase3,
		Foreground:         solarizedBase00,
		MutedColor:         solarizedBase1,
		HeaderBg:           solarizedBase2,
		HeaderFg:           solarizedBase01,
		StatusBarBg:        solarizedBase2,
		StatusBarFg:        solarizedBase00,
		SelectionBg:        solarizedBlue,
		SelectionFg:        solarizedBase3,
		BorderColor:        solarizedBase1,
		FocusedBorderColor: solarizedBlue,
	})
}

// GetTheme returns a theme by name. Unknown names fall back to dark.
func GetTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameLight, "solarized-light":
		return SolarizedLight()
	default:
		return Solarized()
	}
}

// Key returns the setting value that selects t
func (t Theme) Key() string {
	if t.Name == SolarizedLight().Name {
		return NameLight
	}
	return NameDark
}

// Toggle returns the other variant
func (t Theme) Toggle() Theme {
	if t.Key() == NameLight {
		return Solarized()
	}
	return SolarizedLight()
}

// SectionColor returns the color of the section at index i
func (t Theme) SectionColor(i int) lipgloss.Color {
	colors := []lipgloss.Color{t.ChatsColor, t.DialerColor, t.ContactsColor, t.SettingsColor}
	if i >= 0 && i < len(colors) {
		return colors[i]
	}
	return t.BorderColor
}
