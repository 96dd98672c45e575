package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/tui/help"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// HelpSection is one page of the help overlay
type HelpSection int

const (
	HelpKeybindings HelpSection = iota
	HelpCalls
	HelpConfig
)

var helpPages = []struct {
	file  string
	label string
}{
	{"keybindings.md", "Keys"},
	{"calls.md", "Calls"},
	{"config.md", "Config"},
}

// HelpView renders the embedded markdown help with glamour
type HelpView struct {
	viewport      viewport.Model
	width         int
	height        int
	theme         themes.Theme
	ready         bool
	active        HelpSection
	searchMode    bool
	searchQuery   string
	searchMatches []int
	currentMatch  int
	rendered      string
	contentLoaded bool
}

// HelpContentLoadedMsg carries a rendered help page
type HelpContentLoadedMsg struct {
	Section  HelpSection
	Rendered string
}

// NewHelpView creates a help view
func NewHelpView() HelpView {
	return HelpView{
		width:  80,
		height: 20,
		theme:  themes.Solarized(),
	}
}

// SetTheme updates the theme. The page is rendered again on next load.
func (h *HelpView) SetTheme(theme themes.Theme) {
	h.theme = theme
	h.contentLoaded = false
}

// SetSize sets the display size. The first line holds the page tabs.
func (h *HelpView) SetSize(width, height int) {
	h.width = width
	h.height = height
	if !h.ready {
		h.viewport = viewport.New(width, height-1)
		h.ready = true
		return
	}
	h.viewport.Width = width
	h.viewport.Height = height - 1
}

// NeedsContentLoad reports whether the active page must be (re)rendered
func (h *HelpView) NeedsContentLoad() bool {
	return h.ready && !h.contentLoaded
}

// LoadContentAsync renders the active page off the update loop
func (h *HelpView) LoadContentAsync() tea.Cmd {
	section, width, theme := h.active, h.width, h.theme
	return func() tea.Msg {
		return HelpContentLoadedMsg{Section: section, Rendered: RenderHelpPage(section, width, theme)}
	}
}

// RenderHelpPage renders one embedded page. Rendering errors fall back to
// the raw markdown.
func RenderHelpPage(section HelpSection, width int, theme themes.Theme) string {
	if int(section) < 0 || int(section) >= len(helpPages) {
		return ""
	}
	raw, err := help.Files.ReadFile(helpPages[section].file)
	if err != nil {
		return "Error loading help: " + err.Error()
	}
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(glamourStyle(theme)),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return string(raw)
	}
	out, err := renderer.Render(string(raw))
	if err != nil {
		return string(raw)
	}
	return out
}

// HandleContentLoaded applies a rendered page if it is still the active one
func (h *HelpView) HandleContentLoaded(msg HelpContentLoadedMsg) {
	if msg.Section != h.active {
		return
	}
	h.rendered = msg.Rendered
	h.viewport.SetContent(h.rendered)
	h.viewport.GotoTop()
	h.contentLoaded = true
	h.performSearch()
}

// ActiveSection returns the shown page
func (h *HelpView) ActiveSection() HelpSection {
	return h.active
}

// SetSection switches pages and returns the load command
func (h *HelpView) SetSection(section HelpSection) tea.Cmd {
	if section == h.active || int(section) < 0 || int(section) >= len(helpPages) {
		return nil
	}
	h.active = section
	h.clearSearch()
	h.contentLoaded = false
	if h.ready {
		return h.LoadContentAsync()
	}
	return nil
}

// IsSearchMode reports whether the search prompt is capturing keys
func (h *HelpView) IsSearchMode() bool {
	return h.searchMode
}

// MatchInfo returns the current match (1-based) and the number of matches
func (h *HelpView) MatchInfo() (int, int) {
	if len(h.searchMatches) == 0 {
		return 0, 0
	}
	return h.currentMatch + 1, len(h.searchMatches)
}

// HandleKey processes a key while the help overlay is shown and returns a
// command when a page needs loading
func (h *HelpView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if h.searchMode {
		switch key {
		case "enter":
			h.searchMode = false
		case "esc":
			h.clearSearch()
		case "backspace":
			if r := []rune(h.searchQuery); len(r) > 0 {
				h.searchQuery = string(r[:len(r)-1])
				h.performSearch()
			}
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				h.searchQuery += string(msg.Runes)
				h.performSearch()
			}
		}
		return nil
	}

	switch key {
	case "1", "2", "3":
		return h.SetSection(HelpSection(key[0] - '1'))
	case "/":
		h.searchMode = true
		h.searchQuery = ""
		h.searchMatches = nil
		h.currentMatch = 0
	case "n":
		h.step(1)
	case "N":
		h.step(-1)
	default:
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (h *HelpView) step(delta int) {
	if len(h.searchMatches) == 0 {
		return
	}
	n := len(h.searchMatches)
	h.currentMatch = (h.currentMatch + delta + n) % n
	h.scrollToMatch()
}

func (h *HelpView) clearSearch() {
	h.searchMode = false
	h.searchQuery = ""
	h.searchMatches = nil
	h.currentMatch = 0
}

func (h *HelpView) performSearch() {
	h.searchMatches = nil
	h.currentMatch = 0
	if h.searchQuery == "" {
		return
	}
	query := strings.ToLower(h.searchQuery)
	for i, line := range strings.Split(h.rendered, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			h.searchMatches = append(h.searchMatches, i)
		}
	}
	h.scrollToMatch()
}

func (h *HelpView) scrollToMatch() {
	if len(h.searchMatches) == 0 {
		return
	}
	target := h.searchMatches[h.currentMatch] - h.viewport.Height/2
	if target < 0 {
		target = 0
	}
	h.viewport.SetYOffset(target)
}

// View renders the page tabs and the viewport
func (h *HelpView) View() string {
	if !h.ready {
		return ""
	}

	var b strings.Builder
	b.WriteString(h.renderTabs())
	b.WriteString("\n")
	if !h.contentLoaded {
		b.WriteString(lipgloss.NewStyle().
			Foreground(h.theme.MutedColor).
			Italic(true).
			Width(h.width).
			Height(h.viewport.Height).
			Render("Loading help..."))
		return b.String()
	}
	b.WriteString(h.viewport.View())
	return b.String()
}

// Footer returns the key hints of the overlay
func (h *HelpView) Footer() string {
	if h.searchMode {
		return "Search: " + h.searchQuery + "▏  Enter: keep │ Esc: clear"
	}
	hint := "1-3: page │ /: search │ ↑/↓: scroll │ Esc: close"
	if cur, total := h.MatchInfo(); total > 0 {
		hint = "n/N: match " + strconv.Itoa(cur) + "/" + strconv.Itoa(total) + " │ " + hint
	}
	return hint
}

func (h *HelpView) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.OnAccent).
		Background(h.theme.AccentColor).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(h.theme.StatusBarFg).
		Padding(0, 2)
	keyStyle := lipgloss.NewStyle().Foreground(h.theme.WarningColor).Bold(true)

	tabs := make([]string, len(helpPages))
	for i, page := range helpPages {
		style := inactive
		if HelpSection(i) == h.active {
			style = active
		}
		tabs[i] = keyStyle.Render(strconv.Itoa(i+1)) + " " + style.Render(page.label)
	}
	return strings.Join(tabs, "  ")
}

// glamourStyle maps the theme onto glamour. The document background is left
// to the terminal.
func glamourStyle(theme themes.Theme) ansi.StyleConfig {
	str := func(c lipgloss.Color) *string { s := string(c); return &s }
	yes := func() *bool { b := true; return &b }
	zero := uint(0)
	indent := uint(2)

	heading := func(c lipgloss.Color, prefix string) ansi.StyleBlock {
		return ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: str(c), Bold: yes(), Prefix: prefix}}
	}

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: str(theme.Foreground)},
			Margin:         &zero,
		},
		Heading: heading(theme.InfoColor, ""),
		H1:      heading(theme.InfoColor, "# "),
		H2:      heading(theme.InfoColor, "## "),
		H3:      heading(theme.AccentColor, "### "),
		H4:      heading(theme.AccentColor, "#### "),
		Text:    ansi.StylePrimitive{Color: str(theme.Foreground)},
		Emph:    ansi.StylePrimitive{Color: str(theme.HeaderFg), Italic: yes()},
		Strong:  ansi.StylePrimitive{Color: str(theme.WarningColor), Bold: yes()},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: str(theme.MutedColor), Italic: yes()},
			Indent:         &indent,
		},
		Code: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: str(theme.HoldColor)}},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: str(theme.HoldColor)},
				Margin:         &indent,
			},
		},
		Link:     ansi.StylePrimitive{Color: str(theme.InfoColor), Underline: yes()},
		LinkText: ansi.StylePrimitive{Color: str(theme.InfoColor)},
		List: ansi.StyleList{
			StyleBlock:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: str(theme.Foreground)}},
			LevelIndent: 2,
		},
		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{Color: str(theme.SuccessColor), BlockSuffix: ". "},
		HorizontalRule: ansi.StylePrimitive{
			Color:  str(theme.MutedColor),
			Format: "\n────────\n",
		},
		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: str(theme.Foreground)}},
			CenterSeparator: strPtr("┼"),
			ColumnSeparator: strPtr("│"),
			RowSeparator:    strPtr("─"),
		},
	}
}

func strPtr(s string) *string { return &s }
