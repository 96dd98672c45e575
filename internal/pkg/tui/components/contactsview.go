package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/tui/responsive"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// ContactsView is the contacts section: a searchable list and the detail
// pane of the highlighted contact with its call history
type ContactsView struct {
	dir           *directory.Directory
	shown         []directory.Contact
	cursor        int
	search        textinput.Model
	favoritesOnly bool
	theme         themes.Theme
	width         int
	height        int
	now           func() time.Time
}

// NewContactsView creates the contacts section
func NewContactsView() ContactsView {
	ti := textinput.New()
	ti.Placeholder = "Search contacts"
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return ContactsView{
		search: ti,
		theme:  themes.Solarized(),
		width:  80,
		height: 24,
		now:    time.Now,
	}
}

// SetTheme updates the theme
func (c *ContactsView) SetTheme(theme themes.Theme) {
	c.theme = theme
	c.search.PromptStyle = lipgloss.NewStyle().Foreground(theme.ContactsColor)
	c.search.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.MutedColor)
}

// SetSize sets the content area size
func (c *ContactsView) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetDirectory switches to a (re)loaded directory
func (c *ContactsView) SetDirectory(d *directory.Directory) {
	c.dir = d
	c.filter()
}

// filter recomputes the shown contacts, keeping the highlighted one when it
// is still shown
func (c *ContactsView) filter() {
	var keep string
	if sel, ok := c.Selected(); ok {
		keep = sel.ID
	}
	c.shown = nil
	c.cursor = 0
	if c.dir == nil {
		return
	}
	for _, ct := range c.dir.Search(c.search.Value()) {
		if c.favoritesOnly && !ct.Favorite {
			continue
		}
		if ct.ID == keep {
			c.cursor = len(c.shown)
		}
		c.shown = append(c.shown, ct)
	}
}

// Editing reports whether the search field has keyboard focus
func (c *ContactsView) Editing() bool {
	return c.search.Focused()
}

// Shown returns the contacts passing the current filter
func (c *ContactsView) Shown() []directory.Contact {
	return c.shown
}

// Selected returns the highlighted contact
func (c *ContactsView) Selected() (directory.Contact, bool) {
	if c.cursor < 0 || c.cursor >= len(c.shown) {
		return directory.Contact{}, false
	}
	return c.shown[c.cursor], true
}

// HandleKey processes a key for the contacts section
func (c *ContactsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if c.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			c.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		c.search, cmd = c.search.Update(msg)
		c.filter()
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		if c.cursor > 0 {
			c.cursor--
		}
	case "down", "j":
		if c.cursor < len(c.shown)-1 {
			c.cursor++
		}
	case "/":
		return c.search.Focus()
	case "esc":
		if c.search.Value() != "" {
			c.search.SetValue("")
			c.filter()
		}
	case "f":
		c.favoritesOnly = !c.favoritesOnly
		c.filter()
	case "enter":
		ct, ok := c.Selected()
		if !ok {
			return nil
		}
		req := DialRequestMsg{Number: ct.Phone, Name: ct.Name, Avatar: ct.Avatar}
		return func() tea.Msg { return req }
	case "p":
		ct, ok := c.Selected()
		if !ok {
			return nil
		}
		for _, rec := range ct.History {
			if rec.Recording != nil {
				play := PlayRecordingMsg{Contact: ct, Recording: *rec.Recording}
				return func() tea.Msg { return play }
			}
		}
		return func() tea.Msg { return PlayRecordingMsg{Contact: ct} }
	}
	return nil
}

// View renders the section
func (c *ContactsView) View() string {
	split, lw := responsive.SplitPane(c.width)
	list := c.renderList(lw)
	if !split {
		return list
	}
	sep := lipgloss.NewStyle().
		Foreground(c.theme.BorderColor).
		Render(strings.TrimSuffix(strings.Repeat("│\n", max(c.height, 1)), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, list, sep, " ", c.renderDetail(c.width-lw-2))
}

func (c *ContactsView) statusDot(s directory.Status) string {
	color := c.theme.OfflineColor
	switch s {
	case directory.StatusOnline:
		color = c.theme.OnlineColor
	case directory.StatusBusy:
		color = c.theme.BusyColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}

func (c *ContactsView) renderList(width int) string {
	c.search.Width = max(width-4, 8)
	lines := []string{c.search.View()}
	if c.favoritesOnly {
		lines = append(lines, lipgloss.NewStyle().Foreground(c.theme.ContactsColor).Render("★ favorites"))
	}
	lines = append(lines, "")

	if len(c.shown) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(c.theme.MutedColor).Render("No contacts found"))
	}
	for i, ct := range c.shown {
		name := ct.Name
		if ct.Favorite {
			name += " ★"
		}
		style := lipgloss.NewStyle().Width(width).Foreground(c.theme.Foreground)
		if i == c.cursor {
			style = style.Foreground(c.theme.SelectionFg).Background(c.theme.SelectionBg)
		}
		lines = append(lines, style.Render(c.statusDot(ct.Status)+" "+name))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (c *ContactsView) renderDetail(width int) string {
	ct, ok := c.Selected()
	if !ok {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(c.theme.MutedColor).Width(12)
	value := lipgloss.NewStyle().Foreground(c.theme.Foreground)

	avatar := lipgloss.NewStyle().
		Foreground(c.theme.OnAccent).
		Background(c.theme.ContactsColor).
		Bold(true).
		Padding(0, 1).
		Render(ct.Initials())
	heading := avatar + " " + lipgloss.NewStyle().Foreground(c.theme.HeaderFg).Bold(true).Render(ct.Name)

	lines := []string{heading}
	if ct.Title != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(c.theme.MutedColor).Render(ct.Title))
	}
	lines = append(lines, "")
	field := func(name, v string) {
		if v != "" {
			lines = append(lines, label.Render(name)+value.Render(v))
		}
	}
	field("Phone", ct.Phone)
	field("Email", ct.Email)
	field("Department", ct.Department)
	field("Status", c.statusDot(ct.Status)+" "+string(ct.Status))

	lines = append(lines, "", lipgloss.NewStyle().Foreground(c.theme.ContactsColor).Bold(true).Render("Call history"))
	if len(ct.History) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(c.theme.MutedColor).Render("No calls yet"))
	}
	for _, h := range ct.History {
		icon, color := callTypeIcon(h.Type, c.theme)
		line := lipgloss.NewStyle().Foreground(color).Render(icon) + " " + string(h.Type)
		if h.Duration != "" {
			line += " · " + h.Duration
		}
		line += " · " + relativeTime(c.now(), h.At)
		if h.Recording != nil {
			line += lipgloss.NewStyle().Foreground(c.theme.RecordingColor).Render("  ♪ recording")
		}
		lines = append(lines, line)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}
