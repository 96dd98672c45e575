package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/directory"
	"github.com/endorses/lippyphone/internal/pkg/tui/responsive"
	"github.com/endorses/lippyphone/internal/pkg/tui/themes"
)

// ChatsView is the chats section: the conversation list, the selected
// thread and a compose field
type ChatsView struct {
	dir      *directory.Directory
	convs    []directory.Conversation
	cursor   int
	thread   viewport.Model
	compose  textinput.Model
	theme    themes.Theme
	width    int
	height   int
	now      func() time.Time
	selected string // conversation id, kept across reloads
}

// NewChatsView creates the chats section
func NewChatsView() ChatsView {
	ti := textinput.New()
	ti.Placeholder = "Type a message…"
	ti.CharLimit = 500
	ti.Prompt = "› "

	return ChatsView{
		thread:  viewport.New(40, 10),
		compose: ti,
		theme:   themes.Solarized(),
		width:   80,
		height:  24,
		now:     time.Now,
	}
}

// SetTheme updates the theme
func (c *ChatsView) SetTheme(theme themes.Theme) {
	c.theme = theme
	c.compose.PromptStyle = lipgloss.NewStyle().Foreground(theme.ChatsColor)
	c.compose.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.MutedColor)
	c.refreshThread()
}

// SetSize sets the content area size
func (c *ChatsView) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.layout()
	c.refreshThread()
}

// SetDirectory switches to a (re)loaded directory, keeping the selected
// conversation when it still exists
func (c *ChatsView) SetDirectory(d *directory.Directory) {
	c.dir = d
	c.reload()
}

func (c *ChatsView) reload() {
	if c.dir == nil {
		c.convs = nil
		return
	}
	c.convs = c.dir.Conversations()
	c.cursor = 0
	for i, conv := range c.convs {
		if conv.ID == c.selected {
			c.cursor = i
		}
	}
	if len(c.convs) > 0 {
		c.selected = c.convs[c.cursor].ID
	}
	c.refreshThread()
}

// Editing reports whether the compose field has keyboard focus
func (c *ChatsView) Editing() bool {
	return c.compose.Focused()
}

// Selected returns the highlighted conversation
func (c *ChatsView) Selected() (directory.Conversation, bool) {
	if c.cursor < 0 || c.cursor >= len(c.convs) {
		return directory.Conversation{}, false
	}
	return c.convs[c.cursor], true
}

// Unread returns the total number of unread messages
func (c *ChatsView) Unread() int {
	n := 0
	for _, conv := range c.convs {
		n += conv.Unread
	}
	return n
}

// HandleKey processes a key for the chats section
func (c *ChatsView) HandleKey(msg tea.KeyMsg) tea.Cmd {
	if c.compose.Focused() {
		switch msg.String() {
		case "esc":
			c.compose.Blur()
			c.layout()
			return nil
		case "enter":
			return c.send()
		}
		var cmd tea.Cmd
		c.compose, cmd = c.compose.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		c.move(-1)
	case "down", "j":
		c.move(1)
	case "pgup":
		c.thread.HalfPageUp()
	case "pgdown":
		c.thread.HalfPageDown()
	case "enter", "i":
		conv, ok := c.Selected()
		if !ok {
			return nil
		}
		c.dir.MarkRead(conv.ID)
		c.reload()
		c.layout()
		return c.compose.Focus()
	}
	return nil
}

func (c *ChatsView) move(delta int) {
	next := c.cursor + delta
	if next < 0 || next >= len(c.convs) {
		return
	}
	c.cursor = next
	c.selected = c.convs[next].ID
	c.refreshThread()
}

func (c *ChatsView) send() tea.Cmd {
	conv, ok := c.Selected()
	if !ok || strings.TrimSpace(c.compose.Value()) == "" {
		return nil
	}
	m, err := c.dir.AppendMessage(conv.ID, c.compose.Value(), c.now())
	if err != nil {
		return nil
	}
	c.compose.SetValue("")
	c.reload()
	id := conv.ID
	return func() tea.Msg { return MessageSentMsg{ConversationID: id, Message: m} }
}

// panes returns the list and thread widths; narrow terminals show one pane
func (c *ChatsView) panes() (listWidth, threadWidth int) {
	split, lw := responsive.SplitPane(c.width)
	if !split {
		if c.compose.Focused() {
			return 0, c.width
		}
		return c.width, 0
	}
	return lw, c.width - lw - 1
}

func (c *ChatsView) layout() {
	_, tw := c.panes()
	c.thread.Width = max(tw, 10)
	c.thread.Height = max(c.height-4, 3) // title + compose box
	c.compose.Width = max(tw-6, 10)
}

// refreshThread renders the selected conversation into the viewport and
// scrolls to the newest message
func (c *ChatsView) refreshThread() {
	conv, ok := c.Selected()
	if !ok {
		c.thread.SetContent("")
		return
	}

	width := c.thread.Width
	mine := lipgloss.NewStyle().
		Foreground(c.theme.OnAccent).
		Background(c.theme.ChatsColor).
		Padding(0, 1).
		MaxWidth(width * 3 / 4)
	theirs := lipgloss.NewStyle().
		Foreground(c.theme.Foreground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.theme.BorderColor).
		Padding(0, 1).
		MaxWidth(width * 3 / 4)
	stamp := lipgloss.NewStyle().Foreground(c.theme.MutedColor)

	var blocks []string
	for _, m := range conv.Messages {
		at := stamp.Render(m.At.Local().Format("15:04"))
		if m.FromMe {
			blocks = append(blocks, lipgloss.PlaceHorizontal(width, lipgloss.Right,
				lipgloss.JoinVertical(lipgloss.Right, mine.Render(m.Text), at)))
			continue
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, theirs.Render(m.Text), at))
	}
	c.thread.SetContent(strings.Join(blocks, "\n"))
	c.thread.GotoBottom()
}

// View renders the section
func (c *ChatsView) View() string {
	lw, tw := c.panes()
	var cols []string
	if lw > 0 {
		cols = append(cols, c.renderList(lw))
	}
	if tw > 0 {
		if len(cols) > 0 {
			sep := lipgloss.NewStyle().
				Foreground(c.theme.BorderColor).
				Render(strings.TrimSuffix(strings.Repeat("│\n", max(c.height, 1)), "\n"))
			cols = append(cols, sep)
		}
		cols = append(cols, c.renderThread(tw))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (c *ChatsView) renderList(width int) string {
	if len(c.convs) == 0 {
		return lipgloss.NewStyle().Foreground(c.theme.MutedColor).Width(width).Render("No conversations")
	}

	var rows []string
	for i, conv := range c.convs {
		dot := "  "
		if conv.Online {
			dot = lipgloss.NewStyle().Foreground(c.theme.OnlineColor).Render("● ")
		}
		name := conv.Name
		if conv.Unread > 0 {
			name += fmt.Sprintf(" (%d)", conv.Unread)
		}
		preview := ""
		if m, ok := conv.LastMessage(); ok {
			preview = m.Text
			if m.FromMe {
				preview = "You: " + preview
			}
		}
		if r := []rune(preview); len(r) > width-3 && width > 4 {
			preview = string(r[:width-4]) + "…"
		}

		nameStyle := lipgloss.NewStyle().Bold(conv.Unread > 0).Foreground(c.theme.Foreground)
		previewStyle := lipgloss.NewStyle().Foreground(c.theme.MutedColor)
		row := lipgloss.NewStyle().Width(width)
		if i == c.cursor {
			row = row.Background(c.theme.SelectionBg)
			nameStyle = nameStyle.Foreground(c.theme.SelectionFg).Background(c.theme.SelectionBg)
			previewStyle = previewStyle.Foreground(c.theme.SelectionFg).Background(c.theme.SelectionBg)
		}
		rows = append(rows, row.Render(dot+nameStyle.Render(name)+"\n  "+previewStyle.Render(preview)))
	}
	return strings.Join(rows, "\n")
}

func (c *ChatsView) renderThread(width int) string {
	conv, ok := c.Selected()
	if !ok {
		return ""
	}
	title := lipgloss.NewStyle().
		Foreground(c.theme.ChatsColor).
		Bold(true).
		Width(width).
		Render(conv.Name)

	border := c.theme.BorderColor
	if c.compose.Focused() {
		border = c.theme.FocusedBorderColor
	}
	compose := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(max(width-2, 10)).
		Render(c.compose.View())

	return lipgloss.JoinVertical(lipgloss.Left, title, c.thread.View(), compose)
}
