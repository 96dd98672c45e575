package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/endorses/lippyphone/internal/pkg/constants"
	"github.com/endorses/lippyphone/internal/pkg/nav"
	"github.com/endorses/lippyphone/internal/pkg/tui/components"
	"github.com/endorses/lippyphone/internal/pkg/tui/store"
)

// View implements tea.Model
func (m Model) View() string {
	ui := m.uiState
	if ui.Quitting {
		return ""
	}
	if ui.Width < constants.MinTerminalWidth || ui.Height < constants.MinTerminalHeight {
		return m.renderTooSmall()
	}

	if m.router.OverlayOpen() {
		return components.RenderModal(components.ModalRenderOptions{
			Title:      "☎ Dial",
			Content:    ui.GlobalDialer.View(),
			Footer:     "enter call · esc close",
			Width:      ui.Width,
			Height:     ui.Height,
			Theme:      ui.Theme,
			ModalWidth: 40,
		})
	}
	if ui.ShowHelp {
		return components.RenderModal(components.ModalRenderOptions{
			Title:   "Help",
			Content: ui.HelpView.View(),
			Footer:  ui.HelpView.Footer(),
			Width:   ui.Width,
			Height:  ui.Height,
			Theme:   ui.Theme,
		})
	}

	parts := []string{
		ui.Header.View(),
		ui.Tabs.View(),
		m.renderSection(),
	}
	if ui.CallWidget.Visible() {
		parts = append(parts, ui.CallWidget.View())
	}
	if ui.DevConsole.IsVisible() {
		parts = append(parts, ui.DevConsole.View())
	}
	parts = append(parts, m.renderBottom(), ui.Footer.View())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSection renders the active section clipped to the content area
func (m Model) renderSection() string {
	ui := m.uiState
	var content string
	switch m.router.Active() {
	case nav.SectionChats:
		content = ui.ChatsView.View()
	case nav.SectionDialer:
		content = ui.DialerView.View()
	case nav.SectionContacts:
		content = ui.ContactsView.View()
	case nav.SectionSettings:
		content = ui.SettingsView.View()
	}

	return lipgloss.NewStyle().
		Width(ui.Width).
		Height(ui.ContentHeight()).
		MaxHeight(ui.ContentHeight()).
		Render(content)
}

// renderBottom shows the toast, or keeps its rows blank so the layout does
// not jump when one appears
func (m Model) renderBottom() string {
	ui := m.uiState
	content := ""
	if ui.Toast.IsActive() {
		content = ui.Toast.View()
	}
	return lipgloss.NewStyle().
		Width(ui.Width).
		Height(store.BottomHeight).
		MaxHeight(store.BottomHeight).
		Align(lipgloss.Center).
		Render(content)
}

func (m Model) renderTooSmall() string {
	ui := m.uiState
	msg := fmt.Sprintf("Terminal too small\n%dx%d (need %dx%d)",
		ui.Width, ui.Height, constants.MinTerminalWidth, constants.MinTerminalHeight)
	if ui.Width <= 0 || ui.Height <= 0 {
		return strings.Split(msg, "\n")[0]
	}
	return lipgloss.Place(ui.Width, ui.Height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(ui.Theme.WarningColor).Render(msg))
}
