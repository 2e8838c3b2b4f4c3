package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# focalpick

Drag on the image with the mouse to place the focal point. Release commits
the point and updates the percent inputs.

## Keys

| Key | Action |
|-----|--------|
| tab | cycle focus: canvas → X% → Y% |
| enter | commit the focused percent input |
| j / k, ↓ / ↑ | select media file |
| / | fuzzy jump to file |
| a | auto-suggest a focal point |
| u | undo last committed change |
| c | copy focal filter string to clipboard |
| e | export crop previews |
| r | reload media directory |
| ? | toggle this help |
| q | save and quit |
`

// HelpOverlayModel shows the keybinding reference, rendered from markdown.
type HelpOverlayModel struct {
	visible  bool
	rendered string
	width    int
	height   int
	theme    Theme
}

// NewHelpOverlayModel creates a new help overlay
func NewHelpOverlayModel(theme Theme) HelpOverlayModel {
	style := "dark"
	if theme.Name == "light" {
		style = "light"
	}

	rendered := helpMarkdown
	if r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(64),
	); err == nil {
		if out, err := r.Render(helpMarkdown); err == nil {
			rendered = out
		}
	}

	return HelpOverlayModel{
		rendered: rendered,
		theme:    theme,
	}
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 2)

	return boxStyle.Render(strings.TrimRight(m.rendered, "\n"))
}
