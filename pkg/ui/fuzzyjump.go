package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"focalpick/pkg/model"
)

// maxJumpResults bounds the result list in the jump overlay.
const maxJumpResults = 12

// JumpModel is the fuzzy file-jump overlay: type a fragment of a filename,
// pick a match, and the sidebar selection follows.
type JumpModel struct {
	items   []model.Media
	matches []fuzzy.Match

	searchInput   textinput.Model
	selectedIndex int

	confirmed bool
	cancelled bool

	width  int
	height int
	theme  Theme
}

// NewJumpModel creates a jump overlay over the given media set
func NewJumpModel(items []model.Media, theme Theme) JumpModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to file..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40

	m := JumpModel{
		items:       items,
		searchInput: ti,
		theme:       theme,
	}
	m.refilter()
	return m
}

// SetSize sets the overlay dimensions
func (m *JumpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *JumpModel) refilter() {
	query := m.searchInput.Value()
	names := make([]string, len(m.items))
	for i, item := range m.items {
		names[i] = item.Path
	}

	if query == "" {
		// No query: every item in order, zero-scored.
		m.matches = m.matches[:0]
		for i := range names {
			m.matches = append(m.matches, fuzzy.Match{Str: names[i], Index: i})
		}
	} else {
		m.matches = fuzzy.Find(query, names)
	}

	if m.selectedIndex >= len(m.matches) {
		m.selectedIndex = len(m.matches) - 1
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
}

// Update handles input
func (m JumpModel) Update(msg tea.Msg) (JumpModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.cancelled = true
		return m, nil
	case "enter":
		if len(m.matches) > 0 {
			m.confirmed = true
		}
		return m, nil
	case "up", "ctrl+p":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.selectedIndex < len(m.matches)-1 {
			m.selectedIndex++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.refilter()
	return m, cmd
}

// IsConfirmed returns true once a match has been chosen
func (m JumpModel) IsConfirmed() bool {
	return m.confirmed
}

// IsCancelled returns true if the user dismissed the overlay
func (m JumpModel) IsCancelled() bool {
	return m.cancelled
}

// SelectedPath returns the chosen media path, or "" when nothing matched.
func (m JumpModel) SelectedPath() string {
	if len(m.matches) == 0 || m.selectedIndex >= len(m.matches) {
		return ""
	}
	return m.matches[m.selectedIndex].Str
}

// View renders the overlay
func (m JumpModel) View() string {
	var b strings.Builder

	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	shown := m.matches
	if len(shown) > maxJumpResults {
		shown = shown[:maxJumpResults]
	}

	normal := m.theme.Renderer.NewStyle().Foreground(m.theme.Subtext)
	selected := m.theme.Renderer.NewStyle().Foreground(m.theme.Primary).Bold(true)
	for i, match := range shown {
		style := normal
		prefix := "  "
		if i == m.selectedIndex {
			style = selected
			prefix = "▸ "
		}
		b.WriteString(prefix + style.Render(Truncate(match.Str, 44)))
		b.WriteString("\n")
	}
	if len(m.matches) == 0 {
		b.WriteString(normal.Render("  no matches"))
		b.WriteString("\n")
	}

	boxStyle := m.theme.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	return boxStyle.Render(b.String())
}
