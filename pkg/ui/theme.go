package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the renderer and semantic colors used across the UI.
// Holding the renderer here keeps styles bound to the program's output
// profile, which matters for tests that render to plain strings.
type Theme struct {
	Renderer *lipgloss.Renderer

	Name string

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Danger    lipgloss.AdaptiveColor
	Info      lipgloss.AdaptiveColor
}

// NewTheme returns the named theme. Unknown names fall back to dark.
func NewTheme(name string, renderer *lipgloss.Renderer) Theme {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	t := Theme{
		Renderer:  renderer,
		Name:      "dark",
		Primary:   lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#64748B", Dark: "#6272A4"},
		Text:      lipgloss.AdaptiveColor{Light: "#1E293B", Dark: "#F8F8F2"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#BFBFBF"},
		Border:    lipgloss.AdaptiveColor{Light: "#CBD5E1", Dark: "#44475A"},
		Success:   lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#50FA7B"},
		Warning:   lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FFB86C"},
		Danger:    lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#FF5555"},
		Info:      lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#8BE9FD"},
	}

	if name == "light" {
		t.Name = "light"
	}
	return t
}
