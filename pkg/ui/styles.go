package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// Sidebar layout
const (
	sidebarWidth  = 34
	statusBarRows = 1
	sliderRows    = 3
)

// PanelStyle is the default style for unfocused panels
var PanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#44475A"))

// FocusedPanelStyle is the style for focused panels
var FocusedPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#BD93F9"))

// RenderFocalBadge returns a styled badge for a media item's focal state:
// a percent pair when set, a placeholder otherwise.
func RenderFocalBadge(hasFocal bool, pctX, pctY int, t Theme) string {
	if !hasFocal {
		return t.Renderer.NewStyle().Foreground(t.Secondary).Render("  --,--")
	}
	return t.Renderer.NewStyle().
		Foreground(t.Success).
		Render(fmt.Sprintf("%3d,%3d", pctX, pctY))
}

// RenderSourceBadge returns a styled badge for how a focal point was set
func RenderSourceBadge(source string, t Theme) string {
	var color lipgloss.AdaptiveColor
	var label string

	switch source {
	case "drag":
		color, label = t.Info, "DRAG"
	case "slider":
		color, label = t.Warning, "EDIT"
	case "suggest":
		color, label = t.Primary, "AUTO"
	default:
		color, label = t.Secondary, "????"
	}

	return t.Renderer.NewStyle().Foreground(color).Render(label)
}

// RenderMiniBar renders a mini horizontal bar for a value between 0 and 1
func RenderMiniBar(value float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	var barColor lipgloss.AdaptiveColor
	if value >= 0.75 {
		barColor = t.Success
	} else if value >= 0.5 {
		barColor = t.Warning
	} else if value >= 0.25 {
		barColor = t.Info
	} else {
		barColor = t.Secondary
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(barColor).Render(bar)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}

// Truncate shortens s to fit in width terminal cells, appending an ellipsis
// when something was cut. Widths are measured per rune, so CJK filenames
// truncate correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
