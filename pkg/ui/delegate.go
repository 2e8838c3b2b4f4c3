package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"focalpick/pkg/focal"
)

// MediaDelegate renders one sidebar row per media item: name, format and
// the committed focal percentages.
type MediaDelegate struct {
	Theme Theme
}

func (d MediaDelegate) Height() int {
	return 1
}

func (d MediaDelegate) Spacing() int {
	return 0
}

func (d MediaDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d MediaDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(MediaItem)
	if !ok {
		return
	}

	badge := RenderFocalBadge(
		i.Media.HasFocal,
		focal.FractionToPercent(i.Media.Focal.X),
		focal.FractionToPercent(i.Media.Focal.Y),
		d.Theme,
	)

	// Fixed columns: badge(7) + gaps; the name takes the rest.
	nameWidth := m.Width() - 7 - 2*SpaceSM
	if nameWidth < 10 {
		nameWidth = 10
	}

	nameStyle := d.Theme.Renderer.NewStyle().Foreground(d.Theme.Subtext)
	marker := "  "
	if index == m.Index() {
		nameStyle = nameStyle.Foreground(d.Theme.Primary).Bold(true)
		marker = "▸ "
	}
	name := nameStyle.Render(Truncate(i.Media.Path, nameWidth))

	fmt.Fprintf(w, "%s%s %s", marker, name, badge)
}
