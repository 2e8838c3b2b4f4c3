package ui

import (
	"fmt"
	"image"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"focalpick/pkg/focal"
	"focalpick/pkg/loader"
)

// commitSink collects what the focal controller pushes out during one
// Update call: committed partial updates, and the scroll-suspend state the
// rest of the UI must honor while a drag is in flight.
type commitSink struct {
	updates       []focal.Update
	scrollEnabled bool
}

// CanvasModel is the picker surface: it renders the selected image in
// half-block cells and feeds mouse gestures to the focal controller. The
// canvas owns the controller but not the focal point; committed updates are
// drained by the root model via TakeCommits.
type CanvasModel struct {
	ctrl *focal.Controller
	sink *commitSink

	img    image.Image // decoded source
	scaled image.Image // fitted to the current cell grid

	width   int // content cells
	height  int
	originX int // screen position of the content's top-left cell
	originY int

	pressOrigin focal.Point // local position of the active drag's press

	theme Theme
}

// NewCanvasModel creates an empty canvas
func NewCanvasModel(theme Theme) CanvasModel {
	sink := &commitSink{scrollEnabled: true}
	ctrl := focal.NewController(
		func(u focal.Update) { sink.updates = append(sink.updates, u) },
		func(enabled bool) { sink.scrollEnabled = enabled },
	)
	return CanvasModel{
		ctrl:  ctrl,
		sink:  sink,
		theme: theme,
	}
}

// SetImage replaces the displayed image. A nil image clears the canvas.
func (m *CanvasModel) SetImage(img image.Image) {
	m.img = img
	m.rescale()
}

// SetLayout positions the canvas content area on screen and reports its
// size to the controller. Zero sizes are ignored by the controller until
// the first real layout arrives.
func (m *CanvasModel) SetLayout(x, y, width, height int) {
	m.originX = x
	m.originY = y
	m.width = width
	m.height = height
	m.ctrl.LayoutMeasured(float64(width), float64(height))
	m.rescale()
}

func (m *CanvasModel) rescale() {
	if m.img == nil || m.width <= 0 || m.height <= 0 {
		m.scaled = nil
		return
	}
	// Two image rows per terminal cell row.
	m.scaled = loader.Downscale(m.img, m.width, m.height*2)
}

// Update translates mouse messages into the controller's gesture stream.
// Press begins a drag, motion carries the cumulative displacement from the
// press position, release commits.
func (m CanvasModel) Update(msg tea.Msg) (CanvasModel, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}

	lx := float64(mouse.X - m.originX)
	ly := float64(mouse.Y - m.originY)

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !m.contains(lx, ly) {
			return m, nil
		}
		m.pressOrigin = focal.Point{X: lx, Y: ly}
		m.ctrl.DragStart(lx, ly)

	case tea.MouseActionMotion:
		if !m.ctrl.Dragging() {
			return m, nil
		}
		m.ctrl.DragMove(lx-m.pressOrigin.X, ly-m.pressOrigin.Y)

	case tea.MouseActionRelease:
		if !m.ctrl.Dragging() {
			return m, nil
		}
		// Commit wherever the pointer ended up, inside the canvas or not;
		// the owner decides whether to clamp.
		m.ctrl.DragEnd(lx, ly)
	}

	return m, nil
}

func (m CanvasModel) contains(lx, ly float64) bool {
	return lx >= 0 && ly >= 0 && lx < float64(m.width) && ly < float64(m.height)
}

// TakeCommits drains the partial updates committed since the last call.
func (m CanvasModel) TakeCommits() []focal.Update {
	updates := m.sink.updates
	m.sink.updates = nil
	return updates
}

// ScrollEnabled reports whether the host may scroll; false while a drag
// gesture is in progress.
func (m CanvasModel) ScrollEnabled() bool {
	return m.sink.scrollEnabled
}

// Controller exposes the focal controller for the slider inputs and tests.
func (m CanvasModel) Controller() *focal.Controller {
	return m.ctrl
}

// View renders the image grid with the focal cursor and tooltip overlaid.
// The authoritative focal point is passed in by the owner each render.
func (m CanvasModel) View(p focal.FocalPoint) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	cells := halfBlockCells(m.scaled, m.width, m.height, m.theme.Renderer)

	if pos, ok := m.ctrl.CursorPosition(p); ok {
		// Rendering clamps to the canvas even when the committed value is
		// out of bounds.
		cx := clampCell(int(pos.X), m.width)
		cy := clampCell(int(pos.Y), m.height)

		cursorStyle := m.theme.Renderer.NewStyle().Foreground(m.theme.Danger).Bold(true)
		cells[cy][cx] = cursorStyle.Render("✛")

		if m.ctrl.TooltipVisible() {
			m.overlayTooltip(cells, pos, cx, cy)
		}
	}

	rows := make([]string, len(cells))
	for i, row := range cells {
		rows[i] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

// overlayTooltip writes the percent hint for the cursor's live position
// into the row below the cursor, or above when the cursor sits on the last
// row.
func (m CanvasModel) overlayTooltip(cells [][]string, pos focal.Point, cx, cy int) {
	size, ok := m.ctrl.Size()
	if !ok {
		return
	}
	fx, _ := focal.PixelToFraction(pos.X, size.Width)
	fy, _ := focal.PixelToFraction(pos.Y, size.Height)
	text := fmt.Sprintf(" %d%%, %d%% ",
		focal.FractionToPercent(fx), focal.FractionToPercent(fy))

	row := cy + 1
	if row >= m.height {
		row = cy - 1
	}
	if row < 0 {
		return
	}

	start := cx
	if start+len(text) > m.width {
		start = m.width - len(text)
	}
	if start < 0 {
		start = 0
	}

	style := m.theme.Renderer.NewStyle().
		Foreground(m.theme.Text).
		Background(m.theme.Border)
	for i, r := range text {
		if start+i >= m.width {
			break
		}
		cells[row][start+i] = style.Render(string(r))
	}
}

func clampCell(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
