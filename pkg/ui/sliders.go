package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"focalpick/pkg/focal"
)

// SliderCommit is a completed percent edit on one axis.
type SliderCommit struct {
	Axis    focal.Axis
	Percent int
}

// PercentInputsModel holds the two percent inputs below the canvas. The
// inputs are uncontrolled: they keep their own text while the user types,
// so a drag-driven focal change does not reach them through rendering.
// Sync resets them from the authoritative value whenever the controller's
// display epoch advances.
type PercentInputsModel struct {
	inputs    [2]textinput.Model
	focused   int // index into inputs, or -1 when neither is focused
	lastEpoch int

	commit *SliderCommit

	theme Theme
}

// NewPercentInputsModel creates the two axis inputs, unfocused.
func NewPercentInputsModel(theme Theme) PercentInputsModel {
	m := PercentInputsModel{
		focused:   -1,
		lastEpoch: -1, // force the first Sync to populate the inputs
		theme:     theme,
	}
	for i, label := range []string{"X% ", "Y% "} {
		ti := textinput.New()
		ti.Prompt = label
		ti.CharLimit = 3
		ti.Width = 4
		ti.Validate = func(s string) error {
			if s == "" {
				return nil
			}
			_, err := strconv.Atoi(s)
			return err
		}
		m.inputs[i] = ti
	}
	return m
}

// Sync resynchronizes the displayed text with the authoritative focal point
// when the display epoch has advanced since the last sync. Outside an epoch
// change the inputs keep whatever the user typed.
func (m *PercentInputsModel) Sync(p focal.FocalPoint, epoch int) {
	if epoch == m.lastEpoch {
		return
	}
	m.lastEpoch = epoch
	m.inputs[0].SetValue(strconv.Itoa(focal.FractionToPercent(p.X)))
	m.inputs[1].SetValue(strconv.Itoa(focal.FractionToPercent(p.Y)))
}

// ForceSync resets both inputs from the authoritative value regardless of
// the epoch, for selection changes and other external replacements.
func (m *PercentInputsModel) ForceSync(p focal.FocalPoint) {
	m.inputs[0].SetValue(strconv.Itoa(focal.FractionToPercent(p.X)))
	m.inputs[1].SetValue(strconv.Itoa(focal.FractionToPercent(p.Y)))
}

// Focused returns true if either input has keyboard focus.
func (m PercentInputsModel) Focused() bool {
	return m.focused >= 0
}

// FocusNext moves focus to the next input, returning false once focus has
// cycled past the last one (so the root can return focus to the canvas).
func (m *PercentInputsModel) FocusNext() bool {
	if m.focused >= 0 {
		m.inputs[m.focused].Blur()
	}
	m.focused++
	if m.focused > 1 {
		m.focused = -1
		return false
	}
	m.inputs[m.focused].Focus()
	return true
}

// Blur removes focus from both inputs.
func (m *PercentInputsModel) Blur() {
	if m.focused >= 0 {
		m.inputs[m.focused].Blur()
	}
	m.focused = -1
}

// Update handles keys for the focused input. Enter commits the typed
// percentage; the commit is drained by the root via TakeCommit.
func (m PercentInputsModel) Update(msg tea.Msg) (PercentInputsModel, tea.Cmd) {
	if m.focused < 0 {
		return m, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		if pct, err := strconv.Atoi(strings.TrimSpace(m.inputs[m.focused].Value())); err == nil {
			axis := focal.AxisX
			if m.focused == 1 {
				axis = focal.AxisY
			}
			m.commit = &SliderCommit{Axis: axis, Percent: pct}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

// TakeCommit drains the pending commit, if any.
func (m *PercentInputsModel) TakeCommit() *SliderCommit {
	c := m.commit
	m.commit = nil
	return c
}

// View renders both inputs with mini bars for the authoritative value.
func (m PercentInputsModel) View(p focal.FocalPoint) string {
	var b strings.Builder
	barWidth := 16

	b.WriteString(m.inputs[0].View())
	b.WriteString(" ")
	b.WriteString(RenderMiniBar(p.X, barWidth, m.theme))
	b.WriteString(strings.Repeat(" ", SpaceMD))
	b.WriteString(m.inputs[1].View())
	b.WriteString(" ")
	b.WriteString(RenderMiniBar(p.Y, barWidth, m.theme))

	return b.String()
}
