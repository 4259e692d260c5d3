package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"plotmark/internal/plot"
)

// pointerEvent translates a terminal mouse event into surface terms.
// Buttons other than left and the wheel are ignored.
func pointerEvent(msg tea.MouseMsg) (plot.PointerEvent, bool) {
	ev := plot.PointerEvent{X: float64(msg.X), Y: float64(msg.Y)}
	switch msg.Action {
	case tea.MouseActionMotion:
		ev.Action = plot.PointerMove
	case tea.MouseActionRelease:
		ev.Action = plot.PointerRelease
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Action = plot.PointerPress
		case tea.MouseButtonWheelUp:
			ev.Action = plot.PointerWheelUp
		case tea.MouseButtonWheelDown:
			ev.Action = plot.PointerWheelDown
		default:
			return ev, false
		}
	default:
		return ev, false
	}
	return ev, true
}

// handleMouse feeds the chart and tracks the coordinate under the pointer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.chart == nil {
		return
	}
	ev, ok := pointerEvent(msg)
	if !ok {
		return
	}
	if m.pasteMode || m.showTable {
		// a drag started before the overlay opened must still end
		if ev.Action == plot.PointerRelease {
			m.chart.stack.HandlePointer(ev)
		}
		return
	}
	m.chart.stack.HandlePointer(ev)
	under := m.chart.stack.At(ev.X, ev.Y)
	if ev.Action == plot.PointerPress {
		m.chart.pressed(under)
	}
	if under == nil {
		m.hovering = false
		return
	}
	m.hovering = true
	m.hoverX = under.PixelToCoord(plot.AxisX, ev.X)
	m.hoverY = under.PixelToCoord(plot.AxisY, ev.Y)
}
