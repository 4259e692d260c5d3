package marker

import "plotmark/internal/plot"

// State is the visual state of a line.
type State int

const (
	StateIdle State = iota
	StateHovered
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateHovered:
		return "hovered"
	case StateDragging:
		return "dragging"
	}
	return "idle"
}

// Pens holds one pen per state.
type Pens [3]plot.Pen

// UniformPens uses p for every state.
func UniformPens(p plot.Pen) Pens { return Pens{p, p, p} }

// setState applies the transition rules: hover only from idle, dragging
// from anywhere, idle only outside a drag gesture. Effective transitions
// swap the pen and redraw the marker layer.
func (l *Line) setState(next State) {
	if l.state == next {
		return
	}
	switch {
	case next == StateHovered && l.state == StateIdle:
	case next == StateDragging:
	case next == StateIdle && !l.dragging:
	default:
		return
	}
	l.log.Debug().Str("from", l.state.String()).Str("to", next.String()).Msg("state")
	l.state = next
	l.base.SetPen(l.pens[next])
	l.surface.Replot(plot.LayerMarkers)
}

// State returns the current visual state.
func (l *Line) State() State { return l.state }

// SetPen sets the pen used in state. Setting the pen of the active state
// takes effect immediately.
func (l *Line) SetPen(state State, p plot.Pen) {
	l.pens[state] = p
	if state == l.state {
		l.base.SetPen(p)
	}
}

// Pen returns the pen configured for state.
func (l *Line) Pen(state State) plot.Pen { return l.pens[state] }

// ActivePen is the pen the line is currently drawn with.
func (l *Line) ActivePen() plot.Pen { return l.base.Pen() }
