package plot

import "strings"

// Stack lays panels out top to bottom and routes pointer events to them.
type Stack struct {
	panels []*Surface
}

func NewStack(panels ...*Surface) *Stack {
	return &Stack{panels: panels}
}

func (st *Stack) Add(s *Surface) { st.panels = append(st.panels, s) }

func (st *Stack) Panels() []*Surface { return st.panels }

func (st *Stack) Len() int { return len(st.panels) }

// Layout splits the area evenly between the panels; the last one takes
// the remainder.
func (st *Stack) Layout(x, y, w, h int) {
	n := len(st.panels)
	if n == 0 {
		return
	}
	each := h / n
	for i, p := range st.panels {
		ph := each
		if i == n-1 {
			ph = h - each*(n-1)
		}
		p.SetArea(x, y+i*each, w, ph)
	}
}

// At returns the panel under the pixel, or nil.
func (st *Stack) At(px, py float64) *Surface {
	for _, p := range st.panels {
		if p.Contains(px, py) {
			return p
		}
	}
	return nil
}

// HandlePointer routes presses and wheel events to the panel under the
// pointer. Moves and releases go to every panel so hover state on a panel
// the pointer just left is cleared.
func (st *Stack) HandlePointer(ev PointerEvent) {
	under := st.At(ev.X, ev.Y)
	switch ev.Action {
	case PointerRelease, PointerMove:
		for _, p := range st.panels {
			p.HandlePointer(ev)
		}
	default:
		if under != nil {
			under.HandlePointer(ev)
		}
	}
}

// Render joins the panels' rows.
func (st *Stack) Render() string {
	parts := make([]string, 0, len(st.panels))
	for _, p := range st.panels {
		parts = append(parts, p.Render())
	}
	return strings.Join(parts, "\n")
}
