package marker

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"

	"plotmark/internal/plot"
)

// Span measures the distance between two lines on the same axis and
// labels it at their midpoint. It is the indicator of both lines.
type Span struct {
	a, b  *Line
	mid   float64
	delta float64
	style lipgloss.Style
}

func NewSpan(a, b *Line, style lipgloss.Style) (*Span, error) {
	if a == nil || b == nil || a == b {
		return nil, fmt.Errorf("span needs two distinct lines")
	}
	if a.Axis() != b.Axis() {
		return nil, fmt.Errorf("span lines %q and %q move on different axes", a.Name(), b.Name())
	}
	s := &Span{a: a, b: b, style: style}
	a.SetIndicator(s)
	b.SetIndicator(s)
	s.UpdatePosition()
	return s, nil
}

// UpdatePosition recomputes the midpoint and distance.
func (s *Span) UpdatePosition() {
	pa, pb := s.a.Position(), s.b.Position()
	s.mid = (pa + pb) / 2
	s.delta = math.Abs(pb - pa)
}

func (s *Span) Lines() (*Line, *Line) { return s.a, s.b }
func (s *Span) Mid() float64          { return s.mid }
func (s *Span) Delta() float64        { return s.delta }

func (s *Span) Label() string {
	return fmt.Sprintf("%s-%s Δ%.4g", s.a.Name(), s.b.Name(), s.delta)
}

func (s *Span) Visible() bool { return s.a.Visible() && s.b.Visible() }

func (s *Span) SelectTest(float64, float64) float64 { return -1 }
func (s *Span) PointerPress(plot.PointerEvent)      {}
func (s *Span) PointerMove(plot.PointerEvent)       {}
func (s *Span) PointerRelease(plot.PointerEvent)    {}

// Draw writes the label centred on the midpoint, along the top row for
// x lines and the left column for y lines. Range reconciliation moves
// lines without notifying, so the label is recomputed here too.
func (s *Span) Draw(c *plot.Canvas) {
	s.UpdatePosition()
	label := s.Label()
	axis := s.a.Axis()
	at := int(math.Round(c.Mapper.CoordToPixel(axis, s.mid)))
	if axis == plot.AxisX {
		c.Text(at-len([]rune(label))/2, c.OriginY, label, s.style)
		return
	}
	c.Text(c.OriginX, at, label, s.style)
}
