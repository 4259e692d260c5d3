package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lineItem puts a bare StraightLine on a surface.
type lineItem struct {
	*StraightLine
	m Mapper
}

func (l lineItem) SelectTest(x, y float64) float64 { return l.StraightLine.SelectTest(l.m, x, y) }
func (l lineItem) PointerPress(PointerEvent)       {}
func (l lineItem) PointerMove(PointerEvent)        {}
func (l lineItem) PointerRelease(PointerEvent)     {}

func newLineItem(s *Surface, p1, p2 Point) lineItem {
	sl := NewStraightLine()
	sl.Point1.SetCoords(p1)
	sl.Point2.SetCoords(p2)
	return lineItem{StraightLine: sl, m: s}
}

func TestStraightLine_DrawVertical(t *testing.T) {
	s := newTestSurface()
	s.AddItem(newLineItem(s, Point{5, 0}, Point{5, 1}))

	rows := s.Canvas().Runes()

	assert.Len(t, rows, 11)
	for _, row := range rows {
		assert.Equal(t, "     ┃     ", row)
	}
}

func TestStraightLine_DrawHorizontal(t *testing.T) {
	s := newTestSurface()
	l := newLineItem(s, Point{0, 2}, Point{1, 2})
	l.SetPen(Pen{Width: 1})
	s.AddItem(l)

	rows := s.Canvas().Runes()

	assert.Equal(t, strings.Repeat("─", 11), rows[8])
	assert.Equal(t, strings.Repeat(" ", 11), rows[7])
}

func TestStraightLine_HiddenNotDrawn(t *testing.T) {
	s := newTestSurface()
	l := newLineItem(s, Point{5, 0}, Point{5, 1})
	l.SetVisible(false)
	s.AddItem(l)

	for _, row := range s.Canvas().Runes() {
		assert.Equal(t, strings.Repeat(" ", 11), row)
	}
	assert.Negative(t, l.SelectTest(5, 5))
}

func TestStraightLine_SelectTest(t *testing.T) {
	s := newTestSurface()

	vertical := newLineItem(s, Point{5, 0}, Point{5, 1})
	assert.InDelta(t, 2, vertical.SelectTest(3, 9), 1e-9)

	diagonal := newLineItem(s, Point{0, 0}, Point{10, 10})
	assert.InDelta(t, 10/1.4142135623730951, diagonal.SelectTest(0, 0), 1e-9)

	degenerate := newLineItem(s, Point{5, 5}, Point{5, 5})
	assert.InDelta(t, 5, degenerate.SelectTest(5, 0), 1e-9)
}

func TestSurface_RendersGraph(t *testing.T) {
	s := newTestSurface()
	s.SetArea(0, 0, 11, 5)
	s.SetGraphs([]Graph{{Name: "flat", Points: []Point{{0, 5}, {10, 5}}, Pen: DefaultPen()}})

	rows := s.Canvas().Runes()

	assert.NotContains(t, rows[2], " ")
	for _, i := range []int{0, 1, 3, 4} {
		assert.Equal(t, strings.Repeat(" ", 11), rows[i])
	}
	assert.False(t, s.Dirty(LayerMain))
}

func TestSurface_GraphClippedToPanel(t *testing.T) {
	s := newTestSurface()
	s.SetArea(0, 0, 11, 5)
	s.SetGraphs([]Graph{{Name: "off", Points: []Point{{-20, 50}, {-10, 60}}}})

	for _, row := range s.Canvas().Runes() {
		assert.Equal(t, strings.Repeat(" ", 11), row)
	}
}

func TestClipSegment(t *testing.T) {
	ax, ay, bx, by, ok := clipSegment(1, 1, 5, 5, 10, 10)
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 1, 5, 5}, []float64{ax, ay, bx, by})

	ax, ay, bx, by, ok = clipSegment(-5, 4, 20, 4, 10, 10)
	assert.True(t, ok)
	assert.InDelta(t, 0, ax, 1e-9)
	assert.InDelta(t, 9, bx, 1e-9)
	assert.Equal(t, 4.0, ay)
	assert.Equal(t, 4.0, by)

	_, _, _, _, ok = clipSegment(-5, -5, -1, -1, 10, 10)
	assert.False(t, ok)

	_, _, _, _, ok = clipSegment(3, 20, 3, 30, 10, 10)
	assert.False(t, ok)
}

func TestCanvas_TextClipped(t *testing.T) {
	c := NewCanvas(nil, 10, 2, 4, 1)

	c.Text(8, 2, "abcdef", DefaultPen().Style())

	assert.Equal(t, "cdef", c.Runes()[0])
	assert.Equal(t, 'c', c.At(10, 2))
	assert.Zero(t, c.At(0, 0))
	assert.Len(t, c.Lines(), 1)
}
