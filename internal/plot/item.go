package plot

import "math"

// Item is anything placed on a surface that draws itself on the marker
// layer and may take pointer input. Presses go to the item under the
// pointer only; moves and releases go to every item.
type Item interface {
	// SelectTest returns the pixel distance from (x, y) to the item, or a
	// negative value when the item cannot be hit.
	SelectTest(x, y float64) float64
	Visible() bool
	PointerPress(ev PointerEvent)
	PointerMove(ev PointerEvent)
	PointerRelease(ev PointerEvent)
	Draw(c *Canvas)
}

// Selectable items get told when a press selects or deselects them.
type Selectable interface {
	SetSelected(bool)
}

// Position is an anchor in plot coordinates.
type Position struct {
	coords Point
}

func NewPosition(p Point) *Position { return &Position{coords: p} }

func (p *Position) Coords() Point { return p.coords }

func (p *Position) SetCoords(c Point) { p.coords = c }

// StraightLine is an infinite line through two anchors. It knows how to
// hit-test and draw itself; behaviour on top of it is composed by owners.
type StraightLine struct {
	Point1 *Position
	Point2 *Position

	pen      Pen
	visible  bool
	selected bool
}

func NewStraightLine() *StraightLine {
	return &StraightLine{
		Point1:  NewPosition(Point{0, 0}),
		Point2:  NewPosition(Point{1, 1}),
		pen:     DefaultPen(),
		visible: true,
	}
}

func (l *StraightLine) Pen() Pen           { return l.pen }
func (l *StraightLine) SetPen(p Pen)       { l.pen = p }
func (l *StraightLine) Visible() bool      { return l.visible }
func (l *StraightLine) SetVisible(v bool)  { l.visible = v }
func (l *StraightLine) Selected() bool     { return l.selected }
func (l *StraightLine) SetSelected(s bool) { l.selected = s }

func pixelOf(m Mapper, p Point) Point {
	return Point{X: m.CoordToPixel(AxisX, p.X), Y: m.CoordToPixel(AxisY, p.Y)}
}

// SelectTest returns the perpendicular pixel distance from (x, y) to the line.
func (l *StraightLine) SelectTest(m Mapper, x, y float64) float64 {
	if !l.visible {
		return -1
	}
	a, b := pixelOf(m, l.Point1.Coords()), pixelOf(m, l.Point2.Coords())
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return math.Hypot(x-a.X, y-a.Y)
	}
	return math.Abs(dy*(x-a.X)-dx*(y-a.Y)) / n
}

// Draw strokes the line across the whole canvas with the current pen.
func (l *StraightLine) Draw(c *Canvas) {
	if !l.visible {
		return
	}
	a, b := pixelOf(c.Mapper, l.Point1.Coords()), pixelOf(c.Mapper, l.Point2.Coords())
	dx, dy := b.X-a.X, b.Y-a.Y
	st := l.pen.Style()
	switch {
	case math.Abs(dx) < 1e-9 && math.Abs(dy) < 1e-9:
		return
	case math.Abs(dx) < 1e-9:
		x := int(math.Round(a.X))
		for y := c.OriginY; y < c.OriginY+c.H; y++ {
			c.Set(x, y, l.pen.Glyph(true), st)
		}
	case math.Abs(dy) < 1e-9:
		y := int(math.Round(a.Y))
		for x := c.OriginX; x < c.OriginX+c.W; x++ {
			c.Set(x, y, l.pen.Glyph(false), st)
		}
	case math.Abs(dx) >= math.Abs(dy):
		for x := c.OriginX; x < c.OriginX+c.W; x++ {
			y := a.Y + (float64(x)-a.X)*dy/dx
			c.Set(x, int(math.Round(y)), '•', st)
		}
	default:
		for y := c.OriginY; y < c.OriginY+c.H; y++ {
			x := a.X + (float64(y)-a.Y)*dx/dy
			c.Set(int(math.Round(x)), y, '•', st)
		}
	}
}
