package series

import "errors"

var (
	// ErrNoPoints is returned when an input parses but holds no usable point.
	ErrNoPoints = errors.New("no points")
	// ErrUnsupported is returned for file types no loader understands.
	ErrUnsupported = errors.New("unsupported input")
)

// Bounds is the extent of a set of points.
type Bounds struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Union returns the smallest bounds covering both.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Series is one named x/y polyline.
type Series struct {
	Name   string
	Points [][2]float64
	Bounds Bounds
}

// Add appends a point and grows the bounds.
func (s *Series) Add(x, y float64) {
	s.Points = append(s.Points, [2]float64{x, y})
	if len(s.Points) == 1 {
		s.Bounds = Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < s.Bounds.MinX {
		s.Bounds.MinX = x
	}
	if y < s.Bounds.MinY {
		s.Bounds.MinY = y
	}
	if x > s.Bounds.MaxX {
		s.Bounds.MaxX = x
	}
	if y > s.Bounds.MaxY {
		s.Bounds.MaxY = y
	}
}

func (s *Series) Len() int { return len(s.Points) }

// Data is what a loader returns: one or more series and their joint bounds.
type Data struct {
	Source string
	Series []Series
	Bounds Bounds
}

// add keeps non-empty series only.
func (d *Data) add(s Series) {
	if s.Len() == 0 {
		return
	}
	if len(d.Series) == 0 {
		d.Bounds = s.Bounds
	} else {
		d.Bounds = d.Bounds.Union(s.Bounds)
	}
	d.Series = append(d.Series, s)
}

// Points counts the points of every series.
func (d Data) Points() int {
	n := 0
	for _, s := range d.Series {
		n += s.Len()
	}
	return n
}

func (d Data) empty() bool { return len(d.Series) == 0 }
