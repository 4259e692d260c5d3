package plot

import (
	"fmt"
	"math"
	"strings"
)

// DefaultEpsilon is the absolute tolerance used when comparing plot
// coordinates. Too tight and repeated rescales cause redraw churn, too
// loose and small moves get swallowed.
const DefaultEpsilon = 1e-9

// Equal reports whether a and b are within eps of each other.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Axis selects one of the two plot axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// ParseAxis accepts "x" or "y" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	}
	return AxisX, fmt.Errorf("unknown axis %q", s)
}

// Point is a position in plot coordinates.
type Point struct {
	X float64
	Y float64
}

// On returns the component of p along a.
func (p Point) On(a Axis) float64 {
	if a == AxisY {
		return p.Y
	}
	return p.X
}

// With returns a copy of p with the component along a replaced by v.
func (p Point) With(a Axis, v float64) Point {
	if a == AxisY {
		p.Y = v
	} else {
		p.X = v
	}
	return p
}

// Equal compares both components with tolerance eps.
func (p Point) Equal(q Point, eps float64) bool {
	return Equal(p.X, q.X, eps) && Equal(p.Y, q.Y, eps)
}

// Range is the visible span of one axis.
type Range struct {
	Lower float64
	Upper float64
}

// Size is the absolute width of the range.
func (r Range) Size() float64 { return math.Abs(r.Upper - r.Lower) }

func (r Range) Center() float64 { return (r.Lower + r.Upper) / 2 }

// Normalize swaps the bounds when they are reversed.
func (r Range) Normalize() Range {
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	return r
}

func (r Range) Contains(v float64) bool { return v >= r.Lower && v <= r.Upper }

// Clamp forces v into the range and reports whether it had to.
func (r Range) Clamp(v float64) (float64, bool) {
	if v < r.Lower {
		return r.Lower, true
	}
	if v > r.Upper {
		return r.Upper, true
	}
	return v, false
}

func (r Range) Equal(o Range, eps float64) bool {
	return Equal(r.Lower, o.Lower, eps) && Equal(r.Upper, o.Upper, eps)
}

func (r Range) String() string {
	return fmt.Sprintf("[%.4g, %.4g]", r.Lower, r.Upper)
}

// Interaction is a bit set of the surface's own pointer behaviours.
type Interaction uint

const (
	// InteractRangeDrag pans the view when dragging empty plot space.
	InteractRangeDrag Interaction = 1 << iota
	// InteractRangeZoom zooms around the pointer on wheel events.
	InteractRangeZoom
	// InteractSelectItems lets a press select the item under the pointer.
	InteractSelectItems

	InteractNone Interaction = 0
	InteractAll              = InteractRangeDrag | InteractRangeZoom | InteractSelectItems
)

func (i Interaction) Has(f Interaction) bool { return i&f == f }

// PointerAction is the kind of a pointer event.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerMove
	PointerRelease
	PointerWheelUp
	PointerWheelDown
)

// PointerEvent is a pointer position in pixel (terminal cell) space.
// Outside is set on moves delivered to a panel the pointer is not over.
type PointerEvent struct {
	Action  PointerAction
	X       float64
	Y       float64
	Outside bool
}

// Pos returns the pointer coordinate along a.
func (e PointerEvent) Pos(a Axis) float64 {
	if a == AxisY {
		return e.Y
	}
	return e.X
}

// Mapper converts between plot coordinates and pixels.
type Mapper interface {
	PixelToCoord(a Axis, px float64) float64
	CoordToPixel(a Axis, v float64) float64
}
