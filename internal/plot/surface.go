package plot

import (
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// Layer names accepted by Replot.
const (
	LayerMain    = "main"
	LayerMarkers = "markers"
)

// selectTolerance is how far (in cells) a press may land from an item and
// still hit it.
const selectTolerance = 1.0

// Zoom factors applied per wheel notch.
const (
	wheelZoomIn  = 0.8
	wheelZoomOut = 1.25
)

// Graph is a polyline of data drawn on the main layer.
type Graph struct {
	Name   string
	Points []Point
	Pen    Pen
}

type rangeListener struct {
	id int
	fn func(Range)
}

type panState struct {
	lastX, lastY float64
}

// Surface is one chart panel: two axes, the data graphs and the items
// living on its marker layer. It is driven from a single goroutine.
type Surface struct {
	x, y, w, h int

	ranges    [2]Range
	listeners [2][]rangeListener
	nextID    int

	interactions Interaction
	items        []Item
	grabbed      Item
	pan          *panState

	graphs []Graph

	replots map[string]int
	dirty   map[string]bool
	cache   *brailleCache

	eps float64
	log zerolog.Logger
}

type brailleCache struct {
	w, h   int
	layers []*brailleBuf
}

// Option configures a Surface.
type Option func(*Surface)

func WithEpsilon(eps float64) Option {
	return func(s *Surface) { s.eps = eps }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Surface) { s.log = l }
}

func WithInteractions(i Interaction) Option {
	return func(s *Surface) { s.interactions = i }
}

// WithRanges sets the initial visible ranges without notifying anyone.
func WithRanges(x, y Range) Option {
	return func(s *Surface) {
		s.ranges[AxisX] = x.Normalize()
		s.ranges[AxisY] = y.Normalize()
	}
}

func NewSurface(opts ...Option) *Surface {
	s := &Surface{
		w:            80,
		h:            24,
		ranges:       [2]Range{{0, 1}, {0, 1}},
		interactions: InteractAll,
		replots:      map[string]int{},
		dirty:        map[string]bool{LayerMain: true, LayerMarkers: true},
		eps:          DefaultEpsilon,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetArea places the panel at terminal cell (x, y) with size w x h.
func (s *Surface) SetArea(x, y, w, h int) {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	if s.x == x && s.y == y && s.w == w && s.h == h {
		return
	}
	s.x, s.y, s.w, s.h = x, y, w, h
	s.markAllDirty()
}

func (s *Surface) Area() (x, y, w, h int) { return s.x, s.y, s.w, s.h }

// Contains reports whether the pixel lies inside the panel.
func (s *Surface) Contains(px, py float64) bool {
	return px >= float64(s.x) && py >= float64(s.y) &&
		px < float64(s.x+s.w) && py < float64(s.y+s.h)
}

func (s *Surface) Epsilon() float64 { return s.eps }

func (s *Surface) Range(a Axis) Range { return s.ranges[a] }

// SetRange changes the visible range of a and tells every subscriber.
// Ranges equal within epsilon are ignored.
func (s *Surface) SetRange(a Axis, r Range) {
	r = r.Normalize()
	if r.Size() == 0 || s.ranges[a].Equal(r, s.eps) {
		return
	}
	s.ranges[a] = r
	s.markAllDirty()
	s.log.Debug().Str("axis", a.String()).Str("range", r.String()).Msg("range changed")
	for _, l := range slices.Clone(s.listeners[a]) {
		l.fn(r)
	}
}

// OnRangeChanged subscribes fn to range changes of a. The returned func
// cancels the subscription.
func (s *Surface) OnRangeChanged(a Axis, fn func(Range)) func() {
	s.nextID++
	id := s.nextID
	s.listeners[a] = append(s.listeners[a], rangeListener{id: id, fn: fn})
	return func() {
		s.listeners[a] = slices.DeleteFunc(s.listeners[a], func(l rangeListener) bool { return l.id == id })
	}
}

func (s *Surface) span(a Axis) (origin, length int) {
	if a == AxisY {
		return s.y, s.h
	}
	return s.x, s.w
}

// CoordToPixel maps a plot coordinate to a (fractional) terminal cell.
// The y axis grows upwards.
func (s *Surface) CoordToPixel(a Axis, v float64) float64 {
	r := s.ranges[a]
	origin, length := s.span(a)
	if r.Size() == 0 || length <= 1 {
		return float64(origin)
	}
	n := (v - r.Lower) / (r.Upper - r.Lower)
	if a == AxisY {
		n = 1 - n
	}
	return float64(origin) + n*float64(length-1)
}

// PixelToCoord is the inverse of CoordToPixel.
func (s *Surface) PixelToCoord(a Axis, px float64) float64 {
	r := s.ranges[a]
	origin, length := s.span(a)
	if length <= 1 {
		return r.Lower
	}
	n := (px - float64(origin)) / float64(length-1)
	if a == AxisY {
		n = 1 - n
	}
	return r.Lower + n*(r.Upper-r.Lower)
}

func (s *Surface) Interactions() Interaction { return s.interactions }

func (s *Surface) SetInteractions(i Interaction) {
	if s.interactions == i {
		return
	}
	s.log.Debug().Uint("from", uint(s.interactions)).Uint("to", uint(i)).Msg("interactions changed")
	s.interactions = i
}

// Replot requests a redraw of one layer.
func (s *Surface) Replot(layer string) {
	s.replots[layer]++
	s.dirty[layer] = true
	s.log.Trace().Str("layer", layer).Msg("replot")
}

// ReplotCount returns how many times layer was requested to redraw.
func (s *Surface) ReplotCount(layer string) int { return s.replots[layer] }

// Dirty reports whether a layer has pending redraw requests.
func (s *Surface) Dirty(layer string) bool { return s.dirty[layer] }

func (s *Surface) markAllDirty() {
	s.dirty[LayerMain] = true
	s.dirty[LayerMarkers] = true
}

// AddItem places an item on the marker layer. Adding twice is a no-op.
func (s *Surface) AddItem(it Item) {
	if it == nil || slices.Contains(s.items, it) {
		return
	}
	s.items = append(s.items, it)
	s.Replot(LayerMarkers)
}

func (s *Surface) RemoveItem(it Item) {
	if s.grabbed == it {
		s.grabbed = nil
	}
	n := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(o Item) bool { return o == it })
	if len(s.items) != n {
		s.Replot(LayerMarkers)
	}
}

func (s *Surface) Items() []Item { return slices.Clone(s.items) }

// SetGraphs replaces the data drawn on the main layer.
func (s *Surface) SetGraphs(gs []Graph) {
	s.graphs = gs
	s.cache = nil
	s.Replot(LayerMain)
}

func (s *Surface) Graphs() []Graph { return s.graphs }

// Rescale fits both axes to the data with a small margin.
func (s *Surface) Rescale() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, g := range s.graphs {
		for _, p := range g.Points {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return
	}
	s.SetRange(AxisX, padded(minX, maxX))
	s.SetRange(AxisY, padded(minY, maxY))
}

func padded(lo, hi float64) Range {
	if hi-lo == 0 {
		return Range{lo - 1, hi + 1}
	}
	m := (hi - lo) * 0.05
	return Range{lo - m, hi + m}
}

// Pan shifts the range of a by fraction of its size.
func (s *Surface) Pan(a Axis, fraction float64) {
	r := s.ranges[a]
	d := r.Size() * fraction
	s.SetRange(a, Range{r.Lower + d, r.Upper + d})
}

// Zoom scales both ranges around center. factor < 1 zooms in.
func (s *Surface) Zoom(factor float64, center Point) {
	for _, a := range []Axis{AxisX, AxisY} {
		r := s.ranges[a]
		c := center.On(a)
		s.SetRange(a, Range{c + (r.Lower-c)*factor, c + (r.Upper-c)*factor})
	}
}

// Center is the middle of the visible area in plot coordinates.
func (s *Surface) Center() Point {
	return Point{X: s.ranges[AxisX].Center(), Y: s.ranges[AxisY].Center()}
}

// Grabbing reports whether a press on this panel is still being held.
func (s *Surface) Grabbing() bool { return s.grabbed != nil || s.pan != nil }

// HandlePointer dispatches a pointer event. A press goes to the nearest
// visible item within selectTolerance, or starts a pan when
// InteractRangeDrag is enabled. Moves and releases reach every item.
func (s *Surface) HandlePointer(ev PointerEvent) {
	switch ev.Action {
	case PointerPress:
		s.press(ev)
	case PointerMove:
		ev.Outside = !s.Contains(ev.X, ev.Y)
		if s.pan != nil {
			s.dragPan(ev)
		}
		for _, it := range slices.Clone(s.items) {
			it.PointerMove(ev)
		}
	case PointerRelease:
		s.pan = nil
		s.grabbed = nil
		for _, it := range slices.Clone(s.items) {
			it.PointerRelease(ev)
		}
	case PointerWheelUp, PointerWheelDown:
		if !s.interactions.Has(InteractRangeZoom) || !s.Contains(ev.X, ev.Y) {
			return
		}
		f := wheelZoomIn
		if ev.Action == PointerWheelDown {
			f = wheelZoomOut
		}
		s.Zoom(f, Point{X: s.PixelToCoord(AxisX, ev.X), Y: s.PixelToCoord(AxisY, ev.Y)})
	}
}

func (s *Surface) press(ev PointerEvent) {
	if !s.Contains(ev.X, ev.Y) {
		return
	}
	var hit Item
	best := math.Inf(1)
	for _, it := range s.items {
		if !it.Visible() {
			continue
		}
		d := it.SelectTest(ev.X, ev.Y)
		if d >= 0 && d <= selectTolerance && d < best {
			hit, best = it, d
		}
	}
	if s.interactions.Has(InteractSelectItems) {
		for _, it := range s.items {
			if sel, ok := it.(Selectable); ok {
				sel.SetSelected(it == hit)
			}
		}
	}
	if hit != nil {
		s.grabbed = hit
		hit.PointerPress(ev)
		return
	}
	if s.interactions.Has(InteractRangeDrag) {
		s.pan = &panState{lastX: ev.X, lastY: ev.Y}
	}
}

func (s *Surface) dragPan(ev PointerEvent) {
	dx := s.PixelToCoord(AxisX, ev.X) - s.PixelToCoord(AxisX, s.pan.lastX)
	dy := s.PixelToCoord(AxisY, ev.Y) - s.PixelToCoord(AxisY, s.pan.lastY)
	s.pan.lastX, s.pan.lastY = ev.X, ev.Y
	if dx != 0 {
		r := s.ranges[AxisX]
		s.SetRange(AxisX, Range{r.Lower - dx, r.Upper - dx})
	}
	if dy != 0 {
		r := s.ranges[AxisY]
		s.SetRange(AxisY, Range{r.Lower - dy, r.Upper - dy})
	}
}
