package marker

import (
	"slices"

	"github.com/rs/zerolog"

	"plotmark/internal/plot"
)

// EdgeInset is the fraction of the visible span a clamped line keeps away
// from the edge it overflowed.
const EdgeInset = 0.003

// Line is an infinite line that moves along one axis. Both anchors always
// share the coordinate on that axis.
type Line struct {
	name    string
	base    *plot.StraightLine
	surface Surface

	axis   plot.Axis
	offset int
	real   plot.Point

	state    State
	pens     Pens
	movable  bool
	dragging bool
	lease    *interactionLease

	peers     []*Line
	indicator Indicator
	listeners []moveListener
	nextID    int

	cancelRange func()
	eps         float64
	log         zerolog.Logger
}

type moveListener struct {
	id int
	fn func(*Line)
}

// Option configures a Line.
type Option func(*Line)

func WithName(name string) Option {
	return func(l *Line) { l.name = name }
}

// WithEpsilon sets the tolerance used to skip redundant coordinate updates.
func WithEpsilon(eps float64) Option {
	return func(l *Line) { l.eps = eps }
}

func WithLogger(log zerolog.Logger) Option {
	return func(l *Line) { l.log = log }
}

// WithPens sets the pen table; the idle pen becomes the drawing pen.
func WithPens(p Pens) Option {
	return func(l *Line) { l.pens = p }
}

// NewLine creates a line on s constrained to axis and placed at
// coordinate at. It registers itself with the surface for pointer and
// range-change events.
func NewLine(s Surface, axis plot.Axis, at float64, opts ...Option) *Line {
	l := &Line{
		base:    plot.NewStraightLine(),
		surface: s,
		pens:    UniformPens(plot.DefaultPen()),
		movable: true,
		eps:     plot.DefaultEpsilon,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.base.SetPen(l.pens[StateIdle])

	p1, p2 := plot.Point{X: at, Y: 0}, plot.Point{X: at, Y: 1}
	if axis == plot.AxisY {
		p1, p2 = plot.Point{X: 0, Y: at}, plot.Point{X: 1, Y: at}
	}
	l.base.Point1.SetCoords(p1)
	l.base.Point2.SetCoords(p2)
	l.real = p2

	l.SetMoveAxis(axis)
	s.AddItem(l)
	return l
}

func (l *Line) Name() string { return l.name }

func (l *Line) Axis() plot.Axis { return l.axis }

// SetMoveAxis constrains the line to a and follows range changes of that
// axis from now on.
func (l *Line) SetMoveAxis(a plot.Axis) {
	if l.cancelRange != nil {
		l.cancelRange()
	}
	l.axis = a
	l.cancelRange = l.surface.OnRangeChanged(a, l.rangeChanged)
}

// Position is the line's coordinate along its axis.
func (l *Line) Position() float64 { return l.base.Point1.Coords().On(l.axis) }

func (l *Line) Point1() plot.Point { return l.base.Point1.Coords() }
func (l *Line) Point2() plot.Point { return l.base.Point2.Coords() }

// RealCoord is where the line wants to be regardless of clamping.
func (l *Line) RealCoord() plot.Point { return l.real }

func (l *Line) Offset() int { return l.offset }

func (l *Line) Movable() bool        { return l.movable }
func (l *Line) SetMovable(m bool)    { l.movable = m }
func (l *Line) Visible() bool        { return l.base.Visible() }
func (l *Line) SetVisible(v bool)    { l.base.SetVisible(v) }
func (l *Line) Selected() bool       { return l.base.Selected() }
func (l *Line) SetSelected(s bool)   { l.base.SetSelected(s) }
func (l *Line) Dragging() bool       { return l.dragging }
func (l *Line) Surface() Surface     { return l.surface }
func (l *Line) Indicator() Indicator { return l.indicator }

// SetIndicator attaches the companion recomputed after every move.
func (l *Line) SetIndicator(ind Indicator) { l.indicator = ind }

// SetPoint1 moves the first anchor (and the first anchor of every peer).
// It reports whether anything changed.
func (l *Line) SetPoint1(x, y float64) bool {
	return l.setPointCoord(l.base.Point1, plot.Point{X: x, Y: y})
}

// SetPoint2 is SetPoint1 for the second anchor.
func (l *Line) SetPoint2(x, y float64) bool {
	return l.setPointCoord(l.base.Point2, plot.Point{X: x, Y: y})
}

func (l *Line) setPointCoord(pos *plot.Position, p plot.Point) bool {
	if pos.Coords().Equal(p, l.eps) {
		return false
	}
	pos.SetCoords(p)
	first := pos == l.base.Point1
	for _, peer := range l.SyncLines() {
		if first {
			peer.base.Point1.SetCoords(p)
		} else {
			peer.base.Point2.SetCoords(p)
		}
	}
	return true
}

// SetRealCoord updates the remembered position here and on every peer.
func (l *Line) SetRealCoord(x, y float64) bool {
	p := plot.Point{X: x, Y: y}
	if l.real.Equal(p, l.eps) {
		return false
	}
	l.real = p
	for _, peer := range l.SyncLines() {
		peer.real = p
	}
	return true
}

// AddOffset stores n and shifts both anchors by n along the line's axis,
// remembering the result as the real position.
func (l *Line) AddOffset(n int) {
	l.offset = n
	p1 := l.base.Point1.Coords()
	p2 := l.base.Point2.Coords()
	p1 = p1.With(l.axis, p1.On(l.axis)+float64(n))
	p2 = p2.With(l.axis, p2.On(l.axis)+float64(n))
	l.setPointCoord(l.base.Point1, p1)
	l.setPointCoord(l.base.Point2, p2)
	l.SetRealCoord(p2.X, p2.Y)
}

// AddSyncLine adds peer to the lines mirroring this one. nil, self and
// duplicates are ignored. The relation is one way; see Link.
func (l *Line) AddSyncLine(peer *Line) {
	if peer == nil || peer == l || slices.Contains(l.peers, peer) {
		return
	}
	l.peers = append(l.peers, peer)
}

func (l *Line) RemoveSyncLine(peer *Line) {
	if peer == nil {
		return
	}
	l.peers = slices.DeleteFunc(l.peers, func(p *Line) bool { return p == peer })
}

// SyncLines returns a snapshot of the peers in insertion order.
func (l *Line) SyncLines() []*Line { return slices.Clone(l.peers) }

// Link makes every line a peer of every other.
func Link(lines ...*Line) {
	for _, a := range lines {
		for _, b := range lines {
			a.AddSyncLine(b)
		}
	}
}

// OnPositionChanged subscribes fn to the notification sent after every
// effective move. The returned func cancels it.
func (l *Line) OnPositionChanged(fn func(*Line)) func() {
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, moveListener{id: id, fn: fn})
	return func() {
		l.listeners = slices.DeleteFunc(l.listeners, func(m moveListener) bool { return m.id == id })
	}
}

// NotifyMoved runs the after-move effects for the line and each peer:
// indicator update, position-changed notification, marker redraw.
func (l *Line) NotifyMoved() {
	l.moved()
	for _, peer := range l.SyncLines() {
		peer.moved()
	}
}

func (l *Line) moved() {
	if l.indicator != nil {
		l.indicator.UpdatePosition()
	}
	for _, m := range slices.Clone(l.listeners) {
		m.fn(l)
	}
	l.surface.Replot(plot.LayerMarkers)
}

// Close detaches the line from its surface and ends any drag.
func (l *Line) Close() {
	l.setDragging(false)
	if l.cancelRange != nil {
		l.cancelRange()
		l.cancelRange = nil
	}
	l.surface.RemoveItem(l)
}

// SelectTest delegates to the underlying straight line.
func (l *Line) SelectTest(x, y float64) float64 {
	return l.base.SelectTest(l.surface, x, y)
}

func (l *Line) Draw(c *plot.Canvas) { l.base.Draw(c) }
