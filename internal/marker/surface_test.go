package marker

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"plotmark/internal/plot"
)

// fakeSurface maps coordinates to pixels at a fixed scale and records
// everything a line asks of it.
type fakeSurface struct {
	scale        float64
	ranges       [2]plot.Range
	interactions plot.Interaction
	writes       []plot.Interaction
	replots      map[string]int
	listeners    [2][]*func(plot.Range)
	items        []plot.Item
	panicOnMap   bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		scale:        10,
		ranges:       [2]plot.Range{{Lower: 0, Upper: 10}, {Lower: 0, Upper: 10}},
		interactions: plot.InteractAll,
		replots:      map[string]int{},
	}
}

func (f *fakeSurface) PixelToCoord(_ plot.Axis, px float64) float64 {
	if f.panicOnMap {
		panic("mapping failed")
	}
	return px / f.scale
}

func (f *fakeSurface) CoordToPixel(_ plot.Axis, v float64) float64 { return v * f.scale }

func (f *fakeSurface) Range(a plot.Axis) plot.Range { return f.ranges[a] }

func (f *fakeSurface) Replot(layer string) { f.replots[layer]++ }

func (f *fakeSurface) Interactions() plot.Interaction { return f.interactions }

func (f *fakeSurface) SetInteractions(i plot.Interaction) {
	f.interactions = i
	f.writes = append(f.writes, i)
}

func (f *fakeSurface) OnRangeChanged(a plot.Axis, fn func(plot.Range)) func() {
	p := &fn
	f.listeners[a] = append(f.listeners[a], p)
	return func() {
		f.listeners[a] = slices.DeleteFunc(f.listeners[a], func(o *func(plot.Range)) bool { return o == p })
	}
}

func (f *fakeSurface) AddItem(it plot.Item) { f.items = append(f.items, it) }

func (f *fakeSurface) RemoveItem(it plot.Item) {
	f.items = slices.DeleteFunc(f.items, func(o plot.Item) bool { return o == it })
}

func (f *fakeSurface) setRange(a plot.Axis, r plot.Range) {
	f.ranges[a] = r
	for _, fn := range slices.Clone(f.listeners[a]) {
		(*fn)(r)
	}
}

func (f *fakeSurface) markerReplots() int { return f.replots[plot.LayerMarkers] }

type countingIndicator struct{ updates int }

func (c *countingIndicator) UpdatePosition() { c.updates++ }

func move(x, y float64) plot.PointerEvent {
	return plot.PointerEvent{Action: plot.PointerMove, X: x, Y: y}
}

func press(x, y float64) plot.PointerEvent {
	return plot.PointerEvent{Action: plot.PointerPress, X: x, Y: y}
}

func release() plot.PointerEvent {
	return plot.PointerEvent{Action: plot.PointerRelease}
}

func TestNewLine_RegistersWithSurface(t *testing.T) {
	s := newFakeSurface()
	l := NewLine(s, plot.AxisX, 3, WithName("A"))

	assert.Equal(t, []plot.Item{l}, s.items)
	assert.Len(t, s.listeners[plot.AxisX], 1)
	assert.Empty(t, s.listeners[plot.AxisY])
	assert.Equal(t, plot.Point{X: 3, Y: 0}, l.Point1())
	assert.Equal(t, plot.Point{X: 3, Y: 1}, l.Point2())
	assert.Equal(t, l.Point2(), l.RealCoord())
	assert.Equal(t, StateIdle, l.State())
	assert.Equal(t, plot.DefaultPen(), l.ActivePen())
}

func TestInteractionLease_ReleaseOnce(t *testing.T) {
	s := newFakeSurface()
	s.interactions = plot.InteractRangeZoom

	lease := acquireInteractions(s)
	assert.Equal(t, plot.InteractNone, s.interactions)

	lease.Release()
	lease.Release()
	assert.Equal(t, plot.InteractRangeZoom, s.interactions)
	assert.Equal(t, []plot.Interaction{plot.InteractNone, plot.InteractRangeZoom}, s.writes)

	var nilLease *interactionLease
	assert.NotPanics(t, nilLease.Release)
}
