package marker

import (
	"math"

	"plotmark/internal/plot"
)

// PointerPress starts a drag when the line is movable. The surface only
// delivers presses that hit the line.
func (l *Line) PointerPress(plot.PointerEvent) {
	if !l.movable {
		return
	}
	l.setDragging(true)
}

// PointerRelease ends any drag in progress.
func (l *Line) PointerRelease(plot.PointerEvent) {
	l.setDragging(false)
}

// PointerMove updates hover styling and, while dragging, moves the line
// (and its peers) to the pointer.
func (l *Line) PointerMove(ev plot.PointerEvent) {
	if !l.movable || !l.Visible() {
		return
	}
	l.checkHovered(ev)
	if !l.dragging {
		return
	}
	defer l.abortDragOnPanic()
	l.dragTo(ev)
	l.NotifyMoved()
}

// abortDragOnPanic ends the drag, restoring the surface interactions,
// before letting a panic continue.
func (l *Line) abortDragOnPanic() {
	if r := recover(); r != nil {
		l.setDragging(false)
		panic(r)
	}
}

func (l *Line) setDragging(drag bool) {
	if l.dragging == drag {
		return
	}
	l.dragging = drag
	if drag {
		l.setState(StateDragging)
		l.lease = acquireInteractions(l.surface)
		l.log.Debug().Str("line", l.name).Float64("at", l.Position()).Msg("drag start")
		return
	}
	l.setState(StateIdle)
	l.lease.Release()
	l.lease = nil
	l.log.Debug().Str("line", l.name).Float64("at", l.Position()).Msg("drag end")
}

// checkHovered compares pointer and line along the line's axis only; the
// pointer hovers when it is within half the stroke width on either side.
// A pointer over another panel never hovers.
func (l *Line) checkHovered(ev plot.PointerEvent) {
	if ev.Outside {
		l.setState(StateIdle)
		return
	}
	half := l.base.Pen().Width / 2
	mouse := ev.Pos(l.axis)
	at := math.Round(l.surface.CoordToPixel(l.axis, l.Position()))
	if mouse >= at-half && mouse <= at+half {
		l.setState(StateHovered)
	} else {
		l.setState(StateIdle)
	}
}

// dragTo moves both anchors to the pointer, clamped to the visible range.
// The real position is only updated when no clamping was needed.
func (l *Line) dragTo(ev plot.PointerEvent) {
	pos := l.surface.PixelToCoord(l.axis, ev.Pos(l.axis))
	pos, clamped := l.surface.Range(l.axis).Normalize().Clamp(pos)

	p1 := l.base.Point1.Coords().With(l.axis, pos)
	p2 := l.base.Point2.Coords().With(l.axis, pos)
	l.setPointCoord(l.base.Point1, p1)
	l.setPointCoord(l.base.Point2, p2)

	if !clamped {
		l.SetRealCoord(p2.X, p2.Y)
	}
}
