package plot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStack() (*Stack, *Surface, *Surface) {
	top := NewSurface(WithRanges(Range{0, 10}, Range{0, 10}))
	bottom := NewSurface(WithRanges(Range{0, 10}, Range{0, 10}))
	st := NewStack(top)
	st.Add(bottom)
	st.Layout(0, 0, 20, 11)
	return st, top, bottom
}

func TestStack_Layout(t *testing.T) {
	st, top, bottom := newTestStack()

	assert.Equal(t, 2, st.Len())
	x, y, w, h := top.Area()
	assert.Equal(t, []int{0, 0, 20, 5}, []int{x, y, w, h})
	x, y, w, h = bottom.Area()
	assert.Equal(t, []int{0, 5, 20, 6}, []int{x, y, w, h})

	assert.Same(t, top, st.At(3, 4))
	assert.Same(t, bottom, st.At(3, 5))
	assert.Nil(t, st.At(25, 5))
}

func TestStack_RoutesPress(t *testing.T) {
	st, top, bottom := newTestStack()
	a, b := &testItem{}, &testItem{}
	top.AddItem(a)
	bottom.AddItem(b)

	st.HandlePointer(PointerEvent{Action: PointerPress, X: 3, Y: 7})

	assert.Zero(t, a.presses)
	assert.Equal(t, 1, b.presses)
}

func TestStack_GrabFollowsPointerAcrossPanels(t *testing.T) {
	st, top, bottom := newTestStack()
	a, b := &testItem{}, &testItem{}
	top.AddItem(a)
	bottom.AddItem(b)

	st.HandlePointer(PointerEvent{Action: PointerPress, X: 3, Y: 1})
	require.True(t, top.Grabbing())
	st.HandlePointer(PointerEvent{Action: PointerMove, X: 3, Y: 8})

	assert.Equal(t, 1, a.moves, "grabbing panel still gets moves")
	assert.True(t, a.lastMove.Outside)
	assert.Equal(t, 1, b.moves, "panel under the pointer gets moves")
	assert.False(t, b.lastMove.Outside)

	st.HandlePointer(PointerEvent{Action: PointerRelease, X: 3, Y: 8})
	assert.Equal(t, 1, a.releases)
	assert.Equal(t, 1, b.releases)
	assert.False(t, top.Grabbing())

}

func TestStack_MovesReachEveryPanel(t *testing.T) {
	st, top, bottom := newTestStack()
	a, b := &testItem{}, &testItem{}
	top.AddItem(a)
	bottom.AddItem(b)

	st.HandlePointer(PointerEvent{Action: PointerMove, X: 3, Y: 2})
	assert.False(t, a.lastMove.Outside)
	assert.True(t, b.lastMove.Outside)

	st.HandlePointer(PointerEvent{Action: PointerMove, X: 3, Y: 8})
	assert.Equal(t, 2, a.moves)
	assert.True(t, a.lastMove.Outside, "the panel just left is told the pointer is gone")
	assert.Equal(t, 2, b.moves)
	assert.False(t, b.lastMove.Outside)

	st.HandlePointer(PointerEvent{Action: PointerMove, X: 30, Y: 30})
	assert.True(t, a.lastMove.Outside)
	assert.True(t, b.lastMove.Outside)
}

func TestStack_Render(t *testing.T) {
	st, _, _ := newTestStack()

	assert.Len(t, strings.Split(st.Render(), "\n"), 11)
}
