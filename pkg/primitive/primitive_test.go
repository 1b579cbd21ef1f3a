package primitive

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenKeepsPaintOrder(t *testing.T) {
	a := Quad{Bounds: Rect{X: 1}}
	b := Quad{Bounds: Rect{X: 2}}
	c := Quad{Bounds: Rect{X: 3}}
	g := Group{Primitives: []Primitive{a, Group{Primitives: []Primitive{b}}, c}}

	quads := Flatten(g)
	require.Len(t, quads, 3)
	assert.Equal(t, float32(1), quads[0].Bounds.X)
	assert.Equal(t, float32(2), quads[1].Bounds.X)
	assert.Equal(t, float32(3), quads[2].Bounds.X)
}

func TestCanvasObjects(t *testing.T) {
	g := Group{Primitives: []Primitive{
		Quad{
			Bounds:       Rect{X: 10, Y: 20, Width: 4, Height: 4},
			Background:   Black,
			BorderRadius: 2,
		},
		Quad{
			Bounds:      Rect{X: 0, Y: 250, Width: 500, Height: 1},
			Background:  Black,
			BorderColor: Transparent,
		},
	}}

	objs := CanvasObjects(g, nil)
	require.Len(t, objs, 2)
	assert.Equal(t, fyne.NewPos(10, 20), objs[0].Position())
	assert.Equal(t, fyne.NewSize(4, 4), objs[0].Size())
	assert.Equal(t, float32(2), objs[0].CornerRadius)
	assert.Equal(t, color.Color(Black), objs[0].FillColor)
	assert.Equal(t, fyne.NewSize(500, 1), objs[1].Size())

	first := objs[0]
	again := CanvasObjects(Group{Primitives: []Primitive{Quad{Bounds: Rect{Width: 1, Height: 1}}}}, objs)
	require.Len(t, again, 1)
	assert.Same(t, first, again[0])
}

func TestCanvasObjectsGrows(t *testing.T) {
	reuse := []*canvas.Rectangle{{}}
	objs := CanvasObjects(Group{Primitives: []Primitive{Quad{}, Quad{}, Quad{}}}, reuse)
	assert.Len(t, objs, 3)
}

func TestCursorString(t *testing.T) {
	assert.Equal(t, "OutOfBounds", CursorOutOfBounds.String())
	assert.Equal(t, "Unknown", Cursor(42).String())
}
