package primitive

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

var (
	Black       = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Transparent = color.NRGBA{}
)

// Cursor is the pointer style a widget asks the host for after drawing.
type Cursor int

// CursorOutOfBounds means the pointer is not over anything interactive.
const CursorOutOfBounds Cursor = 0

func (c Cursor) String() string {
	if c == CursorOutOfBounds {
		return "OutOfBounds"
	}
	return "Unknown"
}

// Primitive is one drawing instruction: a Quad or a Group of primitives.
type Primitive interface {
	isPrimitive()
}

type Rect struct {
	X, Y          float32
	Width, Height float32
}

func (r Rect) Position() fyne.Position {
	return fyne.NewPos(r.X, r.Y)
}

func (r Rect) Size() fyne.Size {
	return fyne.NewSize(r.Width, r.Height)
}

// Quad is a filled rectangle with an optional rounded, stroked border.
type Quad struct {
	Bounds       Rect
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

func (Quad) isPrimitive() {}

// Group keeps its children in paint order, last on top.
type Group struct {
	Primitives []Primitive
}

func (Group) isPrimitive() {}

// Walk calls fn for every Quad under p in paint order.
func Walk(p Primitive, fn func(q Quad)) {
	switch v := p.(type) {
	case Quad:
		fn(v)
	case Group:
		for _, child := range v.Primitives {
			Walk(child, fn)
		}
	}
}

// Flatten returns the quads under p in paint order.
func Flatten(p Primitive) []Quad {
	var quads []Quad
	Walk(p, func(q Quad) {
		quads = append(quads, q)
	})
	return quads
}

// CanvasObjects converts p into fyne rectangles, reusing the rectangles in
// reuse where possible so a renderer can keep its object slice between frames.
func CanvasObjects(p Primitive, reuse []*canvas.Rectangle) []*canvas.Rectangle {
	out := reuse[:0]
	n := 0
	Walk(p, func(q Quad) {
		var rect *canvas.Rectangle
		if n < len(reuse) && reuse[n] != nil {
			rect = reuse[n]
		} else {
			rect = &canvas.Rectangle{}
		}
		n++
		rect.FillColor = q.Background
		rect.StrokeColor = q.BorderColor
		rect.StrokeWidth = q.BorderWidth
		rect.CornerRadius = q.BorderRadius
		rect.Move(q.Bounds.Position())
		rect.Resize(q.Bounds.Size())
		out = append(out, rect)
	})
	return out
}
