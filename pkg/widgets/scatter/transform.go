package scatter

import "github.com/roffe/txplot/pkg/geom"

// transform maps data space onto a layout rectangle. Data y grows upwards,
// layout y grows downwards, so y is negated before it is made relative to
// the bounds. That keeps bounds symmetric around the origin on-screen; with
// maxYAtTop the flip is taken around bounds.Max.Y instead, which keeps any
// bounds on-screen.
type transform struct {
	data      geom.Box
	layout    geom.Box
	scaleX    float32
	scaleY    float32
	maxYAtTop bool
}

func newTransform(data, layout geom.Box, maxYAtTop bool) transform {
	return transform{
		data:      data,
		layout:    layout,
		scaleX:    layout.Width() / data.Width(),
		scaleY:    layout.Height() / data.Height(),
		maxYAtTop: maxYAtTop,
	}
}

func (t transform) point(x, y float32) (float32, float32) {
	rx := (x - t.data.Min.X) / t.data.Width()
	ry := (-y - t.data.Min.Y) / t.data.Height()
	if t.maxYAtTop {
		ry = (t.data.Max.Y - y) / t.data.Height()
	}
	return t.layout.Min.X + rx*t.layout.Width(), t.layout.Min.Y + ry*t.layout.Height()
}

// size scales a magnitude without translating it.
func (t transform) size(w, h float32) (float32, float32) {
	return w * t.scaleX, h * t.scaleY
}
