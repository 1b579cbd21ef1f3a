package scatter

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/primitive"
)

var _ fyne.WidgetRenderer = (*scatterRenderer)(nil)

type scatterRenderer struct {
	s *ScatterPlot

	rects   []*canvas.Rectangle
	objects []fyne.CanvasObject

	size fyne.Size
}

func (r *scatterRenderer) MinSize() fyne.Size {
	return r.s.minSize
}

func (r *scatterRenderer) Layout(size fyne.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.redraw()
}

func (r *scatterRenderer) Refresh() {
	r.redraw()
	canvas.Refresh(r.s)
}

func (r *scatterRenderer) Destroy() {
}

func (r *scatterRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *scatterRenderer) redraw() {
	layout := geom.BoxFromSize(geom.Point{}, geom.NewSize(r.size.Width, r.size.Height))
	p, _ := r.s.Draw(layout, geom.Point{})

	r.rects = primitive.CanvasObjects(p, r.rects)
	r.objects = r.objects[:0]
	for _, rect := range r.rects {
		r.objects = append(r.objects, rect)
	}
}
