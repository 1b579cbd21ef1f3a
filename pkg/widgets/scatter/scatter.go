package scatter

import (
	"encoding/binary"
	"fmt"
	"hash"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/primitive"
	"github.com/roffe/txplot/pkg/widgets"
)

const (
	// PointRadius is half the side of the square drawn for each point.
	PointRadius float32 = 2.0
	// LineWidth is the thickness of both axes in pixels.
	LineWidth float32 = 1.0
)

// DefaultMinSize is the preferred size reported to layouts.
var DefaultMinSize = fyne.NewSize(500, 500)

var _ fyne.Widget = (*ScatterPlot)(nil)
var _ desktop.Cursorable = (*ScatterPlot)(nil)
var _ widgets.Widget = (*ScatterPlot)(nil)
var _ widgets.Snapshotter = (*ScatterPlot)(nil)

// ScatterPlot draws a set of points inside a fixed data-space box, with the
// x and y axes drawn on top. The point slice is owned by the caller and only
// read while drawing.
type ScatterPlot struct {
	widget.BaseWidget

	bounds    geom.Box
	points    []geom.Point
	minSize   fyne.Size
	maxYAtTop bool
}

// Option configures a ScatterPlot in New.
type Option func(*ScatterPlot)

// WithMinSize overrides DefaultMinSize.
func WithMinSize(size fyne.Size) Option {
	return func(s *ScatterPlot) {
		s.minSize = size
	}
}

// WithMaxYAtTop maps bounds.Max.Y to the top edge and bounds.Min.Y to the
// bottom edge for any bounds. Without it y is negated first, so only bounds
// symmetric around y=0 land inside the layout.
func WithMaxYAtTop() Option {
	return func(s *ScatterPlot) {
		s.maxYAtTop = true
	}
}

// New returns a plot of points inside bounds. Bounds without area are
// rejected with an error wrapping geom.ErrDegenerateBounds.
func New(bounds geom.Box, points []geom.Point, opts ...Option) (*ScatterPlot, error) {
	if err := bounds.Validate(); err != nil {
		return nil, fmt.Errorf("scatter: %w", err)
	}
	s := &ScatterPlot{
		bounds:  bounds,
		points:  points,
		minSize: DefaultMinSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ExtendBaseWidget(s)
	return s, nil
}

// Bounds returns the data-space box mapped onto the widget.
func (s *ScatterPlot) Bounds() geom.Box {
	return s.bounds
}

// SetBounds validates bounds and redraws with them.
func (s *ScatterPlot) SetBounds(bounds geom.Box) error {
	if err := bounds.Validate(); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	if bounds == s.bounds {
		return nil
	}
	s.bounds = bounds
	s.Refresh()
	return nil
}

func (s *ScatterPlot) Points() []geom.Point {
	return s.points
}

// SetPoints replaces the plotted points and redraws. Must be called on the
// fyne goroutine.
func (s *ScatterPlot) SetPoints(points []geom.Point) {
	s.points = points
	s.Refresh()
}

// PreferredSize returns the configured min size.
func (s *ScatterPlot) PreferredSize() geom.Size {
	return geom.NewSize(s.minSize.Width, s.minSize.Height)
}

func (s *ScatterPlot) Width() widgets.Length {
	return widgets.LengthFill
}

func (s *ScatterPlot) Height() widgets.Length {
	return widgets.LengthFill
}

// Draw renders the points followed by the x and y axis into layout.
func (s *ScatterPlot) Draw(layout geom.Box, _ geom.Point) (primitive.Primitive, primitive.Cursor) {
	return draw(newTransform(s.bounds, layout, s.maxYAtTop), s.points), primitive.CursorOutOfBounds
}

// HashLayout only covers the preferred size. The reported size does not
// depend on the points, so new data redraws through Refresh without
// invalidating the parent's layout.
func (s *ScatterPlot) HashLayout(h hash.Hash) {
	b := binary.LittleEndian.AppendUint32(nil, math.Float32bits(s.minSize.Width))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(s.minSize.Height))
	h.Write(b)
}

// Snapshot draws the plot into [0,0]..[size] for export.
func (s *ScatterPlot) Snapshot(size geom.Size) primitive.Primitive {
	p, _ := s.Draw(geom.BoxFromSize(geom.Point{}, size), geom.Point{})
	return p
}

// Cursor keeps the default arrow; the plot has no interactive regions.
func (s *ScatterPlot) Cursor() desktop.Cursor {
	return desktop.DefaultCursor
}

func (s *ScatterPlot) CreateRenderer() fyne.WidgetRenderer {
	return &scatterRenderer{s: s}
}

func draw(t transform, points []geom.Point) primitive.Group {
	bounds := t.data
	primitives := make([]primitive.Primitive, 0, len(points)+2)

	for _, p := range points {
		x, y := t.point(p.X, p.Y)
		primitives = append(primitives, primitive.Quad{
			Bounds: primitive.Rect{
				X:      x - PointRadius,
				Y:      y - PointRadius,
				Width:  PointRadius * 2,
				Height: PointRadius * 2,
			},
			Background:   primitive.Black,
			BorderRadius: PointRadius,
			BorderColor:  primitive.Transparent,
		})
	}

	// x axis
	x, y := t.point(bounds.Min.X, 0)
	w, _ := t.size(bounds.Width(), 0)
	primitives = append(primitives, primitive.Quad{
		Bounds: primitive.Rect{
			X:      x,
			Y:      y - LineWidth*0.5,
			Width:  w,
			Height: LineWidth,
		},
		Background:  primitive.Black,
		BorderColor: primitive.Transparent,
	})

	// y axis
	x, y = t.point(0, bounds.Max.Y)
	_, h := t.size(0, bounds.Height())
	primitives = append(primitives, primitive.Quad{
		Bounds: primitive.Rect{
			X:      x - LineWidth*0.5,
			Y:      y,
			Width:  LineWidth,
			Height: h,
		},
		Background:  primitive.Black,
		BorderColor: primitive.Transparent,
	})

	return primitive.Group{Primitives: primitives}
}
