package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDegenerateBounds is returned for boxes with no area or non-finite corners.
var ErrDegenerateBounds = errors.New("degenerate bounds")

type Point struct {
	X, Y float32
}

func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

type Size struct {
	Width, Height float32
}

func NewSize(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Scale multiplies both dimensions by k.
func (s Size) Scale(k float32) Size {
	return Size{Width: s.Width * k, Height: s.Height * k}
}

// Box is an axis-aligned rectangle given by its min and max corners.
type Box struct {
	Min, Max Point
}

func NewBox(minX, minY, maxX, maxY float32) Box {
	return Box{
		Min: Point{X: minX, Y: minY},
		Max: Point{X: maxX, Y: maxY},
	}
}

// BoxFromSize returns the box spanning origin..origin+size.
func BoxFromSize(origin Point, size Size) Box {
	return Box{
		Min: origin,
		Max: Point{X: origin.X + size.Width, Y: origin.Y + size.Height},
	}
}

func (b Box) Width() float32 {
	return b.Max.X - b.Min.X
}

func (b Box) Height() float32 {
	return b.Max.Y - b.Min.Y
}

func (b Box) Size() Size {
	return Size{Width: b.Width(), Height: b.Height()}
}

func (b Box) Center() Point {
	return Point{X: b.Min.X + b.Width()*0.5, Y: b.Min.Y + b.Height()*0.5}
}

func (b Box) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Validate reports ErrDegenerateBounds when the box cannot be used as a
// divisor: zero or negative extent on either axis, or NaN/Inf corners.
func (b Box) Validate() error {
	for _, v := range [...]float32{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: non-finite corner in %s", ErrDegenerateBounds, b)
		}
	}
	if !(b.Max.X > b.Min.X) {
		return fmt.Errorf("%w: width %g in %s", ErrDegenerateBounds, b.Width(), b)
	}
	if !(b.Max.Y > b.Min.Y) {
		return fmt.Errorf("%w: height %g in %s", ErrDegenerateBounds, b.Height(), b)
	}
	return nil
}

func (b Box) String() string {
	return fmt.Sprintf("[%g,%g]..[%g,%g]", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}

// ParseBox parses "minX,minY,maxX,maxY" and validates the result.
func ParseBox(s string) (Box, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Box{}, fmt.Errorf("parse box %q: want 4 comma separated values, got %d", s, len(parts))
	}
	var v [4]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return Box{}, fmt.Errorf("parse box %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	b := NewBox(v[0], v[1], v[2], v[3])
	if err := b.Validate(); err != nil {
		return Box{}, err
	}
	return b, nil
}
