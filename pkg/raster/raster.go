package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/roffe/txplot/pkg/primitive"
	"golang.org/x/image/vector"
)

var White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// Rasterize paints the quads of p in paint order on top of a bg filled image.
// Quads with non-finite geometry are skipped.
func Rasterize(p primitive.Primitive, width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if width <= 0 || height <= 0 {
		return img
	}
	r := vector.NewRasterizer(width, height)
	primitive.Walk(p, func(q primitive.Quad) {
		drawQuad(img, r, q)
	})
	return img
}

func drawQuad(dst *image.RGBA, r *vector.Rasterizer, q primitive.Quad) {
	b := q.Bounds
	if !finite(b.X, b.Y, b.Width, b.Height, q.BorderRadius, q.BorderWidth) {
		return
	}
	if b.Width <= 0 || b.Height <= 0 {
		return
	}
	if q.BorderWidth > 0 && q.BorderColor.A > 0 {
		fillRoundedRect(dst, r, b, q.BorderRadius, q.BorderColor)
		inner := primitive.Rect{
			X:      b.X + q.BorderWidth,
			Y:      b.Y + q.BorderWidth,
			Width:  b.Width - 2*q.BorderWidth,
			Height: b.Height - 2*q.BorderWidth,
		}
		if inner.Width <= 0 || inner.Height <= 0 {
			return
		}
		fillRoundedRect(dst, r, inner, max(q.BorderRadius-q.BorderWidth, 0), q.Background)
		return
	}
	fillRoundedRect(dst, r, b, q.BorderRadius, q.Background)
}

func fillRoundedRect(dst *image.RGBA, r *vector.Rasterizer, b primitive.Rect, radius float32, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	size := dst.Bounds().Size()
	x0, y0 := clamp(b.X, size.X), clamp(b.Y, size.Y)
	x1, y1 := clamp(b.X+b.Width, size.X), clamp(b.Y+b.Height, size.Y)
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}
	radius = min(radius, w*0.5, h*0.5)

	r.Reset(size.X, size.Y)
	if radius <= 0 {
		r.MoveTo(x0, y0)
		r.LineTo(x1, y0)
		r.LineTo(x1, y1)
		r.LineTo(x0, y1)
	} else {
		r.MoveTo(x0+radius, y0)
		r.LineTo(x1-radius, y0)
		r.QuadTo(x1, y0, x1, y0+radius)
		r.LineTo(x1, y1-radius)
		r.QuadTo(x1, y1, x1-radius, y1)
		r.LineTo(x0+radius, y1)
		r.QuadTo(x0, y1, x0, y1-radius)
		r.LineTo(x0, y0+radius)
		r.QuadTo(x0, y0, x0+radius, y0)
	}
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
}

func clamp(v float32, limit int) float32 {
	return min(max(v, 0), float32(limit))
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// EncodePNG rasterizes p on a white background and writes it as PNG.
func EncodePNG(w io.Writer, p primitive.Primitive, width, height int) error {
	img := Rasterize(p, width, height, White)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}
