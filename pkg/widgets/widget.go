package widgets

import (
	"hash"

	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/primitive"
)

// Length is how a widget wants to be sized along one axis.
type Length int

// LengthFill takes all space the parent offers.
const LengthFill Length = 1

// Widget is the drawing contract shared by plot widgets, independent of the
// fyne binding that hosts them.
type Widget interface {
	// PreferredSize is the size reported to the layout pass.
	PreferredSize() geom.Size
	Width() Length
	Height() Length
	// Draw renders into the layout rectangle assigned by the host.
	Draw(layout geom.Box, cursor geom.Point) (primitive.Primitive, primitive.Cursor)
	// HashLayout feeds everything that affects layout into h.
	HashLayout(h hash.Hash)
}
