package widgets

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/primitive"
	"github.com/roffe/txplot/pkg/raster"
	"github.com/skratchdot/open-golang/open"
	"golang.design/x/clipboard"
)

// Snapshotter draws itself into a fresh rectangle of the given size.
type Snapshotter interface {
	Snapshot(size geom.Size) primitive.Primitive
}

var clipboardInit = sync.OnceValue(clipboard.Init)

func renderPNG(s Snapshotter, size geom.Size) ([]byte, error) {
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, s.Snapshot(size), int(size.Width), int(size.Height)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPNG writes a PNG rendering of s to filename.
func ExportPNG(filename string, s Snapshotter, size geom.Size) error {
	b, err := renderPNG(s, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// CopyImage puts a PNG rendering of s on the system clipboard.
func CopyImage(s Snapshotter, size geom.Size) error {
	if err := clipboardInit(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	b, err := renderPNG(s, size)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, b)
	return nil
}

// OpenFile opens filename with the desktop's default application.
func OpenFile(filename string) error {
	if err := open.Run(filename); err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	return nil
}
