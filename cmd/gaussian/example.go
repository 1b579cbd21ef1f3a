package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txplot/pkg/debug"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/presets"
	"github.com/roffe/txplot/pkg/widgets"
	"github.com/roffe/txplot/pkg/widgets/scatter"
)

type example struct {
	rng    *rand.Rand
	points []geom.Point

	plot         *scatter.ScatterPlot
	count        *widget.Label
	boundsSelect *widget.Select
}

func newExample(rng *rand.Rand, bounds geom.Box, n int) (*example, error) {
	e := &example{
		rng: rng,
	}
	for range n {
		e.points = append(e.points, e.sample())
	}
	plot, err := scatter.New(bounds, e.points)
	if err != nil {
		return nil, err
	}
	e.plot = plot
	return e, nil
}

// sample draws x and y from the standard normal distribution.
func (e *example) sample() geom.Point {
	return geom.NewPoint(float32(e.rng.NormFloat64()), float32(e.rng.NormFloat64()))
}

func (e *example) addPoint() {
	p := e.sample()
	e.points = append(e.points, p)
	debug.Logf("point %d at %.3f,%.3f", len(e.points), p.X, p.Y)
	e.plot.SetPoints(e.points)
	e.updateCount()
}

func (e *example) updateCount() {
	if e.count == nil {
		return
	}
	e.count.SetText(fmt.Sprintf("Point count: %d (%d inside bounds)", len(e.points), e.inside()))
}

func (e *example) inside() int {
	b := e.plot.Bounds()
	n := 0
	for _, p := range e.points {
		if b.Contains(p) {
			n++
		}
	}
	return n
}

// exportSize is the plot's on-screen size in device pixels.
func (e *example) exportSize() geom.Size {
	size := e.plot.PreferredSize()
	if s := e.plot.Size(); s.Width > 0 && s.Height > 0 {
		size = geom.NewSize(s.Width, s.Height)
	}
	if c := fyne.CurrentApp().Driver().CanvasForObject(e.plot); c != nil {
		size = size.Scale(c.Scale())
	}
	return size
}

// deletePreset removes a custom preset, saves the remaining ones and falls
// back to the default bounds.
func (e *example) deletePreset(a fyne.App, name string) error {
	if err := presets.Delete(name); err != nil {
		return err
	}
	if err := presets.Save(a); err != nil {
		return err
	}
	debug.Log("deleted preset " + name)
	e.boundsSelect.SetOptions(presets.Names())
	e.boundsSelect.SetSelected(presets.Gaussian)
	return nil
}

func (e *example) content(a fyne.App, w fyne.Window, selected string) fyne.CanvasObject {
	e.count = widget.NewLabel("")
	e.count.Alignment = fyne.TextAlignCenter
	e.updateCount()

	e.boundsSelect = widget.NewSelect(presets.Names(), func(name string) {
		b, err := presets.Get(name)
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if err := e.plot.SetBounds(b); err != nil {
			dialog.ShowError(err, w)
			return
		}
		presets.SetLast(a, name)
		e.updateCount()
	})
	e.boundsSelect.SetSelected(selected)

	deleteBtn := widget.NewButton("Delete preset", func() {
		if err := e.deletePreset(a, e.boundsSelect.Selected); err != nil {
			dialog.ShowError(err, w)
		}
	})

	addBtn := widget.NewButton("Add a random point", e.addPoint)

	saveBtn := widget.NewButton("Save PNG", func() {
		widgets.SaveFile(func(filename string) {
			if !strings.HasSuffix(strings.ToLower(filename), ".png") {
				filename += ".png"
			}
			if err := widgets.ExportPNG(filename, e.plot, e.exportSize()); err != nil {
				dialog.ShowError(err, w)
				return
			}
			dialog.ShowConfirm("Saved", "Open "+filename+"?", func(ok bool) {
				if !ok {
					return
				}
				if err := widgets.OpenFile(filename); err != nil {
					dialog.ShowError(err, w)
				}
			}, w)
		}, "PNG image", "png")
	})

	copyBtn := widget.NewButton("Copy image", func() {
		if err := widgets.CopyImage(e.plot, e.exportSize()); err != nil {
			dialog.ShowError(err, w)
		}
	})

	return container.NewPadded(container.NewBorder(
		container.NewBorder(nil, nil, widget.NewLabel("Bounds"), deleteBtn, e.boundsSelect),
		container.NewVBox(
			e.count,
			addBtn,
			container.NewGridWithColumns(2, saveBtn, copyBtn),
		),
		nil,
		nil,
		e.plot,
	))
}
