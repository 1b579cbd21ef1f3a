package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/txplot/pkg/debug"
	"github.com/roffe/txplot/pkg/ebus"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/sysmem"
	"github.com/roffe/txplot/pkg/widgets/scatter"
)

const gib = 1 << 30

type refresher interface {
	Refresh()
}

// example plots memory samples against elapsed seconds. Once samples pass
// the end of the window the x range slides along and older points are
// dropped.
type example struct {
	sampler refresher
	window  float32
	total   float32

	points []geom.Point

	plot    *scatter.ScatterPlot
	status  *widget.Label
	refresh *widget.Button
}

func newExample(sampler refresher, window, total float32) (*example, error) {
	e := &example{
		sampler: sampler,
		window:  window,
		total:   total,
	}
	// memory is never negative, so anchor the top of the plot at total
	plot, err := scatter.New(geom.NewBox(0, 0, window, total), nil, scatter.WithMaxYAtTop())
	if err != nil {
		return nil, fmt.Errorf("memory plot: %w", err)
	}
	e.plot = plot
	return e, nil
}

// subscribe feeds samples from bus into the plot on the fyne goroutine. A
// total already cached on the bus is applied before returning.
func (e *example) subscribe(bus *ebus.Controller, topic string) func() {
	if p, ok := bus.Last(sysmem.TopicTotal); ok {
		e.setTotal(p.Y)
	}
	cancelTotal := bus.SubscribeFunc(sysmem.TopicTotal, func(p geom.Point) {
		fyne.Do(func() { e.setTotal(p.Y) })
	})
	cancelSample := bus.SubscribeFunc(topic, func(p geom.Point) {
		fyne.Do(func() { e.add(p) })
	})
	return func() {
		cancelSample()
		cancelTotal()
	}
}

func (e *example) setTotal(total float32) {
	if total <= 0 || total == e.total {
		return
	}
	e.total = total
	b := e.plot.Bounds()
	b.Max.Y = total
	if err := e.plot.SetBounds(b); err != nil {
		fyne.LogError("Error updating bounds", err)
	}
}

func (e *example) add(p geom.Point) {
	debug.Logf("sample %.1fs %.0f", p.X, p.Y)
	e.points = append(e.points, p)

	b := e.plot.Bounds()
	if p.X > b.Max.X {
		b.Min.X = p.X - e.window
		b.Max.X = p.X
		i := 0
		for i < len(e.points) && e.points[i].X < b.Min.X {
			i++
		}
		e.points = e.points[i:]
		if err := e.plot.SetBounds(b); err != nil {
			fyne.LogError("Error updating bounds", err)
		}
	}
	e.plot.SetPoints(e.points)
	e.updateStatus(p.Y)
}

func (e *example) updateStatus(last float32) {
	if e.status == nil {
		return
	}
	e.status.SetText(fmt.Sprintf("%.2f GiB of %.2f GiB, %d samples", last/gib, e.total/gib, len(e.points)))
}

func (e *example) content() fyne.CanvasObject {
	e.status = widget.NewLabel("waiting for first sample")
	e.status.Alignment = fyne.TextAlignCenter
	e.refresh = widget.NewButton("Refresh memory", func() {
		debug.Log("manual refresh")
		e.sampler.Refresh()
	})

	return container.NewPadded(container.NewBorder(
		nil,
		container.NewVBox(
			e.status,
			e.refresh,
		),
		nil,
		nil,
		e.plot,
	))
}
