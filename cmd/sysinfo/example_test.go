package main

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/roffe/txplot/pkg/ebus"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/primitive"
	"github.com/roffe/txplot/pkg/sysmem"
	"github.com/roffe/txplot/pkg/widgets/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	n int
}

func (c *countingRefresher) Refresh() { c.n++ }

func TestExampleSlidingWindow(t *testing.T) {
	test.NewTempApp(t)

	ex, err := newExample(&countingRefresher{}, 30, 100)
	require.NoError(t, err)
	w := test.NewWindow(ex.content())
	defer w.Close()

	for _, x := range []float32{1, 10, 29} {
		ex.add(geom.NewPoint(x, 50))
	}
	assert.Equal(t, geom.NewBox(0, 0, 30, 100), ex.plot.Bounds())
	assert.Len(t, ex.plot.Points(), 3)

	ex.add(geom.NewPoint(35, 60))
	assert.Equal(t, geom.NewBox(5, 0, 35, 100), ex.plot.Bounds())
	require.Len(t, ex.plot.Points(), 3)
	assert.Equal(t, float32(10), ex.plot.Points()[0].X)
	assert.Contains(t, ex.status.Text, "3 samples")
}

func TestExampleSetTotal(t *testing.T) {
	test.NewTempApp(t)

	ex, err := newExample(&countingRefresher{}, 30, 100)
	require.NoError(t, err)
	ex.setTotal(0)
	assert.Equal(t, float32(100), ex.plot.Bounds().Max.Y)
	ex.setTotal(200)
	assert.Equal(t, float32(200), ex.plot.Bounds().Max.Y)
}

func TestExampleDegenerateWindow(t *testing.T) {
	_, err := newExample(&countingRefresher{}, 0, 100)
	assert.ErrorIs(t, err, geom.ErrDegenerateBounds)
}

func TestExampleRefreshButton(t *testing.T) {
	test.NewTempApp(t)

	r := &countingRefresher{}
	ex, err := newExample(r, 30, 100)
	require.NoError(t, err)
	w := test.NewWindow(ex.content())
	defer w.Close()

	test.Tap(ex.refresh)
	test.Tap(ex.refresh)
	assert.Equal(t, 2, r.n)
}

func TestExampleSamplesOnScreen(t *testing.T) {
	test.NewTempApp(t)

	ex, err := newExample(&countingRefresher{}, 30, 100)
	require.NoError(t, err)
	ex.points = []geom.Point{{X: 0, Y: 0}, {X: 15, Y: 50}, {X: 30, Y: 100}}
	ex.plot.SetPoints(ex.points)

	layout := geom.NewBox(0, 0, 300, 200)
	p, _ := ex.plot.Draw(layout, geom.Point{})
	quads := primitive.Flatten(p)
	require.Len(t, quads, 5)
	for i, q := range quads[:3] {
		cx, cy := q.Bounds.X+q.Bounds.Width/2, q.Bounds.Y+q.Bounds.Height/2
		assert.True(t, layout.Contains(geom.NewPoint(cx, cy)), "sample %d at %g,%g is off-screen", i, cx, cy)
	}
	assert.InDelta(t, 200, quads[0].Bounds.Y+scatter.PointRadius, 1e-3)
	assert.InDelta(t, 0, quads[2].Bounds.Y+scatter.PointRadius, 1e-3)
}

func TestExampleSubscribeSeedsTotal(t *testing.T) {
	test.NewTempApp(t)

	bus := ebus.New(nil)
	defer bus.Close()
	require.NoError(t, bus.Publish(sysmem.TopicTotal, geom.NewPoint(0, 400)))
	assert.Eventually(t, func() bool {
		_, ok := bus.Last(sysmem.TopicTotal)
		return ok
	}, time.Second, 5*time.Millisecond)

	ex, err := newExample(&countingRefresher{}, 30, 100)
	require.NoError(t, err)
	unsubscribe := ex.subscribe(bus, sysmem.TopicUsed)
	defer unsubscribe()

	assert.Equal(t, float32(400), ex.plot.Bounds().Max.Y)
}
