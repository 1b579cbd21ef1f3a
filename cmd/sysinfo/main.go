package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/roffe/txplot/pkg/debug"
	"github.com/roffe/txplot/pkg/ebus"
	"github.com/roffe/txplot/pkg/sysmem"
	"github.com/roffe/txplot/pkg/theme"
	"golang.org/x/sync/errgroup"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

var (
	interval = flag.Duration("interval", time.Second, "automatic refresh interval, 0 disables it")
	window   = flag.Float64("window", 30, "seconds of history shown on the x axis")
	swap     = flag.Bool("swap", false, "plot used swap instead of used memory")
	debugLog = flag.Bool("debug", false, "append debug output to debug.log")
)

func main() {
	flag.Parse()

	if *debugLog {
		if err := debug.Open("debug.log"); err != nil {
			log.Println(err)
		}
		defer debug.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := sysmem.Read(ctx)
	if err != nil {
		log.Fatal(err)
	}

	a := app.NewWithID("com.roffe.txplot.sysinfo")
	a.Settings().SetTheme(&theme.PlotTheme{})

	bus := ebus.New(nil)
	defer bus.Close()
	sampler := sysmem.NewSampler(bus, *interval)

	topic := sysmem.TopicUsed
	if *swap {
		topic = sysmem.TopicUsedSwap
	}

	ex, err := newExample(sampler, float32(*window), float32(st.Total))
	if err != nil {
		log.Fatal(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sampler.Run(gctx)
	})
	unsubscribe := ex.subscribe(bus, topic)

	w := a.NewWindow("Available memory plot widget example")
	w.SetContent(ex.content())
	w.Resize(fyne.NewSize(540, 620))
	sampler.Refresh()
	w.ShowAndRun()

	unsubscribe()
	cancel()
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}
