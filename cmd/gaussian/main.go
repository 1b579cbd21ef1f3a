package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/roffe/txplot/pkg/debug"
	"github.com/roffe/txplot/pkg/geom"
	"github.com/roffe/txplot/pkg/presets"
	"github.com/roffe/txplot/pkg/theme"
	"github.com/roffe/txplot/pkg/widgets"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

var (
	numPoints = flag.Int("n", 0, "number of random points to start with")
	seed      = flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	boundsArg = flag.String("bounds", "", "custom data bounds minX,minY,maxX,maxY, saved as the \"Custom\" preset")
	pngOut    = flag.String("png", "", "render the plot to this PNG file and exit")
	pngSize   = flag.Int("size", 500, "width and height of the -png output")
	debugLog  = flag.Bool("debug", false, "append debug output to debug.log")
)

const customPreset = "Custom"

func main() {
	flag.Parse()

	if *debugLog {
		if err := debug.Open("debug.log"); err != nil {
			log.Println(err)
		}
		defer debug.Close()
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s>>1|1))
	debug.Logf("seed %d", s)

	bounds := presetBounds(presets.Gaussian)
	if *boundsArg != "" {
		b, err := geom.ParseBox(*boundsArg)
		if err != nil {
			log.Fatal(err)
		}
		bounds = b
	}

	if *pngOut != "" {
		ex, err := newExample(rng, bounds, *numPoints)
		if err != nil {
			log.Fatal(err)
		}
		size := geom.NewSize(float32(*pngSize), float32(*pngSize))
		if err := widgets.ExportPNG(*pngOut, ex.plot, size); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d points to %s", len(ex.points), *pngOut)
		return
	}

	a := app.NewWithID("com.roffe.txplot.gaussian")
	a.Settings().SetTheme(&theme.PlotTheme{})
	if err := presets.Load(a); err != nil {
		log.Println(err)
	}

	selected := presets.Last(a)
	if *boundsArg != "" {
		if err := presets.Set(customPreset, bounds); err != nil {
			log.Fatal(err)
		}
		if err := presets.Save(a); err != nil {
			log.Println(err)
		}
		selected = customPreset
	} else if b, err := presets.Get(selected); err == nil {
		bounds = b
	} else {
		selected = presets.Gaussian
	}

	ex, err := newExample(rng, bounds, *numPoints)
	if err != nil {
		log.Fatal(err)
	}

	w := a.NewWindow("Gaussian plot widget example")
	w.SetContent(ex.content(a, w, selected))
	w.Resize(fyne.NewSize(540, 640))
	w.ShowAndRun()
}

func presetBounds(name string) geom.Box {
	b, err := presets.Get(name)
	if err != nil {
		log.Fatal(err)
	}
	return b
}
