// Command fusion-trace runs the simulation headless for a fixed number of ticks and prints
// metric statistics and plots, optionally saving a PNG of the final frame
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/trace"
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	ticks := flag.Int("ticks", parameter.TraceTicks, "ticks to simulate")
	width := flag.Float64("width", parameter.TraceWidth, "logical surface width")
	spawnEvery := flag.Int("spawn-every", -1, "ticks between spawns, -1 derives from config intervals, 0 disables")
	pngPath := flag.String("png", "", "write the final frame to this PNG file")
	plotWidth := flag.Int("plot-width", parameter.TracePlotWidth, "plot width in columns")
	plotHeight := flag.Int("plot-height", parameter.TracePlotHeight, "plot height in rows")
	flag.Parse()

	if logFile := app.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := app.LoadConfig(flags, flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	every := *spawnEvery
	if every < 0 {
		every = trace.SpawnEvery(cfg.Pulse.SpawnIntervalMS, cfg.Display.FrameIntervalMS)
	}

	a := app.New(cfg, *width, 1)
	rec := trace.NewRecorder(a.Registry)
	log.Printf("trace: %d ticks, spawn every %d, width %.0f", *ticks, every, *width)
	trace.Run(a.Simulation, trace.Plan{Ticks: *ticks, SpawnEvery: every}, rec)

	fmt.Print(trace.Report(rec, trace.ReportOptions{
		Title:       "fusion-field trace",
		Palette:     a.Renderer.Palette,
		PlotWidth:   *plotWidth,
		PlotHeight:  *plotHeight,
		ShowPalette: true,
	}))

	if *pngPath != "" {
		f, err := os.Create(*pngPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "png: %v\n", err)
			os.Exit(1)
		}
		err = trace.Snapshot(f, a.Simulation.State, a.Renderer)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *pngPath)
	}
}
