// Command fusion-field-sdl runs the animation on an SDL window through a 2D canvas API
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/sdlview"
)

func main() {
	flags := app.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if logFile := app.SetupLogging(flags.Debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := app.LoadConfig(flags, flag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	width, ratio := sdlview.Fit(parameter.WindowWidth, int(parameter.SurfaceHeight), parameter.SurfaceHeight)
	a := app.New(cfg, width, ratio)
	defer a.Close()
	a.StartAudio()

	crash := func(r any) {
		app.CrashReport(os.Stderr, r)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	if err := sdlview.Run(a, crash); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
