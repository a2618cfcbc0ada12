// Command fusion-field-gl runs the animation in a resizable window (builds for wasm too)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/ebitenview"
	"github.com/lixenwraith/fusion-field/parameter"
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
	if flags.WriteConfig != "" {
		if err := cfg.WriteFile(flags.WriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.New(cfg, parameter.WindowWidth, cfg.PixelRatio(ebiten.Monitor().DeviceScaleFactor()))
	defer a.Close()
	a.StartAudio()

	game := ebitenview.NewGame(a)

	ebiten.SetWindowSize(parameter.WindowWidth, int(parameter.SurfaceHeight))
	ebiten.SetWindowTitle("fusion-field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "fusion-field-gl: %v\n", err)
		os.Exit(1)
	}
	log.Printf("exit after %d frames", game.Loop().Frames())
}
