// Command fusion-field runs the animation in a terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fusion-field/app"
	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/terminal"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before printing anything about a crash
	crash := func(r any) {
		screen.Fini()
		app.CrashReport(os.Stderr, r)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	cols, rows := screen.Size()
	width, ratio := terminal.SurfaceSize(cols, rows, terminal.HUDRows(cfg.Display.ShowHUD), parameter.SurfaceHeight)
	a := app.New(cfg, width, ratio)

	var hud *terminal.HUD
	if cfg.Display.ShowHUD {
		hud = terminal.NewHUD(a.Registry, cfg.Palette())
	}
	presenter := terminal.NewPresenter(screen, a.Surface, a.Renderer, hud)
	presenter.AudioOn = a.Sound.Enabled

	loop := a.NewLoop(presenter.Present, crash)
	presenter.Paused = loop.Paused

	a.StartAudio()
	loop.Start()

	run(screen, loop, presenter, a)

	loop.Stop()
	a.Close()
	screen.Fini()
	log.Printf("exit after %d frames", loop.Frames())
}

// run handles input on the calling goroutine until quit
// State changes go through loop.Do so they serialize with frames
func run(screen tcell.Screen, loop *engine.Loop, presenter *terminal.Presenter, a *app.App) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventResize:
			loop.Do(func() {
				presenter.Layout()
				screen.Sync()
			})

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case ' ', 'p':
					paused := loop.TogglePause()
					log.Printf("input: paused=%t", paused)
				case 's':
					a.Sound.SetMuted(a.Sound.Enabled())
				case 'n':
					// Single step while paused
					if loop.Paused() {
						loop.Do(loop.Step)
					}
				}
			}
		}
	}
}
