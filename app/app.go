// Package app assembles the pieces every front-end shares: flags, config, simulation,
// metrics, renderer and audio
package app

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/fusion-field/audio"
	"github.com/lixenwraith/fusion-field/config"
	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/render"
	"github.com/lixenwraith/fusion-field/status"
)

// Flags are the command-line options common to all front-ends
type Flags struct {
	ConfigPath  string
	WriteConfig string
	Debug       bool
	Sound       bool
	NoHUD       bool
	Seed        int64
	PixelRatio  float64
}

// RegisterFlags binds common flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "TOML config file")
	fs.StringVar(&f.WriteConfig, "write-config", "", "write the effective config to this path and exit")
	fs.BoolVar(&f.Debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&f.Sound, "sound", false, "enable audio cues")
	fs.BoolVar(&f.NoHUD, "no-hud", false, "hide the status line")
	fs.Int64Var(&f.Seed, "seed", 0, "RNG seed, 0 seeds from the clock")
	fs.Float64Var(&f.PixelRatio, "pixel-ratio", parameter.PixelRatioAuto, "pixel ratio override, 0 auto-detects")
	return f
}

// LoadConfig resolves file, environment, then flags set explicitly on fs
func LoadConfig(f *Flags, fs *flag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "sound":
			cfg.Audio.Enabled = f.Sound
		case "no-hud":
			cfg.Display.ShowHUD = !f.NoHUD
		case "seed":
			cfg.Simulation.Seed = f.Seed
		case "pixel-ratio":
			cfg.Display.PixelRatio = f.PixelRatio
		}
	})

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// App is one assembled animation, not yet running
type App struct {
	Config     config.Config
	Surface    *core.Surface
	Registry   *status.Registry
	Simulation *engine.Simulation
	Renderer   *render.Renderer
	Sound      *audio.SoundManager
}

// New seeds the simulation on a surface of initial container width and ratio
func New(cfg config.Config, width, ratio float64) *App {
	surface := core.NewSurface(parameter.SurfaceHeight)
	surface.Resize(width, ratio)

	reg := status.NewRegistry()
	opts := cfg.Options()
	opts.Registry = reg

	a := &App{
		Config:     cfg,
		Surface:    surface,
		Registry:   reg,
		Simulation: engine.NewSimulation(surface, opts),
		Renderer:   render.NewRenderer(cfg.Palette()),
		Sound:      audio.NewSoundManager(cfg.Audio.Volume),
	}
	a.Renderer.ConnectionDist = cfg.Simulation.ConnectionDist
	a.Sound.Attach(a.Simulation)
	return a
}

// StartAudio opens the speaker when enabled; failure is logged and non-fatal
func (a *App) StartAudio() {
	if !a.Config.Audio.Enabled {
		return
	}
	if err := a.Sound.Initialize(); err != nil {
		log.Printf("audio: initialization failed: %v (continuing without audio)", err)
	}
}

// NewLoop wraps the simulation in a scheduler with configured timing
// onPanic receives panics from the loop goroutine; nil re-panics
func (a *App) NewLoop(present engine.PresentFunc, onPanic func(any)) *engine.Loop {
	lc := a.Config.LoopConfig()
	lc.OnPanic = onPanic
	return engine.NewLoop(a.Simulation, present, lc)
}

// Close releases audio
func (a *App) Close() {
	a.Sound.Cleanup()
}
