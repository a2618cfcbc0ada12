// Package config loads and validates runtime settings
// Defaults come from parameter; a TOML file and environment variables override them
package config

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/parameter/visual"
	"github.com/lixenwraith/fusion-field/physics"
	"github.com/lixenwraith/fusion-field/render"
)

// Config is the complete runtime configuration
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Grid       GridConfig       `toml:"grid"`
	Pulse      PulseConfig      `toml:"pulse"`
	Theme      ThemeConfig      `toml:"theme"`
	Display    DisplayConfig    `toml:"display"`
	Audio      AudioConfig      `toml:"audio"`
}

type SimulationConfig struct {
	NodeCount      int     `toml:"node_count"`
	ConnectionDist float64 `toml:"connection_dist"`
	// MouseInfluence is accepted and validated but no force reads it
	MouseInfluence  float64 `toml:"mouse_influence"`
	SpringStrength  float64 `toml:"spring_strength"`
	Damping         float64 `toml:"damping"`
	EnergyDecay     float64 `toml:"energy_decay"`
	FusionThreshold int     `toml:"fusion_threshold"`
	// Seed 0 seeds from the clock
	Seed int64 `toml:"seed"`
}

type GridConfig struct {
	Cols    int     `toml:"cols"`
	Gap     float64 `toml:"gap"`
	Pull    float64 `toml:"pull"`
	Damping float64 `toml:"damping"`
}

type PulseConfig struct {
	SpawnIntervalMS int     `toml:"spawn_interval_ms"`
	Speed           float64 `toml:"speed"`
	InferenceSpeed  float64 `toml:"inference_speed"`
	LifeDecay       float64 `toml:"life_decay"`
}

type ThemeConfig struct {
	Accent [3]uint8 `toml:"accent"`
	Purple [3]uint8 `toml:"purple"`
}

type DisplayConfig struct {
	FrameIntervalMS int `toml:"frame_interval_ms"`
	// PixelRatio 0 auto-detects
	PixelRatio float64 `toml:"pixel_ratio"`
	ShowHUD    bool    `toml:"show_hud"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			NodeCount:       parameter.NodeCount,
			ConnectionDist:  parameter.ConnectionDist,
			MouseInfluence:  parameter.MouseInfluence,
			SpringStrength:  parameter.SpringStrength,
			Damping:         parameter.Damping,
			EnergyDecay:     parameter.EnergyDecay,
			FusionThreshold: parameter.FusionThreshold,
		},
		Grid: GridConfig{
			Cols:    parameter.GridCols,
			Gap:     parameter.GridGap,
			Pull:    parameter.GridPull,
			Damping: parameter.GridDamping,
		},
		Pulse: PulseConfig{
			SpawnIntervalMS: int(parameter.SpawnInterval / time.Millisecond),
			Speed:           parameter.PulseSpeed,
			InferenceSpeed:  parameter.InferencePulseSpeed,
			LifeDecay:       parameter.PulseLifeDecay,
		},
		Theme: ThemeConfig{
			Accent: visual.ColorAccent,
			Purple: visual.ColorPurple,
		},
		Display: DisplayConfig{
			FrameIntervalMS: int(parameter.FrameUpdateInterval / time.Millisecond),
			PixelRatio:      parameter.PixelRatioAuto,
			ShowHUD:         true,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  parameter.AudioVolume,
		},
	}
}

// Load reads a TOML file over the defaults and validates the result
// An empty path returns validated defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	log.Printf("config: loaded %s", path)
	return cfg, nil
}

// Decode parses TOML text over the defaults and validates the result
func Decode(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// checkUndecoded rejects keys that map to no field, usually typos
func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	sort.Strings(names)
	return &ValidationError{Key: names[0], Reason: "unknown key (" + strings.Join(names, ", ") + ")"}
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// WriteFile writes the configuration to path, creating or truncating it
func (c Config) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SpawnInterval returns the pulse spawn period
func (c Config) SpawnInterval() time.Duration {
	return time.Duration(c.Pulse.SpawnIntervalMS) * time.Millisecond
}

// FrameInterval returns the goroutine loop's frame period
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameIntervalMS) * time.Millisecond
}

// Rand returns the simulation RNG, clock-seeded when Seed is 0
func (c Config) Rand() *rand.Rand {
	seed := c.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Options builds simulation options; metrics go to a private registry unless the caller sets one
func (c Config) Options() engine.Options {
	opts := engine.DefaultOptions()

	opts.Population = core.DefaultPopulationConfig()
	opts.Population.Hidden = c.Simulation.NodeCount

	opts.Profile = physics.DefaultProfile()
	opts.Profile.Spring.RestDist = c.Simulation.ConnectionDist
	opts.Profile.Spring.Strength = c.Simulation.SpringStrength
	opts.Profile.Integration.Damping = c.Simulation.Damping
	opts.Profile.Integration.EnergyDecay = c.Simulation.EnergyDecay
	opts.Profile.Grid.Cols = c.Grid.Cols
	opts.Profile.Grid.Gap = c.Grid.Gap
	opts.Profile.Grid.Pull = c.Grid.Pull
	opts.Profile.Grid.Damping = c.Grid.Damping
	opts.Profile.Pulse.Speed = c.Pulse.Speed
	opts.Profile.Pulse.InferenceSpeed = c.Pulse.InferenceSpeed
	opts.Profile.Pulse.LifeDecay = c.Pulse.LifeDecay

	opts.FusionThreshold = c.Simulation.FusionThreshold
	opts.Rand = c.Rand()
	return opts
}

// LoopConfig builds the scheduler timing
func (c Config) LoopConfig() engine.LoopConfig {
	lc := engine.DefaultLoopConfig()
	lc.FrameInterval = c.FrameInterval()
	lc.SpawnInterval = c.SpawnInterval()
	return lc
}

// Palette builds the renderer theme
func (c Config) Palette() render.Palette {
	p := render.DefaultPalette()
	p.Accent = render.FromTriple(c.Theme.Accent)
	p.Purple = render.FromTriple(c.Theme.Purple)
	return p
}

// PixelRatio resolves the configured ratio against a detected one, capped at MaxPixelRatio
func (c Config) PixelRatio(detected float64) float64 {
	r := c.Display.PixelRatio
	if r == parameter.PixelRatioAuto {
		r = detected
	}
	if !(r > 0) {
		r = 1
	}
	return min(r, parameter.MaxPixelRatio)
}
