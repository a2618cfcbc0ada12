package config

import (
	"log"
	"strconv"
)

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "FUSION_FIELD_AUDIO_ENABLED"
	EnvAudioVolume  = "FUSION_FIELD_VOLUME"
	EnvSeed         = "FUSION_FIELD_SEED"
	EnvPixelRatio   = "FUSION_FIELD_PIXEL_RATIO"
)

// ApplyEnv overrides fields from lookup (os.LookupEnv in production)
// Unparseable values are logged and ignored; volume 0-100 maps to 0.0-1.0
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAudioEnabled); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			ignoreEnv(EnvAudioEnabled, v)
		}
	}

	if v, ok := lookup(EnvAudioVolume); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		} else {
			ignoreEnv(EnvAudioVolume, v)
		}
	}

	if v, ok := lookup(EnvSeed); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Simulation.Seed = n
		} else {
			ignoreEnv(EnvSeed, v)
		}
	}

	if v, ok := lookup(EnvPixelRatio); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			c.Display.PixelRatio = f
		} else {
			ignoreEnv(EnvPixelRatio, v)
		}
	}
}

func ignoreEnv(key, val string) {
	log.Printf("config: ignoring %s=%q", key, val)
}
