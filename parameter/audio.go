package parameter

import "time"

// Audio hardware
const (
	AudioSampleRate = 48000

	// AudioBufferDuration sets speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioVolume is the default master gain applied to every cue
	AudioVolume = 0.3
)

// Spawn blip
const (
	BlipDuration = 60 * time.Millisecond
	BlipAttack   = 4 * time.Millisecond
	BlipRelease  = 40 * time.Millisecond

	// BlipBaseFreq is the tone of input anchor 0; higher anchors step up a pentatonic scale
	BlipBaseFreq = 440.0

	// MinBlipGap drops blips closer than this to the previous one
	MinBlipGap = 40 * time.Millisecond
)

// Fusion chime
const (
	ChimeDuration = 900 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 800 * time.Millisecond

	// ChimeFreq is the fundamental; overtones sit at 2x and 3x
	ChimeFreq = 523.25
)
