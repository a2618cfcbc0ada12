// Package audio sonifies the animation: a blip per pulse spawn and a chime at fusion
// Every operation is a no-op until Initialize succeeds, so callers never branch on audio
package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fusion-field/engine"
	"github.com/lixenwraith/fusion-field/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and a mixer all cues are added to
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	volume      float64
	initialized bool
	muted       bool

	lastBlip time.Time
	now      func() time.Time
}

// NewSoundManager creates a manager with the given master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		volume: min(max(volume, 0), 1),
		now:    time.Now,
	}
}

// Initialize opens the speaker; repeated calls are no-ops
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// SetMuted pauses or resumes output without closing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.ctrl.Paused = muted
	speaker.Unlock()
}

// PlayPulse plays the blip for a spawn from input anchor, rate limited by MinBlipGap
func (sm *SoundManager) PlayPulse(anchor int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	now := sm.now()
	if now.Sub(sm.lastBlip) < parameter.MinBlipGap {
		return
	}
	sm.lastBlip = now

	sm.add(CreateBlip(anchor, sm.volume, sampleRate))
}

// PlayFusion plays the transition chime
func (sm *SoundManager) PlayFusion() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.add(CreateChime(sm.volume, sampleRate))
}

// add hands a streamer to the mixer under the speaker lock; a cue that failed to build is logged
func (sm *SoundManager) add(s beep.Streamer, err error) {
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
}

// Attach wires cues to simulation hooks: a blip per spawn and the chime on fusion
// Hooks run on the loop goroutine and only enqueue into the mixer
func (sm *SoundManager) Attach(sim *engine.Simulation) {
	sim.Spawner.OnSpawn = sm.PlayPulse
	sim.Mode.OnFusion = func(int) { sm.PlayFusion() }
}
