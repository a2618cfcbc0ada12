package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/parameter"
)

// PresentFunc renders and flushes one frame of state
// Runs on the loop goroutine; it must not call Loop.Do
type PresentFunc func(st *core.State)

// LoopConfig sets the two independent clocks of the loop
type LoopConfig struct {
	FrameInterval time.Duration
	SpawnInterval time.Duration

	// Optional ticker overrides, mainly for tests
	FrameTicker Ticker
	SpawnTicker Ticker

	// OnPanic receives a recovered panic from the loop goroutine; nil re-panics
	OnPanic func(r any)
}

// DefaultLoopConfig returns ~60 FPS frames and 200ms spawns
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		FrameInterval: parameter.FrameUpdateInterval,
		SpawnInterval: parameter.SpawnInterval,
	}
}

// Loop drives simulate-then-render passes and pulse spawns on one goroutine
// Start owns a goroutine with a frame ticker; display-driven front-ends call Pump instead
type Loop struct {
	sim     *Simulation
	present PresentFunc
	cfg     LoopConfig

	spawnOnce   sync.Once
	spawnTicker Ticker

	cmds     chan func()
	paused   atomic.Bool
	running  atomic.Bool
	frames   atomic.Uint64
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLoop binds a simulation to a present callback; nil present only simulates
func NewLoop(sim *Simulation, present PresentFunc, cfg LoopConfig) *Loop {
	if present == nil {
		present = func(*core.State) {}
	}
	return &Loop{
		sim:      sim,
		present:  present,
		cfg:      cfg,
		cmds:     make(chan func(), parameter.LoopCommandQueue),
		stopChan: make(chan struct{}),
	}
}

// Simulation returns the driven simulation
func (l *Loop) Simulation() *Simulation {
	return l.sim
}

// Start launches the loop goroutine; repeated calls are no-ops
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}

	frame := l.cfg.FrameTicker
	if frame == nil {
		frame = NewTimeTicker(l.cfg.FrameInterval)
	}

	l.wg.Add(1)
	go l.run(frame, l.spawner())
}

// Stop halts the loop goroutine and both tickers; safe to call multiple times
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
		l.wg.Wait()
		l.running.Store(false)
		if l.spawnTicker != nil {
			l.spawnTicker.Stop()
		}
	})
}

// Step runs exactly one simulate-then-render pass
// Callers outside the loop goroutine must not use it while the loop is running
func (l *Loop) Step() {
	l.sim.Step()
	l.frames.Add(1)
	l.present(l.sim.State)
}

// Pump is the display-driven entry point: drain pending spawns, then one frame
// While paused the frame is re-presented without stepping
func (l *Loop) Pump() {
	spawn := l.spawner()
	for drained := false; !drained; {
		select {
		case <-spawn.C():
			l.sim.Spawn()
		default:
			drained = true
		}
	}
	l.frame()
}

// Do runs fn on the loop goroutine and waits for it; runs inline when not started
func (l *Loop) Do(fn func()) {
	if !l.running.Load() {
		fn()
		return
	}

	done := make(chan struct{})
	select {
	case l.cmds <- func() { defer close(done); fn() }:
	case <-l.stopChan:
		return
	}

	select {
	case <-done:
	case <-l.stopChan:
	}
}

// Pause freezes simulation; spawns keep accumulating and frames keep presenting
func (l *Loop) Pause() { l.paused.Store(true) }

// Resume continues simulation
func (l *Loop) Resume() { l.paused.Store(false) }

// TogglePause flips pause state and returns the new state
func (l *Loop) TogglePause() bool {
	for {
		old := l.paused.Load()
		if l.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports pause state
func (l *Loop) Paused() bool { return l.paused.Load() }

// Frames returns the number of simulated frames
func (l *Loop) Frames() uint64 { return l.frames.Load() }

func (l *Loop) spawner() Ticker {
	l.spawnOnce.Do(func() {
		l.spawnTicker = l.cfg.SpawnTicker
		if l.spawnTicker == nil {
			l.spawnTicker = NewTimeTicker(l.cfg.SpawnInterval)
		}
	})
	return l.spawnTicker
}

func (l *Loop) frame() {
	if l.paused.Load() {
		l.present(l.sim.State)
		return
	}
	l.Step()
}

// run serializes frames, spawns and commands; none of them ever overlap
func (l *Loop) run(frame, spawn Ticker) {
	defer l.wg.Done()
	defer frame.Stop()
	defer func() {
		if r := recover(); r != nil {
			if l.cfg.OnPanic == nil {
				panic(r)
			}
			l.cfg.OnPanic(r)
		}
	}()

	for {
		select {
		case <-l.stopChan:
			return
		case fn := <-l.cmds:
			fn()
		case <-spawn.C():
			l.sim.Spawn()
		case <-frame.C():
			l.frame()
		}
	}
}
