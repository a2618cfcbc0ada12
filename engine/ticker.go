package engine

import (
	"sync"
	"time"
)

// Ticker is the periodic trigger the loop selects on
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// timeTicker adapts time.Ticker
type timeTicker struct {
	t *time.Ticker
}

// NewTimeTicker returns a wall-clock ticker firing every d
func NewTimeTicker(d time.Duration) Ticker {
	return &timeTicker{t: time.NewTicker(d)}
}

func (t *timeTicker) C() <-chan time.Time { return t.t.C }
func (t *timeTicker) Stop()               { t.t.Stop() }

// ManualTicker fires only when told to, for deterministic loop tests
// Unbuffered, Fire blocks until the loop takes the tick; buffered, ticks queue for Pump
type ManualTicker struct {
	ch       chan time.Time
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewManualTicker creates a manual ticker holding up to buffer pending ticks
func NewManualTicker(buffer int) *ManualTicker {
	return &ManualTicker{
		ch:      make(chan time.Time, buffer),
		stopped: make(chan struct{}),
	}
}

func (m *ManualTicker) C() <-chan time.Time { return m.ch }

// Fire delivers one tick; returns false if the ticker was stopped first
func (m *ManualTicker) Fire() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	}
}

// TryFire delivers a tick without blocking, returns false when nothing could take it
func (m *ManualTicker) TryFire() bool {
	select {
	case m.ch <- time.Now():
		return true
	default:
		return false
	}
}

func (m *ManualTicker) Stop() {
	m.stopOnce.Do(func() { close(m.stopped) })
}
