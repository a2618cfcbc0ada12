package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fusion-field/parameter"
	"github.com/lixenwraith/fusion-field/render"
	"github.com/lixenwraith/fusion-field/status"
)

// Registry is the metric source the HUD reads
type Registry interface {
	Snapshot() [][2]string
}

var _ Registry = (*status.Registry)(nil)

// HUDState is the per-frame input the registry does not carry
type HUDState struct {
	Phase  string
	Paused bool
	Audio  bool
}

// HUD draws a one-line status bar: phase badge, then metrics
type HUD struct {
	registry Registry
	accent   render.RGB
	purple   render.RGB
}

// NewHUD creates a status line reading reg, badge colors from the palette
func NewHUD(reg Registry, p render.Palette) *HUD {
	return &HUD{registry: reg, accent: p.Accent, purple: p.Purple}
}

// labels shortens metric keys for the status line
var labels = map[string]string{
	status.KeyTicks:      "tick",
	status.KeyPulses:     "pulses",
	status.KeySpawned:    "spawned",
	status.KeyEnergyMean: "Eavg",
	status.KeyEnergyMax:  "Emax",
	status.KeyKinetic:    "kin",
}

// Line formats the metric part of the status line
func (h *HUD) Line() string {
	var b strings.Builder
	for _, kv := range h.registry.Snapshot() {
		label, ok := labels[kv[0]]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s %s ", label, kv[1])
	}
	return b.String()
}

// Draw writes the status line on row y, clipped to width
func (h *HUD) Draw(screen tcell.Screen, y, width int, hs HUDState) {
	if y < 0 || width <= 0 {
		return
	}

	badge := parameter.PhaseTextChaos
	badgeBg := h.accent
	if hs.Phase == "fusion" {
		badge = parameter.PhaseTextFusion
		badgeBg = h.purple
	}

	base := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	x := 0
	x = putStr(screen, x, y, width, badge, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcellColor(badgeBg)).Bold(true))
	if hs.Paused {
		x = putStr(screen, x, y, width, parameter.PausedText, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow))
	}
	if hs.Audio {
		x = putStr(screen, x, y, width, " "+parameter.AudioStr, base)
	}
	x = putStr(screen, x, y, width, h.Line(), base)

	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}
}

// putStr writes s one rune per cell from x, returning the next column
func putStr(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
