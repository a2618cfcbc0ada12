package trace

import (
	"fmt"
	"image/png"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lixenwraith/fusion-field/core"
	"github.com/lixenwraith/fusion-field/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Width(12).Align(lipgloss.Right)
	graphStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Metric names a recorded series
type Metric struct {
	Name string
	Pick func(Sample) float64
}

// Metrics are the series reported by default
var Metrics = []Metric{
	{"energy.mean", func(s Sample) float64 { return s.EnergyMean }},
	{"energy.max", func(s Sample) float64 { return s.EnergyMax }},
	{"kinetic", func(s Sample) float64 { return s.Kinetic }},
	{"pulses", func(s Sample) float64 { return float64(s.Pulses) }},
}

// ReportOptions shapes the text report
type ReportOptions struct {
	Title       string
	Palette     render.Palette
	PlotWidth   int
	PlotHeight  int
	ShowPalette bool
}

// Report renders statistics and plots of everything rec captured
func Report(rec *Recorder, opts ReportOptions) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(strings.ToUpper(opts.Title)) + "\n")

	fusionAt := rec.FusionTick()
	b.WriteString(labelStyle.Render("ticks") + valueStyle.Render(fmt.Sprint(len(rec.Samples))) + "\n")
	if n := len(rec.Samples); n > 0 {
		b.WriteString(labelStyle.Render("spawned") + valueStyle.Render(fmt.Sprint(rec.Samples[n-1].Spawned)) + "\n")
	}
	if fusionAt >= 0 {
		b.WriteString(labelStyle.Render("fusion at") + valueStyle.Render(fmt.Sprintf("tick %d", fusionAt)) + "\n")
	} else {
		b.WriteString(labelStyle.Render("fusion at") + valueStyle.Render("never") + "\n")
	}
	b.WriteString("\n")

	b.WriteString(summaryTable(rec))

	_, fused := rec.Split()
	if len(fused) > 0 {
		ke := make([]float64, len(fused))
		for i, s := range fused {
			ke[i] = s.Kinetic
		}
		if p := DominantPeriod(ke); p > 0 {
			b.WriteString(noteStyle.Render(fmt.Sprintf("fusion kinetic period ~%.1f ticks", p)) + "\n")
		}
	}
	b.WriteString("\n")

	var plots []string
	for _, m := range Metrics {
		xs := rec.Series(m.Pick)
		if len(xs) < 2 {
			continue
		}
		chart := asciigraph.Plot(xs,
			asciigraph.Height(max(opts.PlotHeight, 2)),
			asciigraph.Width(max(opts.PlotWidth, 10)),
			asciigraph.Caption(m.Name))
		plots = append(plots, graphStyle.Render(chart))
	}
	for i := 0; i < len(plots); i += 2 {
		row := plots[i:min(i+2, len(plots))]
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
	}

	if opts.ShowPalette {
		b.WriteString(paletteLine(opts.Palette) + "\n")
	}
	return b.String()
}

func summaryTable(rec *Recorder) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("metric"))
	for _, h := range []string{"mean", "sd", "p50", "p95", "max"} {
		b.WriteString(valueStyle.Render(h))
	}
	b.WriteString("\n")
	for _, m := range Metrics {
		s := Summarize(rec.Series(m.Pick))
		b.WriteString(labelStyle.Render(m.Name))
		for _, v := range []float64{s.Mean, s.StdDev, s.P50, s.P95, s.Max} {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", v)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func paletteLine(p render.Palette) string {
	swatch := func(name string, c render.RGB) string {
		hex := c.Hex()
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + name + " " + hex
	}
	return strings.Join([]string{
		swatch("accent", p.Accent),
		swatch("purple", p.Purple),
		swatch("idle", p.IdleNode),
		swatch("pulse", p.Pulse),
	}, "   ")
}

// Snapshot rasterizes st at its surface resolution and encodes it as PNG
func Snapshot(w io.Writer, st *core.State, r *render.Renderer) error {
	raster := render.NewSurfaceRaster(st.Surface, r.Palette.Background)
	r.Draw(st, raster)
	if err := png.Encode(w, raster.Image()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
