package trace

import (
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one series
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	P50    float64
	P95    float64
	Max    float64
}

// Summarize computes descriptive statistics; an empty series yields the zero Summary
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	s := Summary{
		N:    len(xs),
		Mean: stat.Mean(xs, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Max:  floats.Max(xs),
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s
}

// DominantPeriod returns the strongest oscillation period in samples, ignoring the mean
// Returns 0 when the series is too short or flat
func DominantPeriod(xs []float64) float64 {
	n := len(xs)
	if n < 4 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	centered := make([]float64, n)
	for i, v := range xs {
		centered[i] = v - mean
	}

	coeff := fourier.NewFFT(n).Coefficients(nil, centered)
	best, peak := 0, 0.0
	for i := 1; i < len(coeff); i++ {
		if m := cmplx.Abs(coeff[i]); m > peak {
			best, peak = i, m
		}
	}
	if best == 0 || peak < 1e-9 {
		return 0
	}
	return float64(n) / float64(best)
}
