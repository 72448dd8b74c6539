package testutil

import (
	"math"
	"math/rand"
)

// SineRates returns the switching-rate series peak*sin(2π*freqHz*i/sampleRate),
// computed independently of the waveform generators so tests can
// cross-check them.
func SineRates(freqHz, sampleRate, peak float64, n int) []float64 {
	w := 2 * math.Pi * freqHz / sampleRate

	out := make([]float64, n)
	for i := range out {
		out[i] = peak * math.Sin(w*float64(i))
	}

	return out
}

// NoiseRates returns a reproducible white-noise rate series bounded by
// ±peak. The same seed always yields the same series.
func NoiseRates(seed int64, peak float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = peak * (2*rng.Float64() - 1)
	}

	return out
}

// ConstantRates returns a series pinned to a single rate value.
func ConstantRates(rate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rate
	}

	return out
}
