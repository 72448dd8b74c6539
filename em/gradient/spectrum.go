package gradient

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// SpectrumInfo describes the dominant switching component of a sampled
// waveform.
type SpectrumInfo struct {
	DominantFrequency float64 // Hz
	PeakMagnitude     float64 // linear FFT magnitude at the dominant bin
	BinWidth          float64 // frequency spacing between bins in Hz
}

// Spectrum locates the dominant switching frequency of a waveform.
//
// The series is zero-padded to the next power of two for the FFT, and
// the peak search runs over the positive-frequency bins only; the DC
// bin is excluded so a rate offset cannot masquerade as a switching
// component.
func Spectrum(series []float64, sampleRate float64) (SpectrumInfo, error) {
	if len(series) == 0 {
		return SpectrumInfo{}, ErrEmptySeries
	}

	if len(series) < 2 {
		return SpectrumInfo{}, ErrShortSeries
	}

	if sampleRate <= 0 {
		return SpectrumInfo{}, ErrInvalidSampleRate
	}

	fftSize := nextPowerOf2(len(series))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return SpectrumInfo{}, fmt.Errorf("gradient: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range series {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return SpectrumInfo{}, fmt.Errorf("gradient: forward FFT failed: %w", err)
	}

	// Non-negative frequency bins [0..Nyquist].
	binCount := fftSize/2 + 1

	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mags := make([]float64, binCount)
	vecmath.Magnitude(mags, re, im)

	bestBin := 1
	bestVal := -1.0

	for i := 1; i < binCount; i++ {
		if mags[i] > bestVal {
			bestVal = mags[i]
			bestBin = i
		}
	}

	binHz := sampleRate / float64(fftSize)

	return SpectrumInfo{
		DominantFrequency: float64(bestBin) * binHz,
		PeakMagnitude:     bestVal,
		BinWidth:          binHz,
	}, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
