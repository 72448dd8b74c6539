package gradient

import (
	"errors"
	"math"
)

// Errors returned by gradient waveform functions.
var (
	ErrInvalidAmplitude  = errors.New("gradient: amplitude must be positive")
	ErrInvalidFrequency  = errors.New("gradient: frequency must be positive")
	ErrInvalidDuration   = errors.New("gradient: duration must be positive")
	ErrInvalidSampleRate = errors.New("gradient: sample rate must be positive")
	ErrInvalidPlateau    = errors.New("gradient: plateau fraction must be in [0, 1)")
	ErrEmptySeries       = errors.New("gradient: series is empty")
	ErrShortSeries       = errors.New("gradient: series has fewer than two samples")
)

// Sinusoidal models the switching rate of a sinusoidally driven
// gradient coil:
//
//	dB/dt(t) = A * sin(2π f t)
type Sinusoidal struct {
	Amplitude  float64 // peak switching rate in T/s
	Frequency  float64 // drive frequency in Hz
	Duration   float64 // waveform duration in seconds
	SampleRate float64 // sample rate in Hz
}

// Validate checks that the Sinusoidal parameters are valid.
func (s *Sinusoidal) Validate() error {
	if s.Amplitude <= 0 {
		return ErrInvalidAmplitude
	}

	if s.Frequency <= 0 {
		return ErrInvalidFrequency
	}

	if s.Duration <= 0 {
		return ErrInvalidDuration
	}

	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// samples returns the total number of samples for the waveform.
func (s *Sinusoidal) samples() int {
	return int(math.Round(s.Duration * s.SampleRate))
}

// Generate samples the switching-rate waveform.
func (s *Sinusoidal) Generate() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, s.samples())
	for i := range out {
		t := float64(i) / s.SampleRate
		out[i] = s.Amplitude * math.Sin(2*math.Pi*s.Frequency*t)
	}

	return out, nil
}

// Trapezoidal models the switching rate of a trapezoidal gradient pulse
// train: the rate is +A while the gradient ramps up, -A while it ramps
// down, and zero on the flat top and in the gap between pulses.
//
// PlateauFraction is the zero-rate fraction of each period, split
// evenly between the flat top and the inter-pulse gap. Zero gives a
// triangle drive that never stops slewing.
type Trapezoidal struct {
	Amplitude       float64 // ramp switching rate magnitude in T/s
	Frequency       float64 // pulse repetition rate in Hz
	PlateauFraction float64 // zero-rate fraction of each period, in [0, 1)
	Duration        float64 // waveform duration in seconds
	SampleRate      float64 // sample rate in Hz
}

// Validate checks that the Trapezoidal parameters are valid.
func (s *Trapezoidal) Validate() error {
	if s.Amplitude <= 0 {
		return ErrInvalidAmplitude
	}

	if s.Frequency <= 0 {
		return ErrInvalidFrequency
	}

	if s.PlateauFraction < 0 || s.PlateauFraction >= 1 {
		return ErrInvalidPlateau
	}

	if s.Duration <= 0 {
		return ErrInvalidDuration
	}

	if s.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}

	return nil
}

// samples returns the total number of samples for the waveform.
func (s *Trapezoidal) samples() int {
	return int(math.Round(s.Duration * s.SampleRate))
}

// Generate samples the switching-rate waveform.
//
// Each period T = 1/Frequency splits into four segments:
//
//	[0, r)        +A    ramp up,    r = T*(1-p)/2
//	[r, r+h)       0    flat top,   h = T*p/2
//	[r+h, 2r+h)   -A    ramp down
//	[2r+h, T)      0    gap
func (s *Trapezoidal) Generate() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	period := 1 / s.Frequency
	rise := period * (1 - s.PlateauFraction) / 2
	hold := period * s.PlateauFraction / 2

	out := make([]float64, s.samples())
	for i := range out {
		t := float64(i) / s.SampleRate
		phase := math.Mod(t, period)

		switch {
		case phase < rise:
			out[i] = s.Amplitude
		case phase < rise+hold:
			out[i] = 0
		case phase < 2*rise+hold:
			out[i] = -s.Amplitude
		default:
			out[i] = 0
		}
	}

	return out, nil
}
