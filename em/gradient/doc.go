// Package gradient models MRI gradient switching waveforms and reduces
// them to the worst-case dB/dt figures the induced-field model consumes.
//
// Two idealized drive shapes are provided:
//
//   - Sinusoidal: dB/dt(t) = A sin(2π f t), the resonant readout case
//   - Trapezoidal: ±A while the gradient ramps, zero on plateaus
//
// Stats reduces a sampled waveform to peak, RMS, and mean switching
// rate magnitudes; a conservative exposure sweep uses the peak as its
// MaxRate. Spectrum locates the dominant switching frequency by FFT.
//
// # Usage
//
//	w := &gradient.Sinusoidal{Amplitude: 150, Frequency: 1000, Duration: 0.05, SampleRate: 65536}
//	series, _ := w.Generate()
//	rs, _ := gradient.Stats(series)
//	info, _ := gradient.Spectrum(series, 65536)
//	fmt.Printf("peak %.1f T/s, dominant %.0f Hz\n", rs.Peak, info.DominantFrequency)
package gradient
