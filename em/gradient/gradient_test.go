package gradient

import (
	"math"
	"testing"

	"github.com/luc-lgtm/MRI-EM-Threshold/internal/testutil"
)

func TestSinusoidalValidation(t *testing.T) {
	tests := []struct {
		name    string
		wave    Sinusoidal
		wantErr error
	}{
		{"valid", Sinusoidal{40, 1000, 0.1, 48000}, nil},
		{"zero amplitude", Sinusoidal{0, 1000, 0.1, 48000}, ErrInvalidAmplitude},
		{"negative amplitude", Sinusoidal{-40, 1000, 0.1, 48000}, ErrInvalidAmplitude},
		{"zero frequency", Sinusoidal{40, 0, 0.1, 48000}, ErrInvalidFrequency},
		{"zero duration", Sinusoidal{40, 1000, 0, 48000}, ErrInvalidDuration},
		{"negative duration", Sinusoidal{40, 1000, -1, 48000}, ErrInvalidDuration},
		{"zero sample rate", Sinusoidal{40, 1000, 0.1, 0}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wave.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTrapezoidalValidation(t *testing.T) {
	tests := []struct {
		name    string
		wave    Trapezoidal
		wantErr error
	}{
		{"valid", Trapezoidal{40, 1000, 0.5, 0.1, 48000}, nil},
		{"zero plateau allowed", Trapezoidal{40, 1000, 0, 0.1, 48000}, nil},
		{"zero amplitude", Trapezoidal{0, 1000, 0.5, 0.1, 48000}, ErrInvalidAmplitude},
		{"zero frequency", Trapezoidal{40, 0, 0.5, 0.1, 48000}, ErrInvalidFrequency},
		{"negative plateau", Trapezoidal{40, 1000, -0.1, 0.1, 48000}, ErrInvalidPlateau},
		{"plateau of one", Trapezoidal{40, 1000, 1, 0.1, 48000}, ErrInvalidPlateau},
		{"zero duration", Trapezoidal{40, 1000, 0.5, 0, 48000}, ErrInvalidDuration},
		{"zero sample rate", Trapezoidal{40, 1000, 0.5, 0.1, 0}, ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.wave.Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSinusoidalGenerate(t *testing.T) {
	s := &Sinusoidal{
		Amplitude:  40,
		Frequency:  128,
		Duration:   1,
		SampleRate: 4096,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(series) != 4096 {
		t.Errorf("length = %d, want 4096", len(series))
	}

	// First sample is sin(0) = 0.
	if series[0] != 0 {
		t.Errorf("first sample = %g, want 0", series[0])
	}

	peak := 0.0

	for i, v := range series {
		if math.Abs(v) > 40.0001 {
			t.Fatalf("sample[%d] = %f, out of [-40, 40] range", i, v)
		}

		if math.Abs(v) > peak {
			peak = math.Abs(v)
		}
	}

	// 4096/128 = 32 samples per period, so the grid hits the crest.
	if math.Abs(peak-40) > 1e-9 {
		t.Errorf("peak = %v, want 40", peak)
	}
}

func TestSinusoidalMatchesReferenceSine(t *testing.T) {
	s := &Sinusoidal{
		Amplitude:  40,
		Frequency:  128,
		Duration:   1,
		SampleRate: 4096,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	ref := testutil.SineRates(128, 4096, 40, 4096)
	testutil.RequireSliceNearlyEqual(t, series, ref, 1e-9)
}

func TestSinusoidalGenerateInvalid(t *testing.T) {
	s := &Sinusoidal{Amplitude: 0, Frequency: 128, Duration: 1, SampleRate: 4096}

	series, err := s.Generate()
	if err != ErrInvalidAmplitude {
		t.Errorf("Generate() error = %v, want %v", err, ErrInvalidAmplitude)
	}

	if series != nil {
		t.Errorf("Generate() = %v, want nil", series)
	}
}

func TestTrapezoidalGenerate(t *testing.T) {
	// Period 1/128 s at 65536 Hz puts every segment edge exactly on
	// the sample grid: 512 samples per period, 128 per segment.
	s := &Trapezoidal{
		Amplitude:       40,
		Frequency:       128,
		PlateauFraction: 0.5,
		Duration:        0.078125, // 10 periods
		SampleRate:      65536,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(series) != 5120 {
		t.Fatalf("length = %d, want 5120", len(series))
	}

	if series[0] != 40 {
		t.Errorf("first sample = %g, want 40 (ramp up)", series[0])
	}

	var pos, neg, zero int

	for i, v := range series {
		switch v {
		case 40:
			pos++
		case -40:
			neg++
		case 0:
			zero++
		default:
			t.Fatalf("sample[%d] = %g, want one of {40, 0, -40}", i, v)
		}
	}

	if pos != 1280 || neg != 1280 || zero != 2560 {
		t.Errorf("segment counts = +%d/0:%d/-%d, want +1280/0:2560/-1280", pos, zero, neg)
	}
}

func TestTrapezoidalGenerateTriangle(t *testing.T) {
	s := &Trapezoidal{
		Amplitude:       40,
		Frequency:       128,
		PlateauFraction: 0,
		Duration:        0.078125,
		SampleRate:      65536,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	var pos, neg int

	for i, v := range series {
		switch v {
		case 40:
			pos++
		case -40:
			neg++
		default:
			t.Fatalf("sample[%d] = %g, want one of {40, -40}", i, v)
		}
	}

	// Zero plateau never stops slewing, so samples split evenly.
	if pos != 2560 || neg != 2560 {
		t.Errorf("segment counts = +%d/-%d, want +2560/-2560", pos, neg)
	}
}

func TestTrapezoidalGenerateInvalid(t *testing.T) {
	s := &Trapezoidal{Amplitude: 40, Frequency: 128, PlateauFraction: 1, Duration: 1, SampleRate: 4096}

	series, err := s.Generate()
	if err != ErrInvalidPlateau {
		t.Errorf("Generate() error = %v, want %v", err, ErrInvalidPlateau)
	}

	if series != nil {
		t.Errorf("Generate() = %v, want nil", series)
	}
}

func TestStats(t *testing.T) {
	got, err := Stats([]float64{3, -4, 0, 4, -3})
	if err != nil {
		t.Fatal(err)
	}

	if got.Peak != 4 {
		t.Errorf("Peak = %v, want 4", got.Peak)
	}

	if got.Mean != 2.8 {
		t.Errorf("Mean = %v, want 2.8", got.Mean)
	}

	if got.RMS != math.Sqrt(10) {
		t.Errorf("RMS = %v, want sqrt(10)", got.RMS)
	}
}

func TestStatsEmpty(t *testing.T) {
	got, err := Stats(nil)
	if err != ErrEmptySeries {
		t.Errorf("Stats(nil) error = %v, want %v", err, ErrEmptySeries)
	}

	if got != (RateStats{}) {
		t.Errorf("Stats(nil) = %+v, want zero stats", got)
	}
}

func TestStatsNoiseOrdering(t *testing.T) {
	series := testutil.NoiseRates(42, 35, 4096)
	testutil.RequireFinite(t, series)

	got, err := Stats(series)
	if err != nil {
		t.Fatal(err)
	}

	// Power-mean ordering: mean |x| <= rms <= peak, strict for any
	// series that is not constant in magnitude.
	if !(got.Mean < got.RMS && got.RMS < got.Peak) {
		t.Errorf("expected Mean < RMS < Peak, got %+v", got)
	}

	if got.Peak > 35 {
		t.Errorf("Peak = %v, above noise amplitude 35", got.Peak)
	}
}

func TestStatsTrapezoid(t *testing.T) {
	s := &Trapezoidal{
		Amplitude:       40,
		Frequency:       128,
		PlateauFraction: 0.5,
		Duration:        0.078125,
		SampleRate:      65536,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Stats(series)
	if err != nil {
		t.Fatal(err)
	}

	if got.Peak != 40 {
		t.Errorf("Peak = %v, want 40", got.Peak)
	}

	// Half the samples slew at |A|, half sit at zero.
	if got.Mean != 20 {
		t.Errorf("Mean = %v, want 20", got.Mean)
	}

	if got.RMS != math.Sqrt(800) {
		t.Errorf("RMS = %v, want sqrt(800)", got.RMS)
	}
}

func TestSpectrumSine(t *testing.T) {
	s := &Sinusoidal{
		Amplitude:  40,
		Frequency:  128,
		Duration:   1,
		SampleRate: 4096,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	info, err := Spectrum(series, 4096)
	if err != nil {
		t.Fatal(err)
	}

	// 4096 samples at 4096 Hz: 1 Hz bins, tone exactly on bin 128.
	if info.BinWidth != 1 {
		t.Errorf("BinWidth = %v, want 1", info.BinWidth)
	}

	if info.DominantFrequency != 128 {
		t.Errorf("DominantFrequency = %v, want 128", info.DominantFrequency)
	}

	if info.PeakMagnitude <= 0 {
		t.Errorf("PeakMagnitude = %v, want > 0", info.PeakMagnitude)
	}
}

func TestSpectrumPadded(t *testing.T) {
	s := &Sinusoidal{
		Amplitude:  1,
		Frequency:  100,
		Duration:   0.75,
		SampleRate: 1000,
	}

	series, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	if len(series) != 750 {
		t.Fatalf("length = %d, want 750", len(series))
	}

	info, err := Spectrum(series, 1000)
	if err != nil {
		t.Fatal(err)
	}

	// 750 samples pad to 1024 bins, so the tone falls between bins.
	if info.BinWidth != 1000.0/1024.0 {
		t.Errorf("BinWidth = %v, want %v", info.BinWidth, 1000.0/1024.0)
	}

	if math.Abs(info.DominantFrequency-100) > 1 {
		t.Errorf("DominantFrequency = %v, want 100 +- 1", info.DominantFrequency)
	}
}

func TestSpectrumExcludesDC(t *testing.T) {
	// A constant rate offset carries all its energy in bin 0, which the
	// peak scan skips, so nothing dominant remains.
	info, err := Spectrum(testutil.ConstantRates(25, 1024), 1024)
	if err != nil {
		t.Fatal(err)
	}

	if info.PeakMagnitude > 1e-9 {
		t.Errorf("PeakMagnitude = %v, want ~0 with the DC bin excluded", info.PeakMagnitude)
	}
}

func TestSpectrumErrors(t *testing.T) {
	if _, err := Spectrum(nil, 4096); err != ErrEmptySeries {
		t.Errorf("Spectrum(nil) error = %v, want %v", err, ErrEmptySeries)
	}

	if _, err := Spectrum([]float64{1}, 4096); err != ErrShortSeries {
		t.Errorf("Spectrum(one sample) error = %v, want %v", err, ErrShortSeries)
	}

	if _, err := Spectrum([]float64{1, 2, 3}, 0); err != ErrInvalidSampleRate {
		t.Errorf("Spectrum(rate=0) error = %v, want %v", err, ErrInvalidSampleRate)
	}
}

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{750, 1024},
		{1024, 1024},
		{4097, 8192},
	}

	for _, tt := range tests {
		if got := nextPowerOf2(tt.n); got != tt.want {
			t.Errorf("nextPowerOf2(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
