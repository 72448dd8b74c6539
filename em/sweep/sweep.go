package sweep

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/bioeffect"
	"github.com/luc-lgtm/MRI-EM-Threshold/em/induction"
)

// Errors returned by sweep configuration validation.
var (
	ErrInvalidMaxRate      = errors.New("sweep: max dB/dt must be positive")
	ErrInvalidSteps        = errors.New("sweep: step count must be at least 1")
	ErrInvalidBMax         = errors.New("sweep: B_max must be positive")
	ErrInvalidConductivity = errors.New("sweep: conductivity must be positive")
)

// Config describes a linear dB/dt sweep through the induced-field model.
type Config struct {
	MaxRate      float64             // largest switching rate tested, in T/s
	Steps        int                 // number of increments; Run emits Steps+1 records
	BMax         float64             // static field strength in T, advisory only
	Geometry     induction.Ellipsoid // conducting volume
	Conductivity float64             // tissue conductivity in S/m
}

// DefaultConfig returns the reference head-model sweep: 100 steps of
// 0.05 T/s up to 5 T/s inside a 7 T magnet.
func DefaultConfig() Config {
	return Config{
		MaxRate:      5.0,
		Steps:        100,
		BMax:         7.0,
		Geometry:     induction.HeadEllipsoid(),
		Conductivity: induction.DefaultConductivity,
	}
}

// Validate checks that the Config parameters are valid. BMax only
// feeds advisory output, but it still has to describe a real magnet.
func (c Config) Validate() error {
	if c.MaxRate <= 0 {
		return ErrInvalidMaxRate
	}

	if c.Steps < 1 {
		return ErrInvalidSteps
	}

	if c.BMax <= 0 {
		return ErrInvalidBMax
	}

	if c.Conductivity <= 0 {
		return ErrInvalidConductivity
	}

	return c.Geometry.Validate()
}

// Increment returns the dB/dt spacing between consecutive steps.
func (c Config) Increment() float64 {
	return c.MaxRate / float64(c.Steps)
}

// Record holds the model response at a single switching rate.
type Record struct {
	Step           int     // index in the sweep, 0..Steps
	Rate           float64 // dB/dt in T/s
	Voltage        float64 // induced EMF in V
	EField         float64 // peak electric field in V/m
	CurrentDensity float64 // peak current density in A/m²
	PowerDensity   float64 // dissipated power density in W/m³
}

// Table is an ordered sweep result, one Record per step.
type Table []Record

// Run evaluates the model at every step of the configured sweep.
//
// The rate column is the arithmetic progression
//
//	rate_i = i * (MaxRate / Steps)    for i = 0..Steps
//
// and the response columns follow from it blockwise: voltage scales the
// rates by the flux cross-section, E-field by half the maximum radius,
// current density scales the E-field by the conductivity, and power
// density is the elementwise product of current density and E-field.
// Run validates the configuration first and never returns a partial
// table.
func Run(cfg Config) (Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Steps + 1
	inc := cfg.Increment()

	rates := make([]float64, n)
	for i := range rates {
		rates[i] = float64(i) * inc
	}

	voltage := make([]float64, n)
	efield := make([]float64, n)
	current := make([]float64, n)
	power := make([]float64, n)

	vecmath.ScaleBlock(voltage, rates, cfg.Geometry.CrossSection())
	vecmath.ScaleBlock(efield, rates, cfg.Geometry.MaxRadius()/2)
	vecmath.ScaleBlock(current, efield, cfg.Conductivity)
	vecmath.MulBlock(power, current, efield)

	table := make(Table, n)
	for i := range table {
		table[i] = Record{
			Step:           i,
			Rate:           rates[i],
			Voltage:        voltage[i],
			EField:         efield[i],
			CurrentDensity: current[i],
			PowerDensity:   power[i],
		}
	}

	return table, nil
}

// Summary holds the column maxima of a sweep table.
type Summary struct {
	MaxRate           float64 // T/s
	MaxVoltage        float64 // V
	MaxEField         float64 // V/m
	MaxCurrentDensity float64 // A/m²
	MaxPowerDensity   float64 // W/m³
}

// Summarize scans a table and returns its column maxima. For the
// monotone progression Run produces this equals the last row, but the
// scan does not assume any ordering.
func Summarize(t Table) Summary {
	if len(t) == 0 {
		return Summary{}
	}

	s := Summary{
		MaxRate:           t[0].Rate,
		MaxVoltage:        t[0].Voltage,
		MaxEField:         t[0].EField,
		MaxCurrentDensity: t[0].CurrentDensity,
		MaxPowerDensity:   t[0].PowerDensity,
	}

	for _, r := range t[1:] {
		if r.Rate > s.MaxRate {
			s.MaxRate = r.Rate
		}

		if r.Voltage > s.MaxVoltage {
			s.MaxVoltage = r.Voltage
		}

		if r.EField > s.MaxEField {
			s.MaxEField = r.EField
		}

		if r.CurrentDensity > s.MaxCurrentDensity {
			s.MaxCurrentDensity = r.CurrentDensity
		}

		if r.PowerDensity > s.MaxPowerDensity {
			s.MaxPowerDensity = r.PowerDensity
		}
	}

	return s
}

// Level classifies the peak E-field reached anywhere in the sweep.
func (s Summary) Level() bioeffect.Level {
	return bioeffect.Classify(s.MaxEField)
}
