package induction

import "math"

// DefaultConductivity is the brain tissue conductivity approximation in S/m.
const DefaultConductivity = 0.33

// InducedVoltage returns the EMF in volts induced around the largest
// conducting loop of an ellipsoid with semi-axes a, b, c (meters) by a
// field changing at rate (T/s).
//
// Only the a-c cross-section enters the formula; b is accepted for
// interface symmetry because the field is oriented along the b-axis.
func InducedVoltage(rate, a, b, c float64) float64 {
	_ = b
	area := math.Pi * a * c

	return math.Abs(rate) * area
}

// MaxElectricField returns the peak induced electric field in V/m,
// reached at the largest radius from the field axis:
//
//	E = (max(a,c)/2) * |dB/dt|
func MaxElectricField(rate, a, c float64) float64 {
	return math.Max(a, c) / 2 * math.Abs(rate)
}

// CurrentDensity returns the tissue current density J = σE in A/m².
func CurrentDensity(eField, sigma float64) float64 {
	return sigma * eField
}

// PowerDensity returns the dissipated power density P = σE² in W/m³.
func PowerDensity(eField, sigma float64) float64 {
	return sigma * eField * eField
}

// Analysis holds every induced quantity evaluated at a single rate of
// field change.
type Analysis struct {
	// Voltage is the EMF around the largest conducting loop in V.
	Voltage float64
	// EField is the peak induced electric field in V/m.
	EField float64
	// CurrentDensity is the peak tissue current density in A/m².
	CurrentDensity float64
	// PowerDensity is the dissipated power density in W/m³.
	PowerDensity float64
}

// Analyze evaluates all induced quantities for one rate of change (T/s),
// ellipsoid geometry, and tissue conductivity (S/m).
func Analyze(rate float64, e Ellipsoid, sigma float64) Analysis {
	eField := MaxElectricField(rate, e.A, e.C)

	return Analysis{
		Voltage:        InducedVoltage(rate, e.A, e.B, e.C),
		EField:         eField,
		CurrentDensity: CurrentDensity(eField, sigma),
		PowerDensity:   PowerDensity(eField, sigma),
	}
}
