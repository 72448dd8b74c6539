package induction

import (
	"errors"
	"math"
)

// ErrInvalidGeometry is returned when an ellipsoid semi-axis is not positive.
var ErrInvalidGeometry = errors.New("induction: ellipsoid semi-axes must be positive")

// Ellipsoid describes a conducting ellipsoid by its semi-axis lengths in
// meters. The magnetic field is assumed parallel to the B axis.
type Ellipsoid struct {
	A float64 // lateral semi-axis
	B float64 // anterior-posterior semi-axis (field axis)
	C float64 // superior-inferior semi-axis
}

// HeadEllipsoid returns the approximate adult head/brain model:
// 9 cm lateral, 9 cm anterior-posterior, 6.5 cm superior-inferior.
func HeadEllipsoid() Ellipsoid {
	return Ellipsoid{A: 0.09, B: 0.09, C: 0.065}
}

// Validate checks that all semi-axes are positive.
func (e Ellipsoid) Validate() error {
	if e.A <= 0 || e.B <= 0 || e.C <= 0 {
		return ErrInvalidGeometry
	}

	return nil
}

// CrossSection returns the area of the largest conducting loop, the
// π*a*c ellipse perpendicular to the field axis, in m².
func (e Ellipsoid) CrossSection() float64 {
	return math.Pi * e.A * e.C
}

// MaxRadius returns the largest distance from the field axis within the
// a-c plane, in meters.
func (e Ellipsoid) MaxRadius() float64 {
	return math.Max(e.A, e.C)
}
