// Package induction provides closed-form estimates of the electric
// quantities induced in an ellipsoidal conductor by a uniform magnetic
// field changing at a known rate.
//
// The model places the field along the ellipsoid's b-axis (a patient
// lying in the bore, field anterior-posterior). For a uniform field
// changing at rate dB/dt:
//
//   - The EMF around the largest conducting loop follows Faraday's law,
//     V = |dB/dt| * π * a * c, using the a-c cross-section perpendicular
//     to the field axis.
//   - The induced electric field grows with distance from the field
//     axis, peaking at the largest semi-axis: E = (max(a,c)/2) * |dB/dt|.
//   - Ohmic tissue response follows J = σE and P = σE².
//
// # Usage
//
// Evaluate all quantities at one rate of change:
//
//	head := induction.HeadEllipsoid()
//	a := induction.Analyze(5.0, head, induction.DefaultConductivity)
//	fmt.Println(a.Voltage, a.EField)
//
// The individual formulas are also exported for callers that sweep a
// rate range themselves.
package induction
