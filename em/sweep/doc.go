// Package sweep evaluates the induced-field head model over a linear
// ramp of magnetic field switching rates.
//
// A sweep tests Steps+1 equally spaced rates from zero to MaxRate
// inclusive:
//
//	rate_i = i * (MaxRate / Steps)    for i = 0..Steps
//
// and records the induced voltage, peak E-field, current density, and
// power density of every step in a Table. Each response column is a
// scalar or elementwise product of the rate column, so Run computes
// whole columns with block operations.
//
// # Usage
//
//	table, _ := sweep.Run(sweep.DefaultConfig())
//	sum := sweep.Summarize(table)
//	fmt.Printf("peak E-field: %.6f V/m (%s)\n", sum.MaxEField, sum.Level())
package sweep
