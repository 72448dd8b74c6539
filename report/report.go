// Package report renders completed sweeps as console reports and CSV
// exports.
//
// The console layout follows the reference calculator output: a banner
// and parameter block, three windows into the result table, summary
// statistics, safety context, and advisory banners for high static
// fields and nerve-stimulation classifications. The batch variant uses
// 80-column rules, the interactive variant 60-column rules.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/bioeffect"
	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
)

// HighFieldBMax is the static field strength, in T, that triggers the
// high-field caution banner.
const HighFieldBMax = 7.0

const (
	wideRule   = 80
	narrowRule = 60

	// windowRows is how many table rows each results window shows.
	windowRows = 10
)

// errWriter stops writing after the first error and remembers it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}

	n, err := ew.w.Write(p)
	ew.err = err

	return n, err
}

func rule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// section writes a blank line, then the title between two rules.
func section(w io.Writer, width int, title string) {
	fmt.Fprintln(w)
	rule(w, width)
	fmt.Fprintln(w, title)
	rule(w, width)
}

// Render writes the full batch report for a completed sweep.
func Render(w io.Writer, cfg sweep.Config, table sweep.Table) error {
	ew := &errWriter{w: w}
	sum := sweep.Summarize(table)

	rule(ew, wideRule)
	fmt.Fprintln(ew, "MRI INDUCED VOLTAGE CALCULATOR")
	rule(ew, wideRule)

	fmt.Fprintln(ew, "\nEllipsoid Parameters:")
	fmt.Fprintf(ew, "  Semi-axis a (lateral): %.1f cm\n", cfg.Geometry.A*100)
	fmt.Fprintf(ew, "  Semi-axis b (anterior-posterior): %.1f cm\n", cfg.Geometry.B*100)
	fmt.Fprintf(ew, "  Semi-axis c (superior-inferior): %.1f cm\n", cfg.Geometry.C*100)
	fmt.Fprintf(ew, "  Maximum cross-sectional area: %.2f cm²\n", cfg.Geometry.CrossSection()*10000)

	fmt.Fprintln(ew, "\nMagnetic Field Parameters:")
	fmt.Fprintln(ew, "  B field orientation: Parallel to y-axis (patient lying down)")
	fmt.Fprintf(ew, "  Maximum field strength (B_MAX): %g T\n", cfg.BMax)
	fmt.Fprintf(ew, "  Rate of change increment: %g T/s\n", cfg.Increment())
	fmt.Fprintf(ew, "  Number of test points: %d\n", cfg.Steps)
	rule(ew, wideRule)

	section(ew, wideRule, "RESULTS - First 10 values:")

	if err := writeWindow(ew, head(table, windowRows)); err != nil {
		return err
	}

	midRate := float64(cfg.Steps/2) * cfg.Increment()
	section(ew, wideRule, fmt.Sprintf("RESULTS - Middle 10 values (around %.3f T/s):", midRate))

	if err := writeWindow(ew, middle(table, windowRows)); err != nil {
		return err
	}

	section(ew, wideRule, "RESULTS - Last 10 values:")

	if err := writeWindow(ew, tail(table, windowRows)); err != nil {
		return err
	}

	section(ew, wideRule, "SUMMARY STATISTICS:")
	fmt.Fprintf(ew, "Maximum dB/dt tested: %.3f T/s\n", sum.MaxRate)
	fmt.Fprintf(ew, "Maximum induced voltage: %.6f V\n", sum.MaxVoltage)
	fmt.Fprintf(ew, "Maximum E-field: %.6f V/m\n", sum.MaxEField)
	fmt.Fprintf(ew, "Maximum current density: %.6f A/m²\n", sum.MaxCurrentDensity)

	if lines := advisoryLines(cfg.BMax, sum.Level()); len(lines) > 0 {
		fmt.Fprintln(ew)

		for _, line := range lines {
			fmt.Fprintln(ew, line)
		}
	}

	section(ew, wideRule, "SAFETY CONTEXT:")
	fmt.Fprintln(ew, "Typical MRI gradient slew rates: 20-200 T/m/s")
	fmt.Fprintln(ew, "Peripheral nerve stimulation threshold: ~20-80 V/m (depends on pulse duration)")
	fmt.Fprintln(ew, "FDA limit for dB/dt: Varies by pulse duration and location")
	rule(ew, wideRule)

	return ew.err
}

// RenderBanner writes the interactive-variant banner.
func RenderBanner(w io.Writer) error {
	ew := &errWriter{w: w}

	rule(ew, narrowRule)
	fmt.Fprintln(ew, "MRI INDUCED VOLTAGE CALCULATOR - I/O SCRIPT")
	rule(ew, narrowRule)

	return ew.err
}

// RenderParameters writes the interactive-variant parameter block.
func RenderParameters(w io.Writer, cfg sweep.Config) error {
	ew := &errWriter{w: w}

	section(ew, narrowRule, "SIMULATION PARAMETERS")
	fmt.Fprintln(ew, "Ellipsoid dimensions:")
	fmt.Fprintf(ew, "  a (lateral): %.1f cm\n", cfg.Geometry.A*100)
	fmt.Fprintf(ew, "  b (anterior-posterior): %.1f cm\n", cfg.Geometry.B*100)
	fmt.Fprintf(ew, "  c (superior-inferior): %.1f cm\n", cfg.Geometry.C*100)
	fmt.Fprintf(ew, "  Cross-sectional area (a*c): %.2f cm²\n", cfg.Geometry.CrossSection()*10000)
	fmt.Fprintln(ew, "\nB field orientation: Parallel to y-axis (patient lying down)")
	fmt.Fprintf(ew, "Maximum B field: %g T\n", cfg.BMax)
	fmt.Fprintf(ew, "Maximum dB/dt: %g T/s\n", cfg.MaxRate)
	fmt.Fprintf(ew, "Number of steps: %d\n", cfg.Steps)
	fmt.Fprintf(ew, "dB/dt increment: %.6f T/s\n", cfg.Increment())
	rule(ew, narrowRule)

	return ew.err
}

// RenderSummary writes the interactive-variant summary block.
func RenderSummary(w io.Writer, sum sweep.Summary) error {
	ew := &errWriter{w: w}

	section(ew, narrowRule, "SUMMARY")
	fmt.Fprintf(ew, "Maximum dB/dt: %.6f T/s\n", sum.MaxRate)
	fmt.Fprintf(ew, "Maximum induced voltage: %.6f V\n", sum.MaxVoltage)
	fmt.Fprintf(ew, "Maximum E-field: %.6f V/m\n", sum.MaxEField)
	fmt.Fprintf(ew, "Maximum current density: %.6f A/m²\n", sum.MaxCurrentDensity)
	rule(ew, narrowRule)

	return ew.err
}

// RenderAdvisory writes the high-field caution and the bioeffect
// classification banners. Nothing is written when neither applies.
func RenderAdvisory(w io.Writer, bMax float64, level bioeffect.Level) error {
	ew := &errWriter{w: w}

	for _, line := range advisoryLines(bMax, level) {
		fmt.Fprintln(ew, line)
	}

	return ew.err
}

// advisoryLines builds the caution and classification banner lines.
// Levels outside the modeled bands produce no banner; the numeric
// summary still carries the values.
func advisoryLines(bMax float64, level bioeffect.Level) []string {
	var lines []string

	if bMax == HighFieldBMax {
		lines = append(lines, "***Caution! High Field***")
	}

	switch level {
	case bioeffect.LevelNeuromodulation:
		lines = append(lines, "Subtle Neuromodulation")
	case bioeffect.LevelTingling:
		lines = append(lines,
			"***PERIPHERAL NERVE STIMULATION***",
			"!!! Sensory Perception - tingling !!!")
	case bioeffect.LevelPainful:
		lines = append(lines,
			"***PERIPHERAL NERVE STIMULATION***",
			"!!! Sensory Perception - PAINFUL !!!")
	}

	return lines
}

// writeWindow renders a slice of the table in the console column
// layout.
func writeWindow(w io.Writer, rows sweep.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "dB/dt (T/s)\tInduced Voltage (V)\tMax E-field (V/m)\tMax Current Density (A/m²)\tPower Density (W/m³)\n")
	fmt.Fprintf(tw, "-----------\t-------------------\t-----------------\t--------------------------\t-------------------\n")

	for _, r := range rows {
		fmt.Fprintf(tw, "%.3f\t%.6f\t%.6f\t%.6f\t%.6f\n",
			r.Rate, r.Voltage, r.EField, r.CurrentDensity, r.PowerDensity)
	}

	return tw.Flush()
}

// head returns the first n records, or the whole table when shorter.
func head(t sweep.Table, n int) sweep.Table {
	if len(t) <= n {
		return t
	}

	return t[:n]
}

// tail returns the last n records, or the whole table when shorter.
func tail(t sweep.Table, n int) sweep.Table {
	if len(t) <= n {
		return t
	}

	return t[len(t)-n:]
}

// middle returns n records centered on the sweep midpoint.
func middle(t sweep.Table, n int) sweep.Table {
	if len(t) <= n {
		return t
	}

	start := (len(t)-1)/2 - n/2
	if start < 0 {
		start = 0
	}

	end := start + n
	if end > len(t) {
		end = len(t)
	}

	return t[start:end]
}
