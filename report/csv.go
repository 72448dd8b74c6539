package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
)

// BatchFilename is the fixed export name used by the batch command.
const BatchFilename = "mri_induced_voltage_results.csv"

// Columns is the CSV export schema, one entry per column, in order.
var Columns = []string{
	"Step",
	"dB/dt (T/s)",
	"Induced Voltage (V)",
	"Max E-field (V/m)",
	"Max Current Density (A/m²)",
	"Power Density (W/m³)",
}

// Filename derives the interactive-variant export name from the sweep
// bounds, embedding both parameters.
func Filename(maxRate, bMax float64) string {
	return fmt.Sprintf("mri_results_dBdt_%gTs_Bmax_%gT.csv", maxRate, bMax)
}

// WriteCSV writes the table in the export schema, header row first.
// Floats use the shortest representation that round-trips, so equal
// tables export byte-identical files.
func WriteCSV(w io.Writer, table sweep.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("report: failed to write CSV header: %w", err)
	}

	row := make([]string, len(Columns))

	for _, r := range table {
		row[0] = strconv.Itoa(r.Step)
		row[1] = strconv.FormatFloat(r.Rate, 'g', -1, 64)
		row[2] = strconv.FormatFloat(r.Voltage, 'g', -1, 64)
		row[3] = strconv.FormatFloat(r.EField, 'g', -1, 64)
		row[4] = strconv.FormatFloat(r.CurrentDensity, 'g', -1, 64)
		row[5] = strconv.FormatFloat(r.PowerDensity, 'g', -1, 64)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: failed to write CSV row %d: %w", r.Step, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// SaveCSV writes the table to name inside dir and returns the full
// path of the written file.
func SaveCSV(dir, name string, table sweep.Table) (string, error) {
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report: failed to create %s: %w", path, err)
	}

	if err := WriteCSV(f, table); err != nil {
		f.Close()

		return "", err
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("report: failed to close %s: %w", path, err)
	}

	return path, nil
}
