// Command mriprompt interactively runs the induced-field sweep. It
// prompts for the sweep bounds, re-prompting until both are positive
// numbers, then prints the parameter block, bioeffect advisory and
// summary, and always writes the CSV export named after the
// parameters.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
	"github.com/luc-lgtm/MRI-EM-Threshold/report"
)

// interactiveSteps is the fixed sweep resolution of this variant.
const interactiveSteps = 1000

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	in := bufio.NewScanner(stdin)

	if err := report.RenderBanner(stdout); err != nil {
		return err
	}

	maxRate, err := promptPositive(in, stdout, "\nEnter maximum dB/dt value (T/s): ", "dB/dt")
	if err != nil {
		return err
	}

	bMax, err := promptPositive(in, stdout, "Enter maximum B field strength (T): ", "B_max")
	if err != nil {
		return err
	}

	cfg := sweep.DefaultConfig()
	cfg.MaxRate = maxRate
	cfg.BMax = bMax
	cfg.Steps = interactiveSteps

	runID := uuid.New().String()
	log.Info().
		Str("run_id", runID).
		Float64("max_dbdt", cfg.MaxRate).
		Float64("bmax", cfg.BMax).
		Int("steps", cfg.Steps).
		Msg("starting sweep")

	if err := report.RenderParameters(stdout, cfg); err != nil {
		return err
	}

	table, err := sweep.Run(cfg)
	if err != nil {
		return err
	}

	sum := sweep.Summarize(table)

	if cfg.BMax == report.HighFieldBMax {
		log.Warn().Str("run_id", runID).Float64("bmax", cfg.BMax).Msg("high static field")
	}

	if err := report.RenderAdvisory(stdout, cfg.BMax, sum.Level()); err != nil {
		return err
	}

	if err := report.RenderSummary(stdout, sum); err != nil {
		return err
	}

	path, err := report.SaveCSV(".", report.Filename(cfg.MaxRate, cfg.BMax), table)
	if err != nil {
		return err
	}

	log.Info().Str("run_id", runID).Str("path", path).Int("rows", len(table)).Msg("CSV export written")

	fmt.Fprintf(stdout, "\n✓ Results saved to: %s\n", path)
	fmt.Fprintf(stdout, "✓ Total data points: %d\n", len(table))
	fmt.Fprintf(stdout, "\nSimulation complete! Check %s for detailed results.\n", path)

	return nil
}

// promptPositive reads a positive number, re-prompting until one is
// given. The name appears in the out-of-range error line.
func promptPositive(in *bufio.Scanner, out io.Writer, prompt, name string) (float64, error) {
	for {
		fmt.Fprint(out, prompt)

		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, err
			}

			return 0, io.ErrUnexpectedEOF
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(in.Text()), 64)
		if err != nil {
			fmt.Fprintln(out, "Error: Please enter a valid number.")
			continue
		}

		if v <= 0 {
			fmt.Fprintf(out, "Error: %s must be positive. Please try again.\n", name)
			continue
		}

		return v, nil
	}
}
