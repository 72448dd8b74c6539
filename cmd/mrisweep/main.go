// Command mrisweep prints the induced-field report for a linear dB/dt
// sweep over the reference head model.
//
// Usage:
//
//	mrisweep [flags]
//
// Defaults come from the environment (MRI_MAX_DBDT, MRI_BMAX,
// MRI_STEPS, MRI_OUTPUT_DIR, MRI_SAVE_CSV); flags override.
//
// Examples:
//
//	mrisweep
//	mrisweep -max-dbdt 10 -steps 200
//	mrisweep -csv -out /tmp
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
	"github.com/luc-lgtm/MRI-EM-Threshold/internal/config"
	"github.com/luc-lgtm/MRI-EM-Threshold/report"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	maxRate := flag.Float64("max-dbdt", env.MaxRate, "largest dB/dt tested in T/s")
	bMax := flag.Float64("bmax", env.BMax, "static field strength in T")
	steps := flag.Int("steps", env.Steps, "number of sweep increments")
	saveCSV := flag.Bool("csv", env.SaveCSV, "write the CSV export")
	outDir := flag.String("out", env.OutputDir, "directory for the CSV export")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mrisweep [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the induced voltage, E-field, current density and power\n")
		fmt.Fprintf(os.Stderr, "density for a linear dB/dt sweep over an ellipsoidal head model.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mrisweep\n")
		fmt.Fprintf(os.Stderr, "  mrisweep -max-dbdt 10 -steps 200\n")
		fmt.Fprintf(os.Stderr, "  mrisweep -csv -out /tmp\n")
	}
	flag.Parse()

	cfg := sweep.DefaultConfig()
	cfg.MaxRate = *maxRate
	cfg.BMax = *bMax
	cfg.Steps = *steps

	runID := uuid.New().String()
	log.Info().
		Str("run_id", runID).
		Float64("max_dbdt", cfg.MaxRate).
		Float64("bmax", cfg.BMax).
		Int("steps", cfg.Steps).
		Msg("starting sweep")

	table, err := sweep.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.BMax == report.HighFieldBMax {
		log.Warn().Str("run_id", runID).Float64("bmax", cfg.BMax).Msg("high static field")
	}

	if err := report.Render(os.Stdout, cfg, table); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to render report: %v\n", err)
		os.Exit(1)
	}

	if *saveCSV {
		path, err := report.SaveCSV(*outDir, report.BatchFilename, table)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Results saved to %s\n", path)
		log.Info().Str("run_id", runID).Str("path", path).Int("rows", len(table)).Msg("CSV export written")
	}

	log.Info().Str("run_id", runID).Int("records", len(table)).Msg("sweep complete")
}
