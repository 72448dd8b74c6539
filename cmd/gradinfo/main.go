// Command gradinfo prints switching-rate properties of MRI gradient
// drive waveforms and the head-model exposure they imply.
//
// Usage:
//
//	gradinfo [flags]
//
// Examples:
//
//	gradinfo -shape sine -amplitude 40 -freq 1000
//	gradinfo -shape trapezoid -plateau 0.5
//	gradinfo -bands
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/bioeffect"
	"github.com/luc-lgtm/MRI-EM-Threshold/em/gradient"
	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
)

func main() {
	shape := flag.String("shape", "sine", "waveform shape: sine or trapezoid")
	amplitude := flag.Float64("amplitude", 40, "peak switching rate in T/s")
	freq := flag.Float64("freq", 1000, "drive frequency in Hz")
	plateau := flag.Float64("plateau", 0.5, "zero-rate fraction of each period (trapezoid only)")
	duration := flag.Float64("duration", 0.1, "waveform duration in seconds")
	rate := flag.Float64("rate", 100000, "sample rate in Hz")
	bands := flag.Bool("bands", false, "list the bioeffect classification bands and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gradinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints switching-rate statistics and the dominant switching\n")
		fmt.Fprintf(os.Stderr, "frequency of a gradient drive waveform, plus the induced-field\n")
		fmt.Fprintf(os.Stderr, "exposure its peak rate implies for the reference head model.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gradinfo -shape sine -amplitude 40 -freq 1000\n")
		fmt.Fprintf(os.Stderr, "  gradinfo -shape trapezoid -plateau 0.5\n")
		fmt.Fprintf(os.Stderr, "  gradinfo -bands\n")
	}
	flag.Parse()

	if *bands {
		printBands()
		return
	}

	series, err := generate(*shape, *amplitude, *freq, *plateau, *duration, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	stats, err := gradient.Stats(series)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	info, err := gradient.Spectrum(series, *rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printWaveform(*shape, stats, info)
	printExposure(stats.Peak)
}

// generate builds the sample series for the chosen shape.
func generate(shape string, amplitude, freq, plateau, duration, rate float64) ([]float64, error) {
	switch shape {
	case "sine":
		s := &gradient.Sinusoidal{
			Amplitude:  amplitude,
			Frequency:  freq,
			Duration:   duration,
			SampleRate: rate,
		}

		return s.Generate()
	case "trapezoid":
		s := &gradient.Trapezoidal{
			Amplitude:       amplitude,
			Frequency:       freq,
			PlateauFraction: plateau,
			Duration:        duration,
			SampleRate:      rate,
		}

		return s.Generate()
	default:
		return nil, fmt.Errorf("unknown shape %q (want sine or trapezoid)", shape)
	}
}

func printWaveform(shape string, stats gradient.RateStats, info gradient.SpectrumInfo) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Waveform\tPeak [T/s]\tRMS [T/s]\tMean [T/s]\tDominant [Hz]\tBin Width [Hz]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "--------\t----------\t---------\t----------\t-------------\t--------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	if _, err := fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.2f\t%.4f\n",
		shape,
		stats.Peak,
		stats.RMS,
		stats.Mean,
		info.DominantFrequency,
		info.BinWidth,
	); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// printExposure runs the reference head-model sweep up to the peak
// rate and prints the resulting maxima and classification.
func printExposure(peak float64) {
	cfg := sweep.DefaultConfig()
	cfg.MaxRate = peak

	table, err := sweep.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sum := sweep.Summarize(table)

	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Max Voltage [V]\tMax E-field [V/m]\tMax Current [A/m²]\tMax Power [W/m³]\tBioeffect\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "---------------\t-----------------\t------------------\t----------------\t---------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	if _, err := fmt.Fprintf(tw, "%.6f\t%.6f\t%.6f\t%.6f\t%s\n",
		sum.MaxVoltage,
		sum.MaxEField,
		sum.MaxCurrentDensity,
		sum.MaxPowerDensity,
		sum.Level(),
	); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
		return
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printBands() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Upper Edge [V/m]\tLevel\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, b := range bioeffect.Bands() {
		if _, err := fmt.Fprintf(tw, "%.1f\t%s\n", b.Upper, b.Level); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}

	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
