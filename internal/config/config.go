// Package config loads batch-command settings from environment
// variables, falling back to the reference sweep defaults.
package config

import (
	"github.com/spf13/viper"

	"github.com/luc-lgtm/MRI-EM-Threshold/em/sweep"
)

// Config holds the batch command settings.
type Config struct {
	MaxRate   float64 // largest dB/dt tested, in T/s
	BMax      float64 // static field strength, in T
	Steps     int     // sweep increments
	OutputDir string  // directory CSV exports are written to
	SaveCSV   bool    // write the CSV export without asking
}

// Load reads settings from the environment. Unset variables take the
// reference defaults; values are not validated here, the sweep
// configuration rejects bad ones before any computation.
func Load() (*Config, error) {
	def := sweep.DefaultConfig()

	viper.SetDefault("MRI_MAX_DBDT", def.MaxRate)
	viper.SetDefault("MRI_BMAX", def.BMax)
	viper.SetDefault("MRI_STEPS", def.Steps)
	viper.SetDefault("MRI_OUTPUT_DIR", ".")
	viper.SetDefault("MRI_SAVE_CSV", false)

	viper.AutomaticEnv()

	viper.BindEnv("MRI_MAX_DBDT")
	viper.BindEnv("MRI_BMAX")
	viper.BindEnv("MRI_STEPS")
	viper.BindEnv("MRI_OUTPUT_DIR")
	viper.BindEnv("MRI_SAVE_CSV")

	cfg := &Config{
		MaxRate:   viper.GetFloat64("MRI_MAX_DBDT"),
		BMax:      viper.GetFloat64("MRI_BMAX"),
		Steps:     viper.GetInt("MRI_STEPS"),
		OutputDir: viper.GetString("MRI_OUTPUT_DIR"),
		SaveCSV:   viper.GetBool("MRI_SAVE_CSV"),
	}

	return cfg, nil
}

// SweepConfig converts the loaded settings into a sweep configuration
// with the reference geometry and conductivity.
func (c *Config) SweepConfig() sweep.Config {
	out := sweep.DefaultConfig()
	out.MaxRate = c.MaxRate
	out.BMax = c.BMax
	out.Steps = c.Steps

	return out
}
