package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all CLI settings, populated from environment variables.
// Flags may override individual fields after Load.
type Config struct {
	DataDir   string
	PlotOut   string
	PlotSize  float64 // square image side in inches
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	plotSize, err := parsePlotSize()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:   envOrDefault("FARS_DATA_DIR", "."),
		PlotOut:   envOrDefault("FARS_PLOT_OUT", "fars_map.png"),
		PlotSize:  plotSize,
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "json"),
	}

	return cfg, nil
}

func parsePlotSize() (float64, error) {
	s := envOrDefault("FARS_PLOT_SIZE", "6")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid FARS_PLOT_SIZE %q: must be a positive number of inches", s)
	}
	return v, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
