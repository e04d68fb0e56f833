// Command fars is a one-shot CLI over the fars library. It either prints a
// month-by-year accident count table or renders one state's accidents as a
// map image.
//
// Usage:
//
//	fars -dir data -years 2013,2014,2015
//	fars -dir data -state 48 -year 2013 -out texas_2013.png
//
// Defaults come from the environment (FARS_DATA_DIR, FARS_PLOT_OUT,
// FARS_PLOT_SIZE, LOG_LEVEL, LOG_FORMAT); flags override.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/fars"
	"github.com/couchcryptid/fars/geoplot"
	"github.com/couchcryptid/fars/internal/config"
	"github.com/couchcryptid/fars/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	dir := flag.String("dir", cfg.DataDir, "directory containing accident_<year>.csv.bz2 files")
	years := flag.String("years", "", "comma-separated years to summarize")
	state := flag.Int("state", -1, "FIPS state number to map")
	year := flag.Int("year", 0, "year to map (with -state)")
	out := flag.String("out", cfg.PlotOut, "output image path for -state/-year")
	flag.Parse()

	if err := run(logger, cfg, *dir, *years, *state, *year, *out); err != nil {
		logger.Error("fars failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, cfg *config.Config, dir, years string, state, year int, out string) error {
	switch {
	case years != "":
		return summarize(logger, dir, years)
	case state >= 0 && year != 0:
		return mapState(logger, cfg, dir, state, year, out)
	default:
		flag.Usage()
		return errors.New("nothing to do: pass -years, or -state with -year")
	}
}

func summarize(logger *slog.Logger, dir, years string) error {
	parsed, err := parseYears(years)
	if err != nil {
		return err
	}

	sess := fars.NewSession(
		fars.WithDir(dir),
		fars.WithLogger(logger),
		fars.WithMetricsRegistry(prometheus.DefaultRegisterer),
	)

	summary := sess.SummarizeYears(parsed...)
	if summary.Empty() {
		logger.Warn("no years could be loaded", "years", years)
	}
	return summary.WriteCSV(os.Stdout)
}

func mapState(logger *slog.Logger, cfg *config.Config, dir string, state, year int, out string) error {
	sess := fars.NewSession(
		fars.WithDir(dir),
		fars.WithLogger(logger),
		fars.WithRenderer(geoplot.New(out, cfg.PlotSize, logger)),
		fars.WithMetricsRegistry(prometheus.DefaultRegisterer),
	)

	drawn, err := sess.MapState(state, year)
	if err != nil {
		var invalid *fars.InvalidStateError
		if errors.As(err, &invalid) {
			return fmt.Errorf("state %d is not present in %d's data: %w", invalid.State, year, err)
		}
		return err
	}
	if !drawn {
		// Empty selection: MapState already logged why. Not a failure.
		logger.Info("no map written", "state", state, "year", year)
	}
	return nil
}

func parseYears(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		y, err := fars.ParseYear(part)
		if err != nil {
			return nil, err
		}
		years = append(years, y)
	}
	return years, nil
}
