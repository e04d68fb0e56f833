package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the FARS
// read/summarize/plot operations.
type Metrics struct {
	FilesRead  prometheus.Counter
	RowsParsed prometheus.Counter
	ReadErrors prometheus.Counter

	// Aggregation metrics.
	YearsSkipped      prometheus.Counter
	SummarizeDuration prometheus.Histogram

	// Plotting metrics.
	PlotsRendered prometheus.Counter
	PlotsSkipped  prometheus.Counter
}

// New creates the metric set and, when reg is non-nil, registers it there.
// Library consumers that do not scrape metrics pass nil and pay nothing.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "files_read_total",
			Help:      "Total accident files successfully read and parsed.",
		}),
		RowsParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "rows_parsed_total",
			Help:      "Total accident records parsed across all files.",
		}),
		ReadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "read_errors_total",
			Help:      "Total failed file reads (missing files, bad headers, parse errors).",
		}),
		YearsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "years_skipped_total",
			Help:      "Years dropped from a multi-year read because their file failed to load.",
		}),
		SummarizeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fars",
			Name:      "summarize_duration_seconds",
			Help:      "Duration of a complete multi-year summarize call.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		PlotsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "plots_rendered_total",
			Help:      "State maps actually drawn.",
		}),
		PlotsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fars",
			Name:      "plots_skipped_total",
			Help:      "State map requests that matched no plottable accidents.",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.FilesRead,
			m.RowsParsed,
			m.ReadErrors,
			m.YearsSkipped,
			m.SummarizeDuration,
			m.PlotsRendered,
			m.PlotsSkipped,
		)
	}

	return m
}
