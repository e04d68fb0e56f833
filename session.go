package fars

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/couchcryptid/fars/internal/observability"
)

// Session ties a directory of yearly accident files to a logger, metrics,
// and a renderer. Sessions hold no open resources between calls; every
// operation opens, reads, and closes its own file.
type Session struct {
	dir      string
	logger   *slog.Logger
	metrics  *observability.Metrics
	renderer StateRenderer
}

// Option configures a Session.
type Option func(*Session)

// WithDir sets the directory containing accident_<year>.csv.bz2 files.
// Defaults to the current directory.
func WithDir(dir string) Option {
	return func(s *Session) { s.dir = dir }
}

// WithLogger sets the logger used for per-year warnings and informational
// messages. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithRenderer sets the map renderer used by MapState.
func WithRenderer(r StateRenderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithMetricsRegistry registers the session's metrics with reg. Without
// this option metrics are still collected but not exported anywhere.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(s *Session) { s.metrics = observability.New(reg) }
}

// NewSession creates a Session with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{
		dir:    ".",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.New(nil)
	}
	return s
}
