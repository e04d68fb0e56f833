// Package geoplot renders state accident maps with gonum/plot. It is the
// default fars.StateRenderer; callers with other plotting needs implement
// the interface themselves.
package geoplot

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/fars"
)

// Renderer draws a lon/lat scatter over a grid and saves it to a file.
// The output format follows the path extension (.png, .svg, .pdf, ...).
type Renderer struct {
	path   string
	size   vg.Length
	logger *slog.Logger
}

// New creates a Renderer writing to path. size is the square image side in
// inches; values <= 0 fall back to 6.
func New(path string, size float64, logger *slog.Logger) *Renderer {
	if size <= 0 {
		size = 6
	}
	return &Renderer{
		path:   path,
		size:   vg.Length(size) * vg.Inch,
		logger: logger,
	}
}

// RenderState implements fars.StateRenderer.
func (r *Renderer) RenderState(stateNum int, points []fars.Point, b fars.Bounds) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("FARS accidents, state %d", stateNum)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.X.Min, p.X.Max = pad(b.MinLon, b.MaxLon)
	p.Y.Min, p.Y.Max = pad(b.MinLat, b.MaxLat)

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.Lon
		xys[i].Y = pt.Lat
	}

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(1.5)

	p.Add(plotter.NewGrid(), scatter)

	if err := p.Save(r.size, r.size, r.path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}

	r.logger.Info("state map written",
		"state", stateNum,
		"points", len(points),
		"path", r.path,
	)
	return nil
}

// pad widens a degenerate axis range so a single-point scatter still gets
// a drawable plot area.
func pad(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}
