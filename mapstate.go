package fars

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel thresholds for unreported coordinates. FARS encodes "unknown"
// longitudes as values above 900 and unknown latitudes as values above 90.
const (
	maxLongitude = 900
	maxLatitude  = 90
)

// Point is one plottable accident location.
type Point struct {
	Lon float64
	Lat float64
}

// Bounds are the axis ranges for a state map, computed from the extents of
// the non-missing coordinates.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// StateRenderer draws a state's base map and a scatter of accident
// locations. Implementations decide output format and destination; see the
// geoplot package for the default one.
type StateRenderer interface {
	RenderState(stateNum int, points []Point, bounds Bounds) error
}

// InvalidStateError reports a state number not present in the requested
// year's data.
type InvalidStateError struct {
	State int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid STATE number: %d", e.State)
}

// MapState loads one year, filters to one state, and renders the accident
// locations. It returns true when a map was drawn.
//
// A missing file propagates as the loader's error, unchanged. A state
// number absent from the year's STATE column is an *InvalidStateError.
// A valid state with nothing to draw (no matching rows, or only sentinel
// coordinates) is not an error: it is logged and reported as (false, nil).
func (s *Session) MapState(stateNum, year int) (bool, error) {
	table, err := s.readYear(year)
	if err != nil {
		return false, err
	}

	if !hasState(table, stateNum) {
		return false, &InvalidStateError{State: stateNum}
	}

	points := statePoints(table, stateNum)
	if len(points) == 0 {
		s.logger.Info("no accidents to plot", "state", stateNum, "year", year)
		s.metrics.PlotsSkipped.Inc()
		return false, nil
	}

	if s.renderer == nil {
		return false, errors.New("session has no renderer configured")
	}
	if err := s.renderer.RenderState(stateNum, points, bounds(points)); err != nil {
		return false, fmt.Errorf("render state %d: %w", stateNum, err)
	}

	s.metrics.PlotsRendered.Inc()
	return true, nil
}

func hasState(table *Table, stateNum int) bool {
	for _, row := range table.Rows {
		if row.State == stateNum {
			return true
		}
	}
	return false
}

// statePoints filters the table to one state and sanitizes coordinates:
// sentinel and unparseable values become missing, and a point missing
// either coordinate is excluded from the scatter. The table itself is left
// untouched.
func statePoints(table *Table, stateNum int) []Point {
	var points []Point
	for _, row := range table.Rows {
		if row.State != stateNum {
			continue
		}
		lon := sanitize(row.Longitude, maxLongitude)
		lat := sanitize(row.Latitude, maxLatitude)
		if math.IsNaN(lon) || math.IsNaN(lat) {
			continue
		}
		points = append(points, Point{Lon: lon, Lat: lat})
	}
	return points
}

func sanitize(v, limit float64) float64 {
	if v > limit {
		return math.NaN()
	}
	return v
}

func bounds(points []Point) Bounds {
	b := Bounds{
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
	}
	for _, p := range points[1:] {
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
	}
	return b
}
