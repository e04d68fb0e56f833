package geoplot

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/fars"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRenderState_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "state_48.png")
	r := New(out, 4, testLogger())

	points := []fars.Point{
		{Lon: -97.1, Lat: 32.7},
		{Lon: -98.4, Lat: 29.4},
		{Lon: -95.3, Lat: 29.7},
	}
	bounds := fars.Bounds{MinLon: -98.4, MaxLon: -95.3, MinLat: 29.4, MaxLat: 32.7}

	require.NoError(t, r.RenderState(48, points, bounds))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderState_SinglePoint(t *testing.T) {
	out := filepath.Join(t.TempDir(), "state_1.svg")
	r := New(out, 0, testLogger()) // size <= 0 falls back to the default

	points := []fars.Point{{Lon: -86.5, Lat: 33.2}}
	bounds := fars.Bounds{MinLon: -86.5, MaxLon: -86.5, MinLat: 33.2, MaxLat: 33.2}

	// Degenerate extents are padded rather than producing an empty axis.
	require.NoError(t, r.RenderState(1, points, bounds))

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestRenderState_UnsupportedFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "state_48.nope")
	r := New(out, 4, testLogger())

	err := r.RenderState(48, []fars.Point{{Lon: -97.1, Lat: 32.7}}, fars.Bounds{
		MinLon: -98, MaxLon: -96, MinLat: 32, MaxLat: 33,
	})
	require.Error(t, err)
}
