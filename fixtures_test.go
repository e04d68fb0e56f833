package fars

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{"STATE", "ST_CASE", "MONTH", "YEAR", "LONGITUD", "LATITUDE"}

// testRow is a compact accident-row fixture. Coordinates are strings so
// tests can write sentinels and malformed values verbatim.
type testRow struct {
	state int
	month int
	lon   string
	lat   string
}

func (r testRow) fields(year int) []string {
	return []string{
		strconv.Itoa(r.state),
		"10001",
		strconv.Itoa(r.month),
		strconv.Itoa(year),
		r.lon,
		r.lat,
	}
}

// writeYearFixture writes a bzip2-compressed accident file for year into
// dir under its canonical name and returns the full path.
func writeYearFixture(t *testing.T, dir string, year int, rows []testRow) string {
	t.Helper()

	fields := make([][]string, 0, len(rows))
	for _, r := range rows {
		fields = append(fields, r.fields(year))
	}

	path := filepath.Join(dir, Filename(year))
	writeBzip2CSV(t, path, testHeader, fields)
	return path
}

func writeBzip2CSV(t *testing.T, path string, header []string, rows [][]string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	bw, err := bzip2.NewWriter(f, nil)
	require.NoError(t, err)

	cw := csv.NewWriter(bw)
	require.NoError(t, cw.Write(header))
	for _, row := range rows {
		require.NoError(t, cw.Write(row))
	}
	cw.Flush()
	require.NoError(t, cw.Error())
	require.NoError(t, bw.Close())
	require.NoError(t, f.Close())
}

// newTestSession builds a Session over dir whose logs are captured in the
// returned buffer, for asserting on warnings and informational messages.
func newTestSession(t *testing.T, dir string, opts ...Option) (*Session, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	all := append([]Option{WithDir(dir), WithLogger(logger)}, opts...)
	return NewSession(all...), &buf
}
