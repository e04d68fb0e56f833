package fars

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
)

// Record is one accident row. The four columns this package works with are
// parsed into typed fields; the full raw row is kept in Fields, aligned
// with Table.Columns, so unknown columns pass through untouched.
type Record struct {
	State     int
	Month     int
	Longitude float64 // NaN when the source value is not a number
	Latitude  float64 // NaN when the source value is not a number
	Fields    []string
}

// Table is the in-memory form of one accident file: the header in original
// order and the rows in file order. Tables are never mutated after Read
// returns them.
type Table struct {
	Columns []string
	Rows    []Record
}

// Columns that must be present in every accident file. Presence is enforced
// at load time rather than at first use.
var requiredColumns = []string{"STATE", "MONTH", "LONGITUD", "LATITUDE"}

// Read loads one accident file. The file must exist; a missing file is an
// error wrapping fs.ErrNotExist with the path in its message. Compression
// is chosen by extension: .bz2, .gz, or none.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("file %q does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	r, err := decompress(f, path)
	if err != nil {
		return nil, fmt.Errorf("decompress %q: %w", path, err)
	}

	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse %q: empty file", path)
	}

	header := rows[0]
	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("parse %q: missing required column %q", path, col)
		}
	}

	table := &Table{
		Columns: header,
		Rows:    make([]Record, 0, len(rows)-1),
	}
	for i, row := range rows[1:] {
		rec, err := parseRecord(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("parse %q: row %d: %w", path, i+1, err)
		}
		table.Rows = append(table.Rows, rec)
	}

	return table, nil
}

func parseRecord(row []string, colIdx map[string]int) (Record, error) {
	state, err := strconv.Atoi(field(row, colIdx, "STATE"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid STATE %q", field(row, colIdx, "STATE"))
	}
	month, err := strconv.Atoi(field(row, colIdx, "MONTH"))
	if err != nil {
		return Record{}, fmt.Errorf("invalid MONTH %q", field(row, colIdx, "MONTH"))
	}

	return Record{
		State:     state,
		Month:     month,
		Longitude: floatOrNaN(field(row, colIdx, "LONGITUD")),
		Latitude:  floatOrNaN(field(row, colIdx, "LATITUDE")),
		Fields:    row,
	}, nil
}

func field(row []string, colIdx map[string]int, col string) string {
	i := colIdx[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// floatOrNaN parses a coordinate, mapping anything unparseable to NaN so it
// behaves as missing downstream. Sentinel values (>900 longitude, >90
// latitude) are kept as-is here; plotting substitutes them later.
func floatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func decompress(f io.Reader, path string) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".bz2"):
		return bzip2.NewReader(f, nil)
	case strings.HasSuffix(path, ".gz"):
		return gzip.NewReader(f)
	default:
		return f, nil
	}
}
