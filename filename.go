package fars

import (
	"fmt"
	"strconv"
	"strings"
)

// Filename returns the canonical FARS file name for a year,
// e.g. Filename(2013) == "accident_2013.csv.bz2".
// It is the only place file names are constructed; Read expects exactly
// this form when loading a year.
func Filename(year int) string {
	return fmt.Sprintf("accident_%d.csv.bz2", year)
}

// ParseYear coerces external string input to a year. Integer strings pass
// through; fractional numerics like "2021.9" truncate toward zero; anything
// non-numeric is an error.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}
