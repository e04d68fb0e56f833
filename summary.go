package fars

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"
)

type yearMonth struct {
	year  int
	month int
}

// Summary is the month-by-year pivot of accident counts. Years holds the
// distinct successfully loaded years in ascending order; each is one data
// column. Rows are always the twelve months 1-12 when the summary is
// non-empty. A (year, month) pair with no accidents is absent, not zero:
// Count reports it as missing and WriteCSV renders it as NA.
type Summary struct {
	Years       []int
	GeneratedAt time.Time

	counts map[yearMonth]int
}

// SummarizeYears loads the requested years, drops the ones that failed,
// and counts accidents grouped by (year, month). Requesting the same year
// twice counts its rows twice, matching plain row-wise concatenation.
// When every year fails to load the result is empty but non-nil.
func (s *Session) SummarizeYears(years ...int) *Summary {
	start := time.Now()
	defer func() {
		s.metrics.SummarizeDuration.Observe(time.Since(start).Seconds())
	}()

	counts := make(map[yearMonth]int)
	seen := make(map[int]bool)
	var distinct []int

	for _, res := range s.ReadYears(years...) {
		if res.Table == nil {
			continue
		}
		if !seen[res.Year] {
			seen[res.Year] = true
			distinct = append(distinct, res.Year)
		}
		for _, month := range res.Table.Months {
			counts[yearMonth{res.Year, month}]++
		}
	}
	sort.Ints(distinct)

	return &Summary{
		Years:       distinct,
		GeneratedAt: clock.Now(),
		counts:      counts,
	}
}

// Empty reports whether no year loaded at all.
func (s *Summary) Empty() bool {
	return len(s.Years) == 0
}

// Months returns the pivot's row labels: months 1-12 for a non-empty
// summary, nil for an empty one.
func (s *Summary) Months() []int {
	if s.Empty() {
		return nil
	}
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

// Count returns the accident count for one (year, month) cell. ok is false
// when the pair is absent, either because the year never loaded or because
// no accident fell in that month.
func (s *Summary) Count(year, month int) (count int, ok bool) {
	count, ok = s.counts[yearMonth{year, month}]
	return count, ok
}

// Total returns the summed counts of one year's column.
func (s *Summary) Total(year int) int {
	var total int
	for _, month := range s.Months() {
		if n, ok := s.Count(year, month); ok {
			total += n
		}
	}
	return total
}

// WriteCSV renders the pivot as CSV: a MONTH column followed by one column
// per year, twelve rows, absent cells written as NA. An empty summary
// writes only the MONTH header.
func (s *Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(s.Years)+1)
	header = append(header, "MONTH")
	for _, year := range s.Years {
		header = append(header, fmt.Sprintf("%d", year))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, month := range s.Months() {
		row := make([]string, 0, len(s.Years)+1)
		row = append(row, fmt.Sprintf("%d", month))
		for _, year := range s.Years {
			if n, ok := s.Count(year, month); ok {
				row = append(row, fmt.Sprintf("%d", n))
			} else {
				row = append(row, "NA")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
