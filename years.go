package fars

import (
	"path/filepath"
)

// MonthTable is a year's table reduced to the two columns the aggregation
// needs: one Months entry per accident row, and the year the caller asked
// for. Year is taken from the request, never from the file, so it is
// constant by construction.
type MonthTable struct {
	Year   int
	Months []int
}

// YearResult is the outcome of loading a single year: either a table or
// the error that prevented one. Exactly one of Table and Err is set.
type YearResult struct {
	Year  int
	Table *MonthTable
	Err   error
}

// ReadYears loads each requested year independently and reduces it to a
// MonthTable. A year whose file fails to load is warned about and carried
// as a nil-table result; one bad year never aborts the rest. The result
// has the same length and order as the input, duplicates included.
func (s *Session) ReadYears(years ...int) []YearResult {
	results := make([]YearResult, 0, len(years))
	for _, year := range years {
		table, err := s.readYear(year)
		if err != nil {
			s.logger.Warn("invalid year, skipping", "year", year, "error", err)
			s.metrics.YearsSkipped.Inc()
			results = append(results, YearResult{Year: year, Err: err})
			continue
		}

		months := make([]int, len(table.Rows))
		for i, row := range table.Rows {
			months[i] = row.Month
		}
		results = append(results, YearResult{
			Year:  year,
			Table: &MonthTable{Year: year, Months: months},
		})
	}
	return results
}

// readYear builds the canonical filename for a year, loads it from the
// session directory, and records read metrics.
func (s *Session) readYear(year int) (*Table, error) {
	path := filepath.Join(s.dir, Filename(year))
	table, err := Read(path)
	if err != nil {
		s.metrics.ReadErrors.Inc()
		return nil, err
	}
	s.metrics.FilesRead.Inc()
	s.metrics.RowsParsed.Add(float64(len(table.Rows)))
	return table, nil
}
