// Package fars reads and summarizes traffic-accident records from the
// NHTSA Fatality Analysis Reporting System (FARS).
//
// # Data Source
//
// FARS publishes one accident file per calendar year as a bzip2-compressed
// CSV named accident_<year>.csv.bz2, e.g. accident_2013.csv.bz2. Files are
// obtained out of band (https://www.nhtsa.gov/research-data/fatality-analysis-reporting-system-fars)
// and placed in a local directory; this package never fetches anything.
//
// # FARS Data Conventions
//
// Columns used by this package (any number of other columns may be present
// and are carried through untouched):
//
//	STATE     integer FIPS state code, e.g. 48 = Texas.
//	MONTH     integer month of the crash, 1-12.
//	LONGITUD  decimal degrees. Values greater than 900 are sentinels
//	          meaning "not reported" (777.7777), "reported as unknown"
//	          (888.8888), or "not available" (999.9999).
//	LATITUDE  decimal degrees. Values greater than 90 are the analogous
//	          sentinels (77.7777, 88.8888, 99.9999).
//
// Sentinel coordinates are kept verbatim in loaded tables and only replaced
// with a missing-value marker when plotting.
//
// # Operations
//
// [Filename] builds the canonical file name for a year. [Read] loads one
// file into a [Table]. A [Session] ties a data directory to a logger,
// metrics, and a [StateRenderer], and provides the aggregate operations:
// [Session.ReadYears] loads several years with per-year failure isolation,
// [Session.SummarizeYears] pivots accident counts into a month-by-year
// [Summary], and [Session.MapState] draws one state's accident locations.
//
// # Failure Policy
//
// A missing file is an error from [Read] and from [Session.MapState], but
// inside [Session.ReadYears] it is demoted to a warning and a nil table so
// one bad year never aborts a multi-year summary. An unknown state number
// is always an error ([InvalidStateError]). A state with no accidents in
// the requested year is not an error at all: MapState logs it and reports
// that nothing was drawn.
package fars
