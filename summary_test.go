package fars

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeYears_SingleYear(t *testing.T) {
	dir := t.TempDir()
	writeYearFixture(t, dir, 2013, []testRow{
		{state: 1, month: 1, lon: "-86.5", lat: "33.2"},
		{state: 1, month: 1, lon: "-86.6", lat: "33.3"},
		{state: 48, month: 3, lon: "-97.1", lat: "32.7"},
		{state: 6, month: 12, lon: "-118.2", lat: "34.0"},
	})

	sess, _ := newTestSession(t, dir)
	summary := sess.SummarizeYears(2013)

	require.False(t, summary.Empty())
	assert.Equal(t, []int{2013}, summary.Years)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, summary.Months())

	n, ok := summary.Count(2013, 1)
	require.True(t, ok)
	assert.Equal(t, 2, n)

	n, ok = summary.Count(2013, 3)
	require.True(t, ok)
	assert.Equal(t, 1, n)

	// Months with no accidents are absent, not zero.
	_, ok = summary.Count(2013, 2)
	assert.False(t, ok)

	// The single data column sums to the year's row count.
	assert.Equal(t, 4, summary.Total(2013))
}

func TestSummarizeYears_MultiYearPivot(t *testing.T) {
	dir := t.TempDir()
	writeYearFixture(t, dir, 2013, []testRow{
		{state: 1, month: 1, lon: "-86.5", lat: "33.2"},
		{state: 1, month: 2, lon: "-86.6", lat: "33.3"},
	})
	writeYearFixture(t, dir, 2014, []testRow{
		{state: 1, month: 2, lon: "-86.5", lat: "33.2"},
	})

	sess, _ := newTestSession(t, dir)
	// Request out of order; columns still come out ascending.
	summary := sess.SummarizeYears(2014, 2013)
	assert.Equal(t, []int{2013, 2014}, summary.Years)

	var buf bytes.Buffer
	require.NoError(t, summary.WriteCSV(&buf))

	want := "MONTH,2013,2014\n" +
		"1,1,NA\n" +
		"2,1,1\n" +
		"3,NA,NA\n" +
		"4,NA,NA\n" +
		"5,NA,NA\n" +
		"6,NA,NA\n" +
		"7,NA,NA\n" +
		"8,NA,NA\n" +
		"9,NA,NA\n" +
		"10,NA,NA\n" +
		"11,NA,NA\n" +
		"12,NA,NA\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("pivot CSV mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeYears_MissingYearSkipped(t *testing.T) {
	dir := t.TempDir()
	writeYearFixture(t, dir, 2013, []testRow{
		{state: 1, month: 5, lon: "-86.5", lat: "33.2"},
	})

	sess, logs := newTestSession(t, dir)
	summary := sess.SummarizeYears(2013, 2014)

	// The missing year is warned about and simply absent from the pivot.
	assert.Equal(t, []int{2013}, summary.Years)
	assert.Contains(t, logs.String(), "year=2014")
}

func TestSummarizeYears_AllMissing(t *testing.T) {
	sess, _ := newTestSession(t, t.TempDir())
	summary := sess.SummarizeYears(2001, 2002)

	require.NotNil(t, summary)
	assert.True(t, summary.Empty())
	assert.Nil(t, summary.Months())

	var buf bytes.Buffer
	require.NoError(t, summary.WriteCSV(&buf))
	assert.Equal(t, "MONTH\n", buf.String())
}

func TestSummarizeYears_DuplicateYearDoubleCounts(t *testing.T) {
	dir := t.TempDir()
	writeYearFixture(t, dir, 2013, []testRow{
		{state: 1, month: 1, lon: "-86.5", lat: "33.2"},
	})

	sess, _ := newTestSession(t, dir)
	summary := sess.SummarizeYears(2013, 2013)

	// Concatenation semantics: the same file loaded twice counts twice.
	assert.Equal(t, []int{2013}, summary.Years)
	n, ok := summary.Count(2013, 1)
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestSummarizeYears_GeneratedAt(t *testing.T) {
	frozen := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	sess, _ := newTestSession(t, t.TempDir())
	summary := sess.SummarizeYears(2013)

	assert.Equal(t, frozen, summary.GeneratedAt)
}
