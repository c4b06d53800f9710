package series

import (
	"fmt"
	"sort"
	"time"
)

// DailyRecord is one day of cleaned temperature readings in °F.
// All three fields are populated for every record in a Series.
type DailyRecord struct {
	Date time.Time `json:"date"`
	TMax float64   `json:"tmax"`
	TMin float64   `json:"tmin"`
	TAvg float64   `json:"tavg"`
}

// Series is an ordered daily temperature record, strictly ascending by
// date. Calendar gaps are tolerated; streak and rolling-window analyses
// operate on row adjacency, so a gap is silently bridged. The series is
// immutable after construction, which makes concurrent reads safe.
type Series struct {
	records []DailyRecord
}

// New builds a Series from records. Records are sorted ascending by date.
// Duplicate dates are rejected: downstream adjacency logic would otherwise
// treat two rows for one day as two consecutive days.
func New(records []DailyRecord) (*Series, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("series requires at least one record")
	}

	sorted := make([]DailyRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for i := 1; i < len(sorted); i++ {
		if sameDay(sorted[i].Date, sorted[i-1].Date) {
			return nil, fmt.Errorf("duplicate date in series: %s", sorted[i].Date.Format("2006-01-02"))
		}
	}

	return &Series{records: sorted}, nil
}

// Len returns the number of records.
func (s *Series) Len() int {
	return len(s.records)
}

// At returns the record at row index i.
func (s *Series) At(i int) DailyRecord {
	return s.records[i]
}

// Records returns the underlying records. Callers must not mutate the
// returned slice.
func (s *Series) Records() []DailyRecord {
	return s.records
}

// Values extracts the metric column as a slice, index-aligned with rows.
func (s *Series) Values(m Metric) []float64 {
	values := make([]float64, len(s.records))
	for i, r := range s.records {
		values[i] = r.Value(m)
	}
	return values
}

// Start returns the date of the first record.
func (s *Series) Start() time.Time {
	return s.records[0].Date
}

// End returns the date of the last record.
func (s *Series) End() time.Time {
	return s.records[len(s.records)-1].Date
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
