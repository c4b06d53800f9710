package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kellerwx/tempscope/internal/series"
)

// Streaks finds maximal contiguous runs of consecutive rows whose metric
// satisfies the threshold condition. Runs are ranked by length
// descending; ties keep first-occurrence order. Returns at most topN
// results, or an empty slice when no row qualifies.
//
// Consecutive means consecutive rows, not consecutive calendar days: a
// date gap inside the input is bridged silently.
func (s *Service) Streaks(metric series.Metric, threshold float64, direction Direction, topN int) []StreakResult {
	records := s.series.Records()

	var (
		streaks []StreakResult
		start   = -1 // first row of the open run, -1 when no run is open
		values  []float64
	)

	flush := func(end int) {
		if start < 0 {
			return
		}
		streaks = append(streaks, StreakResult{
			StartDate: records[start].Date,
			EndDate:   records[end].Date,
			Length:    end - start + 1,
			AvgTemp:   stat.Mean(values, nil),
			MinTemp:   minOf(values),
			MaxTemp:   maxOf(values),
		})
		start = -1
		values = values[:0]
	}

	for i, r := range records {
		v := r.Value(metric)
		if direction.meets(v, threshold) {
			if start < 0 {
				start = i
			}
			values = append(values, v)
		} else {
			flush(i - 1)
		}
	}
	flush(len(records) - 1)

	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Length > streaks[j].Length
	})

	if topN > 0 && len(streaks) > topN {
		streaks = streaks[:topN]
	}
	return streaks
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
