package analysis

import (
	"sort"

	"github.com/kellerwx/tempscope/internal/series"
)

// ExtremePeriods finds the topN coldest or warmest nDays-row windows by
// trailing rolling mean. Candidate windows are ranked by rolling mean
// (ascending for coldest, descending for warmest) and selected greedily,
// skipping any window that shares a row with an already selected one.
// This collapses the cluster of near-duplicate windows around one true
// extreme into a single result instead of reporting the same cold snap
// topN times.
func (s *Service) ExtremePeriods(metric series.Metric, nDays int, extreme Extreme, topN int) []PeriodResult {
	records := s.series.Records()
	n := len(records)
	if nDays <= 0 || n < nDays {
		return nil
	}

	values := s.series.Values(metric)

	// Trailing rolling sums; window ending at i covers rows [i-nDays+1, i].
	prefix := make([]float64, n+1)
	for i, v := range values {
		prefix[i+1] = prefix[i] + v
	}

	type candidate struct {
		end  int
		mean float64
	}
	candidates := make([]candidate, 0, n-nDays+1)
	for end := nDays - 1; end < n; end++ {
		sum := prefix[end+1] - prefix[end+1-nDays]
		candidates = append(candidates, candidate{end: end, mean: sum / float64(nDays)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if extreme == Coldest {
			return candidates[i].mean < candidates[j].mean
		}
		return candidates[i].mean > candidates[j].mean
	})

	used := make([]bool, n)
	var periods []PeriodResult

	for _, c := range candidates {
		if topN > 0 && len(periods) >= topN {
			break
		}

		start := c.end - nDays + 1
		overlaps := false
		for i := start; i <= c.end; i++ {
			if used[i] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		window := values[start : c.end+1]
		periods = append(periods, PeriodResult{
			StartDate: records[start].Date,
			EndDate:   records[c.end].Date,
			Length:    nDays,
			AvgTemp:   c.mean,
			MinTemp:   minOf(window),
			MaxTemp:   maxOf(window),
		})

		for i := start; i <= c.end; i++ {
			used[i] = true
		}
	}

	return periods
}
