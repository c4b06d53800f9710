package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kellerwx/tempscope/internal/series"
)

// StableSlopeThreshold is the trend slope magnitude, in event days per
// year, below which the long-term trend is reported as stable. A product
// cutoff, not a derived statistic.
const StableSlopeThreshold = 0.05

// Trend classifications.
const (
	TrendStable     = "stable"
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
)

// ThresholdFrequency counts threshold days per calendar year over the
// whole series and fits a first-degree least-squares trend of event days
// against year. The classification is a fixed-threshold heuristic; no
// significance testing is applied.
func (s *Service) ThresholdFrequency(metric series.Metric, threshold float64, direction Direction) FrequencyResult {
	type bucket struct {
		events int
		total  int
	}
	buckets := make(map[int]*bucket)

	for _, rec := range s.series.Records() {
		year := rec.Date.Year()
		b, ok := buckets[year]
		if !ok {
			b = &bucket{}
			buckets[year] = b
		}
		b.total++
		if direction.meets(rec.Value(metric), threshold) {
			b.events++
		}
	}

	byYear := make([]FrequencyYear, 0, len(buckets))
	for year, b := range buckets {
		byYear = append(byYear, FrequencyYear{
			Year:       year,
			EventDays:  b.events,
			TotalDays:  b.total,
			Percentage: roundOneDecimal(float64(b.events) / float64(b.total) * 100),
		})
	}
	sort.Slice(byYear, func(i, j int) bool {
		return byYear[i].Year < byYear[j].Year
	})

	result := FrequencyResult{ByYear: byYear, Trend: TrendStable}
	if len(byYear) > 1 {
		years := make([]float64, len(byYear))
		events := make([]float64, len(byYear))
		for i, y := range byYear {
			years[i] = float64(y.Year)
			events[i] = float64(y.EventDays)
		}
		_, slope := stat.LinearRegression(years, events, nil, false)
		result.TrendSlope = slope
		result.Trend = classifyTrend(slope)
	}

	return result
}

func classifyTrend(slope float64) string {
	switch {
	case math.Abs(slope) < StableSlopeThreshold:
		return TrendStable
	case slope > 0:
		return TrendIncreasing
	default:
		return TrendDecreasing
	}
}
