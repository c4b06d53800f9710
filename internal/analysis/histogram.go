package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
)

// ThresholdHistogram counts, for every instance of a calendar range, how
// many days met the threshold condition, and summarizes the counts across
// years. Per-year rows are ordered newest first.
func (s *Service) ThresholdHistogram(r calendar.Range, metric series.Metric, threshold float64, direction Direction) HistogramResult {
	type bucket struct {
		meeting int
		total   int
	}
	buckets := make(map[int]*bucket)

	for _, rec := range s.series.Records() {
		if !r.Contains(rec.Date) {
			continue
		}
		year := r.RangeYear(rec.Date)
		b, ok := buckets[year]
		if !ok {
			b = &bucket{}
			buckets[year] = b
		}
		b.total++
		if direction.meets(rec.Value(metric), threshold) {
			b.meeting++
		}
	}

	byYear := make([]HistogramYear, 0, len(buckets))
	for year, b := range buckets {
		byYear = append(byYear, HistogramYear{
			Year:                 year,
			DaysMeetingThreshold: b.meeting,
			TotalDays:            b.total,
			Percentage:           roundOneDecimal(float64(b.meeting) / float64(b.total) * 100),
		})
	}
	sort.Slice(byYear, func(i, j int) bool {
		return byYear[i].Year > byYear[j].Year
	})

	return HistogramResult{
		Summary: summarize(byYear),
		ByYear:  byYear,
	}
}

// summarize aggregates per-year counts. StdDays uses the sample standard
// deviation (n-1 divisor) and is zero for a single year.
func summarize(byYear []HistogramYear) HistogramSummary {
	if len(byYear) == 0 {
		return HistogramSummary{}
	}

	days := make([]float64, len(byYear))
	percentages := make([]float64, len(byYear))
	minDays, maxDays := byYear[0].DaysMeetingThreshold, byYear[0].DaysMeetingThreshold
	for i, y := range byYear {
		days[i] = float64(y.DaysMeetingThreshold)
		percentages[i] = y.Percentage
		if y.DaysMeetingThreshold < minDays {
			minDays = y.DaysMeetingThreshold
		}
		if y.DaysMeetingThreshold > maxDays {
			maxDays = y.DaysMeetingThreshold
		}
	}

	stdDays := 0.0
	if len(days) > 1 {
		stdDays = stat.StdDev(days, nil)
	}

	return HistogramSummary{
		AvgDays:       stat.Mean(days, nil),
		MinDays:       minDays,
		MaxDays:       maxDays,
		StdDays:       stdDays,
		TotalYears:    len(byYear),
		AvgPercentage: stat.Mean(percentages, nil),
	}
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
