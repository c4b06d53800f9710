package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
)

// group accumulates one bucket of records during aggregation.
type group struct {
	values    []float64
	startDate time.Time
	endDate   time.Time
}

func (g *group) add(date time.Time, value float64) {
	if len(g.values) == 0 || date.Before(g.startDate) {
		g.startDate = date
	}
	if len(g.values) == 0 || date.After(g.endDate) {
		g.endDate = date
	}
	g.values = append(g.values, value)
}

// ExtremeSeasons ranks every instance of the requested season by mean
// temperature, coldest or warmest first, truncated to topN. December
// records count toward the following year's winter.
func (s *Service) ExtremeSeasons(season calendar.Season, metric series.Metric, extreme Extreme, topN int) []SeasonResult {
	groups := make(map[int]*group)

	for _, r := range s.series.Records() {
		if calendar.SeasonOf(r.Date) != season {
			continue
		}
		year := calendar.SeasonYear(r.Date)
		g, ok := groups[year]
		if !ok {
			g = &group{}
			groups[year] = g
		}
		g.add(r.Date, r.Value(metric))
	}

	results := make([]SeasonResult, 0, len(groups))
	for year, g := range groups {
		results = append(results, SeasonResult{
			SeasonYear: year,
			AvgTemp:    stat.Mean(g.values, nil),
			MinTemp:    minOf(g.values),
			MaxTemp:    maxOf(g.values),
			DayCount:   len(g.values),
			StartDate:  g.startDate,
			EndDate:    g.endDate,
		})
	}

	// Stable order before ranking so equal means list oldest year first.
	sort.Slice(results, func(i, j int) bool {
		return results[i].SeasonYear < results[j].SeasonYear
	})
	sort.SliceStable(results, func(i, j int) bool {
		if extreme == Coldest {
			return results[i].AvgTemp < results[j].AvgTemp
		}
		return results[i].AvgTemp > results[j].AvgTemp
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}

// ExtremeDateRange ranks every instance of a custom calendar range by
// mean temperature. The aggregation mirrors ExtremeSeasons but buckets by
// range year, so a range spanning the year boundary groups December with
// the following January under the year the range began.
func (s *Service) ExtremeDateRange(r calendar.Range, metric series.Metric, extreme Extreme, topN int) []RangeResult {
	groups := make(map[int]*group)

	for _, rec := range s.series.Records() {
		if !r.Contains(rec.Date) {
			continue
		}
		year := r.RangeYear(rec.Date)
		g, ok := groups[year]
		if !ok {
			g = &group{}
			groups[year] = g
		}
		g.add(rec.Date, rec.Value(metric))
	}

	results := make([]RangeResult, 0, len(groups))
	for year, g := range groups {
		results = append(results, RangeResult{
			Year:      year,
			AvgTemp:   stat.Mean(g.values, nil),
			MinTemp:   minOf(g.values),
			MaxTemp:   maxOf(g.values),
			DayCount:  len(g.values),
			StartDate: g.startDate,
			EndDate:   g.endDate,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Year < results[j].Year
	})
	sort.SliceStable(results, func(i, j int) bool {
		if extreme == Coldest {
			return results[i].AvgTemp < results[j].AvgTemp
		}
		return results[i].AvgTemp > results[j].AvgTemp
	})

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	return results
}
