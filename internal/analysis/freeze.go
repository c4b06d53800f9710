package analysis

import (
	"sort"
	"time"

	"github.com/kellerwx/tempscope/internal/series"
)

// FreezeDates finds, for each calendar year, the last threshold crossing
// before July (last spring freeze) and the first crossing from July on
// (first fall freeze), using value <= threshold as the freeze condition.
// The growing season is the day count between the two, defined only when
// both exist. Results are ordered by year ascending and include years
// with no qualifying crossings.
func (s *Service) FreezeDates(metric series.Metric, threshold float64) []FreezeResult {
	type bookends struct {
		spring *time.Time
		fall   *time.Time
	}
	years := make(map[int]*bookends)

	for _, rec := range s.series.Records() {
		year := rec.Date.Year()
		b, ok := years[year]
		if !ok {
			b = &bookends{}
			years[year] = b
		}

		if rec.Value(metric) > threshold {
			continue
		}

		date := rec.Date
		if date.Month() < time.July {
			if b.spring == nil || date.After(*b.spring) {
				b.spring = &date
			}
		} else {
			if b.fall == nil || date.Before(*b.fall) {
				b.fall = &date
			}
		}
	}

	results := make([]FreezeResult, 0, len(years))
	for year, b := range years {
		res := FreezeResult{
			Year:             year,
			LastSpringFreeze: b.spring,
			FirstFallFreeze:  b.fall,
		}
		if b.spring != nil {
			doy := b.spring.YearDay()
			res.SpringDayOfYear = &doy
		}
		if b.fall != nil {
			doy := b.fall.YearDay()
			res.FallDayOfYear = &doy
		}
		if b.spring != nil && b.fall != nil {
			days := int(b.fall.Sub(*b.spring).Hours() / 24)
			res.GrowingSeasonDays = &days
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Year < results[j].Year
	})
	return results
}
