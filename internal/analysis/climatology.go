package analysis

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
)

// DailyClimatology groups records by (month, day) across every year and
// computes the record high, record low and long-term mean of the metric
// per calendar day. A non-nil rng restricts the grouping to days inside
// the range (matching only, no year bucketing) and remaps days in the
// after-new-year portion of a spanning range past 365 so the envelope
// plots as one contiguous sequence. Rows are ordered by PlotX.
func (s *Service) DailyClimatology(metric series.Metric, rng *calendar.Range) []ClimatologyRow {
	groups := make(map[calendar.MonthDay][]float64)

	for _, rec := range s.series.Records() {
		if rng != nil && !rng.Contains(rec.Date) {
			continue
		}
		md := calendar.Of(rec.Date)
		groups[md] = append(groups[md], rec.Value(metric))
	}

	rows := make([]ClimatologyRow, 0, len(groups))
	for md, values := range groups {
		doy := calendar.DayOfYear(md)
		plotX := doy
		if rng != nil {
			plotX = rng.PlotX(dateFor(md))
		}
		rows = append(rows, ClimatologyRow{
			Month:      md.Month,
			Day:        md.Day,
			RecordHigh: maxOf(values),
			RecordLow:  minOf(values),
			AvgTemp:    stat.Mean(values, nil),
			DayOfYear:  doy,
			PlotX:      plotX,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PlotX < rows[j].PlotX
	})
	return rows
}

// YearOverlay extracts one year's raw daily values under the same range
// filter and plot remapping as DailyClimatology, for visual comparison
// against the long-term envelope. The year is the range year, so for a
// spanning range the overlay includes the following January's rows.
func (s *Service) YearOverlay(year int, metric series.Metric, rng *calendar.Range) []OverlayPoint {
	var points []OverlayPoint

	for _, rec := range s.series.Records() {
		if rng != nil {
			if !rng.Contains(rec.Date) || rng.RangeYear(rec.Date) != year {
				continue
			}
		} else if rec.Date.Year() != year {
			continue
		}

		plotX := calendar.DayOfYear(calendar.Of(rec.Date))
		if rng != nil {
			plotX = rng.PlotX(rec.Date)
		}
		points = append(points, OverlayPoint{
			Date:  rec.Date,
			Value: rec.Value(metric),
			PlotX: plotX,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].PlotX < points[j].PlotX
	})
	return points
}

// dateFor places a month/day in the non-leap reference year used for
// day-of-year coordinates.
func dateFor(md calendar.MonthDay) time.Time {
	return time.Date(2001, time.Month(md.Month), md.Day, 0, 0, 0, 0, time.UTC)
}
