// Package report renders analysis results as plain-text reports for the
// CLI. It owns all formatting; the analysis package stays presentation
// free so other front ends can consume the same results.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
)

const (
	rule     = "================================================================================"
	dateFmt  = "2006-01-02"
	barWidth = 30
)

// Streaks prints a ranked streak report.
func Streaks(w io.Writer, streaks []analysis.StreakResult, metric series.Metric, threshold float64, direction analysis.Direction) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "TEMPERATURE STREAKS: %s %s %.1f°F\n", metric, direction, threshold)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(streaks) == 0 {
		fmt.Fprintln(w, "No streaks found matching the criteria.")
		return
	}

	for i, st := range streaks {
		fmt.Fprintf(w, "Rank #%d: %d days\n", i+1, st.Length)
		fmt.Fprintf(w, "  Period: %s to %s\n", st.StartDate.Format(dateFmt), st.EndDate.Format(dateFmt))
		fmt.Fprintf(w, "  Temps:  Avg=%.1f°F  Min=%.1f°F  Max=%.1f°F\n\n", st.AvgTemp, st.MinTemp, st.MaxTemp)
	}
}

// Periods prints a ranked extreme-period report.
func Periods(w io.Writer, periods []analysis.PeriodResult, metric series.Metric, nDays int, extreme analysis.Extreme) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "%s %d-DAY PERIODS: %s\n", strings.ToUpper(string(extreme)), nDays, metric)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(periods) == 0 {
		fmt.Fprintln(w, "No periods found.")
		return
	}

	for i, p := range periods {
		fmt.Fprintf(w, "Rank #%d: %.1f°F average\n", i+1, p.AvgTemp)
		fmt.Fprintf(w, "  Period: %s to %s\n", p.StartDate.Format(dateFmt), p.EndDate.Format(dateFmt))
		fmt.Fprintf(w, "  Range:  Min=%.1f°F  Max=%.1f°F\n\n", p.MinTemp, p.MaxTemp)
	}
}

// Seasons prints a ranked season report. Winter labels span the year
// boundary, e.g. "Winter 2023-24".
func Seasons(w io.Writer, seasons []analysis.SeasonResult, season calendar.Season, metric series.Metric, extreme analysis.Extreme) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "%s %sS: %s\n", strings.ToUpper(string(extreme)), strings.ToUpper(string(season)), metric)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(seasons) == 0 {
		fmt.Fprintln(w, "No seasons found.")
		return
	}

	for i, se := range seasons {
		fmt.Fprintf(w, "Rank #%d: %s\n", i+1, calendar.SeasonLabel(season, se.SeasonYear))
		fmt.Fprintf(w, "  Average: %.1f°F\n", se.AvgTemp)
		fmt.Fprintf(w, "  Range:   Min=%.1f°F  Max=%.1f°F\n", se.MinTemp, se.MaxTemp)
		fmt.Fprintf(w, "  Period:  %s to %s (%d days)\n\n",
			se.StartDate.Format(dateFmt), se.EndDate.Format(dateFmt), se.DayCount)
	}
}

// DateRange prints a ranked custom calendar range report.
func DateRange(w io.Writer, results []analysis.RangeResult, rng calendar.Range, metric series.Metric, extreme analysis.Extreme) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "%s %s PERIODS: %s\n", strings.ToUpper(string(extreme)), rng.Label(), metric)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(results) == 0 {
		fmt.Fprintln(w, "No matching periods found.")
		return
	}

	for i, res := range results {
		fmt.Fprintf(w, "Rank #%d: %d\n", i+1, res.Year)
		fmt.Fprintf(w, "  Average: %.1f°F\n", res.AvgTemp)
		fmt.Fprintf(w, "  Range:   Min=%.1f°F  Max=%.1f°F\n", res.MinTemp, res.MaxTemp)
		fmt.Fprintf(w, "  Period:  %s to %s (%d days)\n\n",
			res.StartDate.Format(dateFmt), res.EndDate.Format(dateFmt), res.DayCount)
	}
}

// Histogram prints the cross-year summary followed by a year-by-year
// breakdown with '#' bars scaled to the busiest year.
func Histogram(w io.Writer, result analysis.HistogramResult, rng calendar.Range, metric series.Metric, threshold float64, direction analysis.Direction) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "THRESHOLD ANALYSIS: %s %s %.1f°F for %s\n", metric, dirSymbol(direction), threshold, rng.Label())
	fmt.Fprintf(w, "%s\n\n", rule)

	if result.Summary.TotalYears == 0 {
		fmt.Fprintln(w, "No matching days found.")
		return
	}

	s := result.Summary
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "  Average:  %.1f days/year (%.1f%%)\n", s.AvgDays, s.AvgPercentage)
	fmt.Fprintf(w, "  Minimum:  %d days\n", s.MinDays)
	fmt.Fprintf(w, "  Maximum:  %d days\n", s.MaxDays)
	fmt.Fprintf(w, "  Std Dev:  %.1f days\n", s.StdDays)
	fmt.Fprintf(w, "  Years:    %d\n\n", s.TotalYears)

	fmt.Fprintln(w, "YEAR-BY-YEAR")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, y := range result.ByYear {
		fmt.Fprintf(w, "  %d: %3d days (%5.1f%%)  %s\n",
			y.Year, y.DaysMeetingThreshold, y.Percentage, bar(y.DaysMeetingThreshold, s.MaxDays))
	}
	fmt.Fprintln(w)
}

// Frequency prints per-year event counts with bars and the fitted trend.
func Frequency(w io.Writer, result analysis.FrequencyResult, metric series.Metric, threshold float64, direction analysis.Direction) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "ANNUAL FREQUENCY: %s %s %.1f°F\n", metric, dirSymbol(direction), threshold)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(result.ByYear) == 0 {
		fmt.Fprintln(w, "No data.")
		return
	}

	maxDays := 0
	for _, y := range result.ByYear {
		if y.EventDays > maxDays {
			maxDays = y.EventDays
		}
	}

	for _, y := range result.ByYear {
		fmt.Fprintf(w, "  %d: %3d days (%5.1f%%)  %s\n",
			y.Year, y.EventDays, y.Percentage, bar(y.EventDays, maxDays))
	}

	fmt.Fprintf(w, "\nTrend: %s (%+.3f days/year)\n", result.Trend, result.TrendSlope)
	fmt.Fprintln(w, "Note: trend classification uses a fixed slope cutoff, not a significance test.")
}

// Freeze prints per-year freeze bookends and growing season lengths.
func Freeze(w io.Writer, results []analysis.FreezeResult, metric series.Metric, threshold float64) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "FREEZE DATES: %s <= %.1f°F\n", metric, threshold)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(results) == 0 {
		fmt.Fprintln(w, "No data.")
		return
	}

	fmt.Fprintf(w, "  %-6s %-14s %-14s %s\n", "Year", "Last Spring", "First Fall", "Growing Season")
	fmt.Fprintln(w, strings.Repeat("-", 56))
	for _, r := range results {
		spring, fall, season := "-", "-", "-"
		if r.LastSpringFreeze != nil {
			spring = r.LastSpringFreeze.Format(dateFmt)
		}
		if r.FirstFallFreeze != nil {
			fall = r.FirstFallFreeze.Format(dateFmt)
		}
		if r.GrowingSeasonDays != nil {
			season = fmt.Sprintf("%d days", *r.GrowingSeasonDays)
		}
		fmt.Fprintf(w, "  %-6d %-14s %-14s %s\n", r.Year, spring, fall, season)
	}
	fmt.Fprintln(w)
}

// Climatology prints the per-calendar-day envelope, one row per day.
func Climatology(w io.Writer, rows []analysis.ClimatologyRow, metric series.Metric) {
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "DAILY CLIMATOLOGY: %s\n", metric)
	fmt.Fprintf(w, "%s\n\n", rule)

	if len(rows) == 0 {
		fmt.Fprintln(w, "No data.")
		return
	}

	fmt.Fprintf(w, "  %-6s %-12s %-12s %s\n", "Day", "Record Low", "Average", "Record High")
	fmt.Fprintln(w, strings.Repeat("-", 48))
	for _, row := range rows {
		fmt.Fprintf(w, "  %02d/%02d  %-12.1f %-12.1f %.1f\n",
			row.Month, row.Day, row.RecordLow, row.AvgTemp, row.RecordHigh)
	}
	fmt.Fprintln(w)
}

// LoadSummary prints what survived loading, mirroring the load metadata
// surfaced by the loader.
func LoadSummary(w io.Writer, s *series.Series, stats *series.LoadStats) {
	fmt.Fprintf(w, "Loaded %d records from %s to %s\n",
		s.Len(), s.Start().Format(dateFmt), s.End().Format(dateFmt))
	if stats.DroppedRows > 0 {
		fmt.Fprintf(w, "Dropped %d of %d rows with missing temperature data (%.1f%%)\n",
			stats.DroppedRows, stats.TotalRows, stats.DroppedPercent)
	}
}

func dirSymbol(d analysis.Direction) string {
	if d == analysis.Below {
		return "<="
	}
	return ">="
}

func bar(value, max int) string {
	if max <= 0 {
		return ""
	}
	n := value * barWidth / max
	return strings.Repeat("#", n)
}
