package analysis

import "time"

// StreakResult is one maximal run of consecutive rows meeting a
// threshold condition, ranked by length descending.
type StreakResult struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Length    int       `json:"length"`
	AvgTemp   float64   `json:"avg_temp"`
	MinTemp   float64   `json:"min_temp"`
	MaxTemp   float64   `json:"max_temp"`
}

// PeriodResult is one selected non-overlapping n-day window.
type PeriodResult struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Length    int       `json:"length"`
	AvgTemp   float64   `json:"avg_temp"`
	MinTemp   float64   `json:"min_temp"`
	MaxTemp   float64   `json:"max_temp"`
}

// SeasonResult is one season-year's aggregate. For winter, SeasonYear is
// the year containing January and February.
type SeasonResult struct {
	SeasonYear int       `json:"season_year"`
	AvgTemp    float64   `json:"avg_temp"`
	MinTemp    float64   `json:"min_temp"`
	MaxTemp    float64   `json:"max_temp"`
	DayCount   int       `json:"day_count"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// RangeResult is one range-year's aggregate for a custom calendar range.
type RangeResult struct {
	Year      int       `json:"year"`
	AvgTemp   float64   `json:"avg_temp"`
	MinTemp   float64   `json:"min_temp"`
	MaxTemp   float64   `json:"max_temp"`
	DayCount  int       `json:"day_count"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// HistogramYear is one range-year's threshold counts.
type HistogramYear struct {
	Year                 int     `json:"year"`
	DaysMeetingThreshold int     `json:"days_meeting_threshold"`
	TotalDays            int     `json:"total_days"`
	Percentage           float64 `json:"percentage"`
}

// HistogramSummary aggregates the per-year counts across all years.
// StdDays is the sample standard deviation (n-1 divisor).
type HistogramSummary struct {
	AvgDays       float64 `json:"avg_days"`
	MinDays       int     `json:"min_days"`
	MaxDays       int     `json:"max_days"`
	StdDays       float64 `json:"std_days"`
	TotalYears    int     `json:"total_years"`
	AvgPercentage float64 `json:"avg_percentage"`
}

// HistogramResult pairs the cross-year summary with per-year rows,
// ordered year descending.
type HistogramResult struct {
	Summary HistogramSummary `json:"summary"`
	ByYear  []HistogramYear  `json:"by_year"`
}

// FrequencyYear is one calendar year's event counts over the full year.
type FrequencyYear struct {
	Year       int     `json:"year"`
	EventDays  int     `json:"event_days"`
	TotalDays  int     `json:"total_days"`
	Percentage float64 `json:"percentage"`
}

// FrequencyResult holds per-year event counts plus a least-squares trend
// of event days against year. Trend is a fixed-threshold heuristic, not
// a statistical significance test.
type FrequencyResult struct {
	ByYear     []FrequencyYear `json:"by_year"`
	TrendSlope float64         `json:"trend_slope"`
	Trend      string          `json:"trend"`
}

// FreezeResult is one calendar year's freeze bookends. Fields are nil
// when the year has no qualifying crossing on that side of midyear.
type FreezeResult struct {
	Year              int        `json:"year"`
	LastSpringFreeze  *time.Time `json:"last_spring_freeze"`
	FirstFallFreeze   *time.Time `json:"first_fall_freeze"`
	GrowingSeasonDays *int       `json:"growing_season_days"`
	SpringDayOfYear   *int       `json:"spring_day_of_year"`
	FallDayOfYear     *int       `json:"fall_day_of_year"`
}

// ClimatologyRow is one calendar day's record extremes and long-term
// mean across all years. PlotX is the year-boundary-adjusted chart
// coordinate.
type ClimatologyRow struct {
	Month      int     `json:"month"`
	Day        int     `json:"day"`
	RecordHigh float64 `json:"record_high"`
	RecordLow  float64 `json:"record_low"`
	AvgTemp    float64 `json:"avg_temp"`
	DayOfYear  int     `json:"day_of_year"`
	PlotX      int     `json:"plot_x"`
}

// OverlayPoint is one raw daily value from a single year, remapped onto
// the same plot coordinates as the climatological envelope.
type OverlayPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	PlotX int       `json:"plot_x"`
}
