package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthDay is a calendar position without a year.
type MonthDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Compare orders month/day positions lexicographically.
// Returns -1, 0 or 1.
func (md MonthDay) Compare(other MonthDay) int {
	switch {
	case md.Month != other.Month:
		if md.Month < other.Month {
			return -1
		}
		return 1
	case md.Day != other.Day:
		if md.Day < other.Day {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Of extracts the MonthDay of a date.
func Of(t time.Time) MonthDay {
	return MonthDay{Month: int(t.Month()), Day: t.Day()}
}

// Range is an inclusive calendar span defined by month/day endpoints.
// Endpoints are not validated against month lengths: an impossible day
// such as Feb 30 is accepted and simply never matches a real date.
type Range struct {
	Start MonthDay `json:"start"`
	End   MonthDay `json:"end"`
}

// ParseRange parses "M/D-M/D" strings, e.g. "12/20-1/10".
func ParseRange(s string) (Range, error) {
	parseErr := fmt.Errorf("invalid date range %q (expected M/D-M/D, e.g. 1/3-1/20)", s)

	startStr, endStr, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, parseErr
	}
	start, err := parseMonthDay(startStr)
	if err != nil {
		return Range{}, parseErr
	}
	end, err := parseMonthDay(endStr)
	if err != nil {
		return Range{}, parseErr
	}
	return Range{Start: start, End: end}, nil
}

func parseMonthDay(s string) (MonthDay, error) {
	monthStr, dayStr, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return MonthDay{}, fmt.Errorf("missing '/' in %q", s)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		return MonthDay{}, err
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return MonthDay{}, err
	}
	return MonthDay{Month: month, Day: day}, nil
}

// SpansYear reports whether the range crosses a year boundary,
// e.g. Dec 15 - Jan 15.
func (r Range) SpansYear() bool {
	return r.Start.Compare(r.End) > 0
}

// Contains reports whether a date's month/day falls inside the range.
func (r Range) Contains(t time.Time) bool {
	md := Of(t)
	if r.SpansYear() {
		return md.Compare(r.Start) >= 0 || md.Compare(r.End) <= 0
	}
	return md.Compare(r.Start) >= 0 && md.Compare(r.End) <= 0
}

// inStartPortion reports whether a matching date sits in the portion of a
// spanning range before the year boundary.
func (r Range) inStartPortion(t time.Time) bool {
	return Of(t).Compare(r.Start) >= 0
}

// RangeYear attributes a matching date to the year in which its range
// instance began. For a spanning range, dates after the new year belong
// to the previous calendar year's instance; for a non-spanning range the
// range year is simply the calendar year.
func (r Range) RangeYear(t time.Time) int {
	if r.SpansYear() && !r.inStartPortion(t) {
		return t.Year() - 1
	}
	return t.Year()
}

// PlotX maps a matching date's month/day onto a monotonically increasing
// chart coordinate. For a spanning range, days in the after-new-year
// portion are shifted by 365 so the whole range renders contiguously.
func (r Range) PlotX(t time.Time) int {
	doy := DayOfYear(Of(t))
	if r.SpansYear() && !r.inStartPortion(t) {
		return doy + 365
	}
	return doy
}

// DayOfYear returns the day-of-year of a month/day position in a
// non-leap reference year, so every (month, day) group maps to one
// stable coordinate across years.
func DayOfYear(md MonthDay) int {
	return time.Date(2001, time.Month(md.Month), md.Day, 0, 0, 0, 0, time.UTC).YearDay()
}

// String renders the range as "M/D-M/D".
func (r Range) String() string {
	return fmt.Sprintf("%d/%d-%d/%d", r.Start.Month, r.Start.Day, r.End.Month, r.End.Day)
}

// Label renders the range with month names, e.g. "Dec 20 - Jan 10".
func (r Range) Label() string {
	return fmt.Sprintf("%s %d - %s %d",
		time.Month(r.Start.Month).String()[:3], r.Start.Day,
		time.Month(r.End.Month).String()[:3], r.End.Day)
}
