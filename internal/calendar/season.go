package calendar

import (
	"fmt"
	"time"
)

// Season is a meteorological season.
type Season string

const (
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
)

// seasonAssignment maps a month to its season and the offset applied to
// the calendar year to obtain the season year. December carries +1 so it
// belongs to the winter completed by the following January and February.
type seasonAssignment struct {
	Season     Season
	YearOffset int
}

// Static month-to-season table; the single source for season membership
// so the seasonal aggregator and range resolver cannot drift apart.
var seasonByMonth = map[time.Month]seasonAssignment{
	time.December:  {Winter, 1},
	time.January:   {Winter, 0},
	time.February:  {Winter, 0},
	time.March:     {Spring, 0},
	time.April:     {Spring, 0},
	time.May:       {Spring, 0},
	time.June:      {Summer, 0},
	time.July:      {Summer, 0},
	time.August:    {Summer, 0},
	time.September: {Fall, 0},
	time.October:   {Fall, 0},
	time.November:  {Fall, 0},
}

// ParseSeason converts a string to a Season.
func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case Winter, Spring, Summer, Fall:
		return Season(s), nil
	default:
		return "", fmt.Errorf("invalid season %q (valid: winter, spring, summer, fall)", s)
	}
}

// SeasonOf returns the season a date belongs to.
func SeasonOf(t time.Time) Season {
	return seasonByMonth[t.Month()].Season
}

// SeasonYear returns the season year a date belongs to. For December this
// is the calendar year plus one.
func SeasonYear(t time.Time) int {
	return t.Year() + seasonByMonth[t.Month()].YearOffset
}

// SeasonLabel formats a season year for display. Winter spans the year
// boundary, so "Winter 2023-24" names the Dec 2023 - Feb 2024 season.
func SeasonLabel(season Season, seasonYear int) string {
	if season == Winter {
		return fmt.Sprintf("Winter %d-%02d", seasonYear-1, seasonYear%100)
	}
	// Capitalize the season name
	name := string(season)
	return fmt.Sprintf("%s%s %d", string(name[0]-'a'+'A'), name[1:], seasonYear)
}
