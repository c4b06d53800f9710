package analysis

import (
	"testing"
	"time"

	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
)

func TestExtremeSeasonsDecemberAttribution(t *testing.T) {
	// December 2020 and January 2021 belong to the same winter, keyed by
	// the January year.
	records := []series.DailyRecord{
		rec(day(2020, time.December, 15), 30, 10),
		rec(day(2021, time.January, 15), 28, 8),
		rec(day(2021, time.February, 15), 32, 12),
		rec(day(2021, time.July, 15), 95, 70), // not winter
	}
	svc := newTestService(t, records)

	got := svc.ExtremeSeasons(calendar.Winter, series.MetricTAvg, Coldest, 10)
	if len(got) != 1 {
		t.Fatalf("expected 1 winter, got %d: %+v", len(got), got)
	}

	w := got[0]
	if w.SeasonYear != 2021 {
		t.Errorf("SeasonYear = %d, want 2021", w.SeasonYear)
	}
	if w.DayCount != 3 {
		t.Errorf("DayCount = %d, want 3", w.DayCount)
	}
	if !w.StartDate.Equal(day(2020, time.December, 15)) {
		t.Errorf("StartDate = %v, want Dec 15 2020", w.StartDate)
	}
	if !w.EndDate.Equal(day(2021, time.February, 15)) {
		t.Errorf("EndDate = %v, want Feb 15 2021", w.EndDate)
	}
}

func TestExtremeSeasonsRanking(t *testing.T) {
	records := []series.DailyRecord{
		rec(day(2019, time.July, 1), 100, 80), // summer 2019, avg 90
		rec(day(2020, time.July, 1), 90, 70),  // summer 2020, avg 80
		rec(day(2021, time.July, 1), 110, 90), // summer 2021, avg 100
	}
	svc := newTestService(t, records)

	warmest := svc.ExtremeSeasons(calendar.Summer, series.MetricTAvg, Warmest, 10)
	if len(warmest) != 3 {
		t.Fatalf("expected 3 summers, got %d", len(warmest))
	}
	if warmest[0].SeasonYear != 2021 || warmest[1].SeasonYear != 2019 || warmest[2].SeasonYear != 2020 {
		t.Errorf("warmest order = %d, %d, %d", warmest[0].SeasonYear, warmest[1].SeasonYear, warmest[2].SeasonYear)
	}

	coldest := svc.ExtremeSeasons(calendar.Summer, series.MetricTAvg, Coldest, 1)
	if len(coldest) != 1 || coldest[0].SeasonYear != 2020 {
		t.Errorf("coldest = %+v, want single 2020 entry", coldest)
	}
}

func TestExtremeSeasonsNoData(t *testing.T) {
	svc := newTestService(t, []series.DailyRecord{rec(day(2021, time.July, 1), 95, 70)})

	if got := svc.ExtremeSeasons(calendar.Winter, series.MetricTAvg, Coldest, 10); len(got) != 0 {
		t.Errorf("expected no winters, got %+v", got)
	}
}

func TestExtremeDateRangeSpanning(t *testing.T) {
	rng := calendar.Range{Start: calendar.MonthDay{Month: 12, Day: 20}, End: calendar.MonthDay{Month: 1, Day: 10}}

	records := []series.DailyRecord{
		rec(day(2020, time.December, 31), 30, 10), // range year 2020
		rec(day(2021, time.January, 5), 20, 0),    // range year 2020
		rec(day(2021, time.December, 25), 40, 20), // range year 2021
		rec(day(2021, time.June, 1), 80, 60),      // outside the range
	}
	svc := newTestService(t, records)

	got := svc.ExtremeDateRange(rng, series.MetricTAvg, Coldest, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 range years, got %d: %+v", len(got), got)
	}

	// 2020 instance: avg of 20 and 10 = 15, colder than 2021's 30.
	first := got[0]
	if first.Year != 2020 {
		t.Errorf("coldest range year = %d, want 2020", first.Year)
	}
	if first.DayCount != 2 {
		t.Errorf("2020 DayCount = %d, want 2", first.DayCount)
	}
	if first.AvgTemp != 15 {
		t.Errorf("2020 AvgTemp = %v, want 15", first.AvgTemp)
	}
	if !first.StartDate.Equal(day(2020, time.December, 31)) || !first.EndDate.Equal(day(2021, time.January, 5)) {
		t.Errorf("2020 span = %v .. %v", first.StartDate, first.EndDate)
	}

	if got[1].Year != 2021 || got[1].DayCount != 1 {
		t.Errorf("second entry = %+v, want 2021 with 1 day", got[1])
	}
}

func TestExtremeDateRangeSimple(t *testing.T) {
	rng := calendar.Range{Start: calendar.MonthDay{Month: 7, Day: 1}, End: calendar.MonthDay{Month: 7, Day: 31}}

	records := []series.DailyRecord{
		rec(day(2020, time.July, 10), 100, 80),
		rec(day(2021, time.July, 10), 90, 70),
	}
	svc := newTestService(t, records)

	got := svc.ExtremeDateRange(rng, series.MetricTMax, Warmest, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 years, got %d", len(got))
	}
	if got[0].Year != 2020 || got[0].MaxTemp != 100 {
		t.Errorf("warmest = %+v, want 2020 with max 100", got[0])
	}
}
