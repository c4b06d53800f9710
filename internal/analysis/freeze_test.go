package analysis

import (
	"testing"
	"time"

	"github.com/kellerwx/tempscope/internal/series"
)

func TestFreezeDates(t *testing.T) {
	records := []series.DailyRecord{
		rec(day(2021, time.March, 10), 45, 30),    // spring freeze
		rec(day(2021, time.April, 20), 50, 32),    // later spring freeze, wins
		rec(day(2021, time.May, 5), 60, 40),       // no freeze
		rec(day(2021, time.October, 15), 50, 30),  // first fall freeze, wins
		rec(day(2021, time.November, 20), 40, 25), // later fall freeze
	}
	svc := newTestService(t, records)

	got := svc.FreezeDates(series.MetricTMin, 32)
	if len(got) != 1 {
		t.Fatalf("expected 1 year, got %d", len(got))
	}

	y := got[0]
	if y.Year != 2021 {
		t.Errorf("Year = %d, want 2021", y.Year)
	}
	if y.LastSpringFreeze == nil || !y.LastSpringFreeze.Equal(day(2021, time.April, 20)) {
		t.Errorf("LastSpringFreeze = %v, want Apr 20", y.LastSpringFreeze)
	}
	if y.FirstFallFreeze == nil || !y.FirstFallFreeze.Equal(day(2021, time.October, 15)) {
		t.Errorf("FirstFallFreeze = %v, want Oct 15", y.FirstFallFreeze)
	}
	if y.GrowingSeasonDays == nil || *y.GrowingSeasonDays != 178 {
		t.Errorf("GrowingSeasonDays = %v, want 178", y.GrowingSeasonDays)
	}
	if y.SpringDayOfYear == nil || *y.SpringDayOfYear != day(2021, time.April, 20).YearDay() {
		t.Errorf("SpringDayOfYear = %v", y.SpringDayOfYear)
	}
}

func TestFreezeDatesJuneJulySplit(t *testing.T) {
	// A June freeze is a spring freeze; a July freeze is a fall freeze.
	records := []series.DailyRecord{
		rec(day(2021, time.June, 30), 50, 30),
		rec(day(2021, time.July, 1), 50, 30),
	}
	svc := newTestService(t, records)

	got := svc.FreezeDates(series.MetricTMin, 32)
	if len(got) != 1 {
		t.Fatalf("expected 1 year, got %d", len(got))
	}
	y := got[0]
	if y.LastSpringFreeze == nil || y.LastSpringFreeze.Month() != time.June {
		t.Errorf("LastSpringFreeze = %v, want June 30", y.LastSpringFreeze)
	}
	if y.FirstFallFreeze == nil || y.FirstFallFreeze.Month() != time.July {
		t.Errorf("FirstFallFreeze = %v, want July 1", y.FirstFallFreeze)
	}
	if y.GrowingSeasonDays == nil || *y.GrowingSeasonDays != 1 {
		t.Errorf("GrowingSeasonDays = %v, want 1", y.GrowingSeasonDays)
	}
}

func TestFreezeDatesMissingSides(t *testing.T) {
	records := []series.DailyRecord{
		// 2020 has only a spring freeze.
		rec(day(2020, time.March, 1), 40, 20),
		rec(day(2020, time.September, 1), 70, 50),
		// 2021 has no freezes at all, but still appears.
		rec(day(2021, time.March, 1), 60, 40),
	}
	svc := newTestService(t, records)

	got := svc.FreezeDates(series.MetricTMin, 32)
	if len(got) != 2 {
		t.Fatalf("expected 2 years, got %d", len(got))
	}

	y2020 := got[0]
	if y2020.Year != 2020 {
		t.Fatalf("first year = %d, want 2020", y2020.Year)
	}
	if y2020.LastSpringFreeze == nil {
		t.Error("2020 should have a spring freeze")
	}
	if y2020.FirstFallFreeze != nil {
		t.Errorf("2020 FirstFallFreeze = %v, want nil", y2020.FirstFallFreeze)
	}
	if y2020.GrowingSeasonDays != nil {
		t.Errorf("2020 GrowingSeasonDays = %v, want nil", y2020.GrowingSeasonDays)
	}

	y2021 := got[1]
	if y2021.LastSpringFreeze != nil || y2021.FirstFallFreeze != nil || y2021.GrowingSeasonDays != nil {
		t.Errorf("2021 should be all nil: %+v", y2021)
	}
}

func TestFreezeDatesThresholdInclusive(t *testing.T) {
	records := []series.DailyRecord{
		rec(day(2021, time.March, 1), 40, 32), // exactly at threshold
	}
	svc := newTestService(t, records)

	got := svc.FreezeDates(series.MetricTMin, 32)
	if len(got) != 1 || got[0].LastSpringFreeze == nil {
		t.Fatalf("value equal to threshold must count as a freeze: %+v", got)
	}
}
