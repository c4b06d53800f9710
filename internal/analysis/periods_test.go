package analysis

import (
	"testing"
	"time"

	"github.com/kellerwx/tempscope/internal/series"
)

func TestExtremePeriodsColdest(t *testing.T) {
	svc := newTestService(t, flatDays(day(2021, time.January, 1), []float64{50, 40, 30, 60, 20}))

	got := svc.ExtremePeriods(series.MetricTAvg, 2, Coldest, 10)
	if len(got) != 2 {
		t.Fatalf("expected 2 periods, got %d: %+v", len(got), got)
	}

	// Coldest 2-day window is rows 1-2 (mean 35); every other window
	// touching row 4 (the single coldest day) overlaps a selection or
	// loses to rows 3-4 (mean 40).
	first := got[0]
	if first.AvgTemp != 35 {
		t.Errorf("first AvgTemp = %v, want 35", first.AvgTemp)
	}
	if !first.StartDate.Equal(day(2021, time.January, 2)) || !first.EndDate.Equal(day(2021, time.January, 3)) {
		t.Errorf("first window = %v .. %v, want Jan 2 .. Jan 3", first.StartDate, first.EndDate)
	}
	if first.MinTemp != 30 || first.MaxTemp != 40 {
		t.Errorf("first min/max = %v/%v, want 30/40", first.MinTemp, first.MaxTemp)
	}

	second := got[1]
	if second.AvgTemp != 40 {
		t.Errorf("second AvgTemp = %v, want 40", second.AvgTemp)
	}
	if !second.StartDate.Equal(day(2021, time.January, 4)) || !second.EndDate.Equal(day(2021, time.January, 5)) {
		t.Errorf("second window = %v .. %v, want Jan 4 .. Jan 5", second.StartDate, second.EndDate)
	}
}

func TestExtremePeriodsWarmest(t *testing.T) {
	svc := newTestService(t, flatDays(day(2021, time.July, 1), []float64{80, 90, 100, 70, 60}))

	got := svc.ExtremePeriods(series.MetricTAvg, 2, Warmest, 1)
	if len(got) != 1 {
		t.Fatalf("expected 1 period, got %d", len(got))
	}
	if got[0].AvgTemp != 95 {
		t.Errorf("AvgTemp = %v, want 95", got[0].AvgTemp)
	}
}

func TestExtremePeriodsNonOverlap(t *testing.T) {
	values := make([]float64, 30)
	for i := range values {
		values[i] = float64((i * 7) % 23)
	}
	svc := newTestService(t, flatDays(day(2021, time.January, 1), values))

	got := svc.ExtremePeriods(series.MetricTAvg, 5, Coldest, 10)
	if len(got) == 0 {
		t.Fatal("expected at least one period")
	}

	used := map[string]bool{}
	for _, p := range got {
		for d := p.StartDate; !d.After(p.EndDate); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			if used[key] {
				t.Fatalf("day %s appears in two selected windows", key)
			}
			used[key] = true
		}
	}
}

func TestExtremePeriodsShortSeries(t *testing.T) {
	svc := newTestService(t, flatDays(day(2021, time.January, 1), []float64{50, 40}))

	if got := svc.ExtremePeriods(series.MetricTAvg, 5, Coldest, 10); got != nil {
		t.Errorf("series shorter than window: got %+v, want nil", got)
	}
	if got := svc.ExtremePeriods(series.MetricTAvg, 0, Coldest, 10); got != nil {
		t.Errorf("zero-length window: got %+v, want nil", got)
	}
}

func TestExtremePeriodsWindowEqualsSeries(t *testing.T) {
	svc := newTestService(t, flatDays(day(2021, time.January, 1), []float64{10, 20, 30}))

	got := svc.ExtremePeriods(series.MetricTAvg, 3, Coldest, 10)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 period, got %d", len(got))
	}
	if got[0].AvgTemp != 20 || got[0].Length != 3 {
		t.Errorf("got %+v, want mean 20 over 3 days", got[0])
	}
}
