package analysis

import (
	"testing"
	"time"

	"github.com/kellerwx/tempscope/internal/series"
	"github.com/kellerwx/tempscope/pkg/config"
	"github.com/kellerwx/tempscope/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func newTestService(t *testing.T, records []series.DailyRecord) *Service {
	t.Helper()
	s, err := series.New(records)
	if err != nil {
		t.Fatalf("series.New failed: %v", err)
	}
	return NewService(s, testLogger())
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// rec builds one record with TAVG derived from TMAX/TMIN.
func rec(date time.Time, tmax, tmin float64) series.DailyRecord {
	return series.DailyRecord{Date: date, TMax: tmax, TMin: tmin, TAvg: (tmax + tmin) / 2}
}

// flatDays builds consecutive daily records where all three metrics carry
// the same value, one per entry.
func flatDays(start time.Time, values []float64) []series.DailyRecord {
	records := make([]series.DailyRecord, len(values))
	for i, v := range values {
		records[i] = series.DailyRecord{
			Date: start.AddDate(0, 0, i),
			TMax: v,
			TMin: v,
			TAvg: v,
		}
	}
	return records
}
