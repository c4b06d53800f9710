package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/series"
	"github.com/kellerwx/tempscope/pkg/config"
	"github.com/kellerwx/tempscope/pkg/logger"
)

func testHandler(t *testing.T) *QueryHandler {
	t.Helper()

	start := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	values := []float64{95, 96, 94, 97, 93}
	records := make([]series.DailyRecord, len(values))
	for i, v := range values {
		records[i] = series.DailyRecord{Date: start.AddDate(0, 0, i), TMax: v, TMin: v - 20, TAvg: v - 10}
	}

	s, err := series.New(records)
	require.NoError(t, err)

	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	svc := analysis.NewService(s, log)
	stats := &series.LoadStats{TotalRows: 5, ValidRows: 5}
	return NewQueryHandler(svc, stats, log)
}

func get(t *testing.T, handler http.HandlerFunc, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestGetInfo(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetInfo, "/api/info")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var info InfoResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, 5, info.Records)
	assert.Equal(t, "2021-07-01", info.StartDate)
	assert.Equal(t, "2021-07-05", info.EndDate)
	require.NotNil(t, info.LoadStats)
	assert.Equal(t, 5, info.LoadStats.ValidRows)
}

func TestGetStreaks(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetStreaks, "/api/streaks?metric=TMAX&threshold=94&direction=above")
	require.Equal(t, http.StatusOK, rr.Code)

	var streaks []analysis.StreakResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &streaks))
	require.Len(t, streaks, 1)
	assert.Equal(t, 4, streaks[0].Length)
	assert.Equal(t, 95.5, streaks[0].AvgTemp)
}

func TestGetStreaksMissingThreshold(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetStreaks, "/api/streaks?metric=TMAX")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "threshold")
}

func TestGetStreaksInvalidParams(t *testing.T) {
	h := testHandler(t)

	tests := []struct {
		name string
		url  string
	}{
		{"bad metric", "/api/streaks?metric=BOGUS&threshold=90"},
		{"bad direction", "/api/streaks?threshold=90&direction=sideways"},
		{"bad threshold", "/api/streaks?threshold=hot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := get(t, h.GetStreaks, tt.url)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestGetStreaksEmptyResultIsArray(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetStreaks, "/api/streaks?metric=TMAX&threshold=200&direction=above")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetPeriods(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetPeriods, "/api/periods?metric=TAVG&days=2&extreme=coldest&top=5")
	require.Equal(t, http.StatusOK, rr.Code)

	var periods []analysis.PeriodResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &periods))
	require.NotEmpty(t, periods)
	assert.Equal(t, 2, periods[0].Length)
}

func TestGetPeriodsWindowTooLong(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetPeriods, "/api/periods?days=100")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetSeasons(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetSeasons, "/api/seasons?season=summer&metric=TAVG&extreme=warmest")
	require.Equal(t, http.StatusOK, rr.Code)

	var seasons []analysis.SeasonResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &seasons))
	require.Len(t, seasons, 1)
	assert.Equal(t, 2021, seasons[0].SeasonYear)
	assert.Equal(t, 5, seasons[0].DayCount)
}

func TestGetSeasonsInvalidSeason(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetSeasons, "/api/seasons?season=monsoon")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetDateRange(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetDateRange, "/api/daterange?range=7/1-7/31&metric=TMAX&extreme=warmest")
	require.Equal(t, http.StatusOK, rr.Code)

	var results []analysis.RangeResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 2021, results[0].Year)
}

func TestGetDateRangeMissingRange(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetDateRange, "/api/daterange?metric=TMAX")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetHistogram(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetHistogram, "/api/histogram?range=7/1-7/31&metric=TMAX&threshold=95&direction=above")
	require.Equal(t, http.StatusOK, rr.Code)

	var result analysis.HistogramResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.ByYear, 1)
	assert.Equal(t, 3, result.ByYear[0].DaysMeetingThreshold)
	assert.Equal(t, 5, result.ByYear[0].TotalDays)
}

func TestGetFrequency(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetFrequency, "/api/frequency?metric=TMAX&threshold=95&direction=above")
	require.Equal(t, http.StatusOK, rr.Code)

	var result analysis.FrequencyResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result.ByYear, 1)
	assert.Equal(t, 3, result.ByYear[0].EventDays)
	assert.Equal(t, analysis.TrendStable, result.Trend)
}

func TestGetFreeze(t *testing.T) {
	h := testHandler(t)

	// TMIN values are 73-77; threshold 75 qualifies some July days as
	// "fall" freezes.
	rr := get(t, h.GetFreeze, "/api/freeze?metric=TMIN&threshold=75")
	require.Equal(t, http.StatusOK, rr.Code)

	var results []analysis.FreezeResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 2021, results[0].Year)
	assert.Nil(t, results[0].LastSpringFreeze)
	require.NotNil(t, results[0].FirstFallFreeze)
}

func TestGetClimatology(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetClimatology, "/api/climatology?metric=TMAX")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ClimatologyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Envelope, 5)
	assert.Empty(t, resp.Overlay)
}

func TestGetClimatologyWithOverlay(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetClimatology, "/api/climatology?metric=TMAX&overlay=2021")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ClimatologyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Overlay, 5)
}

func TestGetClimatologyBadParams(t *testing.T) {
	h := testHandler(t)

	rr := get(t, h.GetClimatology, "/api/climatology?range=nonsense")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = get(t, h.GetClimatology, "/api/climatology?overlay=twentytwentyone")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
