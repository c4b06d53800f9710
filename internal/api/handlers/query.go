package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kellerwx/tempscope/internal/analysis"
	"github.com/kellerwx/tempscope/internal/calendar"
	"github.com/kellerwx/tempscope/internal/series"
	"github.com/kellerwx/tempscope/pkg/logger"
)

// QueryHandler exposes the analysis service over HTTP. Every endpoint is
// a GET taking the same primitive parameters as the CLI; an empty result
// is a 200 with an empty array, never an error.
type QueryHandler struct {
	svc    *analysis.Service
	stats  *series.LoadStats
	logger *logger.Logger
}

// NewQueryHandler creates a new query handler.
func NewQueryHandler(svc *analysis.Service, stats *series.LoadStats, log *logger.Logger) *QueryHandler {
	return &QueryHandler{
		svc:    svc,
		stats:  stats,
		logger: log,
	}
}

// InfoResponse describes the loaded series.
type InfoResponse struct {
	Records   int               `json:"records"`
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	LoadStats *series.LoadStats `json:"load_stats"`
}

// GetInfo returns metadata about the loaded series.
// GET /api/info
func (h *QueryHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	s := h.svc.Series()
	respondJSON(w, http.StatusOK, InfoResponse{
		Records:   s.Len(),
		StartDate: s.Start().Format("2006-01-02"),
		EndDate:   s.End().Format("2006-01-02"),
		LoadStats: h.stats,
	})
}

// GetStreaks returns threshold streaks.
// GET /api/streaks?metric=TMAX&threshold=90&direction=above&top=10
func (h *QueryHandler) GetStreaks(w http.ResponseWriter, r *http.Request) {
	metric, ok := metricParam(w, r, series.MetricTMax)
	if !ok {
		return
	}
	threshold, ok := requiredFloatParam(w, r, "threshold")
	if !ok {
		return
	}
	direction, ok := directionParam(w, r, analysis.Above)
	if !ok {
		return
	}
	topN := intParam(r, "top", 10)

	h.logger.WithFields(map[string]interface{}{
		"metric":    metric,
		"threshold": threshold,
		"direction": direction,
	}).Debug("Streak query")

	results := h.svc.Streaks(metric, threshold, direction, topN)
	if results == nil {
		results = []analysis.StreakResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// GetPeriods returns extreme rolling-window periods.
// GET /api/periods?metric=TAVG&days=7&extreme=coldest&top=10
func (h *QueryHandler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	metric, ok := metricParam(w, r, series.MetricTAvg)
	if !ok {
		return
	}
	extreme, ok := extremeParam(w, r)
	if !ok {
		return
	}
	nDays := intParam(r, "days", 7)
	topN := intParam(r, "top", 10)

	results := h.svc.ExtremePeriods(metric, nDays, extreme, topN)
	if results == nil {
		results = []analysis.PeriodResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// GetSeasons returns ranked seasons.
// GET /api/seasons?season=winter&metric=TAVG&extreme=coldest&top=10
func (h *QueryHandler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	season, err := calendar.ParseSeason(r.URL.Query().Get("season"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	metric, ok := metricParam(w, r, series.MetricTAvg)
	if !ok {
		return
	}
	extreme, ok := extremeParam(w, r)
	if !ok {
		return
	}
	topN := intParam(r, "top", 10)

	results := h.svc.ExtremeSeasons(season, metric, extreme, topN)
	if results == nil {
		results = []analysis.SeasonResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// GetDateRange returns ranked custom calendar ranges.
// GET /api/daterange?range=12/20-1/10&metric=TAVG&extreme=coldest&top=10
func (h *QueryHandler) GetDateRange(w http.ResponseWriter, r *http.Request) {
	rng, ok := rangeParam(w, r)
	if !ok {
		return
	}
	metric, ok := metricParam(w, r, series.MetricTAvg)
	if !ok {
		return
	}
	extreme, ok := extremeParam(w, r)
	if !ok {
		return
	}
	topN := intParam(r, "top", 10)

	results := h.svc.ExtremeDateRange(rng, metric, extreme, topN)
	if results == nil {
		results = []analysis.RangeResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// GetHistogram returns per-year threshold counts for a calendar range.
// GET /api/histogram?range=1/1-1/31&metric=TMIN&threshold=32&direction=below
func (h *QueryHandler) GetHistogram(w http.ResponseWriter, r *http.Request) {
	rng, ok := rangeParam(w, r)
	if !ok {
		return
	}
	metric, ok := metricParam(w, r, series.MetricTMin)
	if !ok {
		return
	}
	threshold, ok := requiredFloatParam(w, r, "threshold")
	if !ok {
		return
	}
	direction, ok := directionParam(w, r, analysis.Below)
	if !ok {
		return
	}

	result := h.svc.ThresholdHistogram(rng, metric, threshold, direction)
	if result.ByYear == nil {
		result.ByYear = []analysis.HistogramYear{}
	}
	respondJSON(w, http.StatusOK, result)
}

// GetFrequency returns whole-series annual event counts with trend.
// GET /api/frequency?metric=TMAX&threshold=90&direction=above
func (h *QueryHandler) GetFrequency(w http.ResponseWriter, r *http.Request) {
	metric, ok := metricParam(w, r, series.MetricTMax)
	if !ok {
		return
	}
	threshold, ok := requiredFloatParam(w, r, "threshold")
	if !ok {
		return
	}
	direction, ok := directionParam(w, r, analysis.Above)
	if !ok {
		return
	}

	result := h.svc.ThresholdFrequency(metric, threshold, direction)
	if result.ByYear == nil {
		result.ByYear = []analysis.FrequencyYear{}
	}
	respondJSON(w, http.StatusOK, result)
}

// GetFreeze returns per-year freeze bookends.
// GET /api/freeze?metric=TMIN&threshold=32
func (h *QueryHandler) GetFreeze(w http.ResponseWriter, r *http.Request) {
	metric, ok := metricParam(w, r, series.MetricTMin)
	if !ok {
		return
	}
	threshold := floatParam(r, "threshold", 32)

	results := h.svc.FreezeDates(metric, threshold)
	if results == nil {
		results = []analysis.FreezeResult{}
	}
	respondJSON(w, http.StatusOK, results)
}

// ClimatologyResponse pairs the envelope with an optional one-year
// overlay.
type ClimatologyResponse struct {
	Envelope []analysis.ClimatologyRow `json:"envelope"`
	Overlay  []analysis.OverlayPoint   `json:"overlay,omitempty"`
}

// GetClimatology returns the per-calendar-day envelope, optionally
// restricted to a range and overlaid with one year's raw values.
// GET /api/climatology?metric=TMAX&range=12/1-2/28&overlay=2021
func (h *QueryHandler) GetClimatology(w http.ResponseWriter, r *http.Request) {
	metric, ok := metricParam(w, r, series.MetricTMax)
	if !ok {
		return
	}

	var rng *calendar.Range
	if raw := r.URL.Query().Get("range"); raw != "" {
		parsed, err := calendar.ParseRange(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		rng = &parsed
	}

	resp := ClimatologyResponse{
		Envelope: h.svc.DailyClimatology(metric, rng),
	}
	if resp.Envelope == nil {
		resp.Envelope = []analysis.ClimatologyRow{}
	}

	if raw := r.URL.Query().Get("overlay"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid overlay year")
			return
		}
		resp.Overlay = h.svc.YearOverlay(year, metric, rng)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Parameter helpers

func metricParam(w http.ResponseWriter, r *http.Request, fallback series.Metric) (series.Metric, bool) {
	raw := r.URL.Query().Get("metric")
	if raw == "" {
		return fallback, true
	}
	metric, err := series.ParseMetric(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return metric, true
}

func directionParam(w http.ResponseWriter, r *http.Request, fallback analysis.Direction) (analysis.Direction, bool) {
	raw := r.URL.Query().Get("direction")
	if raw == "" {
		return fallback, true
	}
	direction, err := analysis.ParseDirection(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return direction, true
}

func extremeParam(w http.ResponseWriter, r *http.Request) (analysis.Extreme, bool) {
	raw := r.URL.Query().Get("extreme")
	if raw == "" {
		return analysis.Coldest, true
	}
	extreme, err := analysis.ParseExtreme(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return extreme, true
}

func rangeParam(w http.ResponseWriter, r *http.Request) (calendar.Range, bool) {
	rng, err := calendar.ParseRange(r.URL.Query().Get("range"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return calendar.Range{}, false
	}
	return rng, true
}

func requiredFloatParam(w http.ResponseWriter, r *http.Request, name string) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		respondError(w, http.StatusBadRequest, "Missing required parameter: "+name)
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid "+name+" parameter")
		return 0, false
	}
	return v, true
}

func floatParam(r *http.Request, name string, fallback float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}

func intParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
