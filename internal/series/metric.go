package series

import "fmt"

// Metric identifies which temperature reading an analysis operates on.
type Metric string

const (
	MetricTMax Metric = "TMAX"
	MetricTMin Metric = "TMIN"
	MetricTAvg Metric = "TAVG"
)

// ParseMetric converts a string to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricTMax, MetricTMin, MetricTAvg:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("invalid metric %q (valid: TMAX, TMIN, TAVG)", s)
	}
}

// Value returns the reading for the given metric.
func (r DailyRecord) Value(m Metric) float64 {
	switch m {
	case MetricTMax:
		return r.TMax
	case MetricTMin:
		return r.TMin
	default:
		return r.TAvg
	}
}
