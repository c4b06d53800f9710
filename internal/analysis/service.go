package analysis

import (
	"fmt"

	"github.com/kellerwx/tempscope/internal/series"
	"github.com/kellerwx/tempscope/pkg/logger"
)

// Direction selects which side of a threshold qualifies.
type Direction string

const (
	Above Direction = "above" // value >= threshold
	Below Direction = "below" // value <= threshold
)

// ParseDirection converts a string to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Above, Below:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q (valid: above, below)", s)
	}
}

// meets applies the threshold predicate. Both directions are inclusive.
func (d Direction) meets(value, threshold float64) bool {
	if d == Above {
		return value >= threshold
	}
	return value <= threshold
}

// Extreme selects which end of the temperature scale to rank toward.
type Extreme string

const (
	Coldest Extreme = "coldest"
	Warmest Extreme = "warmest"
)

// ParseExtreme converts a string to an Extreme.
func ParseExtreme(s string) (Extreme, error) {
	switch Extreme(s) {
	case Coldest, Warmest:
		return Extreme(s), nil
	default:
		return "", fmt.Errorf("invalid extreme %q (valid: coldest, warmest)", s)
	}
}

// Service answers analytical queries against one immutable daily series.
// Every method is a pure computation; concurrent calls are safe because
// the series is never mutated after construction.
type Service struct {
	series *series.Series
	logger *logger.Logger
}

// NewService creates a query service over a loaded series.
func NewService(s *series.Series, log *logger.Logger) *Service {
	return &Service{series: s, logger: log}
}

// Series exposes the underlying series for callers that report on it.
func (s *Service) Series() *series.Series {
	return s.series
}
