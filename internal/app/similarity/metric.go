package similarity

import (
	"strings"

	"collab-filter/internal/app/errors"
)

// Metric selects one of the supported similarity measures.
type Metric int

const (
	// MetricPearson is the default metric for matches and recommendations.
	MetricPearson Metric = iota
	MetricDistance
)

// DefaultMetric is used whenever no metric is configured.
const DefaultMetric = MetricPearson

var (
	pearson  = NewPearsonCalculator()
	distance = NewDistanceCalculator()
)

func (m Metric) String() string {
	switch m {
	case MetricPearson:
		return "pearson"
	case MetricDistance:
		return "distance"
	default:
		return "unknown"
	}
}

// Calculator returns the stateless calculator for m. Unknown values fall back
// to Pearson.
func (m Metric) Calculator() Calculator {
	if m == MetricDistance {
		return distance
	}
	return pearson
}

// ParseMetric accepts "pearson" or "distance" (case-insensitive, plus a few
// common aliases). An empty string yields DefaultMetric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultMetric, nil
	case "pearson", "correlation":
		return MetricPearson, nil
	case "distance", "euclidean":
		return MetricDistance, nil
	default:
		return DefaultMetric, errors.Wrapf(errors.ErrUnknownMetric, "%q", name)
	}
}
