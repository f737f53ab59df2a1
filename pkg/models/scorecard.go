package models

import (
	"fmt"
	"sort"
)

// ScoreMetric is one normalized scorecard measurement. Values are clamped
// to [0,1] by validation before they reach the projector; weights must be
// positive.
type ScoreMetric struct {
	Key    string  `json:"key"`
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Scorecard decisions derived from the aggregate score.
const (
	DecisionPass = "pass"
	DecisionWarn = "warn"
	DecisionFail = "fail"
)

// Decision thresholds: pass at or above 0.75, warn at or above 0.5.
const (
	passThreshold = 0.75
	warnThreshold = 0.5
)

// NormalizeMetrics validates and canonically orders metrics: sorted by key,
// every value in [0,1], every weight positive, keys unique and non-empty.
func NormalizeMetrics(metrics []ScoreMetric) ([]ScoreMetric, error) {
	if len(metrics) == 0 {
		return nil, fmt.Errorf("scorecard needs at least one metric")
	}
	out := make([]ScoreMetric, len(metrics))
	copy(out, metrics)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	for i, m := range out {
		switch {
		case m.Key == "":
			return nil, fmt.Errorf("metric %d has an empty key", i)
		case i > 0 && out[i-1].Key == m.Key:
			return nil, fmt.Errorf("duplicate metric key %q", m.Key)
		case m.Value < 0 || m.Value > 1:
			return nil, fmt.Errorf("metric %q value %v outside [0,1]", m.Key, m.Value)
		case m.Weight <= 0:
			return nil, fmt.Errorf("metric %q weight %v is not positive", m.Key, m.Weight)
		}
	}
	return out, nil
}

// Score aggregates normalized metrics into the weighted mean, clamped to
// [0,1]. Zero total weight scores zero.
func Score(metrics []ScoreMetric) float64 {
	var weighted, total float64
	for _, m := range metrics {
		weighted += m.Value * m.Weight
		total += m.Weight
	}
	if total == 0 {
		return 0
	}
	score := weighted / total
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Decide maps a score to its decision band.
func Decide(score float64) string {
	switch {
	case score >= passThreshold:
		return DecisionPass
	case score >= warnThreshold:
		return DecisionWarn
	default:
		return DecisionFail
	}
}
