package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMetrics(t *testing.T) {
	t.Run("sorts by key", func(t *testing.T) {
		out, err := NormalizeMetrics([]ScoreMetric{
			{Key: "z", Value: 1, Weight: 1},
			{Key: "a", Value: 0, Weight: 2},
		})
		require.NoError(t, err)
		assert.Equal(t, "a", out[0].Key)
		assert.Equal(t, "z", out[1].Key)
	})

	t.Run("rejects bad shapes", func(t *testing.T) {
		cases := map[string][]ScoreMetric{
			"empty":         {},
			"empty key":     {{Key: "", Value: 0.5, Weight: 1}},
			"duplicate key": {{Key: "a", Value: 0.5, Weight: 1}, {Key: "a", Value: 0.6, Weight: 1}},
			"value above 1": {{Key: "a", Value: 1.5, Weight: 1}},
			"value below 0": {{Key: "a", Value: -0.1, Weight: 1}},
			"zero weight":   {{Key: "a", Value: 0.5, Weight: 0}},
		}
		for name, metrics := range cases {
			_, err := NormalizeMetrics(metrics)
			assert.Error(t, err, name)
		}
	})
}

func TestScoreAndDecide(t *testing.T) {
	cases := []struct {
		name     string
		metrics  []ScoreMetric
		score    float64
		decision string
	}{
		{
			name:     "weighted mean",
			metrics:  []ScoreMetric{{Key: "a", Value: 1, Weight: 3}, {Key: "b", Value: 0, Weight: 1}},
			score:    0.75,
			decision: DecisionPass,
		},
		{
			name:     "warn band",
			metrics:  []ScoreMetric{{Key: "a", Value: 0.5, Weight: 1}},
			score:    0.5,
			decision: DecisionWarn,
		},
		{
			name:     "fail band",
			metrics:  []ScoreMetric{{Key: "a", Value: 0.49, Weight: 1}},
			score:    0.49,
			decision: DecisionFail,
		},
		{
			name:     "no weight scores zero",
			metrics:  nil,
			score:    0,
			decision: DecisionFail,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := Score(tc.metrics)
			assert.InDelta(t, tc.score, score, 1e-9)
			assert.Equal(t, tc.decision, Decide(score))
		})
	}
}
