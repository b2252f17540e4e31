package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating_BoundaryInclusive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RatingGood, Rating("LCP", 2500))
	assert.Equal(t, RatingNeedsImprovement, Rating("LCP", 2501))
	assert.Equal(t, RatingNeedsImprovement, Rating("LCP", 4000))
	assert.Equal(t, RatingPoor, Rating("LCP", 4001))
}

func TestRating_PerMetricThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		metric string
		value  float64
		want   string
	}{
		{"FID", 100, RatingGood},
		{"FID", 300, RatingNeedsImprovement},
		{"FID", 301, RatingPoor},
		{"CLS", 0.1, RatingGood},
		{"CLS", 0.2, RatingNeedsImprovement},
		{"CLS", 0.3, RatingPoor},
		{"FCP", 1800, RatingGood},
		{"TTFB", 1801, RatingPoor},
		{"INP", 200, RatingGood},
		{"INP", 500, RatingNeedsImprovement},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.want, Rating(tc.metric, tc.value), "%s=%v", tc.metric, tc.value)
	}
}

func TestRating_UnknownMetric(t *testing.T) {
	t.Parallel()

	// No thresholds configured means there is nothing to fail against.
	assert.Equal(t, RatingGood, Rating("NOPE", 999999))
}
