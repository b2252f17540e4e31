package vitals

import (
	"fmt"
	"time"

	"github.com/ThanawatK/CampSiam/internal/pkg/cache"
)

// Rating buckets for a reported metric value.
const (
	RatingGood             = "good"
	RatingNeedsImprovement = "needs-improvement"
	RatingPoor             = "poor"
)

// thresholds holds the good / needs-improvement cutoffs per metric.
// A value at or below Good is "good"; at or below NeedsImprovement is
// "needs-improvement"; anything above is "poor".
type thresholds struct {
	Good             float64
	NeedsImprovement float64
}

var metricThresholds = map[string]thresholds{
	"LCP":  {Good: 2500, NeedsImprovement: 4000},
	"FID":  {Good: 100, NeedsImprovement: 300},
	"CLS":  {Good: 0.1, NeedsImprovement: 0.25},
	"FCP":  {Good: 1800, NeedsImprovement: 3000},
	"TTFB": {Good: 800, NeedsImprovement: 1800},
	"INP":  {Good: 200, NeedsImprovement: 500},
}

// Rating classifies a metric value against the fixed per-metric thresholds.
// Boundaries are inclusive at both cutoffs. Metrics without configured
// thresholds rate as good.
func Rating(metric string, value float64) string {
	t, ok := metricThresholds[metric]
	if !ok {
		return RatingGood
	}
	if value <= t.Good {
		return RatingGood
	}
	if value <= t.NeedsImprovement {
		return RatingNeedsImprovement
	}
	return RatingPoor
}

// Beacon is the payload browsers post to the vitals sink.
type Beacon struct {
	Name      string  `json:"name" validate:"required"`
	Value     float64 `json:"value"`
	Rating    string  `json:"rating"`
	Page      string  `json:"page"`
	Timestamp int64   `json:"timestamp"`
}

// Record classifies and stores a beacon in rolling per-day counters.
// Cache failures are swallowed; losing a vitals sample is not an error
// worth surfacing to the client.
func Record(b Beacon) Beacon {
	b.Rating = Rating(b.Name, b.Value)
	if b.Timestamp == 0 {
		b.Timestamp = time.Now().UnixMilli()
	}

	day := time.UnixMilli(b.Timestamp).UTC().Format("2006-01-02")
	key := fmt.Sprintf("vitals:%s:%s:%s", day, b.Name, b.Rating)
	_, _ = cache.Incr(key)

	return b
}
