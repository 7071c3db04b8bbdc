package scrape

import (
	"time"

	"github.com/mazen160/go-random"
)

// randomDelay picks a duration in [min, max]. Randomizing request spacing
// is part of the failure-avoidance design, not correctness-critical.
func randomDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	ms, err := random.IntRange(int(min.Milliseconds()), int(max.Milliseconds())+1)
	if err != nil {
		return min
	}
	return time.Duration(ms) * time.Millisecond
}
