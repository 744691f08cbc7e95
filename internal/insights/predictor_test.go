package insights

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"moodmate/pkg/types"
)

func TestPredictUsesSameWeekdayMean(t *testing.T) {
	// 2025-05-27 and 2025-06-03 are Tuesdays; "now" is Monday 2025-06-09.
	entries := []types.MoodEntry{
		entry(2025, 5, 27, 2, ""),
		entry(2025, 6, 3, 4, ""),
		entry(2025, 6, 4, 5, ""), // Wednesday, must not affect the result
	}
	now := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	assert.InDelta(t, 3.0, PredictNext(entries, now), 1e-9)
}

func TestPredictFallsBackToOverallMean(t *testing.T) {
	// Only one Tuesday entry: below the same-weekday minimum.
	entries := []types.MoodEntry{
		entry(2025, 6, 3, 4, ""), // Tuesday
		entry(2025, 6, 4, 2, ""), // Wednesday
		entry(2025, 6, 5, 3, ""), // Thursday
	}
	now := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	assert.InDelta(t, 3.0, PredictNext(entries, now), 1e-9)
}

func TestPredictEmptyHistory(t *testing.T) {
	assert.Zero(t, PredictNext(nil, time.Now()))
}

func TestDisplayJitterStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, base := range []float64{1.0, 1.05, 3.0, 4.95, 5.0} {
		for i := 0; i < 200; i++ {
			v := DisplayJitter(base, rng)
			assert.GreaterOrEqual(t, v, 1.0)
			assert.LessOrEqual(t, v, 5.0)
		}
	}
}
