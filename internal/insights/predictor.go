package insights

import (
	"math/rand"
	"time"

	"moodmate/pkg/types"
)

// minSameWeekdaySamples is how many same-weekday entries the predictor needs
// before it prefers the weekday mean over the overall mean.
const minSameWeekdaySamples = 2

// PredictNext produces a naive point estimate for tomorrow's rating: the
// mean of historical entries on tomorrow's weekday when at least two exist,
// otherwise the mean of the whole history. Empty history predicts zero.
func PredictNext(entries []types.MoodEntry, now time.Time) float64 {
	if len(entries) == 0 {
		return 0
	}

	tomorrow := now.AddDate(0, 0, 1).Weekday()
	var sameSum, sameCount, totalSum int
	for _, e := range entries {
		totalSum += e.Rating
		if e.Date.Weekday() == tomorrow {
			sameSum += e.Rating
			sameCount++
		}
	}

	if sameCount >= minSameWeekdaySamples {
		return float64(sameSum) / float64(sameCount)
	}
	return float64(totalSum) / float64(len(entries))
}

// DisplayJitter perturbs a predicted value for forecast charts so repeated
// renders do not draw an identical line, clamped to the valid rating range.
// Presentation only; the prediction itself is unjittered.
func DisplayJitter(value float64, rng *rand.Rand) float64 {
	jittered := value + (rng.Float64()-0.5)*0.4
	if jittered < float64(types.MinRating) {
		return float64(types.MinRating)
	}
	if jittered > float64(types.MaxRating) {
		return float64(types.MaxRating)
	}
	return jittered
}
