package recommend

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmate/internal/catalog"
	"moodmate/pkg/types"
)

// Jitter makes exact scores unstable, so every assertion here is about
// ordering with gaps larger than the jitter bound.

func exercise(id string, cat types.Category, targets ...int) catalog.Exercise {
	return catalog.Exercise{
		ItemMeta:    catalog.ItemMeta{ID: id, Title: id, Category: cat},
		MoodTargets: targets,
	}
}

func activity(id string, cat types.Category, description string, tags ...string) catalog.Activity {
	return catalog.Activity{
		ItemMeta: catalog.ItemMeta{ID: id, Title: id, Description: description, Category: cat},
		Tags:     tags,
	}
}

func seededScorer() *Scorer {
	return NewScorerWithSource(rand.NewSource(1))
}

func scoreOf(t *testing.T, scored []ScoredItem, id string) float64 {
	t.Helper()
	for _, si := range scored {
		if si.Item.Meta().ID == id {
			return si.Score
		}
	}
	t.Fatalf("item %s not in scored list", id)
	return 0
}

func TestScoreEmptyCandidates(t *testing.T) {
	assert.Empty(t, seededScorer().Score(3, "", nil))
}

func TestExactTargetOutscoresDistantTarget(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		distant := rating + 2
		if distant > 5 {
			distant = rating - 2
		}
		// Same category, so category and keyword bonuses are held equal.
		candidates := []catalog.Recommendable{
			exercise("exact", types.CategoryMeditation, rating),
			exercise("distant", types.CategoryMeditation, distant),
		}

		scored := seededScorer().Score(rating, "", candidates)
		assert.Greater(t, scoreOf(t, scored, "exact"), scoreOf(t, scored, "distant"),
			"rating %d: exact target must outscore distance >= 2", rating)
	}
}

func TestAdjacentTargetBeatsDistantTarget(t *testing.T) {
	candidates := []catalog.Recommendable{
		exercise("near", types.CategoryMeditation, 2),
		exercise("far", types.CategoryMeditation, 5),
	}
	scored := seededScorer().Score(1, "", candidates)
	assert.Greater(t, scoreOf(t, scored, "near"), scoreOf(t, scored, "far"))
}

func TestLowBandFavorsBreathingOverPhysical(t *testing.T) {
	// Empty detail skips keyword scoring entirely; neither item has targets,
	// so only the band weight separates them.
	candidates := []catalog.Recommendable{
		exercise("breathing", types.CategoryBreathing),
		exercise("physical", types.CategoryPhysical),
	}
	scored := seededScorer().Score(1, "", candidates)
	assert.Greater(t, scoreOf(t, scored, "breathing"), scoreOf(t, scored, "physical"))
}

func TestHighBandFavorsSocialOverMeditation(t *testing.T) {
	candidates := []catalog.Recommendable{
		activity("social", types.CategorySocial, "meet people"),
		exercise("meditation", types.CategoryMeditation),
	}
	scored := seededScorer().Score(5, "", candidates)
	assert.Greater(t, scoreOf(t, scored, "social"), scoreOf(t, scored, "meditation"))
}

func TestKeywordBonusApplies(t *testing.T) {
	// Identical items except for the keyword surface.
	candidates := []catalog.Recommendable{
		activity("calming", types.CategoryCreative, "calm breathing focus"),
		activity("plain", types.CategoryCreative, "nothing relevant"),
	}
	scored := seededScorer().Score(3, "full of anxiety today", candidates)
	assert.Greater(t, scoreOf(t, scored, "calming"), scoreOf(t, scored, "plain"))
}

func TestHungerRuleDominates(t *testing.T) {
	// The food item has no target match and a weak category for the band;
	// the other item has an exact target match plus a regular keyword match.
	candidates := []catalog.Recommendable{
		activity("food", types.CategoryExercise, "cook a warm meal", "food"),
		exercise("targeted", types.CategoryMeditation, 2),
	}
	// Detail fires both the hunger rule (food item) and the anxiety rule.
	scored := seededScorer().Score(2, "hungry and full of anxiety", candidates)
	assert.Greater(t, scoreOf(t, scored, "food"), scoreOf(t, scored, "targeted"),
		"hunger rule must override target and category bonuses")
}

func TestEmptyDetailSkipsKeywords(t *testing.T) {
	candidates := []catalog.Recommendable{
		activity("food", types.CategoryRelaxation, "warm meal", "food"),
		activity("other", types.CategoryRelaxation, "quiet evening"),
	}
	scored := seededScorer().Score(2, "", candidates)
	diff := scoreOf(t, scored, "food") - scoreOf(t, scored, "other")
	if diff < 0 {
		diff = -diff
	}
	assert.Less(t, diff, jitterMax, "with empty detail only jitter may separate identical-band items")
}

func TestOutOfRangeRatingIsClamped(t *testing.T) {
	candidates := []catalog.Recommendable{
		exercise("low", types.CategoryBreathing, 1),
		exercise("high", types.CategoryPhysical, 5),
	}
	// Rating 0 clamps to 1, which targets the breathing item.
	scored := seededScorer().Score(0, "", candidates)
	assert.Greater(t, scoreOf(t, scored, "low"), scoreOf(t, scored, "high"))

	scored = seededScorer().Score(99, "", candidates)
	assert.Greater(t, scoreOf(t, scored, "high"), scoreOf(t, scored, "low"))
}

func TestScoresAreNonNegative(t *testing.T) {
	c := catalog.Default()
	candidates := c.Exercises(types.TierPremium)
	candidates = append(candidates, c.Activities(types.TierPremium)...)

	for rating := 1; rating <= 5; rating++ {
		scored := seededScorer().Score(rating, "tired stressed hungry lonely", candidates)
		require.Len(t, scored, len(candidates))
		for _, si := range scored {
			assert.GreaterOrEqual(t, si.Score, 0.0)
		}
	}
}
