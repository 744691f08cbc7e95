// Package recommend implements the heuristic recommendation engine: a
// rule-based scorer over the catalog, a category-diverse selector, and the
// service tying them to mood history, entitlement, and the optional
// generative picker.
package recommend

import (
	"math/rand"
	"strings"
	"time"

	"moodmate/internal/catalog"
	"moodmate/pkg/types"
)

// Scoring rule magnitudes. Empirically chosen; only the relative orderings
// are contractual (exact target beats distant target, the hunger rule beats
// every other rule, band weight gaps exceed the jitter bound).
const (
	targetExactBonus = 5.0
	targetNearBonus  = 2.0
	targetFarBonus   = 0.0

	keywordBonus = 3.0
	hungerBonus  = 10.0

	jitterMax = 0.5
)

// moodBand partitions the 1-5 rating scale for category weighting
type moodBand int

const (
	bandLow moodBand = iota // ratings 1-2
	bandNeutral             // rating 3
	bandHigh                // ratings 4-5
)

func bandFor(rating int) moodBand {
	switch {
	case rating <= 2:
		return bandLow
	case rating == 3:
		return bandNeutral
	default:
		return bandHigh
	}
}

// bandWeights is the category weight table per mood band. Low moods favor
// calming categories, high moods favor active and social ones. Gaps between
// categories that must stay ordered are kept larger than jitterMax.
var bandWeights = map[moodBand]map[types.Category]float64{
	bandLow: {
		types.CategoryMeditation:  4.0,
		types.CategoryBreathing:   4.0,
		types.CategoryMindfulness: 3.0,
		types.CategoryRelaxation:  3.0,
		types.CategoryCreative:    2.0,
		types.CategorySocial:      1.5,
		types.CategoryPhysical:    1.0,
		types.CategoryExercise:    1.0,
	},
	bandNeutral: {
		types.CategoryMindfulness: 3.0,
		types.CategoryCreative:    3.0,
		types.CategoryMeditation:  2.0,
		types.CategoryRelaxation:  2.0,
		types.CategorySocial:      2.0,
		types.CategoryPhysical:    2.0,
		types.CategoryExercise:    2.0,
		types.CategoryBreathing:   1.0,
	},
	bandHigh: {
		types.CategoryPhysical:    4.0,
		types.CategoryExercise:    4.0,
		types.CategorySocial:      4.0,
		types.CategoryCreative:    2.0,
		types.CategoryMindfulness: 2.0,
		types.CategoryRelaxation:  1.0,
		types.CategoryMeditation:  1.0,
		types.CategoryBreathing:   0.5,
	},
}

// ScoredItem pairs a catalog item with its relevance score for one request
type ScoredItem struct {
	Item  catalog.Recommendable
	Score float64
}

// Scorer assigns relevance scores to catalog items for a mood rating and
// optional free-text detail. The randomness source is injectable so tests
// can seed it.
type Scorer struct {
	rng *rand.Rand
}

// NewScorer creates a scorer with a time-seeded randomness source
func NewScorer() *Scorer {
	return NewScorerWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewScorerWithSource creates a scorer with the given randomness source
func NewScorerWithSource(src rand.Source) *Scorer {
	return &Scorer{rng: rand.New(src)}
}

// Score assigns a non-negative relevance score to every candidate. The
// candidate list must already be filtered by entitlement. Ratings outside
// 1-5 are clamped. The returned list is unsorted; ranking is the selector's
// job.
func (s *Scorer) Score(rating int, detail string, candidates []catalog.Recommendable) []ScoredItem {
	if len(candidates) == 0 {
		return []ScoredItem{}
	}

	rating = types.ClampRating(rating)
	detail = strings.ToLower(detail)

	scored := make([]ScoredItem, 0, len(candidates))
	for _, item := range candidates {
		score := s.targetBonus(item, rating)
		score += bandWeights[bandFor(rating)][item.Meta().Category]
		if detail != "" {
			score += keywordScore(detail, item.KeywordSurface())
		}
		score += s.rng.Float64() * jitterMax

		scored = append(scored, ScoredItem{Item: item, Score: score})
	}
	return scored
}

// targetBonus rewards items that explicitly target the rating; items with no
// targets (activities) skip this rule entirely.
func (s *Scorer) targetBonus(item catalog.Recommendable, rating int) float64 {
	if item.MatchesMood(rating) {
		return targetExactBonus
	}
	ex, ok := item.(catalog.Exercise)
	if !ok {
		return 0
	}
	switch d := ex.TargetDistance(rating); {
	case d < 0:
		return 0
	case d == 1:
		return targetNearBonus
	default:
		return targetFarBonus
	}
}

// keywordScore adds the rule bonus for every table keyword present in the
// detail whose related terms appear in the item's keyword surface
func keywordScore(detail, surface string) float64 {
	var total float64
	for _, rule := range keywordRules {
		if !strings.Contains(detail, rule.keyword) {
			continue
		}
		for _, term := range rule.related {
			if strings.Contains(surface, term) {
				total += rule.bonus
				break
			}
		}
	}
	return total
}
