package recommend

import (
	"math/rand"
	"sort"
	"time"

	"moodmate/internal/catalog"
	"moodmate/pkg/types"
)

// balancedPerCategory caps how many items one category contributes in the
// unscored balanced-mix path before remaining slots are filled.
const balancedPerCategory = 2

// Selector reduces a scored candidate list to a fixed-size, category-diverse
// recommendation list
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector with a time-seeded randomness source
func NewSelector() *Selector {
	return NewSelectorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewSelectorWithSource creates a selector with the given randomness source
func NewSelectorWithSource(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Select returns exactly min(n, len(scored)) items, highest scores first,
// with one pass guaranteeing a best item per category before remaining slots
// fill in pure score order. No item appears twice.
func (s *Selector) Select(scored []ScoredItem, n int) []catalog.Recommendable {
	if n <= 0 || len(scored) == 0 {
		return []catalog.Recommendable{}
	}

	ranked := make([]ScoredItem, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	selected := make([]catalog.Recommendable, 0, n)
	taken := make(map[string]bool)

	// First pass: the top item of each category, in score order.
	seenCategory := make(map[types.Category]bool)
	for _, si := range ranked {
		if len(selected) >= n {
			break
		}
		cat := si.Item.Meta().Category
		if seenCategory[cat] {
			continue
		}
		seenCategory[cat] = true
		taken[si.Item.Meta().ID] = true
		selected = append(selected, si.Item)
	}

	// Second pass: fill remaining slots by score regardless of category.
	for _, si := range ranked {
		if len(selected) >= n {
			break
		}
		if taken[si.Item.Meta().ID] {
			continue
		}
		taken[si.Item.Meta().ID] = true
		selected = append(selected, si.Item)
	}

	return selected
}

// BalancedMix is the unscored fallback used when no mood entry exists for
// the scoring context: shuffle each category's items, take up to two per
// category, then fill remaining slots from the shuffled remainder.
func (s *Selector) BalancedMix(candidates []catalog.Recommendable, n int) []catalog.Recommendable {
	if n <= 0 || len(candidates) == 0 {
		return []catalog.Recommendable{}
	}

	byCategory := make(map[types.Category][]catalog.Recommendable)
	categories := make([]types.Category, 0)
	for _, item := range candidates {
		cat := item.Meta().Category
		if _, ok := byCategory[cat]; !ok {
			categories = append(categories, cat)
		}
		byCategory[cat] = append(byCategory[cat], item)
	}

	for _, cat := range categories {
		items := byCategory[cat]
		s.rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	selected := make([]catalog.Recommendable, 0, n)
	taken := make(map[string]bool)
	var remainder []catalog.Recommendable

	for _, cat := range categories {
		for i, item := range byCategory[cat] {
			if i < balancedPerCategory && len(selected) < n {
				taken[item.Meta().ID] = true
				selected = append(selected, item)
			} else {
				remainder = append(remainder, item)
			}
		}
	}

	s.rng.Shuffle(len(remainder), func(i, j int) {
		remainder[i], remainder[j] = remainder[j], remainder[i]
	})
	for _, item := range remainder {
		if len(selected) >= n {
			break
		}
		if taken[item.Meta().ID] {
			continue
		}
		taken[item.Meta().ID] = true
		selected = append(selected, item)
	}

	return selected
}
