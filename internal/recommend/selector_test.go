package recommend

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmate/internal/catalog"
	"moodmate/pkg/types"
)

func seededSelector() *Selector {
	return NewSelectorWithSource(rand.NewSource(1))
}

func scoredPool() []ScoredItem {
	return []ScoredItem{
		{Item: exercise("med-1", types.CategoryMeditation), Score: 9},
		{Item: exercise("med-2", types.CategoryMeditation), Score: 8},
		{Item: exercise("breath-1", types.CategoryBreathing), Score: 7},
		{Item: exercise("breath-2", types.CategoryBreathing), Score: 6},
		{Item: exercise("phys-1", types.CategoryPhysical), Score: 5},
		{Item: exercise("mind-1", types.CategoryMindfulness), Score: 4},
		{Item: exercise("phys-2", types.CategoryPhysical), Score: 3},
	}
}

func ids(items []catalog.Recommendable) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Meta().ID
	}
	return out
}

func TestSelectCoversEveryCategoryWhenRoomAllows(t *testing.T) {
	selected := seededSelector().Select(scoredPool(), 6)
	require.Len(t, selected, 6)

	cats := make(map[types.Category]bool)
	for _, item := range selected {
		cats[item.Meta().Category] = true
	}
	for _, cat := range []types.Category{
		types.CategoryMeditation, types.CategoryBreathing,
		types.CategoryPhysical, types.CategoryMindfulness,
	} {
		assert.True(t, cats[cat], "category %s missing from selection", cat)
	}
}

func TestSelectNoDuplicatesAndExactLength(t *testing.T) {
	pool := scoredPool()

	for _, n := range []int{1, 3, 5, 7, 10} {
		selected := seededSelector().Select(pool, n)
		want := n
		if want > len(pool) {
			want = len(pool)
		}
		require.Len(t, selected, want, "n=%d", n)

		seen := make(map[string]bool)
		for _, item := range selected {
			assert.False(t, seen[item.Meta().ID], "duplicate item %s", item.Meta().ID)
			seen[item.Meta().ID] = true
		}
	}
}

func TestSelectHighestScoredPerCategoryFirst(t *testing.T) {
	selected := seededSelector().Select(scoredPool(), 4)
	// One slot per category, each filled by that category's best item.
	assert.ElementsMatch(t, []string{"med-1", "breath-1", "phys-1", "mind-1"}, ids(selected))
}

func TestSelectFillsRemainingSlotsByScore(t *testing.T) {
	selected := seededSelector().Select(scoredPool(), 5)
	require.Len(t, selected, 5)
	// After category coverage the next-best overall item is med-2.
	assert.Contains(t, ids(selected), "med-2")
}

func TestSelectEmptyAndZero(t *testing.T) {
	assert.Empty(t, seededSelector().Select(nil, 3))
	assert.Empty(t, seededSelector().Select(scoredPool(), 0))
}

func TestSelectIdempotentOnOwnOutput(t *testing.T) {
	s := seededSelector()
	first := s.Select(scoredPool(), 6)

	rescored := make([]ScoredItem, len(first))
	for i, item := range first {
		rescored[i] = ScoredItem{Item: item, Score: float64(len(first) - i)}
	}
	second := s.Select(rescored, 6)

	assert.ElementsMatch(t, ids(first), ids(second),
		"re-selecting an already-diverse ranked list must return the same set")
}

func TestBalancedMixSizeAndUniqueness(t *testing.T) {
	c := catalog.Default()
	candidates := c.Exercises(types.TierFree)

	mix := seededSelector().BalancedMix(candidates, 6)
	require.Len(t, mix, 6)

	seen := make(map[string]bool)
	for _, item := range mix {
		assert.False(t, seen[item.Meta().ID])
		seen[item.Meta().ID] = true
	}
}

func TestBalancedMixPerCategoryCapBeforeFill(t *testing.T) {
	candidates := []catalog.Recommendable{
		exercise("a1", types.CategoryMeditation),
		exercise("a2", types.CategoryMeditation),
		exercise("a3", types.CategoryMeditation),
		exercise("b1", types.CategoryBreathing),
		exercise("b2", types.CategoryBreathing),
	}

	// With n=4 both categories contribute their two-item cap and nothing
	// spills from the remainder.
	mix := seededSelector().BalancedMix(candidates, 4)
	require.Len(t, mix, 4)

	perCat := make(map[types.Category]int)
	for _, item := range mix {
		perCat[item.Meta().Category]++
	}
	assert.Equal(t, 2, perCat[types.CategoryMeditation])
	assert.Equal(t, 2, perCat[types.CategoryBreathing])
}

func TestBalancedMixFillsFromRemainder(t *testing.T) {
	candidates := []catalog.Recommendable{
		exercise("a1", types.CategoryMeditation),
		exercise("a2", types.CategoryMeditation),
		exercise("a3", types.CategoryMeditation),
		exercise("a4", types.CategoryMeditation),
	}
	mix := seededSelector().BalancedMix(candidates, 3)
	assert.Len(t, mix, 3, "remainder must fill past the per-category cap")
}

func TestBalancedMixSmallPool(t *testing.T) {
	candidates := []catalog.Recommendable{exercise("only", types.CategoryMeditation)}
	mix := seededSelector().BalancedMix(candidates, 6)
	assert.Len(t, mix, 1)
	assert.Empty(t, seededSelector().BalancedMix(nil, 6))
}
