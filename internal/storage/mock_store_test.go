package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmate/pkg/types"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertReplacesSameDay(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	store.SetNow(func() time.Time { return day(2025, 6, 2) })

	first, err := store.UpsertEntry(ctx, &types.MoodEntry{UserID: "u1", Date: day(2025, 6, 2), Rating: 2})
	require.NoError(t, err)

	second, err := store.UpsertEntry(ctx, &types.MoodEntry{UserID: "u1", Date: day(2025, 6, 2), Rating: 4, Details: "better"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same-day upsert must keep one summary row")
	assert.Equal(t, 4, second.Rating)

	entries, err := store.GetRecentEntries(ctx, "u1", 7)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetEntryForMissingDateIsNilNotError(t *testing.T) {
	store := NewMockStore()
	entry, err := store.GetEntryForDate(context.Background(), "u1", day(2025, 6, 2))
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestDetailedEntriesAverageIntoSummary(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	d := day(2025, 6, 2)

	_, err := store.AddDetailedEntry(ctx, &types.DetailedMoodEntry{UserID: "u1", Date: d, Rating: 2, Details: "rough morning"})
	require.NoError(t, err)

	summary, err := store.AddDetailedEntry(ctx, &types.DetailedMoodEntry{UserID: "u1", Date: d, Rating: 5, Details: "great evening"})
	require.NoError(t, err)

	// (2+5)/2 = 3.5 rounds to 4.
	assert.Equal(t, 4, summary.Rating)
	assert.Contains(t, summary.Details, "rough morning")
	assert.Contains(t, summary.Details, "great evening")
}

func TestGetRecentEntriesWindowAndOrder(t *testing.T) {
	store := NewMockStore()
	ctx := context.Background()
	now := day(2025, 6, 10)
	store.SetNow(func() time.Time { return now })

	for _, d := range []int{1, 5, 8, 9} {
		_, err := store.UpsertEntry(ctx, &types.MoodEntry{UserID: "u1", Date: day(2025, 6, d), Rating: 3})
		require.NoError(t, err)
	}

	entries, err := store.GetRecentEntries(ctx, "u1", 7)
	require.NoError(t, err)
	require.Len(t, entries, 3, "entry outside the 7-day window is excluded")
	assert.True(t, entries[0].Date.Before(entries[1].Date))
	assert.True(t, entries[1].Date.Before(entries[2].Date))
}

func TestGetTierDefaultsToFree(t *testing.T) {
	store := NewMockStore()
	tier, err := store.GetTier(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, types.TierFree, tier)

	store.SetTier("u1", types.TierPremium)
	tier, err = store.GetTier(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, types.TierPremium, tier)
}

func TestUpsertClampsRating(t *testing.T) {
	store := NewMockStore()
	stored, err := store.UpsertEntry(context.Background(), &types.MoodEntry{UserID: "u1", Date: day(2025, 6, 2), Rating: 9})
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
}
