// Package storage provides the mood history and entitlement stores backed
// by Postgres, plus an in-memory mock for tests.
package storage

import (
	"context"
	"time"

	"moodmate/pkg/types"
)

// HistoryStore supplies and records mood entries. "No entry for a day" is a
// normal result (nil entry, nil error), never an error.
type HistoryStore interface {
	// GetRecentEntries returns the user's summary entries from the last
	// daysBack days, ordered chronologically.
	GetRecentEntries(ctx context.Context, userID string, daysBack int) ([]types.MoodEntry, error)

	// GetEntryForDate returns the summary entry for a calendar day, or nil
	// when none exists.
	GetEntryForDate(ctx context.Context, userID string, date time.Time) (*types.MoodEntry, error)

	// UpsertEntry creates or replaces the user's summary entry for the
	// entry's calendar day.
	UpsertEntry(ctx context.Context, entry *types.MoodEntry) (*types.MoodEntry, error)

	// AddDetailedEntry records a premium sub-entry and folds the day's
	// sub-entries into the summary rating by averaging. Returns the updated
	// summary.
	AddDetailedEntry(ctx context.Context, entry *types.DetailedMoodEntry) (*types.MoodEntry, error)
}

// EntitlementStore resolves a user's tier. Unknown users are free tier.
type EntitlementStore interface {
	GetTier(ctx context.Context, userID string) (types.Tier, error)
}
