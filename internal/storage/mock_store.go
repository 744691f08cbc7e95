package storage

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"moodmate/pkg/types"
)

// MockStore is an in-memory HistoryStore and EntitlementStore for tests
type MockStore struct {
	mu       sync.RWMutex
	entries  map[string]map[string]types.MoodEntry // userID -> day -> summary
	details  map[string][]types.DetailedMoodEntry  // userID -> sub-entries
	tiers    map[string]types.Tier
	failWith error
	now      func() time.Time
}

// NewMockStore creates an empty mock store
func NewMockStore() *MockStore {
	return &MockStore{
		entries: make(map[string]map[string]types.MoodEntry),
		details: make(map[string][]types.DetailedMoodEntry),
		tiers:   make(map[string]types.Tier),
		now:     time.Now,
	}
}

// FailWith makes every subsequent call return the given error
func (m *MockStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// SetNow overrides the store's clock, used by recency queries
func (m *MockStore) SetNow(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// GetRecentEntries returns the user's entries from the last daysBack days,
// oldest first
func (m *MockStore) GetRecentEntries(ctx context.Context, userID string, daysBack int) ([]types.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	cutoff := m.now().UTC().AddDate(0, 0, -daysBack)
	var result []types.MoodEntry
	for _, e := range m.entries[userID] {
		if !e.Date.Before(cutoff) {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// GetEntryForDate returns the summary for the day, or nil when absent
func (m *MockStore) GetEntryForDate(ctx context.Context, userID string, date time.Time) (*types.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	e, ok := m.entries[userID][dayKey(date)]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// UpsertEntry creates or replaces the summary for the entry's day
func (m *MockStore) UpsertEntry(ctx context.Context, entry *types.MoodEntry) (*types.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}

	entry.Rating = types.ClampRating(entry.Rating)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	stored := *entry
	stored.Date = stored.Day()
	key := dayKey(stored.Date)
	if existing, ok := m.entries[entry.UserID][key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = uuid.New().String()
		stored.CreatedAt = m.now().UTC()
	}
	stored.UpdatedAt = m.now().UTC()

	if m.entries[entry.UserID] == nil {
		m.entries[entry.UserID] = make(map[string]types.MoodEntry)
	}
	m.entries[entry.UserID][key] = stored
	return &stored, nil
}

// AddDetailedEntry records a sub-entry and recomputes the daily summary as
// the rounded average of the day's sub-entries
func (m *MockStore) AddDetailedEntry(ctx context.Context, entry *types.DetailedMoodEntry) (*types.MoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	if entry.UserID == "" || entry.Date.IsZero() {
		return nil, fmt.Errorf("detailed entry: user_id and date are required")
	}

	stored := *entry
	stored.Rating = types.ClampRating(stored.Rating)
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	stored.CreatedAt = m.now().UTC()
	m.details[entry.UserID] = append(m.details[entry.UserID], stored)

	key := dayKey(entry.Date)
	sum, count := 0, 0
	var texts []string
	for _, d := range m.details[entry.UserID] {
		if dayKey(d.Date) != key {
			continue
		}
		sum += d.Rating
		count++
		if d.Details != "" {
			texts = append(texts, d.Details)
		}
	}

	summary := types.MoodEntry{
		UserID:  entry.UserID,
		Date:    entry.Date,
		Rating:  types.ClampRating(int(math.Round(float64(sum) / float64(count)))),
		Details: strings.Join(texts, " "),
	}
	return m.upsertLocked(&summary)
}

// upsertLocked is UpsertEntry without re-acquiring the mutex
func (m *MockStore) upsertLocked(entry *types.MoodEntry) (*types.MoodEntry, error) {
	stored := *entry
	stored.Date = stored.Day()
	key := dayKey(stored.Date)
	if existing, ok := m.entries[entry.UserID][key]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.ID = uuid.New().String()
		stored.CreatedAt = m.now().UTC()
	}
	stored.UpdatedAt = m.now().UTC()

	if m.entries[entry.UserID] == nil {
		m.entries[entry.UserID] = make(map[string]types.MoodEntry)
	}
	m.entries[entry.UserID][key] = stored
	return &stored, nil
}

// GetTier resolves the user's tier, defaulting to free
func (m *MockStore) GetTier(ctx context.Context, userID string) (types.Tier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failWith != nil {
		return types.TierFree, m.failWith
	}
	if tier, ok := m.tiers[userID]; ok {
		return tier, nil
	}
	return types.TierFree, nil
}

// SetTier records the user's tier
func (m *MockStore) SetTier(userID string, tier types.Tier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tiers[userID] = tier
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
