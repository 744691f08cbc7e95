package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver

	"moodmate/internal/logging"
	"moodmate/pkg/types"
)

// PostgresStore implements HistoryStore and EntitlementStore on Postgres
type PostgresStore struct {
	db     *sql.DB
	logger logging.Logger
}

// NewPostgresStore wraps an open database handle
func NewPostgresStore(db *sql.DB, logger logging.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: logger.WithComponent("storage"),
	}
}

// Open connects to Postgres and verifies the connection
func Open(ctx context.Context, dsn string, maxOpen, maxIdle int, connMaxLifetime time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// EnsureSchema creates the tables the store needs if they do not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS mood_entries (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			entry_date DATE NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			details TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, entry_date)
		)`,
		`CREATE TABLE IF NOT EXISTS mood_entry_details (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			entry_date DATE NOT NULL,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			details TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_mood_entry_details_user_date
			ON mood_entry_details (user_id, entry_date)`,
		`CREATE TABLE IF NOT EXISTS user_entitlements (
			user_id TEXT PRIMARY KEY,
			tier TEXT NOT NULL DEFAULT 'free',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// GetRecentEntries returns the user's summary entries from the last daysBack
// days, oldest first
func (s *PostgresStore) GetRecentEntries(ctx context.Context, userID string, daysBack int) ([]types.MoodEntry, error) {
	if daysBack < 1 {
		daysBack = 1
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -daysBack)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, entry_date, rating, details, created_at, updated_at
		FROM mood_entries
		WHERE user_id = $1 AND entry_date >= $2
		ORDER BY entry_date ASC`,
		userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []types.MoodEntry
	for rows.Next() {
		var e types.MoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Rating, &e.Details, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mood entries: %w", err)
	}
	return entries, nil
}

// GetEntryForDate returns the summary entry for a calendar day, or nil when
// none exists
func (s *PostgresStore) GetEntryForDate(ctx context.Context, userID string, date time.Time) (*types.MoodEntry, error) {
	var e types.MoodEntry
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, entry_date, rating, details, created_at, updated_at
		FROM mood_entries
		WHERE user_id = $1 AND entry_date = $2`,
		userID, dateOnly(date)).
		Scan(&e.ID, &e.UserID, &e.Date, &e.Rating, &e.Details, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query entry for date: %w", err)
	}
	return &e, nil
}

// UpsertEntry creates or replaces the summary entry for the entry's day
func (s *PostgresStore) UpsertEntry(ctx context.Context, entry *types.MoodEntry) (*types.MoodEntry, error) {
	entry.Rating = types.ClampRating(entry.Rating)
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	var stored types.MoodEntry
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO mood_entries (id, user_id, entry_date, rating, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (user_id, entry_date) DO UPDATE
			SET rating = EXCLUDED.rating,
			    details = EXCLUDED.details,
			    updated_at = now()
		RETURNING id, user_id, entry_date, rating, details, created_at, updated_at`,
		entry.ID, entry.UserID, dateOnly(entry.Date), entry.Rating, entry.Details).
		Scan(&stored.ID, &stored.UserID, &stored.Date, &stored.Rating, &stored.Details, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert mood entry: %w", err)
	}

	s.logger.Debug("upserted mood entry", "user_id", stored.UserID, "date", stored.Date.Format("2006-01-02"))
	return &stored, nil
}

// AddDetailedEntry records a premium sub-entry and recomputes the day's
// summary as the rounded average of all sub-entries. The sub-entry's details
// become the summary details so keyword scoring sees the latest text.
func (s *PostgresStore) AddDetailedEntry(ctx context.Context, entry *types.DetailedMoodEntry) (*types.MoodEntry, error) {
	entry.Rating = types.ClampRating(entry.Rating)
	if entry.UserID == "" || entry.Date.IsZero() {
		return nil, fmt.Errorf("detailed entry: user_id and date are required")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO mood_entry_details (id, user_id, entry_date, rating, details, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`,
		entry.ID, entry.UserID, dateOnly(entry.Date), entry.Rating, entry.Details); err != nil {
		return nil, fmt.Errorf("failed to insert detailed entry: %w", err)
	}

	var avg float64
	var texts []string
	rows, err := tx.QueryContext(ctx, `
		SELECT rating, details FROM mood_entry_details
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY created_at ASC`,
		entry.UserID, dateOnly(entry.Date))
	if err != nil {
		return nil, fmt.Errorf("failed to query detailed entries: %w", err)
	}
	count := 0
	sum := 0
	for rows.Next() {
		var rating int
		var details string
		if err := rows.Scan(&rating, &details); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan detailed entry: %w", err)
		}
		sum += rating
		count++
		if details != "" {
			texts = append(texts, details)
		}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate detailed entries: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("no detailed entries found after insert")
	}
	avg = float64(sum) / float64(count)
	summaryRating := types.ClampRating(int(math.Round(avg)))

	var stored types.MoodEntry
	err = tx.QueryRowContext(ctx, `
		INSERT INTO mood_entries (id, user_id, entry_date, rating, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (user_id, entry_date) DO UPDATE
			SET rating = EXCLUDED.rating,
			    details = EXCLUDED.details,
			    updated_at = now()
		RETURNING id, user_id, entry_date, rating, details, created_at, updated_at`,
		uuid.New().String(), entry.UserID, dateOnly(entry.Date), summaryRating, strings.Join(texts, " ")).
		Scan(&stored.ID, &stored.UserID, &stored.Date, &stored.Rating, &stored.Details, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update summary entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit detailed entry: %w", err)
	}
	return &stored, nil
}

// GetTier resolves the user's entitlement tier, defaulting to free when no
// row exists
func (s *PostgresStore) GetTier(ctx context.Context, userID string) (types.Tier, error) {
	var tier string
	err := s.db.QueryRowContext(ctx,
		`SELECT tier FROM user_entitlements WHERE user_id = $1`, userID).Scan(&tier)
	if errors.Is(err, sql.ErrNoRows) {
		return types.TierFree, nil
	}
	if err != nil {
		return types.TierFree, fmt.Errorf("failed to query entitlement: %w", err)
	}

	t := types.Tier(tier)
	if !t.Valid() {
		s.logger.Warn("unknown tier in entitlements table", "user_id", userID, "tier", tier)
		return types.TierFree, nil
	}
	return t, nil
}

// SetTier records the user's entitlement tier
func (s *PostgresStore) SetTier(ctx context.Context, userID string, tier types.Tier) error {
	if !tier.Valid() {
		return fmt.Errorf("invalid tier %q", tier)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_entitlements (user_id, tier, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET tier = EXCLUDED.tier, updated_at = now()`,
		userID, string(tier))
	if err != nil {
		return fmt.Errorf("failed to set entitlement: %w", err)
	}
	return nil
}

// dateOnly truncates a timestamp to its calendar day in UTC
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
