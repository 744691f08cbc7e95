package insights

import (
	"context"
	"fmt"
	"time"

	"moodmate/internal/logging"
	"moodmate/internal/retry"
	"moodmate/internal/storage"
	"moodmate/pkg/types"
)

// ReportCache is the optional per-user per-day report cache. The Redis
// implementation lives in the cache package; a nil cache disables caching.
type ReportCache interface {
	GetReport(ctx context.Context, userID string, day time.Time) (*Report, bool)
	SetReport(ctx context.Context, userID string, day time.Time, report *Report)
	Invalidate(ctx context.Context, userID string, day time.Time)
}

// Service computes insight reports from the mood history, with read retry
// and best-effort caching
type Service struct {
	history     storage.HistoryStore
	cache       ReportCache
	retrier     *retry.Retrier
	logger      logging.Logger
	historyDays int
	now         func() time.Time
}

// NewService wires the insights service. cache may be nil.
func NewService(history storage.HistoryStore, cache ReportCache, historyDays int, logger logging.Logger) *Service {
	return &Service{
		history:     history,
		cache:       cache,
		retrier:     retry.New(retry.DefaultConfig()),
		logger:      logger.WithComponent("insights"),
		historyDays: historyDays,
		now:         time.Now,
	}
}

// SetNow overrides the service clock for tests
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Get returns the user's insight report, from cache when fresh. Insufficient
// history produces a normal report with Sufficient=false, not an error.
func (s *Service) Get(ctx context.Context, userID string) (*Report, error) {
	now := s.now().UTC()
	if s.cache != nil {
		if report, ok := s.cache.GetReport(ctx, userID, now); ok {
			return report, nil
		}
	}

	var entries []types.MoodEntry
	result := s.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		entries, err = s.history.GetRecentEntries(ctx, userID, s.historyDays)
		return err
	})
	if result.Err != nil {
		return nil, fmt.Errorf("failed to load mood history: %w", result.Err)
	}

	report := Analyze(entries, now)
	if s.cache != nil {
		s.cache.SetReport(ctx, userID, now, &report)
	}
	return &report, nil
}

// Invalidate drops the user's cached report for today, called after a new
// mood entry
func (s *Service) Invalidate(ctx context.Context, userID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, userID, s.now().UTC())
	}
}
