package recommend

import (
	"context"
	"fmt"
	"time"

	"moodmate/internal/catalog"
	"moodmate/internal/logging"
	"moodmate/internal/retry"
	"moodmate/internal/storage"
	"moodmate/pkg/types"
)

// Kind selects which catalog a recommendation request draws from
type Kind string

const (
	KindExercises  Kind = "exercises"
	KindActivities Kind = "activities"
)

// Valid reports whether the kind is known
func (k Kind) Valid() bool {
	return k == KindExercises || k == KindActivities
}

// GenerativePicker is the optional LLM-backed selection path. A nil picker
// means the heuristic path is always used.
type GenerativePicker interface {
	Pick(ctx context.Context, rating int, detail string, candidates []catalog.Recommendable, n int) ([]catalog.Recommendable, error)
}

// Service produces recommendation lists for a user by combining their
// entitlement tier, today's mood entry, and one of the two catalogs.
type Service struct {
	catalog      *catalog.Catalog
	history      storage.HistoryStore
	entitlements storage.EntitlementStore
	scorer       *Scorer
	selector     *Selector
	picker       GenerativePicker
	retrier      *retry.Retrier
	logger       logging.Logger

	exerciseCount int
	activityCount int
	now           func() time.Time
}

// NewService wires the recommendation service. picker may be nil to disable
// the generative path.
func NewService(
	cat *catalog.Catalog,
	history storage.HistoryStore,
	entitlements storage.EntitlementStore,
	picker GenerativePicker,
	exerciseCount, activityCount int,
	logger logging.Logger,
) *Service {
	return &Service{
		catalog:       cat,
		history:       history,
		entitlements:  entitlements,
		scorer:        NewScorer(),
		selector:      NewSelector(),
		picker:        picker,
		retrier:       retry.New(retry.DefaultConfig()),
		logger:        logger.WithComponent("recommend"),
		exerciseCount: exerciseCount,
		activityCount: activityCount,
		now:           time.Now,
	}
}

// SetNow overrides the service clock, used to resolve "today" in tests
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// SetScorer replaces the scorer, restoring determinism in tests via a
// seeded randomness source
func (s *Service) SetScorer(scorer *Scorer) {
	s.scorer = scorer
}

// SetSelector replaces the selector, restoring determinism in tests
func (s *Service) SetSelector(selector *Selector) {
	s.selector = selector
}

// Recommend returns the recommendation list for the user. A missing mood
// entry for today is not an error; it switches to the unscored balanced-mix
// path. Generative failures silently fall back to the heuristic path.
func (s *Service) Recommend(ctx context.Context, userID string, kind Kind) ([]catalog.Recommendable, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown recommendation kind %q", kind)
	}

	tier := s.resolveTier(ctx, userID)

	var candidates []catalog.Recommendable
	var n int
	switch kind {
	case KindExercises:
		candidates = s.catalog.Exercises(tier)
		n = s.exerciseCount
	case KindActivities:
		candidates = s.catalog.Activities(tier)
		n = s.activityCount
	}

	entry := s.todaysEntry(ctx, userID)
	if entry == nil {
		return s.selector.BalancedMix(candidates, n), nil
	}

	if s.picker != nil {
		picked, err := s.picker.Pick(ctx, entry.Rating, entry.Details, candidates, n)
		if err == nil {
			return picked, nil
		}
		s.logger.Warn("generative pick failed, using heuristic scorer",
			"user_id", userID, "kind", string(kind), "error", err)
	}

	scored := s.scorer.Score(entry.Rating, entry.Details, candidates)
	return s.selector.Select(scored, n), nil
}

// resolveTier looks up the entitlement tier, defaulting to free on any
// failure so premium items can never leak
func (s *Service) resolveTier(ctx context.Context, userID string) types.Tier {
	tier, err := s.entitlements.GetTier(ctx, userID)
	if err != nil {
		s.logger.Warn("entitlement lookup failed, assuming free tier", "user_id", userID, "error", err)
		return types.TierFree
	}
	return tier
}

// todaysEntry fetches today's mood entry with retry; both "no entry" and an
// exhausted read are treated as missing
func (s *Service) todaysEntry(ctx context.Context, userID string) *types.MoodEntry {
	var entry *types.MoodEntry
	result := s.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		entry, err = s.history.GetEntryForDate(ctx, userID, s.now().UTC())
		return err
	})
	if result.Err != nil {
		s.logger.Warn("history read failed, using balanced mix",
			"user_id", userID, "attempts", result.Attempts, "error", result.Err)
		return nil
	}
	return entry
}
