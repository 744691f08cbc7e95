// Package types contains the domain types shared across the mood tracking
// service: mood entries, entitlement tiers, catalog categories, and the
// derived insight types (patterns and triggers).
package types

import (
	"fmt"
	"time"
)

// Rating bounds for self-reported mood (1 = worst, 5 = best).
const (
	MinRating = 1
	MaxRating = 5
)

// ClampRating forces a rating into the valid 1-5 domain. Out-of-range input
// is a caller contract violation; the source domain is closed, so clamping
// is safer than rejecting.
func ClampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

// Tier represents a user's entitlement level
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Valid reports whether the tier is a known value
func (t Tier) Valid() bool {
	return t == TierFree || t == TierPremium
}

// Category classifies a recommendable catalog item
type Category string

const (
	CategoryMeditation  Category = "meditation"
	CategoryBreathing   Category = "breathing"
	CategoryMindfulness Category = "mindfulness"
	CategoryPhysical    Category = "physical"
	CategoryExercise    Category = "exercise"
	CategorySocial      Category = "social"
	CategoryCreative    Category = "creative"
	CategoryRelaxation  Category = "relaxation"
)

// MoodEntry is the per-day mood summary for a user. At most one summary
// exists per user per calendar day; premium users may additionally log
// detailed sub-entries that are averaged into the summary rating.
type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Rating    int       `json:"rating"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the entry's required fields
func (e *MoodEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("mood entry: user_id is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("mood entry: date is required")
	}
	if e.Rating < MinRating || e.Rating > MaxRating {
		return fmt.Errorf("mood entry: rating %d outside valid range %d-%d", e.Rating, MinRating, MaxRating)
	}
	return nil
}

// Day returns the entry's date truncated to the calendar day in UTC
func (e *MoodEntry) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// DetailedMoodEntry is a premium sub-entry. Multiple may exist per day and
// they are averaged into the daily summary rating.
type DetailedMoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	Rating    int       `json:"rating"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MoodPattern is a derived observation over a user's mood history, such as a
// peak weekday or a weekend boost. Patterns are recomputed on every request
// and never persisted.
type MoodPattern struct {
	Day         string `json:"day,omitempty"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Pattern labels emitted by the analyzer
const (
	PatternLabelPeakDay       = "Peak Day"
	PatternLabelDipDay        = "Dip Day"
	PatternLabelWeekendBoost  = "Weekend Boost"
	PatternLabelWeekdayPrefer = "Weekday Preference"
)

// Impact labels a trigger keyword by the fixed list it came from
type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

// MoodTrigger is a keyword that recurs in a user's free-text details,
// labeled positive or negative by fixed list membership.
type MoodTrigger struct {
	Keyword   string `json:"keyword"`
	Impact    Impact `json:"impact"`
	Frequency int    `json:"frequency"`
}
