package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodmate/pkg/types"
)

// June 2025: the 1st is a Sunday, the 2nd a Monday.
func entry(y int, m time.Month, d, rating int, details string) types.MoodEntry {
	return types.MoodEntry{
		UserID:  "u1",
		Date:    time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Rating:  rating,
		Details: details,
	}
}

func TestAnalyzeInsufficientData(t *testing.T) {
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 3, "tired"),
		entry(2025, 6, 3, 4, "tired"),
		entry(2025, 6, 4, 2, "tired"),
	}

	report := Analyze(entries, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC))

	assert.False(t, report.Sufficient)
	assert.Equal(t, 3, report.EntriesSoFar)
	assert.Equal(t, MinEntries, report.EntriesNeeded)
	assert.Empty(t, report.Patterns)
	assert.Empty(t, report.Triggers)
	assert.Zero(t, report.Prediction)
	// The streak is still reported; it needs no minimum history.
	assert.Equal(t, 3, report.Streak)
}

func TestPeakAndDipDays(t *testing.T) {
	// Five Mondays at 5.0 and five Tuesdays at 1.0, no other weekdays.
	var entries []types.MoodEntry
	for _, d := range []int{2, 9, 16, 23, 30} {
		entries = append(entries, entry(2025, 6, d, 5, ""))
	}
	for _, d := range []int{3, 10, 17, 24} {
		entries = append(entries, entry(2025, 6, d, 1, ""))
	}
	entries = append(entries, entry(2025, 7, 1, 1, "")) // another Tuesday

	report := Analyze(entries, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC))
	require.True(t, report.Sufficient)

	var peak, dip *types.MoodPattern
	for i := range report.Patterns {
		switch report.Patterns[i].Label {
		case types.PatternLabelPeakDay:
			peak = &report.Patterns[i]
		case types.PatternLabelDipDay:
			dip = &report.Patterns[i]
		}
	}
	require.NotNil(t, peak)
	require.NotNil(t, dip)
	assert.Equal(t, "Monday", peak.Day)
	assert.Contains(t, peak.Description, "5.0")
	assert.Equal(t, "Tuesday", dip.Day)
	assert.Contains(t, dip.Description, "1.0")
}

func TestWeekendBoost(t *testing.T) {
	// Weekdays steady at 3, weekends at 4: gap 1.0 exceeds the threshold.
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 3, ""), entry(2025, 6, 3, 3, ""), entry(2025, 6, 4, 3, ""),
		entry(2025, 6, 5, 3, ""), entry(2025, 6, 6, 3, ""),
		entry(2025, 6, 7, 4, ""), entry(2025, 6, 8, 4, ""),
		entry(2025, 6, 9, 3, ""), entry(2025, 6, 10, 3, ""),
		entry(2025, 6, 14, 4, ""),
	}

	report := Analyze(entries, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.True(t, report.Sufficient)

	found := false
	for _, p := range report.Patterns {
		if p.Label == types.PatternLabelWeekendBoost {
			found = true
			assert.Contains(t, p.Description, "1.0")
		}
		assert.NotEqual(t, types.PatternLabelWeekdayPrefer, p.Label)
	}
	assert.True(t, found, "expected a weekend boost pattern")
}

func TestWeekdayPreference(t *testing.T) {
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 4, ""), entry(2025, 6, 3, 4, ""), entry(2025, 6, 4, 4, ""),
		entry(2025, 6, 5, 4, ""), entry(2025, 6, 6, 4, ""),
		entry(2025, 6, 7, 2, ""), entry(2025, 6, 8, 2, ""),
		entry(2025, 6, 9, 4, ""), entry(2025, 6, 10, 4, ""),
		entry(2025, 6, 11, 4, ""),
	}

	report := Analyze(entries, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	require.True(t, report.Sufficient)

	found := false
	for _, p := range report.Patterns {
		if p.Label == types.PatternLabelWeekdayPrefer {
			found = true
		}
	}
	assert.True(t, found, "expected a weekday preference pattern")
}

func TestSmallGapEmitsNoComparison(t *testing.T) {
	// Gap of exactly 0.5 does not exceed the threshold.
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 3, ""), entry(2025, 6, 3, 3, ""), entry(2025, 6, 4, 3, ""),
		entry(2025, 6, 5, 3, ""), entry(2025, 6, 6, 3, ""), entry(2025, 6, 9, 3, ""),
		entry(2025, 6, 10, 3, ""), entry(2025, 6, 11, 3, ""),
		entry(2025, 6, 7, 3, ""), entry(2025, 6, 8, 4, ""),
	}

	report := Analyze(entries, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC))
	require.True(t, report.Sufficient)

	for _, p := range report.Patterns {
		assert.NotEqual(t, types.PatternLabelWeekendBoost, p.Label)
		assert.NotEqual(t, types.PatternLabelWeekdayPrefer, p.Label)
	}
}

func TestTriggerExtraction(t *testing.T) {
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 2, "so tired after the commute"),
		entry(2025, 6, 3, 3, "tired again"),
		entry(2025, 6, 4, 4, "a bit tired but fine"),
		entry(2025, 6, 5, 2, "felt lonely tonight"),
	}

	triggers := extractTriggers(entries)

	var tired *types.MoodTrigger
	for i := range triggers {
		if triggers[i].Keyword == "tired" {
			tired = &triggers[i]
		}
		assert.NotEqual(t, "lonely", triggers[i].Keyword, "single occurrence must be excluded")
	}
	require.NotNil(t, tired)
	assert.Equal(t, 3, tired.Frequency)
	assert.Equal(t, types.ImpactNegative, tired.Impact)
}

func TestTriggerImpactComesFromListMembership(t *testing.T) {
	// "exercise" is on the positive list even when the ratings are low.
	entries := []types.MoodEntry{
		entry(2025, 6, 2, 1, "forced myself to exercise"),
		entry(2025, 6, 3, 1, "exercise again, exhausted"),
	}

	triggers := extractTriggers(entries)
	require.Len(t, triggers, 1)
	assert.Equal(t, "exercise", triggers[0].Keyword)
	assert.Equal(t, types.ImpactPositive, triggers[0].Impact)
}

func TestTriggersSortedAndCapped(t *testing.T) {
	var entries []types.MoodEntry
	words := []string{"tired", "stressed", "anxious", "work", "sick", "lonely", "music"}
	for i, w := range words {
		// Each keyword appears (len(words)-i+1) times so counts are distinct.
		for j := 0; j <= len(words)-i; j++ {
			entries = append(entries, entry(2025, 6, 2+j, 3, fmt.Sprintf("another day, %s", w)))
		}
	}

	triggers := extractTriggers(entries)
	require.Len(t, triggers, maxTriggers)
	assert.Equal(t, "tired", triggers[0].Keyword)
	for i := 1; i < len(triggers); i++ {
		assert.GreaterOrEqual(t, triggers[i-1].Frequency, triggers[i].Frequency)
	}
}

func TestAnalyzeEmptyHistoryDoesNotPanic(t *testing.T) {
	report := Analyze(nil, time.Now())
	assert.False(t, report.Sufficient)
	assert.Zero(t, report.Streak)
}
