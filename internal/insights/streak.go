package insights

import (
	"sort"
	"time"

	"moodmate/pkg/types"
)

// Streak counts consecutive calendar days with at least one entry, ending
// at the most recent entry. Duplicate days count once.
func Streak(entries []types.MoodEntry) int {
	if len(entries) == 0 {
		return 0
	}

	days := make(map[time.Time]bool, len(entries))
	for _, e := range entries {
		days[e.Day()] = true
	}

	ordered := make([]time.Time, 0, len(days))
	for d := range days {
		ordered = append(ordered, d)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].After(ordered[j]) })

	streak := 1
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Sub(ordered[i]) != 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}
