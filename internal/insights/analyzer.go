// Package insights derives mood patterns, triggers, forecasts, and streaks
// from a user's mood history. Everything here is a pure function of the
// entry list; nothing derived is persisted.
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"moodmate/pkg/types"
)

// MinEntries is the history size below which analysis is suppressed and an
// insufficient-data report is returned instead.
const MinEntries = 10

// weekendGapThreshold is the minimum weekday/weekend mean difference that
// produces a comparison pattern.
const weekendGapThreshold = 0.5

// Trigger extraction bounds.
const (
	minTriggerFrequency = 2
	maxTriggers         = 5
)

// Report is the analyzer's output. When Sufficient is false only the
// progress counters are meaningful.
type Report struct {
	Sufficient    bool                `json:"sufficient"`
	EntriesSoFar  int                 `json:"entries_so_far"`
	EntriesNeeded int                 `json:"entries_needed"`
	Patterns      []types.MoodPattern `json:"patterns,omitempty"`
	Triggers      []types.MoodTrigger `json:"triggers,omitempty"`
	Prediction    float64             `json:"prediction,omitempty"`
	Streak        int                 `json:"streak"`
}

// Analyze produces the full insight report for a chronologically-ordered
// history. Fewer than MinEntries entries yields an insufficient-data report;
// that is a normal result, not an error.
func Analyze(entries []types.MoodEntry, now time.Time) Report {
	report := Report{
		EntriesSoFar:  len(entries),
		EntriesNeeded: MinEntries,
		Streak:        Streak(entries),
	}
	if len(entries) < MinEntries {
		return report
	}

	report.Sufficient = true
	report.Patterns = detectPatterns(entries)
	report.Triggers = extractTriggers(entries)
	report.Prediction = PredictNext(entries, now)
	return report
}

// weekdayStat is the aggregated mean for one weekday
type weekdayStat struct {
	day  time.Weekday
	mean float64
}

// detectPatterns finds peak/dip weekdays and the weekday/weekend gap
func detectPatterns(entries []types.MoodEntry) []types.MoodPattern {
	var patterns []types.MoodPattern

	stats := weekdayStats(entries)
	if len(stats) > 0 {
		peak := make([]weekdayStat, len(stats))
		copy(peak, stats)
		sort.SliceStable(peak, func(i, j int) bool { return peak[i].mean > peak[j].mean })

		dip := make([]weekdayStat, len(stats))
		copy(dip, stats)
		sort.SliceStable(dip, func(i, j int) bool { return dip[i].mean < dip[j].mean })

		patterns = append(patterns, types.MoodPattern{
			Day:   peak[0].day.String(),
			Label: types.PatternLabelPeakDay,
			Description: fmt.Sprintf("Your mood averages %.1f on %ss, your best day of the week.",
				peak[0].mean, peak[0].day),
		})
		patterns = append(patterns, types.MoodPattern{
			Day:   dip[0].day.String(),
			Label: types.PatternLabelDipDay,
			Description: fmt.Sprintf("Your mood averages %.1f on %ss, your lowest day of the week.",
				dip[0].mean, dip[0].day),
		})
	}

	if p, ok := weekendComparison(entries); ok {
		patterns = append(patterns, p)
	}
	return patterns
}

// weekdayStats computes the mean rating per weekday. Weekdays with no
// entries are excluded, not treated as zero.
func weekdayStats(entries []types.MoodEntry) []weekdayStat {
	sums := make(map[time.Weekday]int)
	counts := make(map[time.Weekday]int)
	for _, e := range entries {
		wd := e.Date.Weekday()
		sums[wd] += e.Rating
		counts[wd]++
	}

	stats := make([]weekdayStat, 0, len(counts))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] == 0 {
			continue
		}
		stats = append(stats, weekdayStat{
			day:  wd,
			mean: float64(sums[wd]) / float64(counts[wd]),
		})
	}
	return stats
}

// weekendComparison emits a pattern when the weekday and weekend means
// differ by more than the threshold
func weekendComparison(entries []types.MoodEntry) (types.MoodPattern, bool) {
	var weekdaySum, weekendSum, weekdayCount, weekendCount int
	for _, e := range entries {
		switch e.Date.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += e.Rating
			weekendCount++
		default:
			weekdaySum += e.Rating
			weekdayCount++
		}
	}
	if weekdayCount == 0 || weekendCount == 0 {
		return types.MoodPattern{}, false
	}

	weekdayMean := float64(weekdaySum) / float64(weekdayCount)
	weekendMean := float64(weekendSum) / float64(weekendCount)
	gap := weekendMean - weekdayMean
	if gap < 0 {
		gap = -gap
	}
	if gap <= weekendGapThreshold {
		return types.MoodPattern{}, false
	}

	if weekendMean > weekdayMean {
		return types.MoodPattern{
			Label: types.PatternLabelWeekendBoost,
			Description: fmt.Sprintf("Your mood runs %.1f points higher on weekends than on weekdays.",
				gap),
		}, true
	}
	return types.MoodPattern{
		Label: types.PatternLabelWeekdayPrefer,
		Description: fmt.Sprintf("Your mood runs %.1f points higher on weekdays than on weekends.",
			gap),
	}, true
}

// triggerList pairs a fixed keyword list with the impact it assigns
type triggerList struct {
	impact   types.Impact
	keywords []string
}

// Fixed keyword lists for trigger extraction. Membership decides the impact
// label; the accumulated rating sum is tracked but does not drive the label.
var triggerLists = []triggerList{
	{
		impact: types.ImpactPositive,
		keywords: []string{
			"exercise", "friends", "family", "outdoors", "sunshine",
			"music", "weekend", "vacation", "accomplished", "slept well",
		},
	},
	{
		impact: types.ImpactNegative,
		keywords: []string{
			"tired", "stressed", "anxious", "work", "deadline",
			"sick", "lonely", "argument", "insomnia", "overwhelmed",
		},
	},
}

// triggerAccumulator tracks one keyword while scanning the history
type triggerAccumulator struct {
	keyword   string
	impact    types.Impact
	count     int
	ratingSum int
}

// extractTriggers scans the free-text details for the fixed keyword lists,
// keeps keywords seen at least twice, and returns the top five by count.
func extractTriggers(entries []types.MoodEntry) []types.MoodTrigger {
	accs := make([]*triggerAccumulator, 0)
	for _, list := range triggerLists {
		for _, kw := range list.keywords {
			accs = append(accs, &triggerAccumulator{keyword: kw, impact: list.impact})
		}
	}

	for _, e := range entries {
		if e.Details == "" {
			continue
		}
		detail := strings.ToLower(e.Details)
		for _, acc := range accs {
			if strings.Contains(detail, acc.keyword) {
				acc.count++
				acc.ratingSum += e.Rating
			}
		}
	}

	kept := make([]*triggerAccumulator, 0)
	for _, acc := range accs {
		if acc.count >= minTriggerFrequency {
			kept = append(kept, acc)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].count > kept[j].count })
	if len(kept) > maxTriggers {
		kept = kept[:maxTriggers]
	}

	triggers := make([]types.MoodTrigger, 0, len(kept))
	for _, acc := range kept {
		triggers = append(triggers, types.MoodTrigger{
			Keyword:   acc.keyword,
			Impact:    acc.impact,
			Frequency: acc.count,
		})
	}
	return triggers
}
