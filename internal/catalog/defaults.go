package catalog

import "moodmate/pkg/types"

// defaultExercises is the built-in exercise catalog. Mood targets follow the
// 1-5 rating scale (1 worst, 5 best).
var defaultExercises = []Exercise{
	{
		ItemMeta: ItemMeta{
			ID:              "ex-box-breathing",
			Title:           "Box Breathing",
			Description:     "Slow four-count breathing to settle anxiety and calm a racing mind.",
			Category:        types.CategoryBreathing,
			DurationMinutes: 5,
		},
		MoodTargets: []int{1, 2},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-478-breathing",
			Title:           "4-7-8 Breathing",
			Description:     "A relaxing breath pattern that helps with stress and falling asleep.",
			Category:        types.CategoryBreathing,
			DurationMinutes: 4,
		},
		MoodTargets: []int{1, 2, 3},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-body-scan",
			Title:           "Body Scan Meditation",
			Description:     "Move attention slowly through the body to release tension and ground yourself.",
			Category:        types.CategoryMeditation,
			DurationMinutes: 12,
		},
		MoodTargets: []int{1, 2},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-loving-kindness",
			Title:           "Loving-Kindness Meditation",
			Description:     "Direct warmth toward yourself and others to soften sadness and loneliness.",
			Category:        types.CategoryMeditation,
			DurationMinutes: 10,
		},
		MoodTargets: []int{1, 2, 3},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-morning-meditation",
			Title:           "Morning Clarity Meditation",
			Description:     "A short seated meditation to start the day with focus.",
			Category:        types.CategoryMeditation,
			DurationMinutes: 8,
			Premium:         true,
		},
		MoodTargets: []int{3, 4},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-mindful-walk",
			Title:           "Mindful Walking",
			Description:     "A slow walk paying attention to each step, useful when feeling restless or tired.",
			Category:        types.CategoryMindfulness,
			DurationMinutes: 15,
		},
		MoodTargets: []int{2, 3},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-gratitude-pause",
			Title:           "Gratitude Pause",
			Description:     "Note three things going well right now to reinforce a good day.",
			Category:        types.CategoryMindfulness,
			DurationMinutes: 3,
		},
		MoodTargets: []int{4, 5},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-five-senses",
			Title:           "Five Senses Check-In",
			Description:     "Ground yourself by naming what you see, hear, feel, smell, and taste.",
			Category:        types.CategoryMindfulness,
			DurationMinutes: 5,
		},
		MoodTargets: []int{1, 2, 3},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-stretch-flow",
			Title:           "Energizing Stretch Flow",
			Description:     "Gentle full-body stretches to wake up tired muscles and boost energy.",
			Category:        types.CategoryPhysical,
			DurationMinutes: 10,
		},
		MoodTargets: []int{3, 4},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-power-walk",
			Title:           "Brisk Power Walk",
			Description:     "A fast outdoor walk to ride a good mood or shake off a flat one.",
			Category:        types.CategoryPhysical,
			DurationMinutes: 20,
		},
		MoodTargets: []int{4, 5},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-hiit-burst",
			Title:           "HIIT Energy Burst",
			Description:     "Short high-intensity intervals for days when energy is already high.",
			Category:        types.CategoryPhysical,
			DurationMinutes: 15,
			Premium:         true,
		},
		MoodTargets: []int{4, 5},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "ex-progressive-relax",
			Title:           "Progressive Muscle Relaxation",
			Description:     "Tense and release muscle groups to unwind after a stressful day.",
			Category:        types.CategoryBreathing,
			DurationMinutes: 12,
		},
		MoodTargets: []int{1, 2},
	},
}

// defaultActivities is the built-in activity catalog. Activities carry tags
// instead of mood targets.
var defaultActivities = []Activity{
	{
		ItemMeta: ItemMeta{
			ID:              "act-journal",
			Title:           "Write in a Journal",
			Description:     "Put the day into words; naming feelings makes them easier to carry.",
			Category:        types.CategoryMindfulness,
			DurationMinutes: 15,
		},
		Tags: []string{"writing", "reflection", "calm"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-cook-meal",
			Title:           "Cook a Proper Meal",
			Description:     "Make yourself real food; a warm meal fixes more than hunger.",
			Category:        types.CategoryCreative,
			DurationMinutes: 40,
		},
		Tags: []string{"food", "cooking", "nourishing", "snack"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-call-friend",
			Title:           "Call a Friend",
			Description:     "Reach out to someone you trust; company beats scrolling.",
			Category:        types.CategorySocial,
			DurationMinutes: 20,
		},
		Tags: []string{"connection", "talking", "support"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-group-class",
			Title:           "Join a Group Class",
			Description:     "A yoga or dance class combines movement with being around people.",
			Category:        types.CategorySocial,
			DurationMinutes: 60,
			Premium:         true,
		},
		Tags: []string{"community", "movement", "energizing"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-bike-ride",
			Title:           "Go for a Bike Ride",
			Description:     "An energizing ride outdoors; sunlight and cardio in one go.",
			Category:        types.CategoryExercise,
			DurationMinutes: 45,
		},
		Tags: []string{"outdoors", "cardio", "energizing"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-swim",
			Title:           "Swim Some Laps",
			Description:     "Low-impact exercise that leaves the whole body pleasantly tired.",
			Category:        types.CategoryExercise,
			DurationMinutes: 30,
		},
		Tags: []string{"water", "cardio", "rest"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-sketch",
			Title:           "Sketch or Doodle",
			Description:     "Low-stakes drawing to occupy restless hands and quiet the mind.",
			Category:        types.CategoryCreative,
			DurationMinutes: 25,
		},
		Tags: []string{"art", "focus", "calm"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-playlist",
			Title:           "Build a Comfort Playlist",
			Description:     "Collect songs that match or lift the mood you are in.",
			Category:        types.CategoryCreative,
			DurationMinutes: 20,
		},
		Tags: []string{"music", "comfort"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-warm-bath",
			Title:           "Take a Warm Bath",
			Description:     "Heat, quiet, and nothing to do; recovery for a drained evening.",
			Category:        types.CategoryRelaxation,
			DurationMinutes: 30,
		},
		Tags: []string{"rest", "warmth", "sleep", "calm"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-tea-break",
			Title:           "Slow Tea Break",
			Description:     "Brew something warm and sit with it away from screens.",
			Category:        types.CategoryRelaxation,
			DurationMinutes: 15,
		},
		Tags: []string{"rest", "food", "drink", "quiet"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-picnic",
			Title:           "Picnic in the Park",
			Description:     "Pack snacks and eat outside; food plus sunlight plus fresh air.",
			Category:        types.CategorySocial,
			DurationMinutes: 90,
			Premium:         true,
		},
		Tags: []string{"food", "outdoors", "friends"},
	},
	{
		ItemMeta: ItemMeta{
			ID:              "act-tidy-corner",
			Title:           "Tidy One Corner",
			Description:     "Reset a single shelf or desk; small order helps an overwhelmed head.",
			Category:        types.CategoryMindfulness,
			DurationMinutes: 15,
		},
		Tags: []string{"order", "focus", "home"},
	},
}
