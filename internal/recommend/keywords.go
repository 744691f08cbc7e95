package recommend

// keywordRule maps an emotion or need keyword found in a mood entry's free
// text to related terms searched for in a catalog item's keyword surface.
type keywordRule struct {
	keyword string
	related []string
	bonus   float64
}

// keywordRules is the fixed keyword-to-related-terms table. The hunger rule
// carries the largest bonus of any scoring rule and overrides everything
// else when it fires.
var keywordRules = []keywordRule{
	{
		keyword: "hungry",
		related: []string{"food", "cook", "meal", "snack", "drink", "tea", "picnic"},
		bonus:   hungerBonus,
	},
	{
		keyword: "anxiety",
		related: []string{"breathing", "calm", "ground", "settle", "relax"},
		bonus:   keywordBonus,
	},
	{
		keyword: "anxious",
		related: []string{"breathing", "calm", "ground", "settle", "relax"},
		bonus:   keywordBonus,
	},
	{
		keyword: "tired",
		related: []string{"energizing", "energy", "stretch", "wake", "rest", "sleep"},
		bonus:   keywordBonus,
	},
	{
		keyword: "stressed",
		related: []string{"breathing", "relax", "unwind", "calm", "bath"},
		bonus:   keywordBonus,
	},
	{
		keyword: "lonely",
		related: []string{"friend", "social", "people", "connection", "call", "community"},
		bonus:   keywordBonus,
	},
	{
		keyword: "restless",
		related: []string{"walk", "movement", "focus", "hands", "cardio"},
		bonus:   keywordBonus,
	},
	{
		keyword: "sad",
		related: []string{"kindness", "warmth", "comfort", "music", "support"},
		bonus:   keywordBonus,
	},
	{
		keyword: "overwhelmed",
		related: []string{"ground", "order", "quiet", "one", "senses"},
		bonus:   keywordBonus,
	},
	{
		keyword: "sleep",
		related: []string{"sleep", "bath", "relax", "unwind", "night"},
		bonus:   keywordBonus,
	},
	{
		keyword: "energetic",
		related: []string{"cardio", "hiit", "power", "ride", "dance", "brisk"},
		bonus:   keywordBonus,
	},
	{
		keyword: "happy",
		related: []string{"gratitude", "friends", "outdoors", "celebrate", "sunlight"},
		bonus:   keywordBonus,
	},
}
