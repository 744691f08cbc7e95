// Package catalog holds the recommendable exercise and activity catalogs.
// Both catalogs share the Recommendable interface so the scorer and selector
// operate on one abstraction regardless of catalog origin.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"moodmate/pkg/types"
)

// ItemMeta is the common metadata carried by every catalog item
type ItemMeta struct {
	ID              string         `json:"id" yaml:"id"`
	Title           string         `json:"title" yaml:"title"`
	Description     string         `json:"description" yaml:"description"`
	Category        types.Category `json:"category" yaml:"category"`
	DurationMinutes int            `json:"duration_minutes" yaml:"duration_minutes"`
	Premium         bool           `json:"is_premium" yaml:"is_premium"`
}

// Recommendable is implemented by every catalog item the recommendation
// engine can score and select
type Recommendable interface {
	Meta() ItemMeta
	// MatchesMood reports whether the item explicitly targets the rating
	MatchesMood(rating int) bool
	// KeywordSurface returns the lowercased text mined for keyword matches
	KeywordSurface() string
}

// Exercise is a guided exercise targeting a set of mood ratings
type Exercise struct {
	ItemMeta    `yaml:",inline"`
	MoodTargets []int `json:"mood_targets" yaml:"mood_targets"`
}

// Meta returns the exercise's common metadata
func (e Exercise) Meta() ItemMeta { return e.ItemMeta }

// MatchesMood reports whether the rating is one of the exercise's targets
func (e Exercise) MatchesMood(rating int) bool {
	for _, t := range e.MoodTargets {
		if t == rating {
			return true
		}
	}
	return false
}

// TargetDistance returns the distance from the rating to the nearest mood
// target, or -1 when the exercise has no targets at all.
func (e Exercise) TargetDistance(rating int) int {
	if len(e.MoodTargets) == 0 {
		return -1
	}
	best := -1
	for _, t := range e.MoodTargets {
		d := t - rating
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// KeywordSurface returns the exercise text mined for keyword matches
func (e Exercise) KeywordSurface() string {
	return strings.ToLower(strings.Join([]string{
		e.Title, e.Description, string(e.Category),
	}, " "))
}

// Activity is a suggested activity carrying free-text tags instead of
// explicit mood targets
type Activity struct {
	ItemMeta `yaml:",inline"`
	Tags     []string `json:"tags" yaml:"tags"`
}

// Meta returns the activity's common metadata
func (a Activity) Meta() ItemMeta { return a.ItemMeta }

// MatchesMood always reports false: activities carry no mood targets
func (a Activity) MatchesMood(rating int) bool { return false }

// KeywordSurface returns the activity text mined for keyword matches
func (a Activity) KeywordSurface() string {
	parts := []string{a.Title, a.Description, string(a.Category)}
	parts = append(parts, a.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Catalog holds both item lists, loaded once and immutable at runtime
type Catalog struct {
	exercises  []Exercise
	activities []Activity
}

// Default returns the built-in catalog
func Default() *Catalog {
	return &Catalog{
		exercises:  defaultExercises,
		activities: defaultActivities,
	}
}

// catalogFile is the YAML override file shape
type catalogFile struct {
	Exercises  []Exercise `yaml:"exercises"`
	Activities []Activity `yaml:"activities"`
}

// LoadFile reads a catalog override from a YAML file. Lists missing from the
// file fall back to the built-in defaults.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	c := Default()
	if len(file.Exercises) > 0 {
		c.exercises = file.Exercises
	}
	if len(file.Activities) > 0 {
		c.activities = file.Activities
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	seen := make(map[string]bool)
	for _, e := range c.exercises {
		if e.ID == "" {
			return fmt.Errorf("exercise %q has no id", e.Title)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate catalog item id %q", e.ID)
		}
		seen[e.ID] = true
	}
	for _, a := range c.activities {
		if a.ID == "" {
			return fmt.Errorf("activity %q has no id", a.Title)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate catalog item id %q", a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Exercises returns the exercises visible to the given tier
func (c *Catalog) Exercises(tier types.Tier) []Recommendable {
	result := make([]Recommendable, 0, len(c.exercises))
	for _, e := range c.exercises {
		if e.Premium && tier != types.TierPremium {
			continue
		}
		result = append(result, e)
	}
	return result
}

// Activities returns the activities visible to the given tier
func (c *Catalog) Activities(tier types.Tier) []Recommendable {
	result := make([]Recommendable, 0, len(c.activities))
	for _, a := range c.activities {
		if a.Premium && tier != types.TierPremium {
			continue
		}
		result = append(result, a)
	}
	return result
}
