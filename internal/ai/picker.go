package ai

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"moodmate/internal/catalog"
	"moodmate/internal/logging"
	"moodmate/internal/retry"
)

// bracketListPattern matches the first bracketed list of numbers in a reply,
// e.g. "[2, 5, 1]".
var bracketListPattern = regexp.MustCompile(`\[\s*(\d+(?:\s*,\s*\d+)*)\s*\]`)

// Picker asks the completion API to choose catalog items for a mood. Any
// failure, transport or parse, is returned as an error so the caller can
// fall back to the heuristic scorer.
type Picker struct {
	client  Client
	retrier *retry.Retrier
	logger  logging.Logger
}

// NewPicker creates a picker around a completion client
func NewPicker(client Client, logger logging.Logger) *Picker {
	return &Picker{
		client:  client,
		retrier: retry.New(retry.DefaultConfig()),
		logger:  logger.WithComponent("ai-picker"),
	}
}

// Pick asks the model for the n most suitable items and returns them in the
// model's order. The candidate list must already be filtered by entitlement.
func (p *Picker) Pick(ctx context.Context, rating int, detail string, candidates []catalog.Recommendable, n int) ([]catalog.Recommendable, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates to pick from")
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	prompt := buildPrompt(rating, detail, candidates, n)

	var reply string
	result := p.retrier.Do(ctx, func(ctx context.Context) error {
		var err error
		reply, err = p.client.Complete(ctx, prompt)
		return err
	})
	if result.Err != nil {
		return nil, fmt.Errorf("completion call failed after %d attempts: %w", result.Attempts, result.Err)
	}

	indices, err := parseIndexList(reply, len(candidates))
	if err != nil {
		p.logger.Warn("unparsable completion reply", "reply_length", len(reply), "error", err)
		return nil, err
	}

	if len(indices) > n {
		indices = indices[:n]
	}
	picked := make([]catalog.Recommendable, 0, len(indices))
	for _, idx := range indices {
		picked = append(picked, candidates[idx-1])
	}
	return picked, nil
}

// buildPrompt enumerates the candidates 1-based and asks for a bracketed
// numeric list
func buildPrompt(rating int, detail string, candidates []catalog.Recommendable, n int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A user rated their mood %d out of 5 (1 is worst, 5 is best).\n", rating)
	if detail != "" {
		fmt.Fprintf(&sb, "They described their day as: %q\n", detail)
	}
	fmt.Fprintf(&sb, "\nFrom the numbered list below, choose the %d most suitable suggestions.\n", n)
	sb.WriteString("Reply with only a bracketed list of numbers, best first, for example [2, 5, 1].\n\n")
	for i, item := range candidates {
		meta := item.Meta()
		fmt.Fprintf(&sb, "%d. %s - %s (%s, %d min)\n",
			i+1, meta.Title, meta.Description, meta.Category, meta.DurationMinutes)
	}
	return sb.String()
}

// parseIndexList extracts a deduplicated list of 1-based indices from the
// reply. Empty, malformed, or out-of-range lists are errors.
func parseIndexList(reply string, max int) ([]int, error) {
	match := bracketListPattern.FindStringSubmatch(reply)
	if match == nil {
		return nil, fmt.Errorf("no bracketed index list in reply")
	}

	parts := strings.Split(match[1], ",")
	seen := make(map[int]bool)
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid index %q in reply", part)
		}
		if idx < 1 || idx > max {
			return nil, fmt.Errorf("index %d out of range 1-%d", idx, max)
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("empty index list in reply")
	}
	return indices, nil
}
