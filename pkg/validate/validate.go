// Package validate checks assembled prompts against content-policy and
// format rules, producing a repaired variant where possible instead of
// rejecting outright.
package validate

import (
	"strings"

	"github.com/haneul-ai/promptgen/pkg/models"
)

// maxPromptRunes clamps runaway positive prompts; diffusion backends ignore
// the tail anyway.
const maxPromptRunes = 1200

// bannedTerms must never reach the image backend in a positive prompt.
var bannedTerms = []string{
	"gore",
	"graphic violence",
	"severed",
	"nsfw",
	"nude",
	"explicit",
	"child",
	"loli",
}

// Verdict is the outcome of validating one GeneratedPrompt.
type Verdict struct {
	Valid    bool
	Issues   []string
	Repaired *models.GeneratedPrompt // auto-repaired variant, nil when no repair was needed or possible
}

// Checker validates and repairs assembled prompts.
type Checker struct{}

// New creates a Checker.
func New() *Checker {
	return &Checker{}
}

// Check validates a prompt. When issues are found but repairable, the
// verdict carries the repaired variant; callers substitute it and mark the
// result as enhanced.
func (c *Checker) Check(p models.GeneratedPrompt) Verdict {
	var issues []string

	if strings.TrimSpace(p.PositivePrompt) == "" {
		return Verdict{Valid: false, Issues: []string{"empty positive prompt"}}
	}

	tags := splitTags(p.PositivePrompt)

	cleaned, removed := stripBanned(tags)
	if removed > 0 {
		issues = append(issues, "banned terms in positive prompt")
	}

	deduped, dupes := dedupe(cleaned)
	if dupes > 0 {
		issues = append(issues, "duplicate tags")
	}

	joined := strings.Join(deduped, ", ")
	if r := []rune(joined); len(r) > maxPromptRunes {
		joined = string(r[:maxPromptRunes])
		issues = append(issues, "positive prompt too long")
	}

	if len(issues) == 0 {
		return Verdict{Valid: true}
	}
	if strings.TrimSpace(joined) == "" {
		// Everything was banned; nothing usable remains.
		return Verdict{Valid: false, Issues: issues}
	}

	repaired := p
	repaired.PositivePrompt = joined
	return Verdict{Valid: false, Issues: issues, Repaired: &repaired}
}

func splitTags(prompt string) []string {
	raw := strings.Split(prompt, ",")
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		if s := strings.TrimSpace(t); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}

func stripBanned(tags []string) ([]string, int) {
	kept := make([]string, 0, len(tags))
	removed := 0
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		banned := false
		for _, term := range bannedTerms {
			if strings.Contains(lower, term) {
				banned = true
				break
			}
		}
		if banned {
			removed++
			continue
		}
		kept = append(kept, tag)
	}
	return kept, removed
}

func dedupe(tags []string) ([]string, int) {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	dupes := 0
	for _, tag := range tags {
		key := strings.ToLower(tag)
		if seen[key] {
			dupes++
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out, dupes
}
