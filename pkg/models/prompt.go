package models

import "time"

// ResolutionTier names the mapper stage that produced a fragment.
type ResolutionTier string

const (
	TierStatic     ResolutionTier = "static"
	TierContextual ResolutionTier = "contextual"
	TierRule       ResolutionTier = "rule"
	TierFuzzy      ResolutionTier = "fuzzy"
	TierTranslated ResolutionTier = "translated"
	TierGeneric    ResolutionTier = "generic"
)

// ResolvedFragment pairs a prompt fragment with the tier that produced it.
type ResolvedFragment struct {
	Fragment string         `json:"fragment"`
	Tier     ResolutionTier `json:"tier"`
}

// CategoryPromptSet holds the seven slots assembled into the final prompt:
// one subject fragment, five category fragments, one composition fragment.
// All slots must be non-empty at assembly time.
type CategoryPromptSet struct {
	Subject     string                `json:"subject"`
	Fragments   map[Category]string   `json:"fragments"`
	Tiers       map[Category]ResolutionTier `json:"tiers"`
	Composition string                `json:"composition"`
}

// Slots returns the seven fragments in assembly order.
func (p CategoryPromptSet) Slots() []string {
	slots := make([]string, 0, 7)
	slots = append(slots, p.Subject)
	for _, c := range Categories() {
		slots = append(slots, p.Fragments[c])
	}
	return append(slots, p.Composition)
}

// Complete reports whether every slot is a non-empty string.
func (p CategoryPromptSet) Complete() bool {
	for _, s := range p.Slots() {
		if s == "" {
			return false
		}
	}
	return true
}

// PromptMetadata describes how a GeneratedPrompt was produced.
type PromptMetadata struct {
	ID               string    `json:"id"`
	Gender           Gender    `json:"gender"`
	TemplateUsed     string    `json:"template_used"`
	CategoriesFilled int       `json:"categories_filled"`
	Enhanced         bool      `json:"enhanced,omitempty"`
	Fallback         bool      `json:"fallback,omitempty"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// GeneratedPrompt is the final positive/negative directive pair handed to the
// image backend. Immutable once returned; every message produces a new instance.
type GeneratedPrompt struct {
	PositivePrompt    string              `json:"positive_prompt"`
	NegativePrompt    string              `json:"negative_prompt"`
	CategoryBreakdown map[Category]string `json:"category_breakdown"`
	QualityScore      int                 `json:"quality_score"`
	Metadata          PromptMetadata      `json:"metadata"`
}
