// Package assemble combines resolved category fragments into the final
// positive/negative prompt pair and computes the quality score.
package assemble

import (
	"fmt"
	"strings"
	"time"

	"github.com/haneul-ai/promptgen/pkg/mapping"
	"github.com/haneul-ai/promptgen/pkg/models"
)

// Assembler builds GeneratedPrompts from resolved prompt sets.
type Assembler struct{}

// New creates an Assembler.
func New() *Assembler {
	return &Assembler{}
}

// NewPromptSet builds a complete CategoryPromptSet from the subject options
// and the per-category resolutions. Empty fragments are filled with the
// per-category default so every slot is non-empty at assembly time.
func NewPromptSet(opts models.ConvertOptions, resolved map[models.Category]models.ResolvedFragment) models.CategoryPromptSet {
	ps := models.CategoryPromptSet{
		Subject:     subjectFragment(opts.Gender, opts.Age),
		Fragments:   make(map[models.Category]string, 5),
		Tiers:       make(map[models.Category]models.ResolutionTier, 5),
		Composition: compositionFragment,
	}
	for _, c := range models.Categories() {
		r := resolved[c]
		if r.Fragment == "" {
			r = models.ResolvedFragment{
				Fragment: mapping.DefaultFragment(c),
				Tier:     models.TierGeneric,
			}
		}
		ps.Fragments[c] = r.Fragment
		ps.Tiers[c] = r.Tier
	}
	return ps
}

// Assemble produces the final prompt pair. The positive prompt concatenates,
// in fixed order: quality prefix tags, subject, the five category fragments,
// composition, quality suffix tags. The negative prompt is the baseline
// suppressor list extended per quality level.
func (a *Assembler) Assemble(ps models.CategoryPromptSet, kws models.CategoryKeywordSet, opts models.ConvertOptions) models.GeneratedPrompt {
	opts = opts.Normalized()
	preset := qualityPresets[opts.Quality]

	parts := make([]string, 0, 7+len(preset.prefix)+len(preset.suffix))
	parts = append(parts, preset.prefix...)
	parts = append(parts, ps.Slots()...)
	parts = append(parts, preset.suffix...)

	negative := make([]string, 0, len(negativeBaseline)+len(preset.negative))
	negative = append(negative, negativeBaseline...)
	negative = append(negative, preset.negative...)

	breakdown := make(map[models.Category]string, 5)
	for _, c := range models.Categories() {
		breakdown[c] = ps.Fragments[c]
	}

	return models.GeneratedPrompt{
		PositivePrompt:    joinClean(parts),
		NegativePrompt:    joinClean(negative),
		CategoryBreakdown: breakdown,
		QualityScore:      qualityScore(ps, kws),
		Metadata: models.PromptMetadata{
			Gender:           opts.Gender,
			TemplateUsed:     fmt.Sprintf("portrait_%s", opts.Quality),
			CategoriesFilled: kws.Filled(),
			GeneratedAt:      time.Now().UTC(),
		},
	}
}

// tierWeights score how trustworthy each resolution tier is.
var tierWeights = map[models.ResolutionTier]float64{
	models.TierStatic:     1.0,
	models.TierContextual: 1.0,
	models.TierFuzzy:      0.9,
	models.TierRule:       0.85,
	models.TierTranslated: 0.6,
	models.TierGeneric:    0.3,
}

// qualityScore weighs extraction confidence (40%), resolution-tier quality
// (40%), and fragment diversity (20%), clamped to [0,100].
func qualityScore(ps models.CategoryPromptSet, kws models.CategoryKeywordSet) int {
	var confSum, tierSum float64
	unique := make(map[string]bool, 5)
	for _, c := range models.Categories() {
		confSum += kws.ConfidenceFor(c)
		tierSum += tierWeights[ps.Tiers[c]]
		unique[ps.Fragments[c]] = true
	}

	confScore := confSum / 5 / 0.9 // 0.9 is the max per-category confidence
	tierScore := tierSum / 5
	diversity := float64(len(unique)) / 5

	score := int((confScore*0.4 + tierScore*0.4 + diversity*0.2) * 100)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// joinClean joins non-empty trimmed parts with ", ".
func joinClean(parts []string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			clean = append(clean, s)
		}
	}
	return strings.Join(clean, ", ")
}
