// Package rules generates prompt fragments for keywords that have no static
// mapping, using an ordered pattern cascade. Rule order is priority: the
// first pattern that matches wins, so specific shapes (brand names, station
// suffixes) must stay ahead of generic ones (single administrative suffix
// characters). Reordering silently changes behavior.
package rules

import (
	"fmt"
	"regexp"

	"github.com/haneul-ai/promptgen/pkg/models"
)

// rule bundles the declarative MappingRule with its compiled pattern and
// documentation examples.
type rule struct {
	models.MappingRule
	re       *regexp.Regexp
	examples []string
}

// Generator walks the ordered rule cascade for one keyword.
type Generator struct {
	rules []rule
}

// CoverageStats aggregates how well the cascade covers its own documented examples.
type CoverageStats struct {
	TotalRules      int                      `json:"total_rules"`
	RulesByCategory map[models.Category]int  `json:"rules_by_category"`
	TotalExamples   int                      `json:"total_examples"`
	CoveredExamples int                      `json:"covered_examples"`
	CoveragePercent float64                  `json:"coverage_percent"`
	RuleHits        map[string]int           `json:"rule_hits"`
}

// New builds a Generator with the default location-category cascade.
func New() *Generator {
	return &Generator{rules: defaultRules()}
}

func defaultRules() []rule {
	specs := []struct {
		pattern     string
		template    string
		confidence  float64
		description string
		examples    []string
	}{
		{
			pattern:     `^(스타벅스|투썸플레이스|이디야|맥도날드|버거킹|롯데리아|올리브영|다이소|CGV|메가박스)`,
			template:    "%s storefront, recognizable branded interior, commercial signage",
			confidence:  0.9,
			description: "brand-name",
			examples:    []string{"스타벅스", "맥도날드", "올리브영"},
		},
		{
			pattern:     `^(.+?)(매장|가게|샵|상점|마켓)$`,
			template:    "%s store interior, product displays, retail shelves",
			confidence:  0.85,
			description: "merchant-type",
			examples:    []string{"수영복매장", "꽃가게", "옷가게", "신발샵"},
		},
		{
			pattern:     `^(.+)역$`,
			template:    "%s station platform, transit scenery, waiting passengers",
			confidence:  0.8,
			description: "station-suffix",
			examples:    []string{"강남역", "서울역"},
		},
		{
			pattern:     `^(.+?)(빌딩|건물|타워|센터|몰)$`,
			template:    "%s building exterior, modern architecture, glass facade",
			confidence:  0.8,
			description: "building-type",
			examples:    []string{"롯데타워", "쇼핑몰", "문화센터"},
		},
		{
			pattern:     `^(.+?)(학원|의원|은행|약국|우체국|미용실|사무소)$`,
			template:    "%s facility interior, clean professional space",
			confidence:  0.75,
			description: "institution-type",
			examples:    []string{"피아노학원", "치과의원", "동네약국"},
		},
		{
			pattern:     `^(.+?)(에서|앞에서|안에서|앞|안|옆|근처)$`,
			template:    "%s scenery, detailed surroundings",
			confidence:  0.75,
			description: "spatial-preposition",
			examples:    []string{"놀이터에서", "분수대앞", "정원안"},
		},
		{
			pattern:     `^(.+?)(동|구|로|길)$`,
			template:    "%s district streetscape, korean city scenery",
			confidence:  0.6,
			description: "administrative-area",
			examples:    []string{"성수동", "강남구", "가로수길"},
		},
	}

	rules := make([]rule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, rule{
			MappingRule: models.MappingRule{
				Pattern:     s.pattern,
				Category:    models.CategoryLocation,
				Template:    s.template,
				Confidence:  s.confidence,
				Description: s.description,
			},
			re:       regexp.MustCompile(s.pattern),
			examples: s.examples,
		})
	}
	return rules
}

// Generate resolves a keyword through the cascade. Only the
// location/environment category is supported; other categories return nil
// immediately. Matching stops at the first hit.
func (g *Generator) Generate(keyword string, category models.Category) *models.RuleResult {
	if category != models.CategoryLocation || keyword == "" {
		return nil
	}
	for _, r := range g.rules {
		m := r.re.FindStringSubmatch(keyword)
		if m == nil {
			continue
		}
		captured := keyword
		if len(m) > 1 && m[1] != "" {
			captured = m[1]
		}
		return &models.RuleResult{
			Fragment:        fmt.Sprintf(r.Template, captured),
			Confidence:      r.Confidence,
			RuleDescription: r.Description,
		}
	}
	return nil
}

// PatternsByCategory lists the declarative rules for a category in cascade order.
func (g *Generator) PatternsByCategory(category models.Category) []models.MappingRule {
	var out []models.MappingRule
	for _, r := range g.rules {
		if r.Category == category {
			out = append(out, r.MappingRule)
		}
	}
	return out
}

// Examples returns the documented example keywords for a rule description.
func (g *Generator) Examples(description string) []string {
	for _, r := range g.rules {
		if r.Description == description {
			return append([]string(nil), r.examples...)
		}
	}
	return nil
}

// Coverage runs every documented example back through the cascade and
// reports how many land on their owning rule. An example claimed by an
// earlier rule indicates an ordering hazard.
func (g *Generator) Coverage() CoverageStats {
	stats := CoverageStats{
		TotalRules:      len(g.rules),
		RulesByCategory: make(map[models.Category]int),
		RuleHits:        make(map[string]int),
	}
	for _, r := range g.rules {
		stats.RulesByCategory[r.Category]++
		for _, ex := range r.examples {
			stats.TotalExamples++
			res := g.Generate(ex, r.Category)
			if res == nil {
				continue
			}
			stats.RuleHits[res.RuleDescription]++
			if res.RuleDescription == r.Description {
				stats.CoveredExamples++
			}
		}
	}
	if stats.TotalExamples > 0 {
		stats.CoveragePercent = float64(stats.CoveredExamples) / float64(stats.TotalExamples) * 100
	}
	return stats
}
