package rules

import (
	"strings"
	"testing"

	"github.com/haneul-ai/promptgen/pkg/models"
)

func TestGenerateMerchantSuffix(t *testing.T) {
	g := New()
	res := g.Generate("수영복매장", models.CategoryLocation)
	if res == nil {
		t.Fatal("expected merchant-type rule to match 수영복매장")
	}
	if res.Confidence != 0.85 {
		t.Errorf("expected confidence 0.85, got %v", res.Confidence)
	}
	if !strings.Contains(res.Fragment, "수영복 store") {
		t.Errorf("expected captured prefix substituted into store template, got %q", res.Fragment)
	}
	if res.RuleDescription != "merchant-type" {
		t.Errorf("expected merchant-type, got %s", res.RuleDescription)
	}
}

func TestGenerateUnsupportedCategory(t *testing.T) {
	g := New()
	for _, c := range models.Categories() {
		if c == models.CategoryLocation {
			continue
		}
		if res := g.Generate("수영복매장", c); res != nil {
			t.Errorf("expected nil for category %s, got %+v", c, res)
		}
	}
	if g.Generate("", models.CategoryLocation) != nil {
		t.Error("expected nil for empty keyword")
	}
}

func TestGenerateNoMatch(t *testing.T) {
	g := New()
	if res := g.Generate("그냥어딘가", models.CategoryLocation); res != nil {
		t.Errorf("expected no rule to match, got %+v", res)
	}
}

// Rule order is a correctness invariant: specific shapes must sit ahead of
// generic ones, and matching must stop at the first hit.
func TestCascadeOrder(t *testing.T) {
	g := New()
	patterns := g.PatternsByCategory(models.CategoryLocation)
	if len(patterns) == 0 {
		t.Fatal("expected location rules")
	}

	idx := make(map[string]int)
	for i, p := range patterns {
		idx[p.Description] = i
	}
	if idx["brand-name"] != 0 {
		t.Error("brand-name must be the first rule")
	}
	if idx["merchant-type"] > idx["administrative-area"] {
		t.Error("merchant-type must precede administrative-area")
	}
	if idx["administrative-area"] != len(patterns)-1 {
		t.Error("administrative-area (single suffix character) must be last")
	}

	// 강남역 ends in the administrative-ambiguous shape too, but the
	// station rule must claim it first.
	res := g.Generate("강남역", models.CategoryLocation)
	if res == nil || res.RuleDescription != "station-suffix" {
		t.Fatalf("expected station-suffix to claim 강남역, got %+v", res)
	}
}

func TestLowConfidenceAdministrativeArea(t *testing.T) {
	g := New()
	res := g.Generate("성수동", models.CategoryLocation)
	if res == nil {
		t.Fatal("expected administrative-area rule to match 성수동")
	}
	if res.Confidence >= models.AcceptConfidence {
		t.Errorf("administrative-area must sit below the outright-accept gate, got %v", res.Confidence)
	}
	if res.Confidence < models.RetryConfidence {
		t.Errorf("administrative-area must remain acceptable at the retry gate, got %v", res.Confidence)
	}
}

func TestExamplesAndCoverage(t *testing.T) {
	g := New()
	if ex := g.Examples("merchant-type"); len(ex) == 0 {
		t.Error("expected documented examples for merchant-type")
	}
	if ex := g.Examples("nonexistent"); ex != nil {
		t.Error("expected nil for unknown rule description")
	}

	cov := g.Coverage()
	if cov.TotalRules == 0 || cov.TotalExamples == 0 {
		t.Fatal("expected non-empty coverage stats")
	}
	if cov.CoveredExamples != cov.TotalExamples {
		t.Errorf("every documented example must land on its owning rule: %d/%d",
			cov.CoveredExamples, cov.TotalExamples)
	}
	if cov.CoveragePercent != 100 {
		t.Errorf("expected 100%% coverage, got %v", cov.CoveragePercent)
	}
}
