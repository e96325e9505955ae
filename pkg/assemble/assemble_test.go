package assemble

import (
	"strings"
	"testing"

	"github.com/haneul-ai/promptgen/pkg/models"
)

func fullResolution() map[models.Category]models.ResolvedFragment {
	return map[models.Category]models.ResolvedFragment{
		models.CategoryLocation:   {Fragment: "cozy cafe interior", Tier: models.TierStatic},
		models.CategoryOutfit:     {Fragment: "casual one-piece dress", Tier: models.TierStatic},
		models.CategoryAction:     {Fragment: "smiling brightly", Tier: models.TierStatic},
		models.CategoryExpression: {Fragment: "gentle soft smile", Tier: models.TierStatic},
		models.CategoryAtmosphere: {Fragment: "warm evening light", Tier: models.TierStatic},
	}
}

func confidentKeywords() models.CategoryKeywordSet {
	set := models.NewDefaultKeywordSet(models.SourceModel)
	for _, c := range models.Categories() {
		set.Keywords[c] = "키워드"
		set.Confidence[c] = 0.9
	}
	return set
}

func TestNewPromptSetComplete(t *testing.T) {
	ps := NewPromptSet(models.ConvertOptions{}.Normalized(), fullResolution())
	if !ps.Complete() {
		t.Fatal("expected all seven slots non-empty")
	}
	if len(ps.Slots()) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(ps.Slots()))
	}
}

func TestNewPromptSetFillsEmptySlots(t *testing.T) {
	ps := NewPromptSet(models.ConvertOptions{}.Normalized(), nil)
	if !ps.Complete() {
		t.Fatal("expected defaults to fill every slot")
	}
	for _, c := range models.Categories() {
		if ps.Tiers[c] != models.TierGeneric {
			t.Errorf("expected generic tier for unfilled %s, got %s", c, ps.Tiers[c])
		}
	}
}

func TestAssembleOrder(t *testing.T) {
	a := New()
	opts := models.ConvertOptions{Gender: models.GenderFemale, Quality: models.QualityStandard}
	ps := NewPromptSet(opts, fullResolution())
	p := a.Assemble(ps, confidentKeywords(), opts)

	pos := p.PositivePrompt
	// Fixed order: quality prefix, subject, categories, composition, suffix.
	idxPrefix := strings.Index(pos, "masterpiece")
	idxSubject := strings.Index(pos, "1girl")
	idxLocation := strings.Index(pos, "cozy cafe interior")
	idxComposition := strings.Index(pos, "upper body portrait")
	idxSuffix := strings.Index(pos, "soft shading")
	if idxPrefix < 0 || idxSubject < 0 || idxLocation < 0 || idxComposition < 0 || idxSuffix < 0 {
		t.Fatalf("missing expected sections in %q", pos)
	}
	if !(idxPrefix < idxSubject && idxSubject < idxLocation && idxLocation < idxComposition && idxComposition < idxSuffix) {
		t.Errorf("sections out of order in %q", pos)
	}
}

func TestAssembleNegativeGrowsWithQuality(t *testing.T) {
	a := New()
	kws := confidentKeywords()

	std := a.Assemble(NewPromptSet(models.ConvertOptions{Quality: models.QualityStandard}.Normalized(), fullResolution()), kws,
		models.ConvertOptions{Quality: models.QualityStandard})
	prem := a.Assemble(NewPromptSet(models.ConvertOptions{Quality: models.QualityPremium}.Normalized(), fullResolution()), kws,
		models.ConvertOptions{Quality: models.QualityPremium})

	if !strings.Contains(std.NegativePrompt, "bad anatomy") || !strings.Contains(std.NegativePrompt, "nsfw") {
		t.Error("negative baseline missing core suppressors")
	}
	if len(prem.NegativePrompt) <= len(std.NegativePrompt) {
		t.Error("premium negative prompt must extend the baseline")
	}
	if !strings.Contains(prem.NegativePrompt, "oversaturated") {
		t.Error("premium suppressor tags missing")
	}
}

func TestAssembleGenderSubject(t *testing.T) {
	a := New()
	kws := confidentKeywords()

	male := models.ConvertOptions{Gender: models.GenderMale}
	p := a.Assemble(NewPromptSet(male.Normalized(), fullResolution()), kws, male)
	if !strings.Contains(p.PositivePrompt, "1boy") {
		t.Error("expected male subject fragment")
	}

	invalid := models.ConvertOptions{Gender: "robot"}
	p = a.Assemble(NewPromptSet(invalid.Normalized(), fullResolution()), kws, invalid)
	if !strings.Contains(p.PositivePrompt, "1girl") {
		t.Error("invalid gender must default to female")
	}
	if p.Metadata.Gender != models.GenderFemale {
		t.Errorf("metadata gender must be normalized, got %s", p.Metadata.Gender)
	}
}

func TestQualityScoreBounds(t *testing.T) {
	a := New()

	// Best case: all static, confident, diverse.
	best := a.Assemble(NewPromptSet(models.ConvertOptions{}.Normalized(), fullResolution()),
		confidentKeywords(), models.ConvertOptions{})
	if best.QualityScore < 0 || best.QualityScore > 100 {
		t.Fatalf("score out of range: %d", best.QualityScore)
	}
	if best.QualityScore < 90 {
		t.Errorf("all-static confident conversion should score high, got %d", best.QualityScore)
	}

	// Worst case: everything defaulted.
	worst := a.Assemble(NewPromptSet(models.ConvertOptions{}.Normalized(), nil),
		models.NewDefaultKeywordSet(models.SourceLocal), models.ConvertOptions{})
	if worst.QualityScore < 0 || worst.QualityScore > 100 {
		t.Fatalf("score out of range: %d", worst.QualityScore)
	}
	if worst.QualityScore >= best.QualityScore {
		t.Errorf("defaulted conversion (%d) must score below confident one (%d)",
			worst.QualityScore, best.QualityScore)
	}
}

func TestAssembleAgeBands(t *testing.T) {
	a := New()
	kws := confidentKeywords()
	older := models.ConvertOptions{Age: 55}
	p := a.Assemble(NewPromptSet(older.Normalized(), fullResolution()), kws, older)
	if !strings.Contains(p.PositivePrompt, "elderly") {
		t.Error("expected age-banded subject fragment for age 55")
	}
}
