package mapper

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/haneul-ai/promptgen/pkg/llm"
	"github.com/haneul-ai/promptgen/pkg/mapping"
	"github.com/haneul-ai/promptgen/pkg/models"
)

type fakeTranslator struct {
	out   string
	err   error
	calls int
}

func (f *fakeTranslator) Translate(ctx context.Context, text string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func newMapper(t llm.Translator) *Mapper {
	return New(nil, t, 64)
}

func TestResolveStaticHit(t *testing.T) {
	m := newMapper(nil)
	res := m.Resolve(context.Background(), "카페에서", models.CategoryLocation, "카페에서 웃고있는")
	if res.Tier != models.TierStatic {
		t.Fatalf("expected static tier, got %s", res.Tier)
	}
	want, _ := mapping.Lookup(models.CategoryLocation, "카페에서")
	if res.Fragment != want {
		t.Errorf("expected table fragment verbatim, got %q", res.Fragment)
	}
	st := m.Stats()
	if st.StaticHits != 1 || st.RuleGenerated != 0 || st.Fallbacks != 0 {
		t.Errorf("expected exactly one static hit, got %+v", st)
	}
}

func TestResolveHomeContextOverride(t *testing.T) {
	m := newMapper(nil)

	res := m.Resolve(context.Background(), "집", models.CategoryLocation, "집에서 요리하는 모습 보여줘")
	if res.Tier != models.TierContextual {
		t.Fatalf("expected contextual tier, got %s", res.Tier)
	}
	if !strings.Contains(res.Fragment, "kitchen") {
		t.Errorf("expected kitchen specialization, got %q", res.Fragment)
	}

	// No room named anywhere → generic home interior.
	res = m.Resolve(context.Background(), "집", models.CategoryLocation, "그냥 집이 좋아")
	if res.Tier != models.TierContextual || res.Fragment != mapping.HomeGenericFragment {
		t.Errorf("expected generic home fragment, got %+v", res)
	}
}

func TestResolveRuleHighConfidence(t *testing.T) {
	m := newMapper(nil)
	res := m.Resolve(context.Background(), "수영복매장", models.CategoryLocation, "")
	if res.Tier != models.TierRule {
		t.Fatalf("expected rule tier, got %s", res.Tier)
	}
	if !strings.Contains(res.Fragment, "수영복 store") {
		t.Errorf("expected captured prefix in store template, got %q", res.Fragment)
	}
	if st := m.Stats(); st.RuleGenerated != 1 {
		t.Errorf("expected 1 rule-generated, got %+v", st)
	}
}

func TestResolveFuzzySubstring(t *testing.T) {
	m := newMapper(nil)
	// 동네카페 is unknown but contains the static key 카페.
	res := m.Resolve(context.Background(), "동네카페", models.CategoryLocation, "")
	if res.Tier != models.TierFuzzy {
		t.Fatalf("expected fuzzy tier, got %s (%q)", res.Tier, res.Fragment)
	}
	want, _ := mapping.Lookup(models.CategoryLocation, "카페")
	if res.Fragment != want {
		t.Errorf("expected cafe fragment, got %q", res.Fragment)
	}
}

func TestResolveSynonym(t *testing.T) {
	m := newMapper(nil)
	res := m.Resolve(context.Background(), "헬스장", models.CategoryLocation, "")
	if res.Tier != models.TierFuzzy {
		t.Fatalf("expected fuzzy tier via synonym, got %s", res.Tier)
	}
	want, _ := mapping.Lookup(models.CategoryLocation, "체육관")
	if res.Fragment != want {
		t.Errorf("expected gym fragment, got %q", res.Fragment)
	}
}

func TestResolveRuleRetryBar(t *testing.T) {
	m := newMapper(nil)
	// 성수동 matches only the administrative-area rule (0.6): rejected at
	// tier 3, no fuzzy match, accepted at tier 5.
	res := m.Resolve(context.Background(), "성수동", models.CategoryLocation, "")
	if res.Tier != models.TierRule {
		t.Fatalf("expected rule tier at retry bar, got %s (%q)", res.Tier, res.Fragment)
	}
	if !strings.Contains(res.Fragment, "성수") {
		t.Errorf("expected captured prefix, got %q", res.Fragment)
	}
}

func TestResolveTranslationTier(t *testing.T) {
	tr := &fakeTranslator{out: "antique clock shop"}
	m := newMapper(tr)

	res := m.Resolve(context.Background(), "골동품시계점", models.CategoryLocation, "")
	if res.Tier != models.TierTranslated {
		t.Fatalf("expected translated tier, got %s (%q)", res.Tier, res.Fragment)
	}
	if !strings.Contains(res.Fragment, "antique clock shop") {
		t.Errorf("expected translation in fragment, got %q", res.Fragment)
	}
}

func TestResolveGenericNeverFails(t *testing.T) {
	tr := &fakeTranslator{err: errors.New("translator down")}
	m := newMapper(tr)

	for _, c := range models.Categories() {
		res := m.Resolve(context.Background(), "알수없는키워드", c, "")
		if res.Fragment == "" {
			t.Fatalf("empty fragment for %s", c)
		}
	}

	// Without any translator the same holds.
	m2 := newMapper(nil)
	res := m2.Resolve(context.Background(), "알수없는키워드", models.CategoryOutfit, "")
	if res.Tier != models.TierGeneric || res.Fragment == "" {
		t.Errorf("expected generic tier fragment, got %+v", res)
	}
}

func TestResolveDefaultSentinel(t *testing.T) {
	m := newMapper(nil)
	res := m.Resolve(context.Background(), models.DefaultKeyword, models.CategoryExpression, "")
	if res.Tier != models.TierGeneric || res.Fragment == "" {
		t.Fatalf("expected generic default fragment, got %+v", res)
	}
	if st := m.Stats(); st.Fallbacks != 1 {
		t.Errorf("default sentinel must count as fallback, got %+v", st)
	}
}

func TestResolveCounterExclusivity(t *testing.T) {
	m := newMapper(nil)
	inputs := []struct {
		keyword string
		cat     models.Category
	}{
		{"카페", models.CategoryLocation},     // static
		{"수영복매장", models.CategoryLocation},  // rule
		{"알수없는것", models.CategoryOutfit},    // generic fallback
		{"집", models.CategoryLocation},      // contextual
	}
	for _, in := range inputs {
		m.Resolve(context.Background(), in.keyword, in.cat, "메시지")
	}
	st := m.Stats()
	total := st.StaticHits + st.RuleGenerated + st.Fallbacks
	if total != int64(len(inputs)) {
		t.Errorf("expected exactly one counter per call: %d calls but %d counts (%+v)",
			len(inputs), total, st)
	}
}

func TestResolveCachesByContextPrefix(t *testing.T) {
	tr := &fakeTranslator{out: "somewhere"}
	m := newMapper(tr)

	m.Resolve(context.Background(), "희한한장소", models.CategoryLocation, "같은 문맥")
	m.Resolve(context.Background(), "희한한장소", models.CategoryLocation, "같은 문맥")
	if tr.calls != 1 {
		t.Errorf("expected cached second resolve, got %d translator calls", tr.calls)
	}
	if st := m.Stats(); st.CacheHits != 1 {
		t.Errorf("expected 1 cache hit, got %+v", st)
	}
}

func TestResetClearsCounters(t *testing.T) {
	m := newMapper(nil)
	m.Resolve(context.Background(), "카페", models.CategoryLocation, "")
	m.Reset()
	st := m.Stats()
	if st.Requests != 0 || st.StaticHits != 0 || st.CacheHits != 0 || st.CacheMisses != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", st)
	}
}
