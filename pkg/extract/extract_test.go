package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/haneul-ai/promptgen/pkg/models"
)

type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const goodJSON = `{
	"location_environment": "카페에서",
	"outfit_style": "원피스",
	"action_pose": "웃고있는",
	"expression_emotion": "미소",
	"atmosphere_lighting": "저녁"
}`

func TestExtractModelPath(t *testing.T) {
	fake := &fakeClient{response: goodJSON}
	e := New(fake, 16)

	set := e.Extract(context.Background(), "저녁에 카페에서 웃고있는 모습", nil)
	if set.Source != models.SourceModel {
		t.Fatalf("expected model source, got %s", set.Source)
	}
	if set.Keyword(models.CategoryLocation) != "카페에서" {
		t.Errorf("expected 카페에서, got %q", set.Keyword(models.CategoryLocation))
	}
	// 카페 (root of 카페에서) appears literally in the message.
	if conf := set.ConfidenceFor(models.CategoryLocation); conf != 0.9 {
		t.Errorf("expected 0.9 confidence for literal keyword, got %v", conf)
	}
	// 원피스 does not appear in the message.
	if conf := set.ConfidenceFor(models.CategoryOutfit); conf != 0.6 {
		t.Errorf("expected 0.6 confidence for non-literal keyword, got %v", conf)
	}
}

func TestExtractToleratesFencesAndProse(t *testing.T) {
	fake := &fakeClient{response: "Sure! Here are the keywords:\n```json\n" + goodJSON + "\n```\nHope that helps."}
	e := New(fake, 16)

	set := e.Extract(context.Background(), "저녁 카페", nil)
	if set.Source != models.SourceModel {
		t.Fatalf("expected model source despite prose, got %s", set.Source)
	}
	if set.Keyword(models.CategoryAtmosphere) != "저녁" {
		t.Errorf("expected 저녁, got %q", set.Keyword(models.CategoryAtmosphere))
	}
}

func TestExtractRepairsMissingCategories(t *testing.T) {
	fake := &fakeClient{response: `{"location_environment": "해변", "outfit_style": 42}`}
	e := New(fake, 16)

	set := e.Extract(context.Background(), "해변 가고싶다", nil)
	if set.Keyword(models.CategoryLocation) != "해변" {
		t.Errorf("expected 해변, got %q", set.Keyword(models.CategoryLocation))
	}
	for _, c := range []models.Category{models.CategoryOutfit, models.CategoryAction} {
		if set.Keyword(c) != models.DefaultKeyword {
			t.Errorf("expected default for %s, got %q", c, set.Keyword(c))
		}
		if set.ConfidenceFor(c) != 0.3 {
			t.Errorf("expected 0.3 confidence for defaulted %s", c)
		}
	}
}

func TestExtractFallbackOnError(t *testing.T) {
	fake := &fakeClient{err: errors.New("simulated timeout")}
	e := New(fake, 16)

	set := e.Extract(context.Background(), "카페에서 웃고있는 모습", nil)
	if set.Source != models.SourceLocal {
		t.Fatalf("expected local fallback, got %s", set.Source)
	}
	if set.Keyword(models.CategoryLocation) != "카페" {
		t.Errorf("expected 카페 from scan tables, got %q", set.Keyword(models.CategoryLocation))
	}
	for _, c := range models.Categories() {
		if conf := set.ConfidenceFor(c); conf > 0.6 {
			t.Errorf("fallback confidence for %s must be ≤0.6, got %v", c, conf)
		}
	}

	st := e.Stats()
	if st.LocalFallbacks != 1 || st.ModelHits != 0 {
		t.Errorf("expected 1 local fallback, 0 model hits, got %+v", st)
	}
}

func TestExtractFallbackOnGarbage(t *testing.T) {
	fake := &fakeClient{response: "I cannot produce JSON today."}
	e := New(fake, 16)

	set := e.Extract(context.Background(), "해변에서 수영복 입고", nil)
	if set.Source != models.SourceLocal {
		t.Fatalf("expected local fallback on unparsable response, got %s", set.Source)
	}
	if set.Keyword(models.CategoryOutfit) != "수영복" {
		t.Errorf("expected 수영복, got %q", set.Keyword(models.CategoryOutfit))
	}
}

func TestExtractCaches(t *testing.T) {
	fake := &fakeClient{response: goodJSON}
	e := New(fake, 16)

	e.Extract(context.Background(), "같은 메시지", []string{"턴1", "턴2"})
	e.Extract(context.Background(), "같은 메시지", []string{"턴1", "턴2"})
	if fake.calls != 1 {
		t.Errorf("expected 1 upstream call for identical input, got %d", fake.calls)
	}

	// Different context turns change the cache key.
	e.Extract(context.Background(), "같은 메시지", []string{"다른턴"})
	if fake.calls != 2 {
		t.Errorf("expected 2 upstream calls after context change, got %d", fake.calls)
	}
}

func TestExtractNoClient(t *testing.T) {
	e := New(nil, 16)
	set := e.Extract(context.Background(), "공원에서 산책", nil)
	if set.Source != models.SourceLocal {
		t.Fatalf("expected local source with nil client, got %s", set.Source)
	}
	if set.Keyword(models.CategoryLocation) != "공원" {
		t.Errorf("expected 공원, got %q", set.Keyword(models.CategoryLocation))
	}
}

func TestRootForm(t *testing.T) {
	if rootForm("카페에서") != "카페" {
		t.Errorf("expected 카페, got %q", rootForm("카페에서"))
	}
	if rootForm("해변") != "해변" {
		t.Errorf("expected unchanged keyword, got %q", rootForm("해변"))
	}
}
