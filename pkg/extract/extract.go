// Package extract produces one keyword per category from a chat message,
// preferring a structured-output instruction to the text-completion service
// and degrading to local keyword-table scanning when the call fails. The
// Extract contract never returns an error: a best-effort CategoryKeywordSet
// always comes back.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/haneul-ai/promptgen/pkg/llm"
	"github.com/haneul-ai/promptgen/pkg/mapping"
	"github.com/haneul-ai/promptgen/pkg/memocache"
	"github.com/haneul-ai/promptgen/pkg/models"
)

const (
	// maxRecentTurns bounds how much conversation context rides along.
	maxRecentTurns = 3
	// maxTurnRunes truncates each context turn before it enters the instruction.
	maxTurnRunes = 120
)

const extractSystem = "You analyze a Korean chat message and extract exactly one " +
	"short keyword for each of five categories. Respond with a single JSON object " +
	"and nothing else, using these keys: location_environment, outfit_style, " +
	"action_pose, expression_emotion, atmosphere_lighting. Each value is one " +
	"keyword copied or minimally normalized from the message. Use \"default\" " +
	"when the message gives no signal for a category."

// Extractor resolves messages into CategoryKeywordSets.
type Extractor struct {
	client llm.CompletionClient
	cache  *memocache.Cache[models.CategoryKeywordSet]

	requests       atomic.Int64
	modelHits      atomic.Int64
	localFallbacks atomic.Int64
}

// New creates an Extractor. client may be nil, in which case every call
// takes the local fallback path.
func New(client llm.CompletionClient, cacheSize int) *Extractor {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	return &Extractor{
		client: client,
		cache:  memocache.New[models.CategoryKeywordSet](cacheSize),
	}
}

// Extract returns a keyword set for the message. Results are cached by a
// hash of the message and trimmed recent turns; the cache is bounded with
// first-in-first-evicted semantics.
func (e *Extractor) Extract(ctx context.Context, message string, recentTurns []string) models.CategoryKeywordSet {
	e.requests.Add(1)

	turns := trimTurns(recentTurns)
	key := memocache.HashKey(append([]string{message}, turns...)...)
	if cached, ok := e.cache.Get(key); ok {
		return cached
	}

	set, err := e.extractRemote(ctx, message, turns)
	if err != nil {
		log.Printf("[extract] completion failed, using local tables: %v", err)
		set = e.extractLocal(message)
		e.localFallbacks.Add(1)
	} else {
		e.modelHits.Add(1)
	}

	e.cache.Put(key, set)
	return set
}

// extractRemote asks the completion service for the five keywords.
func (e *Extractor) extractRemote(ctx context.Context, message string, turns []string) (models.CategoryKeywordSet, error) {
	if e.client == nil {
		return models.CategoryKeywordSet{}, fmt.Errorf("no completion client configured")
	}

	var b strings.Builder
	if len(turns) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, t := range turns {
			b.WriteString("- ")
			b.WriteString(t)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Message:\n")
	b.WriteString(message)

	raw, err := e.client.Complete(ctx, extractSystem, b.String())
	if err != nil {
		return models.CategoryKeywordSet{}, err
	}

	parsed, err := parseKeywordJSON(raw)
	if err != nil {
		return models.CategoryKeywordSet{}, err
	}

	set := models.CategoryKeywordSet{
		Keywords:   make(map[models.Category]string, 5),
		Confidence: make(map[models.Category]float64, 5),
		Source:     models.SourceModel,
	}
	for _, c := range models.Categories() {
		kw := strings.TrimSpace(parsed[string(c)])
		if kw == "" {
			kw = models.DefaultKeyword
		}
		set.Keywords[c] = kw
		set.Confidence[c] = keywordConfidence(message, kw)
	}
	return set, nil
}

// extractLocal scans the message against the per-category keyword tables.
func (e *Extractor) extractLocal(message string) models.CategoryKeywordSet {
	set := models.CategoryKeywordSet{
		Keywords:   make(map[models.Category]string, 5),
		Confidence: make(map[models.Category]float64, 5),
		Source:     models.SourceLocal,
	}
	for _, c := range models.Categories() {
		kw := mapping.ScanMessage(c, message)
		set.Keywords[c] = kw
		if kw == models.DefaultKeyword {
			set.Confidence[c] = 0.3
		} else {
			set.Confidence[c] = 0.6
		}
	}
	return set
}

// parseKeywordJSON pulls a JSON object out of a completion response,
// tolerating markdown code fences and leading/trailing prose.
func parseKeywordJSON(raw string) (map[string]string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var out map[string]string
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &out); err != nil {
		// Values may be non-strings; retry loosely and keep what converts.
		var loose map[string]any
		if err2 := json.Unmarshal([]byte(cleaned[start:end+1]), &loose); err2 != nil {
			return nil, fmt.Errorf("parse keyword JSON: %w", err)
		}
		out = make(map[string]string, len(loose))
		for k, v := range loose {
			if s, ok := v.(string); ok {
				out[k] = s
			}
		}
	}
	return out, nil
}

// keywordConfidence scores a model-produced keyword post hoc: 0.9 when its
// root form literally appears in the message, 0.6 otherwise, 0.3 for the
// default sentinel.
func keywordConfidence(message, keyword string) float64 {
	if keyword == models.DefaultKeyword {
		return 0.3
	}
	if strings.Contains(message, rootForm(keyword)) {
		return 0.9
	}
	return 0.6
}

// particleSuffixes are common Korean particles stripped to obtain a root form.
var particleSuffixes = []string{"에서", "에게", "으로", "하고", "에", "를", "을", "이", "가", "은", "는", "로", "와", "과"}

// rootForm strips one trailing particle from a keyword.
func rootForm(keyword string) string {
	for _, p := range particleSuffixes {
		if trimmed, ok := strings.CutSuffix(keyword, p); ok && trimmed != "" {
			return trimmed
		}
	}
	return keyword
}

// trimTurns keeps the last few turns, each truncated to a sane length.
func trimTurns(turns []string) []string {
	if len(turns) > maxRecentTurns {
		turns = turns[len(turns)-maxRecentTurns:]
	}
	out := make([]string, 0, len(turns))
	for _, t := range turns {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if r := []rune(t); len(r) > maxTurnRunes {
			t = string(r[:maxTurnRunes])
		}
		out = append(out, t)
	}
	return out
}

// Stats returns the extractor's counters.
func (e *Extractor) Stats() models.ExtractorStats {
	cs := e.cache.Stats()
	return models.ExtractorStats{
		Requests:       e.requests.Load(),
		ModelHits:      e.modelHits.Load(),
		LocalFallbacks: e.localFallbacks.Load(),
		CacheHits:      cs.Hits,
		CacheMisses:    cs.Misses,
	}
}

// Reset clears counters and the result cache.
func (e *Extractor) Reset() {
	e.requests.Store(0)
	e.modelHits.Store(0)
	e.localFallbacks.Store(0)
	e.cache.Clear()
	e.cache.ResetStats()
}
