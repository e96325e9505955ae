// Package mapper resolves one extracted keyword, in one category, to an
// English prompt fragment. Resolution walks an ordered tier cascade and the
// contract never fails: the final tier is a deterministic template that
// always succeeds.
package mapper

import (
	"context"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/haneul-ai/promptgen/pkg/llm"
	"github.com/haneul-ai/promptgen/pkg/mapping"
	"github.com/haneul-ai/promptgen/pkg/memocache"
	"github.com/haneul-ai/promptgen/pkg/models"
	"github.com/haneul-ai/promptgen/pkg/rules"
)

// contextPrefixRunes bounds how much of the original message participates in
// the cache key for context-sensitive resolutions.
const contextPrefixRunes = 40

// fuzzyMinRunes guards the substring tier against one-character keywords
// matching half the table.
const fuzzyMinRunes = 2

// Mapper resolves keywords through the tier cascade, tracking per-tier
// counters and caching every resolution.
type Mapper struct {
	gen        *rules.Generator
	translator llm.Translator // nil = translation tier disabled
	cache      *memocache.Cache[models.ResolvedFragment]

	requests      atomic.Int64
	staticHits    atomic.Int64
	ruleGenerated atomic.Int64
	fallbacks     atomic.Int64
}

// New creates a Mapper. translator may be nil.
func New(gen *rules.Generator, translator llm.Translator, cacheSize int) *Mapper {
	if gen == nil {
		gen = rules.New()
	}
	if cacheSize <= 0 {
		cacheSize = 512
	}
	return &Mapper{
		gen:        gen,
		translator: translator,
		cache:      memocache.New[models.ResolvedFragment](cacheSize),
	}
}

// Resolve maps a keyword to a fragment. contextMessage is the original chat
// message, consulted only by the contextual tier. The returned fragment is
// never empty. Exactly one of the static-hit / rule-generated / fallback
// counters increments per uncached call: table-driven tiers (static,
// contextual, fuzzy) count as static hits, both rule gates count as
// rule-generated, and the translated/generic tail counts as fallback.
func (m *Mapper) Resolve(ctx context.Context, keyword string, category models.Category, contextMessage string) models.ResolvedFragment {
	m.requests.Add(1)

	keyword = strings.TrimSpace(keyword)
	key := cacheKey(category, keyword, contextMessage)
	if cached, ok := m.cache.Get(key); ok {
		return cached
	}

	res := m.resolve(ctx, keyword, category, contextMessage)
	m.cache.Put(key, res)
	return res
}

func (m *Mapper) resolve(ctx context.Context, keyword string, category models.Category, contextMessage string) models.ResolvedFragment {
	// The default sentinel short-circuits to the calm per-category fragment.
	if keyword == "" || keyword == models.DefaultKeyword {
		m.fallbacks.Add(1)
		return models.ResolvedFragment{
			Fragment: mapping.DefaultFragment(category),
			Tier:     models.TierGeneric,
		}
	}

	// Tier 1: exact case-sensitive static lookup.
	if frag, ok := mapping.Lookup(category, keyword); ok {
		m.staticHits.Add(1)
		return models.ResolvedFragment{Fragment: frag, Tier: models.TierStatic}
	}

	// Tier 2: contextual override for the ambiguous home sentinel. A bare
	// "집" keyword loses the room named elsewhere in the sentence.
	if category == models.CategoryLocation && mapping.IsHomeKeyword(keyword) {
		m.staticHits.Add(1)
		return models.ResolvedFragment{
			Fragment: homeFragment(contextMessage),
			Tier:     models.TierContextual,
		}
	}

	// Tier 3: rule cascade, accepted outright at high confidence. The result
	// is remembered for the lower-bar retry at tier 5.
	ruleRes := m.gen.Generate(keyword, category)
	if ruleRes != nil && ruleRes.Confidence >= models.AcceptConfidence {
		m.ruleGenerated.Add(1)
		return models.ResolvedFragment{Fragment: ruleRes.Fragment, Tier: models.TierRule}
	}

	// Tier 4: fuzzy match against static keys and the synonym table.
	if frag, ok := m.fuzzyLookup(category, keyword); ok {
		m.staticHits.Add(1)
		return models.ResolvedFragment{Fragment: frag, Tier: models.TierFuzzy}
	}

	// Tier 5: rule cascade again at the lower confidence bar.
	if ruleRes != nil && ruleRes.Confidence >= models.RetryConfidence {
		m.ruleGenerated.Add(1)
		return models.ResolvedFragment{Fragment: ruleRes.Fragment, Tier: models.TierRule}
	}

	// Tier 6: optional machine translation, reformatted per category.
	if m.translator != nil {
		if translated, err := m.translator.Translate(ctx, keyword); err == nil && translated != "" {
			m.fallbacks.Add(1)
			return models.ResolvedFragment{
				Fragment: mapping.TranslatedFragment(category, translated),
				Tier:     models.TierTranslated,
			}
		}
	}

	// Tier 7: generic deterministic template. Always succeeds.
	m.fallbacks.Add(1)
	return models.ResolvedFragment{
		Fragment: mapping.GenericFragment(category, keyword),
		Tier:     models.TierGeneric,
	}
}

// fuzzyLookup accepts a keyword that is a substring of, or contains, a
// static key, or that the synonym table maps to a static key. Substring
// candidates prefer the longest key so "수영장청소" lands on 수영장 rather
// than a shorter incidental match.
func (m *Mapper) fuzzyLookup(category models.Category, keyword string) (string, bool) {
	if canonical, ok := mapping.Synonym(category, keyword); ok {
		if frag, ok := mapping.Lookup(category, canonical); ok {
			return frag, true
		}
	}

	if utf8.RuneCountInString(keyword) < fuzzyMinRunes {
		return "", false
	}

	var bestKey string
	for _, key := range mapping.Keys(category) {
		if utf8.RuneCountInString(key) < fuzzyMinRunes {
			continue
		}
		if !strings.Contains(keyword, key) && !strings.Contains(key, keyword) {
			continue
		}
		if len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return "", false
	}
	frag, ok := mapping.Lookup(category, bestKey)
	return frag, ok
}

// homeFragment scans the original message for room-specific sub-keywords,
// first scene with a hit wins.
func homeFragment(contextMessage string) string {
	for _, scene := range mapping.HomeScenes {
		for _, kw := range scene.Keywords {
			if strings.Contains(contextMessage, kw) {
				return scene.Fragment
			}
		}
	}
	return mapping.HomeGenericFragment
}

// cacheKey hashes (category, keyword, context prefix). Only a prefix of the
// message participates so long chats do not defeat the cache.
func cacheKey(category models.Category, keyword, contextMessage string) string {
	prefix := contextMessage
	if r := []rune(prefix); len(r) > contextPrefixRunes {
		prefix = string(r[:contextPrefixRunes])
	}
	return memocache.HashKey(string(category), keyword, prefix)
}

// Stats returns the mapper's counters.
func (m *Mapper) Stats() models.MapperStats {
	cs := m.cache.Stats()
	return models.MapperStats{
		Requests:      m.requests.Load(),
		StaticHits:    m.staticHits.Load(),
		RuleGenerated: m.ruleGenerated.Load(),
		Fallbacks:     m.fallbacks.Load(),
		CacheHits:     cs.Hits,
		CacheMisses:   cs.Misses,
	}
}

// Reset clears counters and the resolution cache.
func (m *Mapper) Reset() {
	m.requests.Store(0)
	m.staticHits.Store(0)
	m.ruleGenerated.Store(0)
	m.fallbacks.Store(0)
	m.cache.Clear()
	m.cache.ResetStats()
}
