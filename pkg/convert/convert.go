// Package convert orchestrates the full message-to-prompt pipeline:
// input validation, keyword extraction, per-category mapping, assembly,
// policy validation with auto-repair, and the generic fallback that keeps
// the never-fail contract for accepted input.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/haneul-ai/promptgen/pkg/assemble"
	"github.com/haneul-ai/promptgen/pkg/config"
	"github.com/haneul-ai/promptgen/pkg/extract"
	"github.com/haneul-ai/promptgen/pkg/history"
	"github.com/haneul-ai/promptgen/pkg/llm"
	"github.com/haneul-ai/promptgen/pkg/mapper"
	"github.com/haneul-ai/promptgen/pkg/memocache"
	"github.com/haneul-ai/promptgen/pkg/models"
	"github.com/haneul-ai/promptgen/pkg/rules"
	"github.com/haneul-ai/promptgen/pkg/validate"
)

// Input validation failures are surfaced to the caller; everything after
// acceptance degrades instead of failing.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message too long")
)

// Recorder receives completed conversions. history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, rec history.Record) error
}

// Service is the conversion pipeline. Construct with New; the zero value is
// not usable.
type Service struct {
	cfg       *config.Config
	extractor *extract.Extractor
	mapper    *mapper.Mapper
	assembler *assemble.Assembler
	checker   *validate.Checker
	recorder  Recorder      // nil disables history recording
	limiter   *rate.Limiter // paces outbound batch items

	totalRequests atomic.Int64
	rejected      atomic.Int64
	fallbacks     atomic.Int64
	enhanced      atomic.Int64
	batchDropped  atomic.Int64
}

// New wires the pipeline from configuration. client and translator may be
// nil: extraction then degrades to local tables and the translation tier is
// skipped. recorder may be nil to disable history.
func New(cfg *config.Config, client llm.CompletionClient, translator llm.Translator, recorder Recorder) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	delay := cfg.Batch.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	return &Service{
		cfg:       cfg,
		extractor: extract.New(client, cfg.Cache.ExtractorSize),
		mapper:    mapper.New(rules.New(), translator, cfg.Cache.MapperSize),
		assembler: assemble.New(),
		checker:   validate.New(),
		recorder:  recorder,
		limiter:   rate.NewLimiter(rate.Every(delay), 1),
	}
}

// Convert turns one message into a prompt pair. Invalid input is rejected
// with an error before extraction; once accepted, a usable GeneratedPrompt
// always comes back, degrading through repair and fallback rather than
// failing.
func (s *Service) Convert(ctx context.Context, message string, opts models.ConvertOptions) (models.GeneratedPrompt, error) {
	s.totalRequests.Add(1)
	opts = opts.Normalized()

	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		s.rejected.Add(1)
		return models.GeneratedPrompt{}, ErrEmptyMessage
	}
	if max := s.cfg.Pipeline.MaxMessageRunes; max > 0 && utf8.RuneCountInString(trimmed) > max {
		s.rejected.Add(1)
		return models.GeneratedPrompt{}, fmt.Errorf("%w: %d runes, limit %d", ErrMessageTooLong, utf8.RuneCountInString(trimmed), max)
	}

	prompt, source := s.generate(ctx, trimmed, opts)

	verdict := s.checker.Check(prompt)
	switch {
	case verdict.Valid:
	case verdict.Repaired != nil:
		prompt = *verdict.Repaired
		prompt.Metadata.Enhanced = true
		s.enhanced.Add(1)
		log.Printf("[convert] prompt repaired: %s", strings.Join(verdict.Issues, "; "))
	default:
		log.Printf("[convert] prompt unrepairable, using fallback: %s", strings.Join(verdict.Issues, "; "))
		prompt = s.fallbackPrompt(opts)
	}

	prompt.Metadata.ID = uuid.NewString()
	s.record(ctx, trimmed, prompt, source, opts)
	return prompt, nil
}

// ConvertBatch converts messages strictly sequentially with a fixed
// inter-call delay. Messages beyond the configured cap are dropped with a
// warning; individually rejected messages are logged and skipped so one bad
// item does not sink the batch.
func (s *Service) ConvertBatch(ctx context.Context, messages []string, opts models.ConvertOptions) ([]models.GeneratedPrompt, error) {
	if max := s.cfg.Batch.MaxSize; max > 0 && len(messages) > max {
		dropped := len(messages) - max
		s.batchDropped.Add(int64(dropped))
		log.Printf("[convert] batch size %d exceeds cap %d, dropping %d messages", len(messages), max, dropped)
		messages = messages[:max]
	}

	results := make([]models.GeneratedPrompt, 0, len(messages))
	for i, msg := range messages {
		if err := s.limiter.Wait(ctx); err != nil {
			return results, fmt.Errorf("batch paused at item %d: %w", i, err)
		}
		prompt, err := s.Convert(ctx, msg, opts)
		if err != nil {
			log.Printf("[convert] batch item %d rejected: %v", i, err)
			continue
		}
		results = append(results, prompt)
	}
	return results, nil
}

// generate runs extraction, mapping, and assembly. A panic anywhere in the
// pipeline is converted into the deterministic fallback prompt; accepted
// input never surfaces an error.
func (s *Service) generate(ctx context.Context, message string, opts models.ConvertOptions) (prompt models.GeneratedPrompt, source models.ExtractionSource) {
	source = models.SourceLocal
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[convert] pipeline panic recovered: %v", r)
			prompt = s.fallbackPrompt(opts)
		}
	}()

	kws := s.extractor.Extract(ctx, s.extractionInput(message, opts), opts.RecentTurns)
	source = kws.Source

	resolved := make(map[models.Category]models.ResolvedFragment, 5)
	for _, c := range models.Categories() {
		resolved[c] = s.mapper.Resolve(ctx, kws.Keyword(c), c, message)
	}

	ps := assemble.NewPromptSet(opts, resolved)
	return s.assembler.Assemble(ps, kws, opts), source
}

// extractionInput optionally annotates the message with the caller's
// character hints. The annotation feeds only the extractor; mapping and
// assembly always see the original message.
func (s *Service) extractionInput(message string, opts models.ConvertOptions) string {
	if !s.cfg.Pipeline.PreEnhance || strings.TrimSpace(opts.CharacterHints) == "" {
		return message
	}
	return fmt.Sprintf("%s\n[참고: %s]", message, strings.TrimSpace(opts.CharacterHints))
}

// fallbackPrompt builds the deterministic prompt used when the pipeline
// cannot produce anything usable: fixed subject plus the calm per-category
// defaults.
func (s *Service) fallbackPrompt(opts models.ConvertOptions) models.GeneratedPrompt {
	s.fallbacks.Add(1)

	resolved := make(map[models.Category]models.ResolvedFragment, 5)
	ps := assemble.NewPromptSet(opts, resolved) // empty map fills every slot with defaults

	prompt := s.assembler.Assemble(ps, models.NewDefaultKeywordSet(models.SourceLocal), opts)
	prompt.Metadata.Fallback = true
	return prompt
}

// record writes the conversion to history when a recorder is configured.
// Recording failures are logged, never surfaced.
func (s *Service) record(ctx context.Context, message string, prompt models.GeneratedPrompt, source models.ExtractionSource, opts models.ConvertOptions) {
	if s.recorder == nil {
		return
	}
	rec := history.Record{
		ID:           prompt.Metadata.ID,
		MessageHash:  memocache.HashKey(message),
		Gender:       string(opts.Gender),
		Quality:      string(opts.Quality),
		QualityScore: prompt.QualityScore,
		Source:       string(source),
		Fallback:     prompt.Metadata.Fallback,
		Enhanced:     prompt.Metadata.Enhanced,
		CreatedAt:    prompt.Metadata.GeneratedAt,
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		log.Printf("[convert] history record failed: %v", err)
	}
}

// Stats returns the process-wide statistics snapshot.
func (s *Service) Stats() models.ServiceStats {
	ext := s.extractor.Stats()
	mp := s.mapper.Stats()

	stats := models.ServiceStats{
		TotalRequests: s.totalRequests.Load(),
		Rejected:      s.rejected.Load(),
		Fallbacks:     s.fallbacks.Load(),
		Enhanced:      s.enhanced.Load(),
		BatchDropped:  s.batchDropped.Load(),
		Extractor:     ext,
		Mapper:        mp,
	}

	if lookups := ext.CacheHits + ext.CacheMisses + mp.CacheHits + mp.CacheMisses; lookups > 0 {
		stats.CacheHitRate = float64(ext.CacheHits+mp.CacheHits) / float64(lookups)
	}
	if mp.Requests > 0 {
		stats.StaticHitRate = float64(mp.StaticHits) / float64(mp.Requests)
		stats.RuleHitRate = float64(mp.RuleGenerated) / float64(mp.Requests)
		// Coverage counts every resolution that avoided the translated/generic tail.
		stats.CoveragePercent = float64(mp.StaticHits+mp.RuleGenerated) / float64(mp.Requests) * 100
	}
	return stats
}

// Reset zeroes all counters and clears the extractor and mapper caches.
func (s *Service) Reset() {
	s.totalRequests.Store(0)
	s.rejected.Store(0)
	s.fallbacks.Store(0)
	s.enhanced.Store(0)
	s.batchDropped.Store(0)
	s.extractor.Reset()
	s.mapper.Reset()
}
