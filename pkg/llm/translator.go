package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Translator converts a source-language keyword into a short English phrase.
// Absence of a translator is a valid configuration; the mapper skips its
// translation tier in that case.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

const translateSystem = "You translate short Korean phrases into concise English " +
	"phrases suitable for an image-generation prompt. Reply with the translation " +
	"only, no quotes, no explanation."

// CompletionTranslator translates via the completion service, memoizing
// results with a TTL cache since translations of the same keyword are stable.
type CompletionTranslator struct {
	client CompletionClient
	memo   *gocache.Cache
}

// NewCompletionTranslator wraps a completion client as a Translator.
func NewCompletionTranslator(client CompletionClient, ttl time.Duration) *CompletionTranslator {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CompletionTranslator{
		client: client,
		memo:   gocache.New(ttl, 2*ttl),
	}
}

// Translate returns the English rendering of text.
func (t *CompletionTranslator) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok := t.memo.Get(text); ok {
		return cached.(string), nil
	}

	out, err := t.client.Complete(ctx, translateSystem, text)
	if err != nil {
		return "", fmt.Errorf("translate %q: %w", text, err)
	}
	translated := strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`))
	if translated == "" {
		return "", fmt.Errorf("translate %q: empty response", text)
	}

	t.memo.SetDefault(text, translated)
	return translated, nil
}

// NoopTranslator is the disabled-translation configuration.
type NoopTranslator struct{}

// Translate always reports that translation is unavailable.
func (NoopTranslator) Translate(context.Context, string) (string, error) {
	return "", fmt.Errorf("translation disabled")
}
