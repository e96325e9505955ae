// Package llm wraps the upstream text-completion service behind small
// interfaces so the pipeline can be tested with fakes.
package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClient sends one system+user instruction pair to a
// text-completion service and returns the raw response text.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// ClientConfig configures the OpenAI-compatible completion client.
type ClientConfig struct {
	APIKey      string
	BaseURL     string // empty = provider default
	Model       string
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int
}

// Client is a CompletionClient backed by an OpenAI-compatible chat API.
type Client struct {
	api *openai.Client
	cfg ClientConfig
}

// NewClient creates a completion client. The API key is required.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("completion client: api key not set")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 12 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 400
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}

	return &Client{api: openai.NewClientWithConfig(apiCfg), cfg: cfg}, nil
}

// Complete sends the instruction pair and returns the first choice's text.
// The call is bounded by the configured timeout; callers treat any error as
// a signal to take their local fallback path.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
