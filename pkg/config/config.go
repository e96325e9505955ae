package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all promptgen configuration.
type Config struct {
	DBPath      string            `yaml:"db_path"` // history database, empty disables recording
	Provider    ProviderConfig    `yaml:"provider"`
	Translation TranslationConfig `yaml:"translation"`
	Cache       CacheConfig       `yaml:"cache"`
	Batch       BatchConfig       `yaml:"batch"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
}

// ProviderConfig defines the upstream text-completion provider.
type ProviderConfig struct {
	URL         string        `yaml:"url"` // empty = provider default
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float32       `yaml:"temperature"`
}

// TranslationConfig controls the optional translation tier.
type TranslationConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"` // translation memoization TTL
}

// CacheConfig sizes the bounded in-process caches.
type CacheConfig struct {
	ExtractorSize int `yaml:"extractor_size"`
	MapperSize    int `yaml:"mapper_size"`
}

// BatchConfig controls batch conversion.
type BatchConfig struct {
	MaxSize int           `yaml:"max_size"`
	Delay   time.Duration `yaml:"delay"` // fixed inter-call delay
}

// PipelineConfig controls conversion behavior.
type PipelineConfig struct {
	DefaultQuality  string `yaml:"default_quality"`
	MaxMessageRunes int    `yaml:"max_message_runes"`
	PreEnhance      bool   `yaml:"pre_enhance"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			Model:       "gpt-4o-mini",
			Timeout:     12 * time.Second,
			Temperature: 0.2,
		},
		Translation: TranslationConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		Cache: CacheConfig{
			ExtractorSize: 256,
			MapperSize:    512,
		},
		Batch: BatchConfig{
			MaxSize: 10,
			Delay:   1500 * time.Millisecond,
		},
		Pipeline: PipelineConfig{
			DefaultQuality:  "standard",
			MaxMessageRunes: 500,
			PreEnhance:      true,
		},
	}
}

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
