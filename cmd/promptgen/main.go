package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/haneul-ai/promptgen/pkg/config"
	"github.com/haneul-ai/promptgen/pkg/convert"
	"github.com/haneul-ai/promptgen/pkg/history"
	"github.com/haneul-ai/promptgen/pkg/llm"
)

var version = "dev"

func main() {
	// .env is optional; existing environment variables win.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "promptgen",
		Short:   "Promptgen — Korean chat to image-generation prompt pipeline",
		Version: version,
	}

	root.AddCommand(
		newConvertCmd(),
		newBatchCmd(),
		newRulesCmd(),
		newStatsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, or falls back to defaults when no path
// was given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newService wires a conversion service from configuration. The returned
// cleanup closes the history store when one was opened.
func newService(cfg *config.Config) (*convert.Service, func(), error) {
	var client llm.CompletionClient
	if cfg.Provider.APIKey != "" {
		c, err := llm.NewClient(llm.ClientConfig{
			APIKey:      cfg.Provider.APIKey,
			BaseURL:     cfg.Provider.URL,
			Model:       cfg.Provider.Model,
			Timeout:     cfg.Provider.Timeout,
			Temperature: cfg.Provider.Temperature,
		})
		if err != nil {
			return nil, nil, err
		}
		client = c
	}

	var translator llm.Translator
	if cfg.Translation.Enabled && client != nil {
		translator = llm.NewCompletionTranslator(client, cfg.Translation.TTL)
	}

	cleanup := func() {}
	var recorder convert.Recorder
	if cfg.DBPath != "" {
		store, err := history.New(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		recorder = store
		cleanup = func() { store.Close() }
	}

	return convert.New(cfg, client, translator, recorder), cleanup, nil
}
