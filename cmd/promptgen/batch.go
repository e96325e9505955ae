package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haneul-ai/promptgen/pkg/models"
)

func newBatchCmd() *cobra.Command {
	var (
		configPath string
		gender     string
		quality    string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Convert a newline-delimited file of messages, one prompt pair per line",
		Long: "Reads one message per line (use \"-\" for stdin), converts them " +
			"sequentially with the configured inter-call delay, and prints the results. " +
			"Messages beyond the configured batch cap are dropped with a warning.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			svc, cleanup, err := newService(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			messages, err := readMessages(args[0])
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				fmt.Println("No messages to convert.")
				return nil
			}

			opts := models.ConvertOptions{
				Gender:  models.ParseGender(gender),
				Quality: models.ParseQualityLevel(quality),
			}

			results, err := svc.ConvertBatch(cmd.Context(), messages, opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for i, p := range results {
				fmt.Printf("--- %d (score %d) ---\n", i+1, p.QualityScore)
				fmt.Printf("Positive: %s\n", p.PositivePrompt)
				fmt.Printf("Negative: %s\n", p.NegativePrompt)
			}
			fmt.Printf("Converted %d of %d messages.\n", len(results), len(messages))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&gender, "gender", "female", "subject gender (female|male)")
	cmd.Flags().StringVar(&quality, "quality", "standard", "quality level (draft|standard|high|premium)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as a JSON array")
	return cmd
}

// readMessages loads non-blank lines from a file or stdin.
func readMessages(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var messages []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return messages, nil
}
