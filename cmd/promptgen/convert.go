package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haneul-ai/promptgen/pkg/models"
)

func newConvertCmd() *cobra.Command {
	var (
		configPath string
		gender     string
		age        int
		quality    string
		turns      []string
		hints      string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "convert [message]",
		Short: "Convert one chat message into a positive/negative prompt pair",
		Args:  cobra.ExactArgs(1),
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

			opts := models.ConvertOptions{
				Gender:         models.ParseGender(gender),
				Age:            age,
				Quality:        models.ParseQualityLevel(quality),
				RecentTurns:    turns,
				CharacterHints: hints,
			}

			prompt, err := svc.Convert(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(prompt)
			}

			fmt.Printf("Positive: %s\n", prompt.PositivePrompt)
			fmt.Printf("Negative: %s\n", prompt.NegativePrompt)
			fmt.Printf("Score:    %d/100 (filled %d/5, template %s)\n",
				prompt.QualityScore, prompt.Metadata.CategoriesFilled, prompt.Metadata.TemplateUsed)
			if prompt.Metadata.Enhanced {
				fmt.Println("Note:     prompt was auto-repaired")
			}
			if prompt.Metadata.Fallback {
				fmt.Println("Note:     generic fallback prompt")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVar(&gender, "gender", "female", "subject gender (female|male)")
	cmd.Flags().IntVar(&age, "age", 0, "subject age, 0 = unspecified")
	cmd.Flags().StringVar(&quality, "quality", "standard", "quality level (draft|standard|high|premium)")
	cmd.Flags().StringArrayVar(&turns, "context", nil, "recent conversation turn (repeatable)")
	cmd.Flags().StringVar(&hints, "hints", "", "character/relationship hints for extraction")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full result as JSON")
	return cmd
}
