package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haneul-ai/promptgen/pkg/history"
)

func newStatsCmd() *cobra.Command {
	var (
		configPath string
		recent     int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show conversion history statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cfg.DBPath == "" {
				return fmt.Errorf("history is disabled: set db_path in the config file")
			}

			store, err := history.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()

			if recent > 0 {
				records, err := store.Recent(ctx, recent)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Println("No conversions recorded.")
					return nil
				}
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "TIME\tID\tGENDER\tQUALITY\tSCORE\tSOURCE\tFLAGS")
				for _, r := range records {
					flags := "-"
					switch {
					case r.Fallback && r.Enhanced:
						flags = "fallback,enhanced"
					case r.Fallback:
						flags = "fallback"
					case r.Enhanced:
						flags = "enhanced"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
						r.CreatedAt.Format("2006-01-02T15:04:05"), r.ID, r.Gender, r.Quality, r.QualityScore, r.Source, flags)
				}
				return w.Flush()
			}

			summaries, err := store.Summary(ctx)
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				fmt.Println("No conversions recorded.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "QUALITY\tCONVERSIONS\tAVG SCORE\tFALLBACKS\tENHANCED")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%d\n",
					s.Quality, s.Conversions, s.AvgScore, s.Fallbacks, s.Enhanced)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.Flags().IntVar(&recent, "recent", 0, "list the N most recent conversions instead of the summary")
	return cmd
}
