package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haneul-ai/promptgen/pkg/models"
	"github.com/haneul-ai/promptgen/pkg/rules"
)

func newRulesCmd() *cobra.Command {
	var (
		examples bool
		coverage bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect the pattern-rule cascade",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := rules.New()

			if coverage {
				cov := gen.Coverage()
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Rules:\t%d\n", cov.TotalRules)
				fmt.Fprintf(w, "Examples:\t%d\n", cov.TotalExamples)
				fmt.Fprintf(w, "Covered:\t%d (%.1f%%)\n", cov.CoveredExamples, cov.CoveragePercent)
				fmt.Fprintln(w)
				fmt.Fprintln(w, "RULE\tEXAMPLE HITS")
				for desc, hits := range cov.RuleHits {
					fmt.Fprintf(w, "%s\t%d\n", desc, hits)
				}
				return w.Flush()
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			if examples {
				fmt.Fprintln(w, "#\tRULE\tCONF\tEXAMPLES")
			} else {
				fmt.Fprintln(w, "#\tRULE\tCONF\tPATTERN")
			}
			for _, c := range models.Categories() {
				for i, r := range gen.PatternsByCategory(c) {
					if examples {
						fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n",
							i+1, r.Description, r.Confidence, strings.Join(gen.Examples(r.Description), ", "))
					} else {
						fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n",
							i+1, r.Description, r.Confidence, r.Pattern)
					}
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&examples, "examples", false, "show documented examples per rule")
	cmd.Flags().BoolVar(&coverage, "coverage", false, "show example coverage statistics")
	return cmd
}
