package cmd

import (
	"fmt"
	"strings"

	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/spf13/cobra"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Analyze template bank coverage against the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		target, _ := cmd.Flags().GetInt("target")
		limit, _ := cmd.Flags().GetInt("gaps")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		analyzer := coverage.NewAnalyzer(st.TemplateRepo(), target)
		cov, err := analyzer.Analyze(cmd.Context(), nil)
		if err != nil {
			return fmt.Errorf("analyze coverage: %w", err)
		}

		fmt.Printf("Coverage: %.1f%% (%d of %d combinations)\n",
			cov.CoveragePercentage, cov.CoveredCombinations, cov.TotalCombinations)

		if len(cov.Gaps) > 0 {
			fmt.Println()
			fmt.Printf("Top gaps (%d total)\n", len(cov.Gaps))
			fmt.Println(strings.Repeat("─", 90))
			fmt.Printf("%-8s  %-3s  %-26s  %-8s  %-16s  %-7s  %s\n",
				"Priority", "Gr", "Domain", "Quarter", "Type", "Have", "Target")
			fmt.Println(strings.Repeat("─", 90))
			for i, g := range cov.Gaps {
				if i >= limit {
					break
				}
				fmt.Printf("%-8s  %-3d  %-26s  %-8s  %-16s  %-7d  %d\n",
					g.Priority, g.Grade, g.Domain, g.Quarter, g.QuestionType, g.CurrentCount, g.TargetCount)
			}
		}

		if len(cov.Recommendations) > 0 {
			fmt.Println()
			fmt.Println("Recommendations")
			for _, r := range cov.Recommendations {
				fmt.Println(" -", r)
			}
		}
		return nil
	},
}

func init() {
	coverageCmd.Flags().Int("target", 0, "Templates required per curriculum cell (0 = default)")
	coverageCmd.Flags().Int("gaps", 20, "Number of gaps to list")
}
