package cmd

import (
	"fmt"
	"strings"

	"github.com/lernzeit/lernzeit/internal/llm"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage and earned screen-time minutes",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		ctx := cmd.Context()

		minutes, err := eventRepo.TotalRewardMinutes(ctx, userID)
		if err != nil {
			return fmt.Errorf("query reward minutes: %w", err)
		}
		fmt.Printf("Earned screen time for %s: %.1f minutes\n", userID, minutes)

		usage, err := eventRepo.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query LLM usage: %w", err)
		}
		if len(usage) == 0 {
			fmt.Println("\nNo LLM usage recorded yet.")
			return nil
		}

		fmt.Println()
		fmt.Println("LLM Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %8s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Requests", "Input", "Output", "Total", "Failed")
		fmt.Println(strings.Repeat("─", 72))

		var totalReqs, totalIn, totalOut int
		for _, u := range usage {
			total := u.InputTokens + u.OutputTokens
			fmt.Printf("%-16s  %8d  %10d  %10d  %10d  %8d\n",
				u.Purpose, u.Requests, u.InputTokens, u.OutputTokens, total, u.Failures)
			totalReqs += u.Requests
			totalIn += u.InputTokens
			totalOut += u.OutputTokens
		}
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %8d  %10d  %10d  %10d\n",
			"TOTAL", totalReqs, totalIn, totalOut, totalIn+totalOut)

		// Cost is estimated against the currently configured model; per-model
		// token counts are not tracked in the event log.
		cfg := llm.ConfigFromEnv()
		if model := cfg.ModelID(); model != "" {
			if cost := llm.LookupCost(model); cost != nil {
				fmt.Printf("\nEstimated cost at %s pricing: %s\n",
					model, formatCost(cost.Cost(totalIn, totalOut)))
			}
		}
		return nil
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	statsCmd.Flags().StringP("user", "u", "local", "User ID")
}
