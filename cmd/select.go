package cmd

import (
	"fmt"
	"strings"

	"github.com/lernzeit/lernzeit/internal/selector"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Assemble a learning session for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		grade, _ := cmd.Flags().GetInt("grade")
		quarter, _ := cmd.Flags().GetString("quarter")
		count, _ := cmd.Flags().GetInt("count")
		domains, _ := cmd.Flags().GetStringSlice("domain")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		types, _ := cmd.Flags().GetStringSlice("type")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sel := selector.New(st.TemplateRepo(), st.FeedbackRepo(), st.SessionRepo(), 0)
		result, err := sel.SelectTemplates(cmd.Context(), selector.Request{
			UserID:        userID,
			Grade:         grade,
			Quarter:       quarter,
			Count:         count,
			Domains:       domains,
			Difficulty:    difficulty,
			QuestionTypes: types,
		})
		if err != nil {
			return fmt.Errorf("select templates: %w", err)
		}

		fmt.Printf("Session %s (%s)\n", result.SessionID, result.Source)
		fmt.Println(strings.Repeat("─", 80))
		for i, t := range result.Templates {
			fmt.Printf("%2d. [%s / %s / %s] %s\n", i+1, t.Domain, t.Difficulty, t.QuestionType, t.Prompt)
		}
		fmt.Println(strings.Repeat("─", 80))

		m := result.Metrics
		fmt.Printf("Pool: %d templates  Domains: %d  Avg plays: %.1f\n",
			m.TotalAvailable, m.DomainCoverage, m.AvgUsageCount)
		fmt.Printf("Diversity: %.2f  Anti-repetition: %.2f\n",
			m.DiversityScore, m.AntiRepetitionScore)
		return nil
	},
}

func init() {
	selectCmd.Flags().StringP("user", "u", "local", "User ID")
	selectCmd.Flags().IntP("grade", "g", 3, "Grade (1-10)")
	selectCmd.Flags().StringP("quarter", "q", "ANY", "Quarter (Q1-Q4 or ANY)")
	selectCmd.Flags().IntP("count", "n", 5, "Number of templates")
	selectCmd.Flags().StringSlice("domain", nil, "Restrict to curriculum domains")
	selectCmd.Flags().String("difficulty", "", "Restrict to a difficulty (AFB I, AFB II, AFB III)")
	selectCmd.Flags().StringSlice("type", nil, "Restrict to question types")
}
