package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lernzeit/lernzeit/internal/rotation"
	"github.com/spf13/cobra"
)

var contextsCmd = &cobra.Command{
	Use:   "contexts",
	Short: "Preview rotated context combinations for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		category, _ := cmd.Flags().GetString("category")
		grade, _ := cmd.Flags().GetInt("grade")
		count, _ := cmd.Flags().GetInt("count")
		record, _ := cmd.Flags().GetBool("record")
		showPrompt, _ := cmd.Flags().GetBool("prompt")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := rotation.NewEngine(st.ContextRepo(), rotation.Config{
			UserID:   userID,
			Category: category,
			Grade:    grade,
		})

		combos := engine.GenerateRotatedContexts(cmd.Context(), count)
		if len(combos) == 0 {
			fmt.Println("No scenario families available for this category and grade.")
			fmt.Println("Seed context data first: lernzeit reset --seed")
			return nil
		}

		for i, combo := range combos {
			fmt.Printf("%2d. %s\n", i+1, combo.FamilyName)
			dims := make([]string, 0, len(combo.Values))
			for dim := range combo.Values {
				dims = append(dims, dim)
			}
			sort.Strings(dims)
			for _, dim := range dims {
				fmt.Printf("      %-12s %s\n", dim+":", combo.Values[dim])
			}
			if record {
				engine.RecordContextUsage(cmd.Context(), combo)
			}
		}

		if showPrompt {
			fmt.Println()
			fmt.Println(strings.Repeat("─", 60))
			fmt.Println(rotation.PromptInstructions(combos))
		}
		return nil
	},
}

func init() {
	contextsCmd.Flags().StringP("user", "u", "local", "User ID")
	contextsCmd.Flags().StringP("category", "c", "Zahlen & Operationen", "Scenario category")
	contextsCmd.Flags().IntP("grade", "g", 3, "Grade (1-10)")
	contextsCmd.Flags().IntP("count", "n", 3, "Number of combinations")
	contextsCmd.Flags().Bool("record", false, "Persist the served combinations to the usage history")
	contextsCmd.Flags().Bool("prompt", false, "Print the generation prompt block for the combinations")
}
