package cmd

import (
	"fmt"
	"strconv"

	"github.com/lernzeit/lernzeit/internal/rewards"
	"github.com/spf13/cobra"
)

var answerCmd = &cobra.Command{
	Use:   "answer <template-id>",
	Short: "Record an answer and award screen time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		templateID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid template ID %q: %w", args[0], err)
		}
		userID, _ := cmd.Flags().GetString("user")
		sessionID, _ := cmd.Flags().GetString("session")
		grade, _ := cmd.Flags().GetInt("grade")
		correct, _ := cmd.Flags().GetBool("correct")
		streak, _ := cmd.Flags().GetInt("streak")
		rating, _ := cmd.Flags().GetInt("rating")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		ctx := cmd.Context()

		if err := st.TemplateRepo().RecordAnswer(ctx, templateID, correct); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		if rating > 0 {
			if err := st.TemplateRepo().AddRating(ctx, templateID, rating); err != nil {
				return fmt.Errorf("add rating: %w", err)
			}
		}

		if !correct {
			fmt.Println("Recorded. No screen time for a wrong answer.")
			return nil
		}

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		svc := rewards.NewService(eventRepo)
		award := svc.AwardAnswer(ctx, userID, sessionID, grade, streak)
		fmt.Printf("Earned %.1f minutes (%s)\n", award.Minutes, award.Reason)
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Complete a session and award the accuracy bonus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]
		userID, _ := cmd.Flags().GetString("user")
		correct, _ := cmd.Flags().GetInt("correct")
		total, _ := cmd.Flags().GetInt("total")
		duration, _ := cmd.Flags().GetInt("duration")

		if total <= 0 {
			return fmt.Errorf("--total must be positive")
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		ctx := cmd.Context()

		if err := st.SessionRepo().Complete(ctx, sessionID, correct, total, duration); err != nil {
			return fmt.Errorf("complete session: %w", err)
		}

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}
		svc := rewards.NewService(eventRepo)
		accuracy := float64(correct) / float64(total)
		if award := svc.AwardSession(ctx, userID, sessionID, accuracy); award != nil {
			fmt.Printf("Session bonus: %.0f minutes (%s)\n", award.Minutes, award.Reason)
		} else {
			fmt.Println("Session complete. Accuracy too low for a bonus.")
		}
		return nil
	},
}

func init() {
	answerCmd.Flags().StringP("user", "u", "local", "User ID")
	answerCmd.Flags().String("session", "", "Session ID the answer belongs to")
	answerCmd.Flags().IntP("grade", "g", 3, "Grade (1-10)")
	answerCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	answerCmd.Flags().Int("streak", 0, "Current streak of correct answers")
	answerCmd.Flags().Int("rating", 0, "Optional 1-5 rating for the template")

	completeCmd.Flags().StringP("user", "u", "local", "User ID")
	completeCmd.Flags().Int("correct", 0, "Correct answers in the session")
	completeCmd.Flags().Int("total", 0, "Total questions in the session")
	completeCmd.Flags().Int("duration", 0, "Session duration in seconds")
}
