package cmd

import (
	"fmt"
	"os"

	"github.com/lernzeit/lernzeit/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the database, optionally seeding scenario data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		seed, _ := cmd.Flags().GetBool("seed")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); err == nil {
			if !force {
				return fmt.Errorf("refusing to delete %s without --force", dbPath)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("delete database: %w", err)
			}
			fmt.Println("Deleted", dbPath)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		fmt.Println("Created fresh database at", dbPath)

		if seed {
			n, err := seedScenarios(cmd.Context(), st.ContextRepo())
			if err != nil {
				return fmt.Errorf("seed scenarios: %w", err)
			}
			fmt.Printf("Seeded %d scenario families\n", n)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Delete an existing database without asking")
	resetCmd.Flags().Bool("seed", false, "Seed German scenario families and context variants")
}
