package cmd

import (
	"github.com/lernzeit/lernzeit/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lernzeit",
	Short: "Template selection engine for learning sessions",
	Long:  "Lernzeit — backend engine that assembles varied, curriculum-aligned math sessions for grades 1-10 and fills coverage gaps with AI-generated question templates.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LERNZEIT_DB env var)")

	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(contextsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LERNZEIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
