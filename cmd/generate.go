package cmd

import (
	"fmt"

	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/lernzeit/lernzeit/internal/llm"
	"github.com/lernzeit/lernzeit/internal/templategen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate templates for the largest coverage gaps",
	RunE: func(cmd *cobra.Command, args []string) error {
		maxGaps, _ := cmd.Flags().GetInt("max-gaps")
		concurrent, _ := cmd.Flags().GetInt("concurrency")
		target, _ := cmd.Flags().GetInt("target")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		eventRepo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM configuration: %w", err)
		}
		provider, err := llm.NewProvider(cmd.Context(), cfg, eventRepo)
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		analyzer := coverage.NewAnalyzer(st.TemplateRepo(), target)
		generator := templategen.New(provider, templategen.DefaultConfig())
		batch := templategen.NewBatch(analyzer, generator, st.TemplateRepo(), st.GenerationRepo(), templategen.BatchConfig{
			MaxConcurrent: concurrent,
			MaxGaps:       maxGaps,
		})

		fmt.Printf("Generating with %s (%s)...\n", cfg.Provider, provider.ModelID())
		summary, err := batch.Run(cmd.Context())
		if err != nil {
			return fmt.Errorf("batch generation: %w", err)
		}

		fmt.Printf("Run %s: %d gaps targeted\n", summary.RunID, summary.GapsTargeted)
		fmt.Printf("  generated: %d\n  rejected:  %d\n  failed:    %d\n",
			summary.Generated, summary.Rejected, summary.Failed)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("max-gaps", 10, "Maximum number of gaps to fill in one run")
	generateCmd.Flags().Int("concurrency", 0, "Concurrent generations (0 = default)")
	generateCmd.Flags().Int("target", 0, "Templates required per curriculum cell (0 = default)")
}
