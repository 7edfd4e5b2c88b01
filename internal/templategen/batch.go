package templategen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/lernzeit/lernzeit/internal/store"
)

// BatchConfig controls a batch-generation run.
type BatchConfig struct {
	// MaxConcurrent bounds in-flight LLM requests. Defaults to 3.
	MaxConcurrent int

	// BatchDelay is the pause between concurrent chunks, giving the
	// provider's rate limiter room to breathe. Defaults to 1s.
	BatchDelay time.Duration

	// MaxGaps caps how many gaps one run targets. 0 targets all.
	MaxGaps int
}

func (c BatchConfig) withDefaults() BatchConfig {
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = 3
	}
	if c.BatchDelay <= 0 {
		c.BatchDelay = time.Second
	}
	return c
}

// RunSummary reports the outcome of one batch-generation run.
type RunSummary struct {
	RunID        string
	GapsTargeted int
	Generated    int
	Rejected     int
	Failed       int
}

// BatchGenerator walks the coverage gap list (highest priority first) and
// fills each gap with a freshly generated, validated template.
type BatchGenerator struct {
	analyzer  *coverage.Analyzer
	generator Generator
	templates store.TemplateRepo
	runs      store.GenerationRepo
	cfg       BatchConfig

	newRunID func() string
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewBatch creates a BatchGenerator.
func NewBatch(analyzer *coverage.Analyzer, generator Generator, templates store.TemplateRepo, runs store.GenerationRepo, cfg BatchConfig) *BatchGenerator {
	return &BatchGenerator{
		analyzer:  analyzer,
		generator: generator,
		templates: templates,
		runs:      runs,
		cfg:       cfg.withDefaults(),
		newRunID:  uuid.NewString,
		sleep:     sleepCtx,
	}
}

// Run analyzes coverage and generates one template per targeted gap.
// Individual generation failures are counted, not propagated; Run only
// errors when the coverage analysis itself fails or the context ends.
func (b *BatchGenerator) Run(ctx context.Context) (RunSummary, error) {
	cov, err := b.analyzer.Analyze(ctx, nil)
	if err != nil {
		return RunSummary{}, fmt.Errorf("analyze coverage: %w", err)
	}

	gaps := cov.Gaps
	if b.cfg.MaxGaps > 0 && len(gaps) > b.cfg.MaxGaps {
		gaps = gaps[:b.cfg.MaxGaps]
	}

	summary := RunSummary{RunID: b.newRunID(), GapsTargeted: len(gaps)}

	runRow, err := b.runs.StartRun(ctx, summary.RunID, len(gaps))
	if err != nil {
		warnf("record generation run: %v", err)
		runRow = 0
	}

	var generated, rejected, failed atomic.Int64

	for start := 0; start < len(gaps); start += b.cfg.MaxConcurrent {
		end := start + b.cfg.MaxConcurrent
		if end > len(gaps) {
			end = len(gaps)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, gap := range gaps[start:end] {
			g.Go(func() error {
				tmpl, err := b.generator.Generate(gctx, GenerateInput{Gap: gap})
				if err != nil {
					var rej *RejectionError
					if errors.As(err, &rej) {
						rejected.Add(1)
						return nil
					}
					if gctx.Err() != nil {
						return gctx.Err()
					}
					warnf("generate for gap %d/%s/%s: %v", gap.Grade, gap.Quarter, gap.Domain, err)
					failed.Add(1)
					return nil
				}

				if _, err := b.templates.Insert(gctx, tmpl); err != nil {
					warnf("store generated template: %v", err)
					failed.Add(1)
					return nil
				}
				generated.Add(1)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			break
		}

		if end < len(gaps) {
			if err := b.sleep(ctx, b.cfg.BatchDelay); err != nil {
				break
			}
		}
	}

	summary.Generated = int(generated.Load())
	summary.Rejected = int(rejected.Load())
	summary.Failed = int(failed.Load())

	if runRow != 0 {
		if err := b.runs.FinishRun(ctx, runRow, summary.Generated, summary.Rejected, summary.Failed); err != nil {
			warnf("finish generation run: %v", err)
		}
	}

	return summary, ctx.Err()
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: templategen: "+format+"\n", args...)
}
