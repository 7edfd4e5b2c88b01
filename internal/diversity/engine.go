package diversity

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

// DefaultHistoryWindow bounds how far back served combinations count as
// "recent" for repetition checks.
const DefaultHistoryWindow = 7 * 24 * time.Hour

// Config scopes an Engine to one user, subject category and grade.
type Config struct {
	UserID   string
	Category string
	Grade    int

	// HistoryWindow defaults to DefaultHistoryWindow when zero.
	HistoryWindow time.Duration
}

// Engine picks context combinations that avoid recent repetition and favor
// unused semantic clusters. Store failures degrade to fewer results and are
// never propagated to callers.
type Engine struct {
	contexts store.ContextRepo
	cfg      Config
	now      func() time.Time
}

// NewEngine creates an Engine for the given user scope.
func NewEngine(contexts store.ContextRepo, cfg Config) *Engine {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	return &Engine{contexts: contexts, cfg: cfg, now: time.Now}
}

// GenerateDiverseContexts produces up to count combinations. Combinations
// whose hash collides with this batch or with the recent history are
// skipped, not replaced, so the result may be shorter than count.
func (e *Engine) GenerateDiverseContexts(ctx context.Context, count int) []Combination {
	families, err := e.contexts.FamiliesFor(ctx, e.cfg.Category, e.cfg.Grade)
	if err != nil {
		warnf("fetch scenario families: %v", err)
		return nil
	}
	if len(families) == 0 {
		return nil
	}

	seen := e.recentHashes(ctx)
	usedClusters := make(map[string]bool)

	var out []Combination
	for i := 0; i < count; i++ {
		family := families[i%len(families)]
		combo, ok := e.buildCombination(ctx, family, usedClusters)
		if !ok {
			continue
		}

		h := combo.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true

		for _, cluster := range combo.Clusters {
			usedClusters[cluster] = true
		}
		out = append(out, combo)
	}
	return out
}

// buildCombination picks one variant per context slot of the family.
// Returns false when a required slot has no variants.
func (e *Engine) buildCombination(ctx context.Context, family store.ScenarioFamilyRecord, usedClusters map[string]bool) (Combination, bool) {
	combo := Combination{
		FamilyID:   family.ID,
		FamilyName: family.Name,
		Values:     make(map[string]string),
		Clusters:   make(map[string]string),
		VariantIDs: make(map[string]int),
	}

	for _, dim := range sortedDimensions(family) {
		variants, err := e.contexts.VariantsFor(ctx, family.ID, dim)
		if err != nil {
			warnf("fetch variants for family %d dimension %s: %v", family.ID, dim, err)
			variants = nil
		}
		if len(variants) == 0 {
			if family.ContextSlots[dim].Required {
				return Combination{}, false
			}
			continue
		}

		chosen := selectDiverseVariant(variants, usedClusters)
		combo.Values[dim] = chosen.Value
		combo.VariantIDs[dim] = chosen.ID
		if chosen.SemanticCluster != "" {
			combo.Clusters[dim] = chosen.SemanticCluster
		}
	}

	if len(combo.Values) == 0 {
		return Combination{}, false
	}
	return combo, true
}

// selectDiverseVariant prefers a variant whose semantic cluster has not yet
// been used in this batch, tie-broken by quality (desc) then usage (asc).
// When every cluster is exhausted it falls back to the least-used,
// highest-quality variant regardless of cluster.
func selectDiverseVariant(variants []store.ContextVariantRecord, usedClusters map[string]bool) store.ContextVariantRecord {
	fresh := make([]store.ContextVariantRecord, 0, len(variants))
	for _, v := range variants {
		if v.SemanticCluster != "" && !usedClusters[v.SemanticCluster] {
			fresh = append(fresh, v)
		}
	}

	if len(fresh) > 0 {
		sort.Slice(fresh, func(i, j int) bool {
			if fresh[i].QualityScore != fresh[j].QualityScore {
				return fresh[i].QualityScore > fresh[j].QualityScore
			}
			if fresh[i].UsageCount != fresh[j].UsageCount {
				return fresh[i].UsageCount < fresh[j].UsageCount
			}
			return fresh[i].Value < fresh[j].Value
		})
		return fresh[0]
	}

	all := make([]store.ContextVariantRecord, len(variants))
	copy(all, variants)
	sort.Slice(all, func(i, j int) bool {
		if all[i].UsageCount != all[j].UsageCount {
			return all[i].UsageCount < all[j].UsageCount
		}
		if all[i].QualityScore != all[j].QualityScore {
			return all[i].QualityScore > all[j].QualityScore
		}
		return all[i].Value < all[j].Value
	})
	return all[0]
}

// RecordContextUsage persists a served combination to the history and bumps
// the chosen variants' usage counters. Best effort: failures are logged and
// swallowed, as stale usage data only degrades future selection quality.
func (e *Engine) RecordContextUsage(ctx context.Context, combo Combination) {
	err := e.contexts.AppendHistory(ctx, store.ContextHistoryRecord{
		UserID:           e.cfg.UserID,
		ScenarioFamilyID: combo.FamilyID,
		Category:         e.cfg.Category,
		Grade:            e.cfg.Grade,
		Combination:      combo.Values,
		CombinationHash:  combo.Hash(),
	})
	if err != nil {
		warnf("record context history: %v", err)
	}

	for _, variantID := range combo.VariantIDs {
		if err := e.contexts.IncrementVariantUsage(ctx, variantID); err != nil {
			warnf("increment variant %d usage: %v", variantID, err)
		}
	}
}

// recentHashes returns the combination hashes served inside the history
// window. Store errors degrade to an empty set.
func (e *Engine) recentHashes(ctx context.Context) map[string]bool {
	since := e.now().Add(-e.cfg.HistoryWindow)
	history, err := e.contexts.HistoryFor(ctx, e.cfg.UserID, e.cfg.Category, e.cfg.Grade, since)
	if err != nil {
		warnf("fetch context history: %v", err)
		return make(map[string]bool)
	}

	seen := make(map[string]bool, len(history))
	for _, h := range history {
		seen[h.CombinationHash] = true
	}
	return seen
}

func sortedDimensions(family store.ScenarioFamilyRecord) []string {
	dims := make([]string, 0, len(family.ContextSlots))
	for dim := range family.ContextSlots {
		dims = append(dims, dim)
	}
	sort.Strings(dims)
	return dims
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: diversity: "+format+"\n", args...)
}
