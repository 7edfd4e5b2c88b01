package rotation

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lernzeit/lernzeit/internal/diversity"
	"github.com/lernzeit/lernzeit/internal/store"
)

const (
	// DefaultHistoryWindow is how far back the user pool looks when it is
	// first built.
	DefaultHistoryWindow = 14 * 24 * time.Hour

	// DefaultPoolTTL is how long a built pool stays valid before it is
	// rebuilt from persisted history.
	DefaultPoolTTL = 30 * time.Minute

	// candidatesPerFamily bounds the random combinations sampled from each
	// scenario family when building the candidate set.
	candidatesPerFamily = 20

	// fallbackDraws is how many diverse combinations the fallback path
	// draws per slot before giving up on finding a non-banned one.
	fallbackDraws = 3
)

// Config scopes an Engine to one user, subject category and grade.
type Config struct {
	UserID   string
	Category string
	Grade    int

	// HistoryWindow defaults to DefaultHistoryWindow when zero.
	HistoryWindow time.Duration

	// PoolTTL defaults to DefaultPoolTTL when zero.
	PoolTTL time.Duration
}

// Engine layers usage-aware rotation on top of the diversity engine: it
// tracks which contexts the user has seen, prefers familiar-but-not-worn
// scenarios, bans overused ones, and picks per slot via weighted
// strategies. Store failures degrade to fewer results, never to errors.
type Engine struct {
	contexts  store.ContextRepo
	diversity *diversity.Engine
	cfg       Config

	pool    *Pool
	builtAt time.Time

	now       func() time.Time
	randFloat func() float64
	randIntN  func(n int) int
}

// NewEngine creates a rotation engine for the given user scope.
func NewEngine(contexts store.ContextRepo, cfg Config) *Engine {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	if cfg.PoolTTL <= 0 {
		cfg.PoolTTL = DefaultPoolTTL
	}
	return &Engine{
		contexts: contexts,
		diversity: diversity.NewEngine(contexts, diversity.Config{
			UserID:   cfg.UserID,
			Category: cfg.Category,
			Grade:    cfg.Grade,
		}),
		cfg:       cfg,
		now:       time.Now,
		randFloat: rand.Float64,
		randIntN:  rand.IntN,
	}
}

// candidate is a sampled combination under consideration for one slot.
type candidate struct {
	combo      diversity.Combination
	hash       string
	quality    float64
	complexity float64
}

// GenerateRotatedContexts produces up to count combinations, one strategy
// draw per slot. When no strategy leaves a candidate for a slot the engine
// falls back to plain diverse generation for that slot.
func (e *Engine) GenerateRotatedContexts(ctx context.Context, count int) []diversity.Combination {
	pool := e.ensurePool(ctx)
	candidates := e.buildCandidates(ctx, pool)

	var out []diversity.Combination
	for i := 0; i < count; i++ {
		chosen, ok := e.selectForSlot(pool, candidates)
		if !ok {
			chosen, ok = e.fallbackSlot(ctx, pool)
			if !ok {
				continue
			}
		}

		out = append(out, chosen.combo)
		pool.Add(chosen.combo, e.now())
		candidates = removeCandidate(candidates, chosen.hash)
	}
	return out
}

// fallbackSlot fills a slot with plain diverse generation. The diversity
// engine only rejects hashes from the recent 7-day window, so the pool's
// banned set is applied here before a combination is served.
func (e *Engine) fallbackSlot(ctx context.Context, pool *Pool) (candidate, bool) {
	for _, combo := range e.diversity.GenerateDiverseContexts(ctx, fallbackDraws) {
		h := combo.Hash()
		if pool.Banned[h] {
			continue
		}
		return candidate{
			combo:      combo,
			hash:       h,
			complexity: complexityOf(combo.Values),
		}, true
	}
	return candidate{}, false
}

// RecordContextUsage persists a served combination. Best effort.
func (e *Engine) RecordContextUsage(ctx context.Context, combo diversity.Combination) {
	e.diversity.RecordContextUsage(ctx, combo)
}

// selectForSlot draws a strategy, filters candidates with it (falling
// through the remaining strategies by weight) and picks the candidate with
// the best composite score.
func (e *Engine) selectForSlot(pool *Pool, candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}

	first := pickStrategy(e.randFloat())
	subset := applyStrategy(first, candidates, pool)
	for _, s := range fallbackOrder {
		if len(subset) > 0 {
			break
		}
		if s == first {
			continue
		}
		subset = applyStrategy(s, candidates, pool)
	}
	if len(subset) == 0 {
		return candidate{}, false
	}

	return selectOptimalContext(subset, pool.lastN(5)), true
}

// ensurePool returns the cached pool, rebuilding it from history when
// missing or older than the configured TTL.
func (e *Engine) ensurePool(ctx context.Context) *Pool {
	now := e.now()
	if e.pool != nil && now.Sub(e.builtAt) < e.cfg.PoolTTL {
		return e.pool
	}

	since := now.Add(-e.cfg.HistoryWindow)
	history, err := e.contexts.HistoryFor(ctx, e.cfg.UserID, e.cfg.Category, e.cfg.Grade, since)
	if err != nil {
		rotwarnf("fetch context history: %v", err)
		history = nil
	}

	e.pool = buildPool(history, now)
	e.builtAt = now
	return e.pool
}

// buildCandidates samples random combinations from every scenario family
// for the user's category and grade, deduplicated by hash and with banned
// contexts excluded up front.
func (e *Engine) buildCandidates(ctx context.Context, pool *Pool) []candidate {
	families, err := e.contexts.FamiliesFor(ctx, e.cfg.Category, e.cfg.Grade)
	if err != nil {
		rotwarnf("fetch scenario families: %v", err)
		return nil
	}

	seen := make(map[string]bool)
	var out []candidate
	for _, family := range families {
		variantsByDim := make(map[string][]store.ContextVariantRecord)
		usable := true
		for dim, slot := range family.ContextSlots {
			variants, err := e.contexts.VariantsFor(ctx, family.ID, dim)
			if err != nil {
				rotwarnf("fetch variants for family %d dimension %s: %v", family.ID, dim, err)
				variants = nil
			}
			if len(variants) == 0 {
				if slot.Required {
					usable = false
					break
				}
				continue
			}
			variantsByDim[dim] = variants
		}
		if !usable || len(variantsByDim) == 0 {
			continue
		}

		for i := 0; i < candidatesPerFamily; i++ {
			c := e.randomCombination(family, variantsByDim)
			h := c.combo.Hash()
			if seen[h] || pool.Banned[h] {
				continue
			}
			seen[h] = true
			c.hash = h
			out = append(out, c)
		}
	}
	return out
}

// randomCombination picks one random variant per available dimension.
func (e *Engine) randomCombination(family store.ScenarioFamilyRecord, variantsByDim map[string][]store.ContextVariantRecord) candidate {
	combo := diversity.Combination{
		FamilyID:   family.ID,
		FamilyName: family.Name,
		Values:     make(map[string]string),
		Clusters:   make(map[string]string),
		VariantIDs: make(map[string]int),
	}

	qualitySum := 0.0
	picks := 0
	for dim, variants := range variantsByDim {
		v := variants[e.randIntN(len(variants))]
		combo.Values[dim] = v.Value
		combo.VariantIDs[dim] = v.ID
		if v.SemanticCluster != "" {
			combo.Clusters[dim] = v.SemanticCluster
		}
		qualitySum += v.QualityScore
		picks++
	}

	quality := 0.0
	if picks > 0 {
		quality = qualitySum / float64(picks)
	}
	return candidate{
		combo:      combo,
		quality:    quality,
		complexity: complexityOf(combo.Values),
	}
}

func removeCandidate(candidates []candidate, hash string) []candidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.hash != hash {
			out = append(out, c)
		}
	}
	return out
}

func rotwarnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: rotation: "+format+"\n", args...)
}
