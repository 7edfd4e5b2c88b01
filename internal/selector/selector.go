// Package selector assembles the question set for a learning session. It
// scores the active template bank against the user's recent history and
// feedback, enforces a minimum spread across curriculum domains, and falls
// back to random sampling when the bank cannot be queried.
package selector

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lernzeit/lernzeit/internal/content"
	"github.com/lernzeit/lernzeit/internal/curriculum"
	"github.com/lernzeit/lernzeit/internal/store"
)

const (
	// poolLimit caps the candidate pool fetched per selection.
	poolLimit = 500

	// minPoolQuality is the quality floor for the primary query.
	minPoolQuality = 0.8

	// historyWindow is how far back session records count for recency
	// penalties.
	historyWindow = 30 * 24 * time.Hour

	// DefaultMinDomainDiversity is the domain spread applied when the
	// request leaves it unset.
	DefaultMinDomainDiversity = 2

	// DefaultPoolTTL is how long a fetched candidate pool is reused for
	// identical queries.
	DefaultPoolTTL = 5 * time.Minute

	// sessionCategory labels persisted session rows; the engine serves
	// one subject.
	sessionCategory = "math"
)

// Selection sources.
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// Request describes one session's template needs.
type Request struct {
	UserID  string
	Grade   int
	Quarter string // "Q1".."Q4" or "ANY"
	Count   int

	// Optional filters.
	Domains       []string
	Difficulty    string
	QuestionTypes []string

	// MinDomainDiversity defaults to DefaultMinDomainDiversity when zero.
	MinDomainDiversity int
}

// Metrics describes the quality of a selection.
type Metrics struct {
	TotalAvailable      int
	DomainCoverage      int
	AvgUsageCount       float64
	DiversityScore      float64
	AntiRepetitionScore float64
}

// Result is the assembled session.
type Result struct {
	Templates []store.TemplateRecord
	SessionID string
	Source    string
	Metrics   Metrics
}

// Selector picks templates for learning sessions. Safe for concurrent use.
type Selector struct {
	templates store.TemplateRepo
	feedback  store.FeedbackRepo
	sessions  store.SessionRepo

	poolTTL time.Duration

	mu      sync.Mutex
	pools   map[string]cachedPool
	now     func() time.Time
	newID   func() string
	shuffle func(n int, swap func(i, j int))
}

type cachedPool struct {
	templates []store.TemplateRecord
	fetchedAt time.Time
}

// New creates a Selector. poolTTL <= 0 uses DefaultPoolTTL.
func New(templates store.TemplateRepo, feedback store.FeedbackRepo, sessions store.SessionRepo, poolTTL time.Duration) *Selector {
	if poolTTL <= 0 {
		poolTTL = DefaultPoolTTL
	}
	return &Selector{
		templates: templates,
		feedback:  feedback,
		sessions:  sessions,
		poolTTL:   poolTTL,
		pools:     make(map[string]cachedPool),
		now:       time.Now,
		newID:     uuid.NewString,
		shuffle:   rand.Shuffle,
	}
}

// SelectTemplates is the primary entry point, called once per session
// start. Query failures and empty pools degrade to a random fallback
// sample; only a malformed request returns an error.
func (s *Selector) SelectTemplates(ctx context.Context, req Request) (Result, error) {
	if err := validateRequest(req); err != nil {
		return Result{}, err
	}
	if req.MinDomainDiversity == 0 {
		req.MinDomainDiversity = DefaultMinDomainDiversity
	}

	pool, err := s.fetchPool(ctx, req)
	if err != nil {
		warnf("fetch template pool: %v", err)
		return s.fallbackSelection(ctx, req)
	}
	if len(pool) == 0 {
		return s.fallbackSelection(ctx, req)
	}

	pool = s.filterFlagged(ctx, req.UserID, pool)
	lastUsed := s.templateHistory(ctx, req.UserID)

	now := s.now()
	scored := make([]scoredTemplate, len(pool))
	for i, tmpl := range pool {
		scored[i] = scoredTemplate{
			template: tmpl,
			score:    calculateTemplateScore(tmpl, req.Quarter, lastUsed[tmpl.ID], now),
		}
	}

	selected := applyDomainDiversity(scored, req.MinDomainDiversity, req.Count)

	// Sequential by design: a concurrent session reading stale counts only
	// softens the anti-repetition heuristic, the store-side increment
	// itself never loses an update.
	for _, tmpl := range selected {
		if err := s.templates.IncrementPlays(ctx, tmpl.ID); err != nil {
			warnf("increment plays for template %d: %v", tmpl.ID, err)
		}
	}

	result := Result{
		Templates: selected,
		SessionID: s.newID(),
		Source:    SourcePrimary,
		Metrics:   calculateMetrics(selected, len(pool)),
	}
	s.persistSession(ctx, req, result)
	return result, nil
}

// persistSession records which templates the session served, feeding the
// recency penalty of future selections. Best effort.
func (s *Selector) persistSession(ctx context.Context, req Request, result Result) {
	ids := make([]int, len(result.Templates))
	for i, tmpl := range result.Templates {
		ids[i] = tmpl.ID
	}
	err := s.sessions.Append(ctx, store.SessionRecord{
		SessionID:   result.SessionID,
		UserID:      req.UserID,
		Category:    sessionCategory,
		Grade:       req.Grade,
		TemplateIDs: ids,
	})
	if err != nil {
		warnf("persist session %s: %v", result.SessionID, err)
	}
}

// fetchPool runs the step-1 candidate query, reusing a cached pool for
// identical queries inside the TTL. Cached plays counts may be stale;
// scoring tolerates that.
func (s *Selector) fetchPool(ctx context.Context, req Request) ([]store.TemplateRecord, error) {
	key := poolKey(req)

	s.mu.Lock()
	cached, ok := s.pools[key]
	s.mu.Unlock()
	if ok && s.now().Sub(cached.fetchedAt) < s.poolTTL {
		return cached.templates, nil
	}

	pool, err := s.templates.QueryActive(ctx, store.TemplateQuery{
		Grade:           req.Grade,
		Quarter:         req.Quarter,
		Domains:         req.Domains,
		Difficulty:      req.Difficulty,
		QuestionTypes:   req.QuestionTypes,
		MinQuality:      minPoolQuality,
		ExcludeKeywords: content.Blacklist(),
		Limit:           poolLimit,
		OrderByPlaysAsc: true,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pools[key] = cachedPool{templates: pool, fetchedAt: s.now()}
	s.mu.Unlock()
	return pool, nil
}

// filterFlagged removes templates whose exact prompt the user previously
// flagged negatively. A failed feedback query degrades to no filtering.
func (s *Selector) filterFlagged(ctx context.Context, userID string, pool []store.TemplateRecord) []store.TemplateRecord {
	prompts, err := s.feedback.NegativePrompts(ctx, userID, store.NegativeFeedbackTypes())
	if err != nil {
		warnf("fetch negative feedback: %v", err)
		return pool
	}
	if len(prompts) == 0 {
		return pool
	}

	flagged := make(map[string]bool, len(prompts))
	for _, p := range prompts {
		flagged[p] = true
	}

	// The pool slice may be shared with the query cache, so filter into a
	// fresh slice.
	out := make([]store.TemplateRecord, 0, len(pool))
	for _, tmpl := range pool {
		if !flagged[tmpl.Prompt] {
			out = append(out, tmpl)
		}
	}
	return out
}

// templateHistory maps template IDs to the most recent session in which
// the user saw them, over the trailing history window. A failed query
// degrades to an empty history.
func (s *Selector) templateHistory(ctx context.Context, userID string) map[int]time.Time {
	since := s.now().Add(-historyWindow)
	sessions, err := s.sessions.RecentSessions(ctx, userID, since)
	if err != nil {
		warnf("fetch session history: %v", err)
		return nil
	}

	lastUsed := make(map[int]time.Time)
	for _, sess := range sessions {
		for _, id := range sess.TemplateIDs {
			if sess.CreatedAt.After(lastUsed[id]) {
				lastUsed[id] = sess.CreatedAt
			}
		}
	}
	return lastUsed
}

// fallbackSelection serves a random sample when the primary pool is
// unavailable or empty. Metrics are zeroed so callers can tell the session
// quality is degraded.
func (s *Selector) fallbackSelection(ctx context.Context, req Request) (Result, error) {
	sample, err := s.templates.SampleActive(ctx, req.Grade, req.Count*3)
	if err != nil {
		warnf("fallback sample: %v", err)
		sample = nil
	}

	s.shuffle(len(sample), func(i, j int) {
		sample[i], sample[j] = sample[j], sample[i]
	})
	if len(sample) > req.Count {
		sample = sample[:req.Count]
	}

	result := Result{
		Templates: sample,
		SessionID: s.newID(),
		Source:    SourceFallback,
	}
	s.persistSession(ctx, req, result)
	return result, nil
}

func calculateMetrics(selected []store.TemplateRecord, totalAvailable int) Metrics {
	domains := make(map[string]bool)
	totalPlays := 0
	for _, tmpl := range selected {
		domains[tmpl.Domain] = true
		totalPlays += tmpl.Plays
	}

	avgUsage := 0.0
	if len(selected) > 0 {
		avgUsage = float64(totalPlays) / float64(len(selected))
	}

	diversityScore := float64(len(domains)) / 4
	if diversityScore > 1 {
		diversityScore = 1
	}
	antiRepetition := 1 - avgUsage/100
	if antiRepetition < 0 {
		antiRepetition = 0
	}

	return Metrics{
		TotalAvailable:      totalAvailable,
		DomainCoverage:      len(domains),
		AvgUsageCount:       avgUsage,
		DiversityScore:      diversityScore,
		AntiRepetitionScore: antiRepetition,
	}
}

func validateRequest(req Request) error {
	if req.Count <= 0 {
		return fmt.Errorf("selection count must be positive, got %d", req.Count)
	}
	if req.Grade < curriculum.MinGrade || req.Grade > curriculum.MaxGrade {
		return fmt.Errorf("grade %d outside supported range %d-%d", req.Grade, curriculum.MinGrade, curriculum.MaxGrade)
	}
	switch req.Quarter {
	case "Q1", "Q2", "Q3", "Q4", "ANY", "":
	default:
		return fmt.Errorf("unknown quarter %q", req.Quarter)
	}
	return nil
}

func poolKey(req Request) string {
	return fmt.Sprintf("%d|%s|%s|%s|%s",
		req.Grade, req.Quarter,
		strings.Join(req.Domains, ","),
		req.Difficulty,
		strings.Join(req.QuestionTypes, ","))
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: selector: "+format+"\n", args...)
}
