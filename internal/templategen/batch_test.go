package templategen

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/coverage"
	"github.com/lernzeit/lernzeit/internal/store"
)

// stubGenerator cycles through canned outcomes.
type stubGenerator struct {
	mu       sync.Mutex
	outcomes []error
	calls    int
}

func (s *stubGenerator) Generate(_ context.Context, input GenerateInput) (store.TemplateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	outcome := s.outcomes[s.calls%len(s.outcomes)]
	s.calls++
	if outcome != nil {
		return store.TemplateRecord{}, outcome
	}
	return store.TemplateRecord{
		Grade:        input.Gap.Grade,
		QuarterApp:   string(input.Gap.Quarter),
		Domain:       string(input.Gap.Domain),
		Prompt:       "Aufgabe",
		Solution:     "1",
		QualityScore: 0.9,
		Status:       store.StatusActive,
	}, nil
}

// batchTemplateRepo implements store.TemplateRepo for batch tests.
type batchTemplateRepo struct {
	mu        sync.Mutex
	inserted  []store.TemplateRecord
	insertErr error
}

func (m *batchTemplateRepo) QueryActive(_ context.Context, _ store.TemplateQuery) ([]store.TemplateRecord, error) {
	return nil, nil
}
func (m *batchTemplateRepo) ListActive(_ context.Context) ([]store.TemplateRecord, error) {
	return nil, nil
}
func (m *batchTemplateRepo) SampleActive(_ context.Context, _, _ int) ([]store.TemplateRecord, error) {
	return nil, nil
}
func (m *batchTemplateRepo) IncrementPlays(_ context.Context, _ int) error { return nil }
func (m *batchTemplateRepo) RecordAnswer(_ context.Context, _ int, _ bool) error {
	return nil
}
func (m *batchTemplateRepo) AddRating(_ context.Context, _ int, _ int) error { return nil }
func (m *batchTemplateRepo) Insert(_ context.Context, t store.TemplateRecord) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	m.inserted = append(m.inserted, t)
	return len(m.inserted), nil
}
func (m *batchTemplateRepo) SetStatus(_ context.Context, _ int, _ string) error { return nil }
func (m *batchTemplateRepo) SetQualityScore(_ context.Context, _ int, _ float64) error {
	return nil
}

type mockGenerationRepo struct {
	started  []string
	finished bool
	gen      int
	rej      int
	failed   int
	startErr error
}

func (m *mockGenerationRepo) StartRun(_ context.Context, runID string, _ int) (int, error) {
	if m.startErr != nil {
		return 0, m.startErr
	}
	m.started = append(m.started, runID)
	return 1, nil
}

func (m *mockGenerationRepo) FinishRun(_ context.Context, _ int, generated, rejected, failed int) error {
	m.finished = true
	m.gen, m.rej, m.failed = generated, rejected, failed
	return nil
}

func (m *mockGenerationRepo) RecentRuns(_ context.Context, _ int) ([]store.GenerationRunRecord, error) {
	return nil, nil
}

func newBatchUnderTest(gen Generator, templates *batchTemplateRepo, runs *mockGenerationRepo, cfg BatchConfig) *BatchGenerator {
	analyzer := coverage.NewAnalyzer(templates, 0)
	b := NewBatch(analyzer, gen, templates, runs, cfg)
	b.newRunID = func() string { return "run-1" }
	b.sleep = func(_ context.Context, _ time.Duration) error { return nil }
	return b
}

func TestBatchRunGeneratesAndTracks(t *testing.T) {
	gen := &stubGenerator{outcomes: []error{nil}}
	templates := &batchTemplateRepo{}
	runs := &mockGenerationRepo{}
	b := newBatchUnderTest(gen, templates, runs, BatchConfig{MaxGaps: 5, MaxConcurrent: 2})

	summary, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.GapsTargeted != 5 || summary.Generated != 5 {
		t.Errorf("summary = %+v, want 5 targeted and generated", summary)
	}
	if len(templates.inserted) != 5 {
		t.Errorf("inserted %d templates, want 5", len(templates.inserted))
	}
	if !runs.finished || runs.gen != 5 {
		t.Errorf("run tracking incomplete: %+v", runs)
	}
	if summary.RunID != "run-1" {
		t.Errorf("runID = %q", summary.RunID)
	}
}

func TestBatchRunCountsRejectionsAndFailures(t *testing.T) {
	gen := &stubGenerator{outcomes: []error{
		nil,
		&RejectionError{Validator: "content", Issues: []string{"prompt is empty"}},
		errors.New("provider down"),
	}}
	templates := &batchTemplateRepo{}
	runs := &mockGenerationRepo{}
	b := newBatchUnderTest(gen, templates, runs, BatchConfig{MaxGaps: 6, MaxConcurrent: 3})

	summary, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.Generated != 2 || summary.Rejected != 2 || summary.Failed != 2 {
		t.Errorf("summary = %+v, want 2/2/2", summary)
	}
}

func TestBatchRunSurvivesRunTrackingFailure(t *testing.T) {
	gen := &stubGenerator{outcomes: []error{nil}}
	templates := &batchTemplateRepo{}
	runs := &mockGenerationRepo{startErr: errors.New("db locked")}
	b := newBatchUnderTest(gen, templates, runs, BatchConfig{MaxGaps: 2})

	summary, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Generated != 2 {
		t.Errorf("generated = %d, want 2", summary.Generated)
	}
	if runs.finished {
		t.Error("FinishRun called for a run that never started")
	}
}

func TestBatchRunHonorsMaxGaps(t *testing.T) {
	gen := &stubGenerator{outcomes: []error{nil}}
	templates := &batchTemplateRepo{}
	b := newBatchUnderTest(gen, templates, &mockGenerationRepo{}, BatchConfig{MaxGaps: 3, MaxConcurrent: 1})

	summary, err := b.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.GapsTargeted != 3 || gen.calls != 3 {
		t.Errorf("targeted %d gaps with %d calls, want 3/3", summary.GapsTargeted, gen.calls)
	}
}

func TestBatchRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := &stubGenerator{outcomes: []error{nil}}
	b := newBatchUnderTest(gen, &batchTemplateRepo{}, &mockGenerationRepo{}, BatchConfig{MaxGaps: 10})

	if _, err := b.Run(ctx); err == nil {
		t.Fatal("expected context error")
	}
}
