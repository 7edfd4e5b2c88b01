package selector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func zeroTime() time.Time { return time.Time{} }

// mockTemplateRepo implements store.TemplateRepo for selector tests.
type mockTemplateRepo struct {
	active    []store.TemplateRecord
	queryErr  error
	sampleErr error

	queryCalls int
	plays      []int
}

func (m *mockTemplateRepo) QueryActive(_ context.Context, q store.TemplateQuery) ([]store.TemplateRecord, error) {
	m.queryCalls++
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	var out []store.TemplateRecord
	for _, t := range m.active {
		if t.Grade != q.Grade {
			continue
		}
		if t.QualityScore < q.MinQuality {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTemplateRepo) ListActive(_ context.Context) ([]store.TemplateRecord, error) {
	return m.active, nil
}

func (m *mockTemplateRepo) SampleActive(_ context.Context, grade, limit int) ([]store.TemplateRecord, error) {
	if m.sampleErr != nil {
		return nil, m.sampleErr
	}
	var out []store.TemplateRecord
	for _, t := range m.active {
		if t.Grade == grade && len(out) < limit {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTemplateRepo) IncrementPlays(_ context.Context, id int) error {
	m.plays = append(m.plays, id)
	return nil
}

func (m *mockTemplateRepo) RecordAnswer(_ context.Context, _ int, _ bool) error { return nil }
func (m *mockTemplateRepo) AddRating(_ context.Context, _ int, _ int) error     { return nil }
func (m *mockTemplateRepo) Insert(_ context.Context, _ store.TemplateRecord) (int, error) {
	return 0, nil
}
func (m *mockTemplateRepo) SetStatus(_ context.Context, _ int, _ string) error { return nil }
func (m *mockTemplateRepo) SetQualityScore(_ context.Context, _ int, _ float64) error {
	return nil
}

type mockFeedbackRepo struct {
	negative []string
	err      error
}

func (m *mockFeedbackRepo) NegativePrompts(_ context.Context, _ string, _ []string) ([]string, error) {
	return m.negative, m.err
}

func (m *mockFeedbackRepo) Append(_ context.Context, _ store.FeedbackRecord) error { return nil }

type mockSessionRepo struct {
	sessions []store.SessionRecord
	appended []store.SessionRecord
	err      error
}

func (m *mockSessionRepo) RecentSessions(_ context.Context, _ string, since time.Time) ([]store.SessionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []store.SessionRecord
	for _, s := range m.sessions {
		if !s.CreatedAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) Append(_ context.Context, rec store.SessionRecord) error {
	m.appended = append(m.appended, rec)
	return nil
}
func (m *mockSessionRepo) Complete(_ context.Context, _ string, _, _, _ int) error {
	return nil
}

func bankOf(n int, grade int, domain string) []store.TemplateRecord {
	out := make([]store.TemplateRecord, n)
	for i := range out {
		out[i] = store.TemplateRecord{
			ID:           i + 1,
			Grade:        grade,
			QuarterApp:   "Q1",
			Domain:       domain,
			Difficulty:   "AFB I",
			QuestionType: "text-input",
			Prompt:       "Aufgabe",
			Solution:     "1",
			QualityScore: 0.9,
			Status:       store.StatusActive,
		}
	}
	return out
}

func newTestSelector(templates *mockTemplateRepo, feedback *mockFeedbackRepo, sessions *mockSessionRepo) *Selector {
	s := New(templates, feedback, sessions, time.Minute)
	s.now = fixedNow
	s.newID = func() string { return "session-1" }
	return s
}

func TestSelectTemplatesPrimaryPath(t *testing.T) {
	templates := &mockTemplateRepo{active: bankOf(10, 3, "Zahlen & Operationen")}
	s := newTestSelector(templates, &mockFeedbackRepo{}, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if got.Source != SourcePrimary {
		t.Errorf("source = %s, want primary", got.Source)
	}
	if len(got.Templates) != 4 {
		t.Errorf("selected %d templates, want 4", len(got.Templates))
	}
	if got.SessionID == "" {
		t.Error("missing session id")
	}
	if len(templates.plays) != 4 {
		t.Errorf("plays incremented %d times, want 4", len(templates.plays))
	}
	if got.Metrics.TotalAvailable != 10 {
		t.Errorf("totalAvailable = %d, want 10", got.Metrics.TotalAvailable)
	}
}

func TestSelectTemplatesFallbackOnQueryError(t *testing.T) {
	templates := &mockTemplateRepo{
		active:   bankOf(10, 3, "Zahlen & Operationen"),
		queryErr: errors.New("db down"),
	}
	s := newTestSelector(templates, &mockFeedbackRepo{}, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if got.Source != SourceFallback {
		t.Errorf("source = %s, want fallback", got.Source)
	}
	if len(got.Templates) != 4 {
		t.Errorf("fallback returned %d templates, want 4", len(got.Templates))
	}
	if got.Metrics != (Metrics{}) {
		t.Errorf("fallback metrics not zeroed: %+v", got.Metrics)
	}
}

func TestSelectTemplatesFallbackOnEmptyPool(t *testing.T) {
	// Bank only holds low-quality templates: the primary query finds
	// nothing, the fallback still serves them.
	bank := bankOf(6, 3, "Zahlen & Operationen")
	for i := range bank {
		bank[i].QualityScore = 0.4
	}
	templates := &mockTemplateRepo{active: bank}
	s := newTestSelector(templates, &mockFeedbackRepo{}, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if got.Source != SourceFallback {
		t.Errorf("source = %s, want fallback", got.Source)
	}
	if len(got.Templates) != 4 {
		t.Errorf("fallback returned %d templates, want min(count, available) = 4", len(got.Templates))
	}
}

func TestSelectTemplatesFiltersFlaggedPrompts(t *testing.T) {
	bank := bankOf(5, 3, "Zahlen & Operationen")
	bank[2].Prompt = "Verwirrende Aufgabe"
	templates := &mockTemplateRepo{active: bank}
	feedback := &mockFeedbackRepo{negative: []string{"Verwirrende Aufgabe"}}
	s := newTestSelector(templates, feedback, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 5,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	for _, tmpl := range got.Templates {
		if tmpl.Prompt == "Verwirrende Aufgabe" {
			t.Error("flagged prompt was selected")
		}
	}
	if len(got.Templates) != 4 {
		t.Errorf("selected %d templates, want 4 after feedback filter", len(got.Templates))
	}
}

func TestSelectTemplatesFeedbackErrorDegradesToNoFilter(t *testing.T) {
	templates := &mockTemplateRepo{active: bankOf(5, 3, "Zahlen & Operationen")}
	feedback := &mockFeedbackRepo{err: errors.New("db down")}
	s := newTestSelector(templates, feedback, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 5,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if got.Source != SourcePrimary || len(got.Templates) != 5 {
		t.Errorf("degraded feedback filter changed selection: source=%s n=%d", got.Source, len(got.Templates))
	}
}

func TestSelectTemplatesRecentlySeenScoredDown(t *testing.T) {
	bank := bankOf(6, 3, "Zahlen & Operationen")
	templates := &mockTemplateRepo{active: bank}
	sessions := &mockSessionRepo{sessions: []store.SessionRecord{
		{
			UserID: "u1", Category: "math", Grade: 3,
			TemplateIDs: []int{1, 2},
			CreatedAt:   fixedNow().Add(-2 * 24 * time.Hour),
		},
	}}
	s := newTestSelector(templates, &mockFeedbackRepo{}, sessions)

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	for _, tmpl := range got.Templates {
		if tmpl.ID == 1 || tmpl.ID == 2 {
			t.Errorf("recently seen template %d selected over fresh ones", tmpl.ID)
		}
	}
}

func TestSelectTemplatesPoolCache(t *testing.T) {
	templates := &mockTemplateRepo{active: bankOf(10, 3, "Zahlen & Operationen")}
	s := newTestSelector(templates, &mockFeedbackRepo{}, &mockSessionRepo{})

	req := Request{UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4}
	if _, err := s.SelectTemplates(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SelectTemplates(context.Background(), req); err != nil {
		t.Fatal(err)
	}
	if templates.queryCalls != 1 {
		t.Errorf("pool queried %d times inside TTL, want 1", templates.queryCalls)
	}
}

func TestSelectTemplatesRejectsMalformedRequest(t *testing.T) {
	s := newTestSelector(&mockTemplateRepo{}, &mockFeedbackRepo{}, &mockSessionRepo{})

	cases := []Request{
		{UserID: "u1", Grade: 3, Quarter: "Q1", Count: 0},
		{UserID: "u1", Grade: 0, Quarter: "Q1", Count: 4},
		{UserID: "u1", Grade: 11, Quarter: "Q1", Count: 4},
		{UserID: "u1", Grade: 3, Quarter: "Q9", Count: 4},
	}
	for _, req := range cases {
		if _, err := s.SelectTemplates(context.Background(), req); err == nil {
			t.Errorf("request %+v accepted, want error", req)
		}
	}
}

func TestSelectTemplatesMetrics(t *testing.T) {
	bank := bankOf(4, 3, "Zahlen & Operationen")
	bank[3].Domain = "Raum & Form"
	for i := range bank {
		bank[i].Plays = 10
	}
	templates := &mockTemplateRepo{active: bank}
	s := newTestSelector(templates, &mockFeedbackRepo{}, &mockSessionRepo{})

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}

	m := got.Metrics
	if m.DomainCoverage != 2 {
		t.Errorf("domainCoverage = %d, want 2", m.DomainCoverage)
	}
	if m.DiversityScore != 0.5 {
		t.Errorf("diversityScore = %v, want 0.5", m.DiversityScore)
	}
	if m.AvgUsageCount != 10 {
		t.Errorf("avgUsageCount = %v, want 10", m.AvgUsageCount)
	}
	if m.AntiRepetitionScore != 0.9 {
		t.Errorf("antiRepetitionScore = %v, want 0.9", m.AntiRepetitionScore)
	}
}

func TestSelectTemplatesPersistsSession(t *testing.T) {
	templates := &mockTemplateRepo{active: bankOf(10, 3, "Zahlen & Operationen")}
	sessions := &mockSessionRepo{}
	s := newTestSelector(templates, &mockFeedbackRepo{}, sessions)

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 4,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if len(sessions.appended) != 1 {
		t.Fatalf("appended %d sessions, want 1", len(sessions.appended))
	}
	rec := sessions.appended[0]
	if rec.SessionID != got.SessionID {
		t.Errorf("session id = %q, want %q", rec.SessionID, got.SessionID)
	}
	if rec.UserID != "u1" || rec.Grade != 3 {
		t.Errorf("session scope = %s/%d, want u1/3", rec.UserID, rec.Grade)
	}
	if len(rec.TemplateIDs) != len(got.Templates) {
		t.Fatalf("persisted %d template IDs, want %d", len(rec.TemplateIDs), len(got.Templates))
	}
	for i, tmpl := range got.Templates {
		if rec.TemplateIDs[i] != tmpl.ID {
			t.Errorf("template id %d = %d, want %d", i, rec.TemplateIDs[i], tmpl.ID)
		}
	}
}

func TestFallbackSelectionPersistsSession(t *testing.T) {
	templates := &mockTemplateRepo{
		active:   bankOf(5, 3, "Zahlen & Operationen"),
		queryErr: errors.New("db locked"),
	}
	sessions := &mockSessionRepo{}
	s := newTestSelector(templates, &mockFeedbackRepo{}, sessions)

	got, err := s.SelectTemplates(context.Background(), Request{
		UserID: "u1", Grade: 3, Quarter: "Q1", Count: 3,
	})
	if err != nil {
		t.Fatalf("SelectTemplates: %v", err)
	}
	if got.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", got.Source)
	}
	if len(sessions.appended) != 1 {
		t.Fatalf("appended %d sessions, want 1", len(sessions.appended))
	}
}
