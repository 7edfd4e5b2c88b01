package diversity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

// mockContextRepo implements store.ContextRepo for engine tests.
type mockContextRepo struct {
	families    []store.ScenarioFamilyRecord
	variants    map[int]map[string][]store.ContextVariantRecord // familyID -> dimension -> variants
	history     []store.ContextHistoryRecord
	familiesErr error
	historyErr  error

	appended   []store.ContextHistoryRecord
	usageBumps []int
}

func (m *mockContextRepo) FamiliesFor(_ context.Context, _ string, _ int) ([]store.ScenarioFamilyRecord, error) {
	return m.families, m.familiesErr
}

func (m *mockContextRepo) VariantsFor(_ context.Context, familyID int, dimension string) ([]store.ContextVariantRecord, error) {
	return m.variants[familyID][dimension], nil
}

func (m *mockContextRepo) IncrementVariantUsage(_ context.Context, variantID int) error {
	m.usageBumps = append(m.usageBumps, variantID)
	return nil
}

func (m *mockContextRepo) HistoryFor(_ context.Context, _, _ string, _ int, since time.Time) ([]store.ContextHistoryRecord, error) {
	if m.historyErr != nil {
		return nil, m.historyErr
	}
	var out []store.ContextHistoryRecord
	for _, h := range m.history {
		if !h.CreatedAt.Before(since) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockContextRepo) AppendHistory(_ context.Context, rec store.ContextHistoryRecord) error {
	m.appended = append(m.appended, rec)
	return nil
}

func (m *mockContextRepo) InsertFamily(_ context.Context, _ store.ScenarioFamilyRecord) (int, error) {
	return 0, nil
}

func (m *mockContextRepo) InsertVariant(_ context.Context, _ store.ContextVariantRecord) (int, error) {
	return 0, nil
}

func bakeryRepo() *mockContextRepo {
	return &mockContextRepo{
		families: []store.ScenarioFamilyRecord{
			{
				ID: 1, Name: "Einkaufen", Category: "math", GradeMin: 1, GradeMax: 4,
				BaseTemplate: "Der {character} in der {location} ...",
				ContextSlots: map[string]store.SlotSpec{
					"location":  {Required: true},
					"character": {Required: true},
				},
			},
			{
				ID: 2, Name: "Ausflug", Category: "math", GradeMin: 1, GradeMax: 4,
				BaseTemplate: "Beim Ausflug zum {location} ...",
				ContextSlots: map[string]store.SlotSpec{
					"location": {Required: true},
				},
			},
		},
		variants: map[int]map[string][]store.ContextVariantRecord{
			1: {
				"location": {
					{ID: 11, ScenarioFamilyID: 1, DimensionType: "location", Value: "Bäckerei", SemanticCluster: "laden", QualityScore: 0.9},
					{ID: 12, ScenarioFamilyID: 1, DimensionType: "location", Value: "Markt", SemanticCluster: "draussen", QualityScore: 0.8},
				},
				"character": {
					{ID: 13, ScenarioFamilyID: 1, DimensionType: "character", Value: "Bäcker", SemanticCluster: "beruf", QualityScore: 0.7},
					{ID: 14, ScenarioFamilyID: 1, DimensionType: "character", Value: "Kind", SemanticCluster: "familie", QualityScore: 0.9},
				},
			},
			2: {
				"location": {
					{ID: 21, ScenarioFamilyID: 2, DimensionType: "location", Value: "Zoo", SemanticCluster: "ausflug", QualityScore: 0.9},
					{ID: 22, ScenarioFamilyID: 2, DimensionType: "location", Value: "Museum", SemanticCluster: "kultur", QualityScore: 0.6},
				},
			},
		},
	}
}

func newTestEngine(repo *mockContextRepo) *Engine {
	return NewEngine(repo, Config{UserID: "u1", Category: "math", Grade: 2})
}

func TestGenerateRoundRobinsFamilies(t *testing.T) {
	e := newTestEngine(bakeryRepo())
	combos := e.GenerateDiverseContexts(context.Background(), 2)

	if len(combos) != 2 {
		t.Fatalf("got %d combos, want 2", len(combos))
	}
	if combos[0].FamilyID != 1 || combos[1].FamilyID != 2 {
		t.Errorf("family order = %d,%d, want 1,2", combos[0].FamilyID, combos[1].FamilyID)
	}
}

func TestGeneratePrefersUnusedClusters(t *testing.T) {
	e := newTestEngine(bakeryRepo())
	combos := e.GenerateDiverseContexts(context.Background(), 1)

	if len(combos) != 1 {
		t.Fatalf("got %d combos, want 1", len(combos))
	}
	// Highest-quality variants of fresh clusters win: Kind (0.9) over
	// Bäcker (0.7), Bäckerei (0.9) over Markt (0.8).
	if combos[0].Values["character"] != "Kind" {
		t.Errorf("character = %q, want Kind", combos[0].Values["character"])
	}
	if combos[0].Values["location"] != "Bäckerei" {
		t.Errorf("location = %q, want Bäckerei", combos[0].Values["location"])
	}
}

func TestGenerateSkipsRecentHistoryCollisions(t *testing.T) {
	repo := bakeryRepo()
	// The combination the engine would produce first is already in the
	// user's recent history.
	colliding := map[string]string{"location": "Bäckerei", "character": "Kind"}
	repo.history = []store.ContextHistoryRecord{{
		UserID:          "u1",
		CombinationHash: HashValues(colliding),
		Combination:     colliding,
		CreatedAt:       time.Now().Add(-time.Hour),
	}}

	e := newTestEngine(repo)
	combos := e.GenerateDiverseContexts(context.Background(), 2)

	for _, c := range combos {
		if c.Hash() == HashValues(colliding) {
			t.Error("recently served combination was produced again")
		}
	}
}

func TestGenerateSkipsBatchDuplicates(t *testing.T) {
	repo := bakeryRepo()
	// Collapse family 2 to a single possible combination so asking for
	// many contexts forces duplicates.
	repo.families = repo.families[1:]
	repo.variants[2]["location"] = repo.variants[2]["location"][:1]

	e := newTestEngine(repo)
	combos := e.GenerateDiverseContexts(context.Background(), 5)

	if len(combos) != 1 {
		t.Errorf("got %d combos, want 1 (duplicates skipped, not refilled)", len(combos))
	}
}

func TestGenerateDegradesOnStoreError(t *testing.T) {
	repo := bakeryRepo()
	repo.familiesErr = errors.New("connection refused")

	e := newTestEngine(repo)
	combos := e.GenerateDiverseContexts(context.Background(), 3)
	if combos != nil {
		t.Errorf("expected nil on family fetch error, got %d combos", len(combos))
	}
}

func TestRequiredSlotWithoutVariantsSkipsCombination(t *testing.T) {
	repo := bakeryRepo()
	repo.variants[1]["location"] = nil

	e := newTestEngine(repo)
	combos := e.GenerateDiverseContexts(context.Background(), 2)

	for _, c := range combos {
		if c.FamilyID == 1 {
			t.Error("family with unsatisfiable required slot produced a combination")
		}
	}
}

func TestRecordContextUsage(t *testing.T) {
	repo := bakeryRepo()
	e := newTestEngine(repo)

	combos := e.GenerateDiverseContexts(context.Background(), 1)
	if len(combos) != 1 {
		t.Fatalf("got %d combos, want 1", len(combos))
	}
	e.RecordContextUsage(context.Background(), combos[0])

	if len(repo.appended) != 1 {
		t.Fatalf("appended %d history rows, want 1", len(repo.appended))
	}
	rec := repo.appended[0]
	if rec.UserID != "u1" || rec.Category != "math" || rec.Grade != 2 {
		t.Errorf("history row scope = %s/%s/%d", rec.UserID, rec.Category, rec.Grade)
	}
	if rec.CombinationHash != combos[0].Hash() {
		t.Error("history hash does not match combination hash")
	}
	if len(repo.usageBumps) != len(combos[0].VariantIDs) {
		t.Errorf("bumped %d variants, want %d", len(repo.usageBumps), len(combos[0].VariantIDs))
	}
}

func TestSelectDiverseVariantFallback(t *testing.T) {
	variants := []store.ContextVariantRecord{
		{ID: 1, Value: "a", SemanticCluster: "x", UsageCount: 5, QualityScore: 0.9},
		{ID: 2, Value: "b", SemanticCluster: "y", UsageCount: 1, QualityScore: 0.5},
	}
	used := map[string]bool{"x": true, "y": true}

	got := selectDiverseVariant(variants, used)
	if got.ID != 2 {
		t.Errorf("fallback picked ID %d, want 2 (least used)", got.ID)
	}
}
