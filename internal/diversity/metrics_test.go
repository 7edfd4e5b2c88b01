package diversity

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRepetitionRate(t *testing.T) {
	if got := RepetitionRate(nil); got != 0 {
		t.Errorf("empty window = %f, want 0", got)
	}
	if got := RepetitionRate([]string{"a", "b", "c"}); got != 0 {
		t.Errorf("all unique = %f, want 0", got)
	}
	if got := RepetitionRate([]string{"a", "a", "b", "b"}); !almostEqual(got, 0.5) {
		t.Errorf("half repeated = %f, want 0.5", got)
	}
}

func TestDistanceWithClusters(t *testing.T) {
	a := Combination{
		Values:   map[string]string{"location": "Bäckerei"},
		Clusters: map[string]string{"location": "laden"},
	}
	b := Combination{
		Values:   map[string]string{"location": "Metzgerei"},
		Clusters: map[string]string{"location": "laden"},
	}
	c := Combination{
		Values:   map[string]string{"location": "Zoo"},
		Clusters: map[string]string{"location": "ausflug"},
	}

	if got := Distance(a, b); !almostEqual(got, 0.2) {
		t.Errorf("same cluster = %f, want 0.2", got)
	}
	if got := Distance(a, c); !almostEqual(got, 1.0) {
		t.Errorf("different cluster = %f, want 1.0", got)
	}
}

func TestDistanceStringFallback(t *testing.T) {
	a := Combination{Values: map[string]string{"location": "Bäckerei"}}
	b := Combination{Values: map[string]string{"location": "Bäckerei"}}
	c := Combination{Values: map[string]string{"location": "Zoo"}}

	if got := Distance(a, b); !almostEqual(got, 0.1) {
		t.Errorf("equal values = %f, want 0.1", got)
	}
	if got := Distance(a, c); !almostEqual(got, 0.8) {
		t.Errorf("different values = %f, want 0.8", got)
	}
}

func TestDistanceNoSharedDimensions(t *testing.T) {
	a := Combination{Values: map[string]string{"location": "Bäckerei"}}
	b := Combination{Values: map[string]string{"character": "Bäcker"}}
	if got := Distance(a, b); !almostEqual(got, 1.0) {
		t.Errorf("no shared dimensions = %f, want 1.0", got)
	}
}

func TestCalculateMetricsTracksFamilyCoverage(t *testing.T) {
	repo := bakeryRepo()
	now := time.Now()
	repo.history = []store.ContextHistoryRecord{
		{
			ScenarioFamilyID: 1,
			Combination:      map[string]string{"location": "Bäckerei"},
			CombinationHash:  "h1",
			CreatedAt:        now.Add(-time.Hour),
		},
		{
			ScenarioFamilyID: 1,
			Combination:      map[string]string{"location": "Markt"},
			CombinationHash:  "h2",
			CreatedAt:        now.Add(-2 * time.Hour),
		},
	}

	e := newTestEngine(repo)
	m := e.CalculateMetrics(context.Background())

	if m.WindowSize != 2 {
		t.Errorf("WindowSize = %d, want 2", m.WindowSize)
	}
	if !almostEqual(m.RepetitionRate, 0) {
		t.Errorf("RepetitionRate = %f, want 0", m.RepetitionRate)
	}
	// One of two available families seen.
	if !almostEqual(m.FamilyCoverage, 0.5) {
		t.Errorf("FamilyCoverage = %f, want 0.5", m.FamilyCoverage)
	}
	// History rows carry no cluster data, so the string fallback applies:
	// different values score 0.8.
	if !almostEqual(m.SemanticDistance, 0.8) {
		t.Errorf("SemanticDistance = %f, want 0.8", m.SemanticDistance)
	}
	want := (1 - 0.0) * 0.8 * (0.5 + 0.1)
	if !almostEqual(m.EngagementScore, want) {
		t.Errorf("EngagementScore = %f, want %f", m.EngagementScore, want)
	}
}

func TestCalculateMetricsDegradesOnError(t *testing.T) {
	repo := bakeryRepo()
	repo.historyErr = context.DeadlineExceeded

	e := newTestEngine(repo)
	m := e.CalculateMetrics(context.Background())
	if m != (Metrics{}) {
		t.Errorf("expected zeroed metrics on store error, got %+v", m)
	}
}
