package selector

import (
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

func TestCalculateTemplateScoreDeterministicAndBounded(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	templates := []store.TemplateRecord{
		{ID: 1, QuarterApp: "Q1", QualityScore: 0.9, Plays: 0},
		{ID: 2, QuarterApp: "Q2", QualityScore: 0.8, Plays: 50, Correct: 40, RatingSum: 9, RatingCount: 2},
		{ID: 3, QuarterApp: "Q1", QualityScore: 1.0, Plays: 200, Correct: 10},
		{ID: 4, QuarterApp: "Q3", QualityScore: 0.0, Plays: 1},
	}
	lastUsed := map[int]time.Time{
		2: now.Add(-3 * 24 * time.Hour),
		3: now.Add(-20 * 24 * time.Hour),
	}

	for _, tmpl := range templates {
		first := calculateTemplateScore(tmpl, "Q1", lastUsed[tmpl.ID], now)
		second := calculateTemplateScore(tmpl, "Q1", lastUsed[tmpl.ID], now)
		if first != second {
			t.Errorf("template %d: score not deterministic: %v vs %v", tmpl.ID, first, second)
		}
		if first < 0 || first > 1 {
			t.Errorf("template %d: score %v outside [0,1]", tmpl.ID, first)
		}
	}
}

func TestAntiRepetitionMonotonicity(t *testing.T) {
	prev := antiRepetitionBonus(0)
	for plays := 1; plays <= 150; plays += 10 {
		cur := antiRepetitionBonus(plays)
		if cur > prev {
			t.Fatalf("bonus rose from %v to %v at plays=%d", prev, cur, plays)
		}
		prev = cur
	}

	if got := antiRepetitionBonus(0); got != 0.7 {
		t.Errorf("unplayed bonus = %v, want 0.7", got)
	}
	if got := antiRepetitionBonus(200); got != 0 {
		t.Errorf("saturated bonus = %v, want 0", got)
	}
}

func TestRecencyPenalty(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	if got := recencyPenalty(time.Time{}, now); got != 0 {
		t.Errorf("penalty without history = %v, want 0", got)
	}
	if got := recencyPenalty(now.Add(-40*24*time.Hour), now); got != 0 {
		t.Errorf("penalty outside window = %v, want 0", got)
	}

	within30 := recencyPenalty(now.Add(-15*24*time.Hour), now)
	if within30 <= 0 || within30 > 0.3 {
		t.Errorf("30-day penalty = %v, want in (0, 0.3]", within30)
	}

	within7 := recencyPenalty(now.Add(-2*24*time.Hour), now)
	if within7 <= 0.5 {
		t.Errorf("7-day penalty = %v, want > 0.5 (flat penalty applies)", within7)
	}
}

func TestQuarterBonus(t *testing.T) {
	if got := quarterBonus("Q1", "Q1"); got != quarterMatchBonus {
		t.Errorf("exact match bonus = %v, want %v", got, quarterMatchBonus)
	}
	if got := quarterBonus("Q1", "Q2"); got != 0 {
		t.Errorf("mismatch bonus = %v, want 0", got)
	}
	if got := quarterBonus("Q1", "ANY"); got != 0 {
		t.Errorf("ANY request bonus = %v, want 0", got)
	}
}

func TestSuccessAndRatingBonuses(t *testing.T) {
	if got := successBonus(0, 0); got != 0 {
		t.Errorf("unplayed success bonus = %v, want 0", got)
	}
	if got := successBonus(40, 50); got != 0.15*0.8 {
		t.Errorf("success bonus = %v, want %v", got, 0.15*0.8)
	}
	if got := ratingBonus(0, 0); got != 0 {
		t.Errorf("unrated bonus = %v, want 0", got)
	}
	if got := ratingBonus(10, 2); got != 0.1 {
		t.Errorf("5-star bonus = %v, want 0.1", got)
	}
}
