package selector

import (
	"fmt"
	"testing"

	"github.com/lernzeit/lernzeit/internal/store"
)

func TestApplyDomainDiversityFloor(t *testing.T) {
	scored := []scoredTemplate{
		{template: store.TemplateRecord{ID: 1, Domain: "Zahlen & Operationen"}, score: 0.9},
		{template: store.TemplateRecord{ID: 2, Domain: "Zahlen & Operationen"}, score: 0.8},
		{template: store.TemplateRecord{ID: 3, Domain: "Zahlen & Operationen"}, score: 0.7},
		{template: store.TemplateRecord{ID: 4, Domain: "Raum & Form"}, score: 0.1},
	}

	got := applyDomainDiversity(scored, 2, 3)
	if len(got) != 3 {
		t.Fatalf("selected %d, want 3", len(got))
	}

	domains := make(map[string]bool)
	for _, tmpl := range got {
		domains[tmpl.Domain] = true
	}
	if len(domains) < 2 {
		t.Errorf("selection spans %d domains, want at least 2", len(domains))
	}
}

// Ten templates, four low-play from one domain and six high-play from
// another: with count=4 and a two-domain floor the low-play group dominates
// but both domains appear.
func TestApplyDomainDiversityScenario(t *testing.T) {
	var scored []scoredTemplate
	for i := 0; i < 4; i++ {
		tmpl := store.TemplateRecord{ID: i + 1, Domain: "Zahlen & Operationen", Plays: 0, QualityScore: 0.9}
		scored = append(scored, scoredTemplate{template: tmpl, score: calculateTemplateScore(tmpl, "ANY", zeroTime(), fixedNow())})
	}
	for i := 0; i < 6; i++ {
		tmpl := store.TemplateRecord{ID: i + 5, Domain: "Größen & Messen", Plays: 50, QualityScore: 0.9}
		scored = append(scored, scoredTemplate{template: tmpl, score: calculateTemplateScore(tmpl, "ANY", zeroTime(), fixedNow())})
	}

	got := applyDomainDiversity(scored, 2, 4)
	if len(got) != 4 {
		t.Fatalf("selected %d, want 4", len(got))
	}

	counts := map[string]int{}
	for _, tmpl := range got {
		counts[tmpl.Domain]++
	}
	if counts["Zahlen & Operationen"] < 1 || counts["Größen & Messen"] < 1 {
		t.Fatalf("both domains must appear, got %v", counts)
	}
	if counts["Zahlen & Operationen"] < counts["Größen & Messen"] {
		t.Errorf("low-play domain should dominate, got %v", counts)
	}
}

func TestApplyDomainDiversityShortPool(t *testing.T) {
	scored := []scoredTemplate{
		{template: store.TemplateRecord{ID: 1, Domain: "Raum & Form"}, score: 0.5},
	}
	if got := applyDomainDiversity(scored, 3, 5); len(got) != 1 {
		t.Errorf("selected %d from a pool of 1, want 1", len(got))
	}
}

func TestApplyDomainDiversityNoDuplicates(t *testing.T) {
	var scored []scoredTemplate
	for i := 0; i < 8; i++ {
		scored = append(scored, scoredTemplate{
			template: store.TemplateRecord{ID: i + 1, Domain: fmt.Sprintf("domain-%d", i%3)},
			score:    float64(i) / 10,
		})
	}

	got := applyDomainDiversity(scored, 3, 8)
	seen := make(map[int]bool)
	for _, tmpl := range got {
		if seen[tmpl.ID] {
			t.Fatalf("template %d selected twice", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}
