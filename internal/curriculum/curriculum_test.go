package curriculum

import "testing"

func TestSeedIsValid(t *testing.T) {
	if err := validate(seedItems()); err != nil {
		t.Fatalf("seed validation failed: %v", err)
	}
}

func TestEveryGradeQuarterHasDomains(t *testing.T) {
	for g := MinGrade; g <= MaxGrade; g++ {
		for _, q := range AllQuarters() {
			ds := DomainsFor(g, q)
			if len(ds) == 0 {
				t.Errorf("grade %d %s: no domains", g, q)
			}
		}
	}
}

func TestDomainsForKnownCells(t *testing.T) {
	ds := DomainsFor(1, Q1)
	want := map[Domain]bool{DomainZahlen: true, DomainRaumForm: true}
	if len(ds) != len(want) {
		t.Fatalf("grade 1 Q1 domains = %v, want %d entries", ds, len(want))
	}
	for _, d := range ds {
		if !want[d] {
			t.Errorf("unexpected domain %q in grade 1 Q1", d)
		}
	}
}

func TestGleichungenStartsInGrade7(t *testing.T) {
	for g := MinGrade; g < 7; g++ {
		for _, q := range AllQuarters() {
			for _, d := range DomainsFor(g, q) {
				if d == DomainGleichungen {
					t.Errorf("grade %d %s unexpectedly teaches %q", g, q, d)
				}
			}
		}
	}

	found := false
	for _, q := range AllQuarters() {
		for _, d := range DomainsFor(7, q) {
			if d == DomainGleichungen {
				found = true
			}
		}
	}
	if !found {
		t.Error("grade 7 should teach Gleichungen & Funktionen")
	}
}

func TestItemsForReturnsCopies(t *testing.T) {
	a := ItemsFor(1, Q1, DomainZahlen)
	if len(a) == 0 {
		t.Fatal("grade 1 Q1 Zahlen has no items")
	}
	a[0].Subcategory = "mutated"

	b := ItemsFor(1, Q1, DomainZahlen)
	if b[0].Subcategory == "mutated" {
		t.Error("ItemsFor leaks internal state")
	}
}

func TestHasCell(t *testing.T) {
	if !HasCell(1, Q1, DomainZahlen) {
		t.Error("grade 1 Q1 Zahlen should exist")
	}
	if HasCell(1, Q1, DomainGleichungen) {
		t.Error("grade 1 Q1 Gleichungen should not exist")
	}
}

func TestValidateRejectsBadItems(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"grade too low", Item{Grade: 0, Quarter: Q1, Domain: DomainZahlen, Subcategory: "x", Skill: "y"}},
		{"grade too high", Item{Grade: 11, Quarter: Q1, Domain: DomainZahlen, Subcategory: "x", Skill: "y"}},
		{"bad quarter", Item{Grade: 1, Quarter: "Q5", Domain: DomainZahlen, Subcategory: "x", Skill: "y"}},
		{"empty subcategory", Item{Grade: 1, Quarter: Q1, Domain: DomainZahlen, Skill: "y"}},
	}
	for _, tc := range cases {
		if err := validate([]Item{tc.item}); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	it := Item{Grade: 1, Quarter: Q1, Domain: DomainZahlen, Subcategory: "x", Skill: "y"}
	if err := validate([]Item{it, it}); err == nil {
		t.Error("expected duplicate error")
	}
}
