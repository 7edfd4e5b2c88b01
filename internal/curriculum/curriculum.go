package curriculum

import (
	"fmt"
	"sort"
)

// Quarter is a school-year quarter.
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// AllQuarters returns the quarters in school-year order.
func AllQuarters() []Quarter {
	return []Quarter{Q1, Q2, Q3, Q4}
}

// Domain is a curriculum subject area.
type Domain string

const (
	DomainZahlen      Domain = "Zahlen & Operationen"
	DomainGroessen    Domain = "Größen & Messen"
	DomainRaumForm    Domain = "Raum & Form"
	DomainDaten       Domain = "Daten & Zufall"
	DomainGleichungen Domain = "Gleichungen & Funktionen"
)

// Difficulty is an AFB (Anforderungsbereich) level.
type Difficulty string

const (
	AFB1 Difficulty = "AFB I"
	AFB2 Difficulty = "AFB II"
	AFB3 Difficulty = "AFB III"
)

// AllDifficulties returns the difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{AFB1, AFB2, AFB3}
}

// QuestionType is a supported question rendering/answer format.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTextInput      QuestionType = "text-input"
	TypeSort           QuestionType = "sort"
	TypeMatching       QuestionType = "matching"
)

// AllQuestionTypes returns all supported question types.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeTextInput, TypeSort, TypeMatching}
}

// Item is one skill entry of the curriculum.
// Identity is (Grade, Quarter, Domain, Subcategory).
type Item struct {
	Grade       int
	Quarter     Quarter
	Domain      Domain
	Subcategory string
	Skill       string
	Tags        []string
}

// Key identifies a (grade, quarter, domain) cell of the curriculum space.
type Key struct {
	Grade   int
	Quarter Quarter
	Domain  Domain
}

// table holds the curriculum with precomputed indices.
type table struct {
	items   []Item
	byCell  map[Key][]Item
	domains map[int]map[Quarter][]Domain
}

// t is the package-level table singleton, set by init() in seed.go.
var t *table

func buildTable(items []Item) *table {
	tb := &table{
		items:   items,
		byCell:  make(map[Key][]Item),
		domains: make(map[int]map[Quarter][]Domain),
	}

	for _, it := range items {
		k := Key{Grade: it.Grade, Quarter: it.Quarter, Domain: it.Domain}
		tb.byCell[k] = append(tb.byCell[k], it)

		if tb.domains[it.Grade] == nil {
			tb.domains[it.Grade] = make(map[Quarter][]Domain)
		}
		ds := tb.domains[it.Grade][it.Quarter]
		found := false
		for _, d := range ds {
			if d == it.Domain {
				found = true
				break
			}
		}
		if !found {
			tb.domains[it.Grade][it.Quarter] = append(ds, it.Domain)
		}
	}

	// Deterministic domain order per cell.
	for g := range tb.domains {
		for q := range tb.domains[g] {
			ds := tb.domains[g][q]
			sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })
		}
	}

	return tb
}

// AllItems returns every curriculum item.
func AllItems() []Item {
	out := make([]Item, len(t.items))
	copy(out, t.items)
	return out
}

// DomainsFor returns the domains taught in a given grade and quarter.
func DomainsFor(grade int, quarter Quarter) []Domain {
	byQuarter, ok := t.domains[grade]
	if !ok {
		return nil
	}
	ds := byQuarter[quarter]
	out := make([]Domain, len(ds))
	copy(out, ds)
	return out
}

// ItemsFor returns the curriculum items of a (grade, quarter, domain) cell.
func ItemsFor(grade int, quarter Quarter, domain Domain) []Item {
	items := t.byCell[Key{Grade: grade, Quarter: quarter, Domain: domain}]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Subcategories returns the subcategory names of a cell.
func Subcategories(grade int, quarter Quarter, domain Domain) []string {
	items := ItemsFor(grade, quarter, domain)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Subcategory)
	}
	return out
}

// HasCell reports whether the curriculum defines any skill for the cell.
func HasCell(grade int, quarter Quarter, domain Domain) bool {
	return len(t.byCell[Key{Grade: grade, Quarter: quarter, Domain: domain}]) > 0
}

// MinGrade and MaxGrade bound the supported grade range.
const (
	MinGrade = 1
	MaxGrade = 10
)

// validGrade reports whether g lies in the supported range.
func validGrade(g int) bool {
	return g >= MinGrade && g <= MaxGrade
}

// validate checks the seed for structural problems. Called from init();
// a malformed seed is a programming error, so it panics.
func validate(items []Item) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if !validGrade(it.Grade) {
			return fmt.Errorf("item %q: grade %d out of range", it.Subcategory, it.Grade)
		}
		switch it.Quarter {
		case Q1, Q2, Q3, Q4:
		default:
			return fmt.Errorf("item %q: unknown quarter %q", it.Subcategory, it.Quarter)
		}
		if it.Subcategory == "" || it.Skill == "" {
			return fmt.Errorf("item grade %d %s/%s: empty subcategory or skill", it.Grade, it.Quarter, it.Domain)
		}
		id := fmt.Sprintf("%d|%s|%s|%s", it.Grade, it.Quarter, it.Domain, it.Subcategory)
		if seen[id] {
			return fmt.Errorf("duplicate curriculum item %s", id)
		}
		seen[id] = true
	}
	return nil
}
