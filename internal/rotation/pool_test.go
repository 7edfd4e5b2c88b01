package rotation

import (
	"fmt"
	"testing"
	"time"

	"github.com/lernzeit/lernzeit/internal/diversity"
	"github.com/lernzeit/lernzeit/internal/store"
)

func historyRows(hash string, n int, newest time.Time) []store.ContextHistoryRecord {
	rows := make([]store.ContextHistoryRecord, n)
	for i := range rows {
		rows[i] = store.ContextHistoryRecord{
			UserID:          "u1",
			Category:        "math",
			Grade:           3,
			Combination:     map[string]string{"location": "Bäckerei"},
			CombinationHash: hash,
			CreatedAt:       newest.Add(-time.Duration(i) * time.Hour),
		}
	}
	return rows
}

func TestBuildPoolThresholds(t *testing.T) {
	now := time.Now()
	var history []store.ContextHistoryRecord
	history = append(history, historyRows("worn", 6, now)...)
	history = append(history, historyRows("familiar", 3, now.Add(-24*time.Hour))...)
	history = append(history, historyRows("fresh", 1, now.Add(-48*time.Hour))...)

	p := buildPool(history, now)

	if !p.Banned["worn"] {
		t.Error("context used 6 times should be banned")
	}
	if !p.Preferred["familiar"] {
		t.Error("context used 3 times should be preferred")
	}
	if p.Preferred["fresh"] || p.Banned["fresh"] {
		t.Error("context used once should be neither preferred nor banned")
	}
	if p.Preferred["worn"] {
		t.Error("banned context must not also be preferred")
	}
}

func TestBuildPoolRecentBound(t *testing.T) {
	now := time.Now()
	var history []store.ContextHistoryRecord
	for i := 0; i < 30; i++ {
		history = append(history, store.ContextHistoryRecord{
			CombinationHash: fmt.Sprintf("h%d", i),
			Combination:     map[string]string{"location": fmt.Sprintf("Ort %d", i)},
			CreatedAt:       now.Add(-time.Duration(i) * time.Minute),
		})
	}

	p := buildPool(history, now)
	if len(p.Recent) != maxRecent {
		t.Fatalf("Recent = %d entries, want %d", len(p.Recent), maxRecent)
	}
	if p.Recent[0].Hash != "h0" {
		t.Errorf("newest entry = %s, want h0", p.Recent[0].Hash)
	}
}

func TestPoolAddRecalculatesPeriodically(t *testing.T) {
	now := time.Now()
	p := buildPool(nil, now)

	combo := diversity.Combination{
		FamilyID: 1,
		Values:   map[string]string{"location": "Zoo"},
	}
	hash := combo.Hash()

	// Three additions put the hash in the preferred band, but the sets only
	// refresh on the recalculation boundary.
	for i := 0; i < 3; i++ {
		p.Add(combo, now.Add(time.Duration(i)*time.Minute))
	}
	if p.Preferred[hash] {
		t.Fatal("preferred set refreshed before the recalc boundary")
	}

	other := diversity.Combination{FamilyID: 2, Values: map[string]string{"location": "Park"}}
	for i := 3; i < recalcEvery; i++ {
		p.Add(other, now.Add(time.Duration(i)*time.Minute))
	}
	if !p.Preferred[hash] {
		t.Error("hash with 3 occurrences should be preferred after recalc")
	}
	if !p.Banned[other.Hash()] {
		t.Error("hash with 7 occurrences should be banned after recalc")
	}
}

func TestPoolPreferredCap(t *testing.T) {
	now := time.Now()
	var history []store.ContextHistoryRecord
	for i := 0; i < maxPreferred+5; i++ {
		history = append(history, historyRows(fmt.Sprintf("h%d", i), 2, now)...)
	}

	p := buildPool(history, now)
	if len(p.Preferred) != maxPreferred {
		t.Errorf("preferred set = %d entries, want cap %d", len(p.Preferred), maxPreferred)
	}
}

func TestComplexityOf(t *testing.T) {
	small := complexityOf(map[string]string{"a": "x"})
	large := complexityOf(map[string]string{
		"a": "ein sehr langer Kontextwert",
		"b": "noch ein langer Kontextwert",
		"c": "dritter Wert",
		"d": "vierter Wert",
	})
	if small >= large {
		t.Errorf("complexity should grow with breadth: small=%v large=%v", small, large)
	}
	if large > 1 {
		t.Errorf("complexity above 1: %v", large)
	}

	huge := map[string]string{}
	for i := 0; i < 10; i++ {
		huge[fmt.Sprintf("dim%d", i)] = "sehr sehr sehr sehr langer Wert für die Aufgabe"
	}
	if got := complexityOf(huge); got != 1 {
		t.Errorf("complexity not clamped: %v", got)
	}
}
