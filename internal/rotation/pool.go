package rotation

import (
	"time"

	"github.com/lernzeit/lernzeit/internal/diversity"
	"github.com/lernzeit/lernzeit/internal/store"
)

const (
	// maxRecent bounds the rolling list of recently served contexts.
	maxRecent = 20

	// recalcEvery is the number of additions between preferred/banned
	// set recalculations.
	recalcEvery = 10

	// maxPreferred caps the preferred set.
	maxPreferred = 10

	// Occurrence thresholds over the history window. Contexts seen 2-4
	// times sit in the familiarity sweet spot; more than 5 is overused.
	preferredMin = 2
	preferredMax = 4
	bannedAbove  = 5
)

// Entry is one context the user has recently seen.
type Entry struct {
	Hash       string
	Values     map[string]string
	Clusters   map[string]string
	FamilyID   int
	Complexity float64
	At         time.Time
}

// Pool is the per-user rolling view of recent, preferred and banned
// contexts. It is rebuilt from persisted history on first access and kept
// up to date in memory afterwards.
type Pool struct {
	// Recent holds up to maxRecent entries, newest first.
	Recent []Entry

	// Preferred and Banned are combination hashes.
	Preferred map[string]bool
	Banned    map[string]bool

	LastRotation time.Time

	counts    map[string]int
	additions int
}

// buildPool derives a Pool from the user's history rows (newest first, as
// returned by the store).
func buildPool(history []store.ContextHistoryRecord, now time.Time) *Pool {
	p := &Pool{
		Preferred:    make(map[string]bool),
		Banned:       make(map[string]bool),
		counts:       make(map[string]int),
		LastRotation: now,
	}

	for _, h := range history {
		p.counts[h.CombinationHash]++
		if len(p.Recent) < maxRecent {
			p.Recent = append(p.Recent, Entry{
				Hash:       h.CombinationHash,
				Values:     h.Combination,
				FamilyID:   h.ScenarioFamilyID,
				Complexity: complexityOf(h.Combination),
				At:         h.CreatedAt,
			})
		}
	}

	p.recalcSets()
	return p
}

// Add records a freshly served combination.
func (p *Pool) Add(combo diversity.Combination, now time.Time) {
	entry := Entry{
		Hash:       combo.Hash(),
		Values:     combo.Values,
		Clusters:   combo.Clusters,
		FamilyID:   combo.FamilyID,
		Complexity: complexityOf(combo.Values),
		At:         now,
	}

	p.Recent = append([]Entry{entry}, p.Recent...)
	if len(p.Recent) > maxRecent {
		p.Recent = p.Recent[:maxRecent]
	}

	p.counts[entry.Hash]++
	p.LastRotation = now

	p.additions++
	if p.additions%recalcEvery == 0 {
		p.recalcSets()
	}
}

// recalcSets rebuilds the preferred and banned sets from occurrence counts.
func (p *Pool) recalcSets() {
	preferred := make(map[string]bool)
	banned := make(map[string]bool)

	// Walk recent-first so the preferred cap keeps the freshest contexts.
	seen := make(map[string]bool)
	consider := func(hash string) {
		if seen[hash] {
			return
		}
		seen[hash] = true
		n := p.counts[hash]
		switch {
		case n > bannedAbove:
			banned[hash] = true
		case n >= preferredMin && n <= preferredMax && len(preferred) < maxPreferred:
			preferred[hash] = true
		}
	}
	for _, e := range p.Recent {
		consider(e.Hash)
	}
	for hash := range p.counts {
		consider(hash)
	}

	p.Preferred = preferred
	p.Banned = banned
}

// lastN returns up to n of the most recent entries.
func (p *Pool) lastN(n int) []Entry {
	if len(p.Recent) < n {
		n = len(p.Recent)
	}
	return p.Recent[:n]
}

// complexityOf estimates the cognitive load of a context combination from
// its breadth and verbosity, clamped to [0,1]. Five filled dimensions with
// long values score 1.
func complexityOf(values map[string]string) float64 {
	totalLen := 0
	for _, v := range values {
		totalLen += len(v)
	}
	c := 0.2*float64(len(values)) + float64(totalLen)/200
	if c > 1 {
		c = 1
	}
	return c
}
