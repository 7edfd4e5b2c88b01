package coverage

import (
	"fmt"

	"github.com/lernzeit/lernzeit/internal/curriculum"
)

// recommendations derives human-readable hints for the admin dashboard and
// the batch generator.
func recommendations(cov *Coverage) []string {
	var recs []string

	if cov.CoveragePercentage < 50 {
		recs = append(recs, fmt.Sprintf(
			"Gesamtabdeckung liegt bei %.1f%% — Batch-Generierung über alle Stufen empfohlen",
			cov.CoveragePercentage))
	}

	high := 0
	highByGrade := make(map[int]int)
	missingByDomain := make(map[curriculum.Domain]int)
	for _, g := range cov.Gaps {
		if g.Priority == PriorityHigh {
			high++
			highByGrade[g.Grade]++
		}
		if g.CurrentCount == 0 {
			missingByDomain[g.Domain]++
		}
	}

	if high > 0 {
		recs = append(recs, fmt.Sprintf("%d Lücken mit hoher Priorität zuerst füllen", high))
	}

	worstGrade, worstCount := 0, 0
	for grade, n := range highByGrade {
		if n > worstCount || (n == worstCount && grade < worstGrade) {
			worstGrade, worstCount = grade, n
		}
	}
	if worstCount > 0 {
		recs = append(recs, fmt.Sprintf("Klasse %d hat die meisten dringenden Lücken (%d)", worstGrade, worstCount))
	}

	var worstDomain curriculum.Domain
	worstMissing := 0
	for d, n := range missingByDomain {
		if n > worstMissing || (n == worstMissing && d < worstDomain) {
			worstDomain, worstMissing = d, n
		}
	}
	if worstMissing > 0 {
		recs = append(recs, fmt.Sprintf("%q hat %d komplett leere Zellen", worstDomain, worstMissing))
	}

	if len(recs) == 0 {
		recs = append(recs, "Abdeckung vollständig — keine Generierung nötig")
	}
	return recs
}
