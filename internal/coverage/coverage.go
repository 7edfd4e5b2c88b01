package coverage

import (
	"context"
	"fmt"
	"sort"

	"github.com/lernzeit/lernzeit/internal/curriculum"
	"github.com/lernzeit/lernzeit/internal/store"
)

// DefaultTargetPerCell is the canonical number of active templates a
// curriculum cell needs before it counts as covered. The historical edge
// function used 12; the in-app value of 8 is kept as the single source of
// truth (see DESIGN.md).
const DefaultTargetPerCell = 8

// Gap describes a curriculum cell that is short of its template target.
type Gap struct {
	Grade        int
	Quarter      curriculum.Quarter
	Domain       curriculum.Domain
	Subcategory  string // least-represented subcategory of the cell
	Difficulty   curriculum.Difficulty
	QuestionType curriculum.QuestionType
	CurrentCount int
	TargetCount  int
	Priority     Priority
}

// Coverage is the result of a coverage analysis.
type Coverage struct {
	TotalCombinations   int
	CoveredCombinations int
	CoveragePercentage  float64
	Gaps                []Gap
	Recommendations     []string
}

// Analyzer computes curriculum coverage from the template bank.
type Analyzer struct {
	templates store.TemplateRepo
	target    int
}

// NewAnalyzer creates an Analyzer. A target of 0 uses DefaultTargetPerCell.
func NewAnalyzer(templates store.TemplateRepo, target int) *Analyzer {
	if target <= 0 {
		target = DefaultTargetPerCell
	}
	return &Analyzer{templates: templates, target: target}
}

// cellKey identifies one countable combination.
type cellKey struct {
	grade        int
	quarter      curriculum.Quarter
	domain       curriculum.Domain
	difficulty   curriculum.Difficulty
	questionType curriculum.QuestionType
}

// subKey counts templates per subcategory within a cell.
type subKey struct {
	cell cellKey
	sub  string
}

// Analyze compares the template bank against the curriculum. When existing
// is nil the active templates are fetched from the store. The analysis has
// no side effects.
func (a *Analyzer) Analyze(ctx context.Context, existing []store.TemplateRecord) (*Coverage, error) {
	if existing == nil {
		var err error
		existing, err = a.templates.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch active templates: %w", err)
		}
	}

	counts := make(map[cellKey]int)
	subCounts := make(map[subKey]int)
	for _, t := range existing {
		if t.Status != "" && t.Status != store.StatusActive {
			continue
		}
		k := cellKey{
			grade:        t.GradeApp,
			quarter:      curriculum.Quarter(t.QuarterApp),
			domain:       curriculum.Domain(t.Domain),
			difficulty:   curriculum.Difficulty(t.Difficulty),
			questionType: curriculum.QuestionType(t.QuestionType),
		}
		counts[k]++
		subCounts[subKey{cell: k, sub: t.Subcategory}]++
	}

	cov := &Coverage{}
	for grade := curriculum.MinGrade; grade <= curriculum.MaxGrade; grade++ {
		for _, quarter := range curriculum.AllQuarters() {
			for _, domain := range curriculum.DomainsFor(grade, quarter) {
				for _, difficulty := range curriculum.AllDifficulties() {
					for _, qt := range curriculum.AllQuestionTypes() {
						cov.TotalCombinations++
						k := cellKey{grade, quarter, domain, difficulty, qt}
						n := counts[k]
						if n >= a.target {
							cov.CoveredCombinations++
							continue
						}
						cov.Gaps = append(cov.Gaps, Gap{
							Grade:        grade,
							Quarter:      quarter,
							Domain:       domain,
							Subcategory:  a.leastCoveredSubcategory(k, subCounts),
							Difficulty:   difficulty,
							QuestionType: qt,
							CurrentCount: n,
							TargetCount:  a.target,
							Priority:     calculatePriority(grade, domain, n),
						})
					}
				}
			}
		}
	}

	if cov.TotalCombinations > 0 {
		cov.CoveragePercentage = float64(cov.CoveredCombinations) / float64(cov.TotalCombinations) * 100
	}

	sortGaps(cov.Gaps)
	cov.Recommendations = recommendations(cov)
	return cov, nil
}

// leastCoveredSubcategory picks the subcategory of the cell with the fewest
// templates, so generation fills the thinnest spot first.
func (a *Analyzer) leastCoveredSubcategory(k cellKey, subCounts map[subKey]int) string {
	subs := curriculum.Subcategories(k.grade, k.quarter, k.domain)
	if len(subs) == 0 {
		return ""
	}
	best := subs[0]
	bestCount := subCounts[subKey{cell: k, sub: best}]
	for _, s := range subs[1:] {
		if c := subCounts[subKey{cell: k, sub: s}]; c < bestCount {
			best, bestCount = s, c
		}
	}
	return best
}

// sortGaps orders by declared priority (HIGH, MEDIUM, LOW), then by
// curriculum position for a stable, readable listing.
func sortGaps(gaps []Gap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Priority != gaps[j].Priority {
			return gaps[i].Priority.rank() < gaps[j].Priority.rank()
		}
		if gaps[i].Grade != gaps[j].Grade {
			return gaps[i].Grade < gaps[j].Grade
		}
		if gaps[i].Quarter != gaps[j].Quarter {
			return gaps[i].Quarter < gaps[j].Quarter
		}
		if gaps[i].Domain != gaps[j].Domain {
			return gaps[i].Domain < gaps[j].Domain
		}
		if gaps[i].Difficulty != gaps[j].Difficulty {
			return gaps[i].Difficulty < gaps[j].Difficulty
		}
		return gaps[i].QuestionType < gaps[j].QuestionType
	})
}
