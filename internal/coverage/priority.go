package coverage

import "github.com/lernzeit/lernzeit/internal/curriculum"

// Priority classifies how urgently a gap should be filled.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// calculatePriority applies the gap priority rule:
//   - HIGH for empty cells in the two arithmetic core domains
//   - HIGH for primary grades (<=4) with fewer than 2 templates
//   - MEDIUM for partially filled cells (1-3 templates)
//   - LOW otherwise
func calculatePriority(grade int, domain curriculum.Domain, currentCount int) Priority {
	if currentCount == 0 && (domain == curriculum.DomainZahlen || domain == curriculum.DomainGroessen) {
		return PriorityHigh
	}
	if grade <= 4 && currentCount < 2 {
		return PriorityHigh
	}
	if currentCount > 0 && currentCount < 4 {
		return PriorityMedium
	}
	return PriorityLow
}
