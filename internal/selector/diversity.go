package selector

import (
	"sort"

	"github.com/lernzeit/lernzeit/internal/store"
)

// applyDomainDiversity assembles up to count templates from the scored
// pool. It first pulls the best template from each not-yet-used domain
// until minDomains distinct domains are represented (or no unused domain
// remains), then fills the rest purely by score.
func applyDomainDiversity(scored []scoredTemplate, minDomains, count int) []store.TemplateRecord {
	sorted := make([]scoredTemplate, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].score > sorted[j].score
	})

	selected := make([]store.TemplateRecord, 0, count)
	taken := make(map[int]bool)
	usedDomains := make(map[string]bool)

	// Diversity phase: best template per unused domain.
	for len(selected) < count && len(usedDomains) < minDomains {
		picked := false
		for _, st := range sorted {
			if taken[st.template.ID] || usedDomains[st.template.Domain] {
				continue
			}
			selected = append(selected, st.template)
			taken[st.template.ID] = true
			usedDomains[st.template.Domain] = true
			picked = true
			break
		}
		if !picked {
			break
		}
	}

	// Fill phase: remaining slots by score.
	for _, st := range sorted {
		if len(selected) == count {
			break
		}
		if taken[st.template.ID] {
			continue
		}
		selected = append(selected, st.template)
		taken[st.template.ID] = true
	}

	return selected
}
