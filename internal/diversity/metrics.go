package diversity

import "context"

// Metrics summarizes how varied a user's recent contexts were.
type Metrics struct {
	// RepetitionRate is 1 - unique/total over the trailing window.
	// 0 means every served context was distinct.
	RepetitionRate float64

	// SemanticDistance is the average pairwise distance between recent
	// combinations, in [0,1].
	SemanticDistance float64

	// FamilyCoverage is the fraction of available scenario families the
	// user has seen inside the window.
	FamilyCoverage float64

	// EngagementScore folds the three into a single signal:
	// (1-RepetitionRate) * SemanticDistance * (FamilyCoverage+0.1).
	EngagementScore float64

	// WindowSize is the number of history rows the metrics are based on.
	WindowSize int
}

// CalculateMetrics computes diversity metrics over the user's history
// window. Store errors degrade to zeroed metrics.
func (e *Engine) CalculateMetrics(ctx context.Context) Metrics {
	since := e.now().Add(-e.cfg.HistoryWindow)
	history, err := e.contexts.HistoryFor(ctx, e.cfg.UserID, e.cfg.Category, e.cfg.Grade, since)
	if err != nil {
		warnf("fetch history for metrics: %v", err)
		return Metrics{}
	}

	families, err := e.contexts.FamiliesFor(ctx, e.cfg.Category, e.cfg.Grade)
	if err != nil {
		warnf("fetch families for metrics: %v", err)
		families = nil
	}

	combos := make([]Combination, 0, len(history))
	hashes := make([]string, 0, len(history))
	usedFamilies := make(map[int]bool)
	for _, h := range history {
		combos = append(combos, Combination{FamilyID: h.ScenarioFamilyID, Values: h.Combination})
		hashes = append(hashes, h.CombinationHash)
		usedFamilies[h.ScenarioFamilyID] = true
	}

	m := Metrics{
		RepetitionRate:   RepetitionRate(hashes),
		SemanticDistance: AveragePairwiseDistance(combos),
		WindowSize:       len(history),
	}
	if len(families) > 0 {
		m.FamilyCoverage = float64(len(usedFamilies)) / float64(len(families))
	}
	m.EngagementScore = (1 - m.RepetitionRate) * m.SemanticDistance * (m.FamilyCoverage + 0.1)
	return m
}

// RepetitionRate is 1 - unique/total. An empty window scores 0.
func RepetitionRate(hashes []string) float64 {
	if len(hashes) == 0 {
		return 0
	}
	unique := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		unique[h] = true
	}
	return 1 - float64(len(unique))/float64(len(hashes))
}

// AveragePairwiseDistance averages Distance over all combination pairs.
// Fewer than two combinations score the neutral maximum of 1.
func AveragePairwiseDistance(combos []Combination) float64 {
	if len(combos) < 2 {
		return 1
	}
	var sum float64
	var pairs int
	for i := 0; i < len(combos); i++ {
		for j := i + 1; j < len(combos); j++ {
			sum += Distance(combos[i], combos[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}

// Distance scores how different two combinations feel, averaged over their
// shared dimensions. With cluster data, same cluster scores 0.2 and
// different clusters 1.0. Without cluster data the values themselves are
// compared: equal scores 0.1, different 0.8. Combinations with no shared
// dimensions are maximally distant.
func Distance(a, b Combination) float64 {
	var sum float64
	var shared int

	for dim, av := range a.Values {
		bv, ok := b.Values[dim]
		if !ok {
			continue
		}
		shared++

		ac, aHas := a.Clusters[dim]
		bc, bHas := b.Clusters[dim]
		switch {
		case aHas && bHas && ac == bc:
			sum += 0.2
		case aHas && bHas:
			sum += 1.0
		case av == bv:
			sum += 0.1
		default:
			sum += 0.8
		}
	}

	if shared == 0 {
		return 1
	}
	return sum / float64(shared)
}
