package rotation

import "github.com/lernzeit/lernzeit/internal/diversity"

// Composite score weights. Diversity against the immediate past dominates,
// freshness and quality temper it, and a small progression term nudges
// complexity upward over time.
const (
	weightDiversity   = 0.4
	weightFreshness   = 0.3
	weightQuality     = 0.2
	weightProgression = 0.1

	// progressionStep is how far above the recent average complexity the
	// ideal next context sits.
	progressionStep = 0.1
)

// selectOptimalContext returns the candidate with the highest composite
// score against the most recent entries. Ties keep the earlier candidate.
func selectOptimalContext(candidates []candidate, recent []Entry) candidate {
	best := candidates[0]
	bestScore := compositeScore(candidates[0], recent)
	for _, c := range candidates[1:] {
		if s := compositeScore(c, recent); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

func compositeScore(c candidate, recent []Entry) float64 {
	return weightDiversity*diversityScore(c, recent) +
		weightFreshness*freshnessScore(c, recent) +
		weightQuality*c.quality +
		weightProgression*progressionScore(c, recent)
}

// diversityScore is the average pairwise distance between the candidate and
// the recent entries. With no history everything is maximally diverse.
func diversityScore(c candidate, recent []Entry) float64 {
	if len(recent) == 0 {
		return 1
	}
	sum := 0.0
	for _, e := range recent {
		sum += diversity.Distance(c.combo, diversity.Combination{
			Values:   e.Values,
			Clusters: e.Clusters,
		})
	}
	return sum / float64(len(recent))
}

// freshnessScore is position-weighted: a context that reappeared most
// recently scores 0, one never seen in the recent list scores 1.
func freshnessScore(c candidate, recent []Entry) float64 {
	for i, e := range recent {
		if e.Hash == c.hash {
			return float64(i) / float64(len(recent))
		}
	}
	return 1
}

// progressionScore rewards complexity close to slightly above the recent
// average, so difficulty ratchets up gently instead of jumping around.
func progressionScore(c candidate, recent []Entry) float64 {
	if len(recent) == 0 {
		return 1
	}
	sum := 0.0
	for _, e := range recent {
		sum += e.Complexity
	}
	target := sum/float64(len(recent)) + progressionStep
	if target > 1 {
		target = 1
	}

	diff := c.complexity - target
	if diff < 0 {
		diff = -diff
	}
	score := 1 - diff
	if score < 0 {
		score = 0
	}
	return score
}
