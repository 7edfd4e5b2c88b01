package rotation

import (
	"math"
	"testing"
)

func TestFreshnessScorePositionWeighted(t *testing.T) {
	recent := []Entry{{Hash: "newest"}, {Hash: "middle"}, {Hash: "oldest"}}

	if got := freshnessScore(candidate{hash: "newest"}, recent); got != 0 {
		t.Errorf("freshness of just-seen context = %v, want 0", got)
	}
	if got := freshnessScore(candidate{hash: "oldest"}, recent); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("freshness of oldest = %v, want 2/3", got)
	}
	if got := freshnessScore(candidate{hash: "unseen"}, recent); got != 1 {
		t.Errorf("freshness of unseen context = %v, want 1", got)
	}
}

func TestProgressionScoreTargetsGentleIncrease(t *testing.T) {
	recent := []Entry{{Complexity: 0.4}, {Complexity: 0.4}}

	// Target is 0.5: the candidate sitting right there scores highest.
	onTarget := progressionScore(candidate{complexity: 0.5}, recent)
	tooEasy := progressionScore(candidate{complexity: 0.1}, recent)
	tooHard := progressionScore(candidate{complexity: 1.0}, recent)

	if onTarget != 1 {
		t.Errorf("on-target progression = %v, want 1", onTarget)
	}
	if tooEasy >= onTarget || tooHard >= onTarget {
		t.Errorf("off-target should score lower: easy=%v hard=%v target=%v", tooEasy, tooHard, onTarget)
	}

	if got := progressionScore(candidate{complexity: 0.5}, nil); got != 1 {
		t.Errorf("progression with no history = %v, want 1", got)
	}
}

func TestSelectOptimalContextPrefersDiverseFresh(t *testing.T) {
	recent := []Entry{
		{Hash: "seen", Values: map[string]string{"location": "Bäckerei"}, Complexity: 0.3},
	}
	repeat := cand("seen", map[string]string{"location": "Bäckerei"}, nil)
	fresh := cand("fresh", map[string]string{"location": "Zoo"}, nil)
	repeat.quality = 1
	fresh.quality = 1

	got := selectOptimalContext([]candidate{repeat, fresh}, recent)
	if got.hash != "fresh" {
		t.Errorf("selected %s, want the fresh diverse candidate", got.hash)
	}
}

func TestCompositeScoreBounded(t *testing.T) {
	recent := []Entry{
		{Hash: "a", Values: map[string]string{"location": "Zoo"}, Complexity: 0.5},
	}
	c := cand("b", map[string]string{"location": "Park"}, nil)
	c.quality = 1

	got := compositeScore(c, recent)
	if got < 0 || got > 1 {
		t.Errorf("composite score out of range: %v", got)
	}
}
