package rotation

import (
	"testing"

	"github.com/lernzeit/lernzeit/internal/diversity"
)

func cand(hash string, values, clusters map[string]string) candidate {
	return candidate{
		combo: diversity.Combination{
			Values:   values,
			Clusters: clusters,
		},
		hash:       hash,
		complexity: complexityOf(values),
	}
}

func TestPickStrategyBands(t *testing.T) {
	cases := []struct {
		r    float64
		want strategy
	}{
		{0.0, strategySequential},
		{0.29, strategySequential},
		{0.3, strategySemantic},
		{0.69, strategySemantic},
		{0.7, strategyAdaptive},
		{0.89, strategyAdaptive},
		{0.9, strategyCognitiveLoad},
		{0.999, strategyCognitiveLoad},
	}
	for _, tc := range cases {
		if got := pickStrategy(tc.r); got != tc.want {
			t.Errorf("pickStrategy(%v) = %s, want %s", tc.r, got, tc.want)
		}
	}
}

func TestFilterSequentialRejectsOverlap(t *testing.T) {
	recent := []Entry{
		{Values: map[string]string{"location": "Bäckerei", "character": "Anna"}},
	}
	candidates := []candidate{
		cand("same-place", map[string]string{"location": "Bäckerei", "character": "Ben"}, nil),
		cand("new-place", map[string]string{"location": "Zoo", "character": "Ben"}, nil),
	}

	got := filterSequential(candidates, recent)
	if len(got) != 1 || got[0].hash != "new-place" {
		t.Fatalf("filterSequential kept %v, want only new-place", hashes(got))
	}
}

func TestFilterSemanticPrefersUnseenClusters(t *testing.T) {
	recent := []Entry{
		{Clusters: map[string]string{"location": "essen"}},
	}
	candidates := []candidate{
		cand("food", nil, map[string]string{"location": "essen"}),
		cand("animals", nil, map[string]string{"location": "tiere"}),
		cand("plain", map[string]string{"location": "Schule"}, nil),
	}

	got := filterSemantic(candidates, recent)
	want := map[string]bool{"animals": true, "plain": true}
	if len(got) != 2 {
		t.Fatalf("filterSemantic kept %v, want animals and plain", hashes(got))
	}
	for _, c := range got {
		if !want[c.hash] {
			t.Errorf("unexpected candidate %s", c.hash)
		}
	}
}

func TestFilterAdaptive(t *testing.T) {
	candidates := []candidate{
		cand("a", nil, nil),
		cand("b", nil, nil),
	}
	got := filterAdaptive(candidates, map[string]bool{"b": true})
	if len(got) != 1 || got[0].hash != "b" {
		t.Fatalf("filterAdaptive kept %v, want only b", hashes(got))
	}
}

func TestFilterCognitiveLoadBalances(t *testing.T) {
	simple := candidate{hash: "simple", complexity: 0.2}
	hard := candidate{hash: "hard", complexity: 0.9}
	candidates := []candidate{simple, hard}

	afterHard := filterCognitiveLoad(candidates, []Entry{{Complexity: 0.9}, {Complexity: 0.8}})
	if len(afterHard) != 1 || afterHard[0].hash != "simple" {
		t.Errorf("after demanding contexts kept %v, want simple", hashes(afterHard))
	}

	afterSimple := filterCognitiveLoad(candidates, []Entry{{Complexity: 0.1}, {Complexity: 0.2}})
	if len(afterSimple) != 1 || afterSimple[0].hash != "hard" {
		t.Errorf("after simple contexts kept %v, want hard", hashes(afterSimple))
	}

	mid := filterCognitiveLoad(candidates, []Entry{{Complexity: 0.5}})
	if len(mid) != 2 {
		t.Errorf("mid band should pass all candidates, kept %v", hashes(mid))
	}
}

func TestValueOverlap(t *testing.T) {
	a := map[string]string{"location": "Zoo", "character": "Anna"}
	b := map[string]string{"location": "Zoo", "character": "Ben"}
	if got := valueOverlap(a, b); got != 0.5 {
		t.Errorf("overlap = %v, want 0.5", got)
	}
	if got := valueOverlap(a, nil); got != 0 {
		t.Errorf("overlap with empty = %v, want 0", got)
	}
}

func hashes(cs []candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.hash
	}
	return out
}
