package rotation

// Rotation strategies. Each strategy narrows the candidate set according
// to one heuristic; the engine picks a strategy per slot by weighted
// random draw and falls through to the next-heaviest strategy when the
// chosen one leaves nothing.

type strategy int

const (
	strategySequential strategy = iota
	strategySemantic
	strategyAdaptive
	strategyCognitiveLoad
)

var strategyWeights = []struct {
	s strategy
	w float64
}{
	{strategySequential, 0.3},
	{strategySemantic, 0.4},
	{strategyAdaptive, 0.2},
	{strategyCognitiveLoad, 0.1},
}

// fallbackOrder tries remaining strategies by descending weight.
var fallbackOrder = []strategy{strategySemantic, strategySequential, strategyAdaptive, strategyCognitiveLoad}

// Complexity bands for cognitive load balancing.
const (
	lowComplexity  = 0.4
	highComplexity = 0.6
)

func (s strategy) String() string {
	switch s {
	case strategySequential:
		return "sequential"
	case strategySemantic:
		return "semantic"
	case strategyAdaptive:
		return "adaptive"
	case strategyCognitiveLoad:
		return "cognitive-load"
	}
	return "unknown"
}

// pickStrategy draws a strategy according to the configured weights.
// r is a uniform random value in [0,1).
func pickStrategy(r float64) strategy {
	cum := 0.0
	for _, sw := range strategyWeights {
		cum += sw.w
		if r < cum {
			return sw.s
		}
	}
	return strategyWeights[len(strategyWeights)-1].s
}

// applyStrategy filters candidates with the given strategy against the
// current pool state.
func applyStrategy(s strategy, candidates []candidate, pool *Pool) []candidate {
	switch s {
	case strategySequential:
		return filterSequential(candidates, pool.lastN(5))
	case strategySemantic:
		return filterSemantic(candidates, pool.lastN(5))
	case strategyAdaptive:
		return filterAdaptive(candidates, pool.Preferred)
	case strategyCognitiveLoad:
		return filterCognitiveLoad(candidates, pool.lastN(3))
	}
	return nil
}

// filterSequential keeps candidates whose dimension values overlap less
// than half with each of the most recent contexts, forcing a change of
// scenery from one question to the next.
func filterSequential(candidates []candidate, recent []Entry) []candidate {
	var out []candidate
	for _, c := range candidates {
		ok := true
		for _, e := range recent {
			if valueOverlap(c.combo.Values, e.Values) >= 0.5 {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}

// valueOverlap is the share of dimensions carrying the same value in both
// combinations, relative to the larger combination.
func valueOverlap(a, b map[string]string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	shared := 0
	for k, v := range a {
		if b[k] == v {
			shared++
		}
	}
	max := len(a)
	if len(b) > max {
		max = len(b)
	}
	return float64(shared) / float64(max)
}

// filterSemantic keeps candidates that bring at least one semantic cluster
// the user has not just seen. Candidates without cluster annotations pass
// unfiltered.
func filterSemantic(candidates []candidate, recent []Entry) []candidate {
	seen := make(map[string]bool)
	for _, e := range recent {
		for _, cl := range e.Clusters {
			if cl != "" {
				seen[cl] = true
			}
		}
	}

	var out []candidate
	for _, c := range candidates {
		clustered := false
		fresh := false
		for _, cl := range c.combo.Clusters {
			if cl == "" {
				continue
			}
			clustered = true
			if !seen[cl] {
				fresh = true
				break
			}
		}
		if !clustered || fresh {
			out = append(out, c)
		}
	}
	return out
}

// filterAdaptive keeps candidates the user has responded well to before.
func filterAdaptive(candidates []candidate, preferred map[string]bool) []candidate {
	var out []candidate
	for _, c := range candidates {
		if preferred[c.hash] {
			out = append(out, c)
		}
	}
	return out
}

// filterCognitiveLoad balances complexity: after a run of demanding
// contexts it keeps the simple ones, after simple contexts the demanding
// ones, and passes everything through in the mid band.
func filterCognitiveLoad(candidates []candidate, recent []Entry) []candidate {
	if len(recent) == 0 {
		return candidates
	}
	sum := 0.0
	for _, e := range recent {
		sum += e.Complexity
	}
	avg := sum / float64(len(recent))

	var keep func(c candidate) bool
	switch {
	case avg >= highComplexity:
		keep = func(c candidate) bool { return c.complexity <= lowComplexity }
	case avg <= lowComplexity:
		keep = func(c candidate) bool { return c.complexity >= highComplexity }
	default:
		return candidates
	}

	var out []candidate
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
