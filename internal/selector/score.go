package selector

import (
	"time"

	"github.com/lernzeit/lernzeit/internal/store"
)

// Scoring weights. The weighted sum starts from a neutral base and is
// clamped to [0,1]; each term is a named function so it can be tested in
// isolation.
const (
	scoreBase = 0.5

	antiRepetitionWeight = 0.7
	recencyWeight        = 0.3
	recencyRecentPenalty = 0.5
	qualityWeight        = 0.2
	successWeight        = 0.15
	ratingWeight         = 0.1
	quarterMatchBonus    = 0.1

	// playsSaturation is the play count at which the anti-repetition bonus
	// bottoms out.
	playsSaturation = 100

	recencyWindow       = 30 * 24 * time.Hour
	recencyRecentWindow = 7 * 24 * time.Hour
)

type scoredTemplate struct {
	template store.TemplateRecord
	score    float64
}

// calculateTemplateScore combines all scoring terms for one template.
// lastUsed is the zero time when the user never touched the template in
// the history window. Deterministic for fixed inputs.
func calculateTemplateScore(t store.TemplateRecord, quarter string, lastUsed time.Time, now time.Time) float64 {
	score := scoreBase +
		antiRepetitionBonus(t.Plays) -
		recencyPenalty(lastUsed, now) +
		qualityBonus(t.QualityScore) +
		successBonus(t.Correct, t.Plays) +
		ratingBonus(t.RatingSum, t.RatingCount) +
		quarterBonus(t.QuarterApp, quarter)

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// antiRepetitionBonus rewards rarely played templates, linearly fading to
// zero at playsSaturation plays.
func antiRepetitionBonus(plays int) float64 {
	fresh := 1 - float64(plays)/playsSaturation
	if fresh < 0 {
		fresh = 0
	}
	return antiRepetitionWeight * fresh
}

// recencyPenalty punishes templates the user saw inside the recency
// window, decaying linearly with age, with an extra flat penalty for the
// last seven days.
func recencyPenalty(lastUsed time.Time, now time.Time) float64 {
	if lastUsed.IsZero() {
		return 0
	}
	age := now.Sub(lastUsed)
	if age < 0 || age >= recencyWindow {
		return 0
	}

	penalty := recencyWeight * (1 - float64(age)/float64(recencyWindow))
	if age < recencyRecentWindow {
		penalty += recencyRecentPenalty
	}
	return penalty
}

func qualityBonus(quality float64) float64 {
	return qualityWeight * quality
}

// successBonus rewards templates students tend to answer correctly.
// Unplayed templates earn nothing here; the anti-repetition bonus already
// favors them.
func successBonus(correct, plays int) float64 {
	if plays == 0 {
		return 0
	}
	return successWeight * float64(correct) / float64(plays)
}

// ratingBonus maps the average 1-5 star rating onto its weight. Unrated
// templates earn nothing.
func ratingBonus(ratingSum, ratingCount int) float64 {
	if ratingCount == 0 {
		return 0
	}
	avg := float64(ratingSum) / float64(ratingCount)
	return ratingWeight * avg / 5
}

// quarterBonus rewards an exact quarter match. "ANY" requests never match
// exactly.
func quarterBonus(templateQuarter, requestedQuarter string) float64 {
	if requestedQuarter == "" || requestedQuarter == "ANY" {
		return 0
	}
	if templateQuarter == requestedQuarter {
		return quarterMatchBonus
	}
	return 0
}
