package rewards

// MinutesPerCorrect returns the screen-time minutes one correct answer
// earns at the given grade. Older students work on harder material, so a
// correct answer is worth more.
func MinutesPerCorrect(grade int) float64 {
	switch {
	case grade <= 2:
		return 0.5
	case grade <= 4:
		return 0.6
	case grade <= 6:
		return 0.75
	case grade <= 8:
		return 0.9
	default:
		return 1.0
	}
}

// SessionBonus returns the completion bonus in minutes for a finished
// session with the given accuracy (0..1). Sessions below half accuracy
// earn no bonus.
func SessionBonus(accuracy float64) float64 {
	switch {
	case accuracy >= 0.9:
		return 5
	case accuracy >= 0.75:
		return 3
	case accuracy >= 0.5:
		return 1
	default:
		return 0
	}
}
