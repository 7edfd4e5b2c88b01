package rewards

// BaseStreakThreshold is the first streak length that earns a bonus.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the current
// streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, a milestone every 5.
	return ((current / 5) + 1) * 5
}

// IsStreakMilestone reports whether the streak length sits exactly on a
// milestone.
func IsStreakMilestone(streak int) bool {
	return streak >= BaseStreakThreshold && streak%5 == 0
}

// StreakBonus returns the bonus minutes for hitting a streak milestone.
// Longer streaks earn more, capped at 5 minutes.
func StreakBonus(streak int) float64 {
	if !IsStreakMilestone(streak) {
		return 0
	}
	bonus := float64(streak) / 5
	if bonus > 5 {
		bonus = 5
	}
	return bonus
}
