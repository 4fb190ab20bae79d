package domain

// CompletionRate returns the percentage of completed workouts.
// Returns 0 when total is zero.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// GoalProgress returns progress toward a target as a percentage clamped to
// [0, 100]. A non-positive target yields 0.
func GoalProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := current / target * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
