package quiz

const (
	defaultScore = 2

	// Priority labels for the multiplicative budget*urgency*complexity
	// score, which spans [1, 64].
	highThreshold   = 32
	mediumThreshold = 12
)

// ComputeScores derives the three sub-scores, each clamped to 1-4.
// Unrecognized or missing answers fall back to the mid-range default.
func ComputeScores(a Answers) Scores {
	return Scores{
		Budget:     lookupScore(budgetScores, a.Investment),
		Urgency:    lookupScore(urgencyScores, a.Timeline),
		Complexity: complexityScore(a.ProjectScope, a.Features),
	}
}

// PriorityScore multiplies the three sub-scores into a value in [1, 64].
func PriorityScore(s Scores) int {
	return s.Budget * s.Urgency * s.Complexity
}

// PriorityLabel maps a priority score to its sales label.
func PriorityLabel(score int) string {
	switch {
	case score >= highThreshold:
		return "high"
	case score >= mediumThreshold:
		return "medium"
	default:
		return "standard"
	}
}

func lookupScore(table map[string]int, answer string) int {
	if v, ok := table[answer]; ok {
		return v
	}
	return defaultScore
}

func complexityScore(scope string, features []string) int {
	score := lookupScore(scopeScores, scope)
	for _, f := range features {
		if complexFeatures[f] {
			score++
			break
		}
	}
	if score > 4 {
		score = 4
	}
	if score < 1 {
		score = 1
	}
	return score
}
