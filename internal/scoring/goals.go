package scoring

// GoalsScore records the goal dimension adjustment chain so every step is
// auditable: base points, complexity bonus, impact multiplier, combination
// bonus, focus penalty, then the clamped final value.
type GoalsScore struct {
	Base             int     `json:"base"`
	ComplexityBonus  int     `json:"complexity_bonus"`
	ImpactMultiplier float64 `json:"impact_multiplier"`
	CombinationBonus int     `json:"combination_bonus"`
	FocusPenalty     bool    `json:"focus_penalty"`
	Final            int     `json:"final"`
}

// GoalsScore computes the goal dimension sub-score. Unknown goal tags
// contribute nothing; an empty selection scores zero.
func (s *Scorer) GoalsScore(answers AnswerSet) GoalsScore {
	a := answers.Normalized()
	if len(a.Goals) == 0 {
		return GoalsScore{ImpactMultiplier: 1.0}
	}

	result := GoalsScore{ImpactMultiplier: 1.0}
	for _, goal := range a.Goals {
		rule, ok := s.rules.Goals[goal]
		if !ok {
			continue
		}
		result.Base += rule.Base
		switch rule.Complexity {
		case "high":
			result.ComplexityBonus += 5
		case "medium":
			result.ComplexityBonus += 2
		}
		if rule.Impact == "high" {
			result.ImpactMultiplier += 0.1
		}
	}

	result.CombinationBonus = combinationBonus(a)

	final := float64(result.Base+result.ComplexityBonus)*result.ImpactMultiplier + float64(result.CombinationBonus)
	if len(a.Goals) > 3 {
		// Too many goals dilute focus.
		result.FocusPenalty = true
		final *= 0.9
	}
	result.Final = clampRound(final, 0, 100)
	return result
}

// combinationBonus rewards complementary goal pairings. Each condition is
// independent; all may stack.
func combinationBonus(a AnswerSet) int {
	bonus := 0
	if a.HasGoal(GoalBrand) && a.HasGoal(GoalShowcase) {
		bonus += 8
	}
	if a.HasGoal(GoalMoreCustomers) && a.HasGoal(GoalAutomate) {
		bonus += 10
	}
	if a.HasGoal(GoalApp) && a.HasGoal(GoalBrand) {
		bonus += 12
	}
	// Two or three goals is the focus sweet spot.
	if len(a.Goals) >= 2 && len(a.Goals) <= 3 {
		bonus += 5
	}
	return bonus
}
