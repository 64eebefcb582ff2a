package scoring

// BudgetScore records the budget adjustment chain.
type BudgetScore struct {
	Raw            int     `json:"raw"`
	Viability      string  `json:"viability"`
	Risk           string  `json:"risk"`
	ExpensiveGoals int     `json:"expensive_goals"`
	Adjusted       float64 `json:"adjusted"`
	Final          int     `json:"final"`
}

// BudgetScore computes the budget sub-score, penalizing expensive goals on
// a limited budget and rewarding them when the budget actually covers them.
func (s *Scorer) BudgetScore(answers AnswerSet) BudgetScore {
	a := answers.Normalized()

	rule, ok := s.rules.Budget[a.Budget]
	if !ok {
		rule = BudgetRule{Score: 0, Viability: QualifierUnknown}
	}

	result := BudgetScore{
		Raw:            rule.Score,
		Viability:      rule.Viability,
		Risk:           rule.Risk,
		ExpensiveGoals: a.countGoals(GoalApp, GoalAutomate, GoalBrand),
	}

	adjusted := float64(rule.Score)
	if result.ExpensiveGoals > 0 && rule.Viability == "limited" {
		adjusted *= 0.5
	} else if result.ExpensiveGoals > 1 && rule.Viability == "moderate" {
		adjusted *= 0.8
	}
	if result.ExpensiveGoals > 0 && rule.Viability == "excellent" {
		adjusted *= 1.1
	}

	result.Adjusted = adjusted
	result.Final = clampRound(adjusted, 0, 100)
	return result
}
