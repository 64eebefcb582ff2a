package scoring

// ChallengeScore records the challenge adjustment chain.
type ChallengeScore struct {
	Raw         int     `json:"raw"`
	Specificity string  `json:"specificity"`
	Urgency     string  `json:"urgency"`
	Adjusted    float64 `json:"adjusted"`
	Final       int     `json:"final"`
}

// ChallengeScore computes the challenge sub-score with a bonus when the
// stated problem lines up with a goal that directly addresses it.
func (s *Scorer) ChallengeScore(answers AnswerSet) ChallengeScore {
	a := answers.Normalized()

	rule, ok := s.rules.Challenge[a.Challenge]
	if !ok {
		rule = ChallengeRule{Score: 0, Specificity: QualifierUnknown}
	}

	result := ChallengeScore{
		Raw:         rule.Score,
		Specificity: rule.Specificity,
		Urgency:     rule.Urgency,
	}

	adjusted := float64(rule.Score)
	if a.Challenge == ChallengeNoLeads && a.HasGoal(GoalMoreCustomers) {
		adjusted *= 1.15
	}
	if a.Challenge == ChallengeLowSales && a.HasGoal(GoalAutomate) {
		adjusted *= 1.1
	}

	result.Adjusted = adjusted
	result.Final = clampRound(adjusted, 0, 100)
	return result
}
