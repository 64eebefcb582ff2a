package scoring

// StatusScore records the digital-status adjustment chain.
type StatusScore struct {
	Raw       int     `json:"raw"`
	Readiness string  `json:"readiness"`
	Gap       string  `json:"gap"`
	Adjusted  float64 `json:"adjusted"`
	Final     int     `json:"final"`
}

// StatusScore computes the digital-status sub-score. Advanced goals paired
// with a low-maturity presence widen the gap and pull the score down.
func (s *Scorer) StatusScore(answers AnswerSet) StatusScore {
	a := answers.Normalized()

	rule, ok := s.rules.DigitalStatus[a.DigitalStatus]
	if !ok {
		rule = StatusRule{Score: 0, Readiness: QualifierUnknown}
	}

	result := StatusScore{
		Raw:       rule.Score,
		Readiness: rule.Readiness,
		Gap:       rule.Gap,
	}

	adjusted := float64(rule.Score)
	advancedGoals := a.countGoals(GoalApp, GoalAutomate)
	if advancedGoals > 0 && rule.Readiness == "low" {
		adjusted *= 0.7
	} else if advancedGoals > 0 && rule.Readiness == "emerging" {
		adjusted *= 0.85
	}

	result.Adjusted = adjusted
	result.Final = clampRound(adjusted, 0, 100)
	return result
}
