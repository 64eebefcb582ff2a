package scoring

// DimensionScores are the four derived capability scores shown alongside
// the weighted total, each clamped to [0,100].
type DimensionScores struct {
	Visibility        int `json:"visibility"`
	Engagement        int `json:"engagement"`
	Automation        int `json:"automation"`
	BrandPresentation int `json:"brand_presentation"`
}

// Display-oriented base values per digital status. These are tuned
// separately from the weighted rule table.
var visibilityStatusBase = map[string]int{
	StatusNoPresence:   20,
	StatusBasicSocial:  50,
	StatusBasicWebsite: 75,
	StatusNoResults:    90,
}

// CalculateDimensionScores derives the visibility, engagement, automation
// and brand-presentation scores for an answer set.
func (s *Scorer) CalculateDimensionScores(answers AnswerSet) DimensionScores {
	a := answers.Normalized()
	return DimensionScores{
		Visibility:        visibilityScore(a),
		Engagement:        engagementScore(a),
		Automation:        automationScore(a),
		BrandPresentation: brandScore(a),
	}
}

func visibilityScore(a AnswerSet) int {
	score := visibilityStatusBase[a.DigitalStatus]
	if a.HasGoal(GoalShowcase) {
		score += 15
	}
	return clampInt(score, 0, 100)
}

func engagementScore(a AnswerSet) int {
	score := 30
	if a.HasGoal(GoalMoreCustomers) {
		score += 30
	}
	if a.HasGoal(GoalBrand) {
		score += 20
	}
	if a.Challenge == ChallengeNoLeads {
		score += 20
	}
	if a.Challenge == ChallengeLowSales {
		score += 25
	}
	return clampInt(score, 0, 100)
}

func automationScore(a AnswerSet) int {
	score := 10
	if a.HasGoal(GoalAutomate) {
		score += 50
	}
	if a.Budget == Budget10KTo25K {
		score += 20
	}
	if a.Budget == Budget25KPlus {
		score += 30
	}
	if a.Challenge == ChallengeNoTime {
		score += 20
	}
	return clampInt(score, 0, 100)
}

func brandScore(a AnswerSet) int {
	score := 40
	if a.HasGoal(GoalBrand) {
		score += 40
	}
	if a.HasGoal(GoalApp) {
		score += 20
	}
	if a.Budget == Budget25KPlus {
		score += 20
	}
	return clampInt(score, 0, 100)
}
