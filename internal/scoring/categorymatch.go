package scoring

// CategoryMatch expresses how well each service category fits the answer
// set. Each percentage has its own tuned floor and a shared 95 ceiling.
type CategoryMatch struct {
	Marketing int `json:"marketing"`
	Website   int `json:"website"`
	Branding  int `json:"branding"`
}

var (
	marketingBudgetBonus = map[string]int{
		BudgetBelow2K:  10,
		Budget2KTo10K:  15,
		Budget10KTo25K: 20,
		Budget25KPlus:  25,
	}
	marketingStatusBonus = map[string]int{
		StatusNoPresence:   -10,
		StatusBasicSocial:  5,
		StatusBasicWebsite: 10,
		StatusNoResults:    15,
	}
	websiteStatusBonus = map[string]int{
		StatusNoPresence:   25,
		StatusBasicSocial:  20,
		StatusBasicWebsite: 5,
		StatusNoResults:    10,
	}
	websiteBudgetBonus = map[string]int{
		BudgetBelow2K:  15,
		Budget2KTo10K:  20,
		Budget10KTo25K: 15,
		Budget25KPlus:  10,
	}
	brandingBudgetBonus = map[string]int{
		BudgetBelow2K:  5,
		Budget2KTo10K:  10,
		Budget10KTo25K: 20,
		Budget25KPlus:  25,
	}
	brandingStatusBonus = map[string]int{
		StatusNoPresence:   5,
		StatusBasicSocial:  10,
		StatusBasicWebsite: 15,
		StatusNoResults:    20,
	}
)

// CalculateThreeCategoryMatch derives the marketing/website/branding match
// percentages for an answer set.
func (s *Scorer) CalculateThreeCategoryMatch(answers AnswerSet) CategoryMatch {
	a := answers.Normalized()
	return CategoryMatch{
		Marketing: marketingMatch(a),
		Website:   websiteMatch(a),
		Branding:  brandingMatch(a),
	}
}

func marketingMatch(a AnswerSet) int {
	score := 40
	if a.HasGoal(GoalMoreCustomers) {
		score += 25
	}
	if a.HasGoal(GoalShowcase) {
		score += 15
	}
	if a.HasGoal(GoalBrand) {
		score += 10
	}
	if a.Challenge == ChallengeNoLeads {
		score += 20
	}
	if a.Challenge == ChallengeLowSales {
		score += 15
	}
	if bonus, ok := marketingBudgetBonus[a.Budget]; ok {
		score += bonus
	} else {
		score += 10
	}
	score += marketingStatusBonus[a.DigitalStatus]
	return clampInt(score, 25, 95)
}

func websiteMatch(a AnswerSet) int {
	score := 50
	if a.HasGoal(GoalShowcase) {
		score += 20
	}
	if a.HasGoal(GoalMoreCustomers) {
		score += 15
	}
	if a.HasGoal(GoalApp) {
		score += 10
	}
	score += websiteStatusBonus[a.DigitalStatus]
	if bonus, ok := websiteBudgetBonus[a.Budget]; ok {
		score += bonus
	} else {
		score += 10
	}
	if a.Challenge == ChallengeNoLeads {
		score += 10
	}
	if a.Challenge == ChallengeLowSales {
		score += 10
	}
	return clampInt(score, 30, 95)
}

func brandingMatch(a AnswerSet) int {
	score := 35
	if a.HasGoal(GoalBrand) {
		score += 30
	}
	if a.HasGoal(GoalShowcase) {
		score += 15
	}
	if a.HasGoal(GoalApp) {
		score += 10
	}
	if bonus, ok := brandingBudgetBonus[a.Budget]; ok {
		score += bonus
	} else {
		score += 5
	}
	score += brandingStatusBonus[a.DigitalStatus]
	if a.Challenge == ChallengeLowSales {
		score += 15
	}
	if a.Challenge == ChallengeNoLeads {
		score += 10
	}
	return clampInt(score, 20, 95)
}
