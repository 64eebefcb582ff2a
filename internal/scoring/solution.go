package scoring

// productProfile holds the base match score and declared strength tags per
// product.
type productProfile struct {
	base      int
	strengths []string
}

var productProfiles = map[Product]productProfile{
	ProductDisblay: {base: 60, strengths: []string{GoalShowcase, "basic"}},
	ProductTopiko:  {base: 70, strengths: []string{GoalMoreCustomers, GoalShowcase, GoalBrand}},
	ProductBundle:  {base: 75, strengths: []string{GoalBrand, GoalMoreCustomers}},
	ProductHEBT:    {base: 80, strengths: []string{GoalApp, GoalAutomate}},
}

// Fit matrices tuned per product. Values are additive adjustments in
// roughly [-15,+10]; absent keys contribute zero.
var budgetProductFit = map[string]map[Product]int{
	BudgetBelow2K:  {ProductDisblay: 8, ProductTopiko: -5, ProductBundle: -10, ProductHEBT: -15},
	Budget2KTo10K:  {ProductDisblay: 5, ProductTopiko: 8, ProductBundle: 3, ProductHEBT: -8},
	Budget10KTo25K: {ProductDisblay: 0, ProductTopiko: 5, ProductBundle: 8, ProductHEBT: 3},
	Budget25KPlus:  {ProductDisblay: -3, ProductTopiko: 3, ProductBundle: 5, ProductHEBT: 10},
}

var statusProductFit = map[string]map[Product]int{
	StatusNoPresence:   {ProductDisblay: 5, ProductTopiko: 0, ProductBundle: -3, ProductHEBT: -8},
	StatusBasicSocial:  {ProductDisblay: 3, ProductTopiko: 5, ProductBundle: 3, ProductHEBT: -5},
	StatusBasicWebsite: {ProductDisblay: 0, ProductTopiko: 3, ProductBundle: 5, ProductHEBT: 3},
	StatusNoResults:    {ProductDisblay: -3, ProductTopiko: 5, ProductBundle: 8, ProductHEBT: 8},
}

var challengeProductFit = map[string]map[Product]int{
	ChallengeNoLeads:  {ProductDisblay: 3, ProductTopiko: 8, ProductBundle: 5, ProductHEBT: 5},
	ChallengeLowSales: {ProductDisblay: 5, ProductTopiko: 8, ProductBundle: 8, ProductHEBT: 3},
	ChallengeNoTime:   {ProductDisblay: 8, ProductTopiko: 5, ProductBundle: 3, ProductHEBT: 8},
	ChallengeDontKnow: {ProductDisblay: 5, ProductTopiko: 3, ProductBundle: 0, ProductHEBT: -3},
}

// CalculateSolutionMatchScore expresses the fit between an answer set and
// a recommended product as a bounded percentage in [60,95].
func (s *Scorer) CalculateSolutionMatchScore(answers AnswerSet, product Product) int {
	a := answers.Normalized()

	profile, ok := productProfiles[product]
	if !ok {
		profile = productProfile{base: 65}
	}

	score := float64(profile.base)

	if len(a.Goals) > 0 {
		aligned := 0
		for _, goal := range a.Goals {
			for _, strength := range profile.strengths {
				if goal == strength {
					aligned++
					break
				}
			}
		}
		score += float64(aligned) / float64(len(a.Goals)) * 15
	}

	score += float64(budgetProductFit[a.Budget][product])
	score += float64(statusProductFit[a.DigitalStatus][product])
	score += float64(challengeProductFit[a.Challenge][product])

	return clampRound(score, 60, 95)
}
