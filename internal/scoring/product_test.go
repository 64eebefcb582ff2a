package scoring

import "testing"

func TestGetProductRecommendationFirstMatchWins(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name    string
		answers AnswerSet
		expect  Product
	}{
		{
			"tiny budget wins entry level",
			AnswerSet{Goals: []string{GoalApp}, Budget: BudgetBelow2K, DigitalStatus: StatusBasicWebsite},
			ProductDisblay,
		},
		{
			"no presence wins entry level even with big budget",
			AnswerSet{Goals: []string{GoalBrand}, Budget: Budget25KPlus, DigitalStatus: StatusNoPresence},
			ProductDisblay,
		},
		{
			"top budget with app goal",
			AnswerSet{Goals: []string{GoalApp}, Budget: Budget25KPlus, DigitalStatus: StatusNoResults},
			ProductHEBT,
		},
		{
			"brand with serious budget",
			AnswerSet{Goals: []string{GoalBrand}, Budget: Budget10KTo25K, DigitalStatus: StatusBasicWebsite},
			ProductBundle,
		},
		{
			"brand with top budget but no app",
			AnswerSet{Goals: []string{GoalBrand}, Budget: Budget25KPlus, DigitalStatus: StatusBasicWebsite},
			ProductBundle,
		},
		{
			"default mid tier",
			AnswerSet{Goals: []string{GoalMoreCustomers}, Budget: Budget2KTo10K, DigitalStatus: StatusBasicSocial},
			ProductTopiko,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := scorer.GetProductRecommendation(50, tc.answers)
			if rec.Product != tc.expect {
				t.Fatalf("expected %q got %q", tc.expect, rec.Product)
			}
			if len(rec.Features) == 0 || rec.Pricing == "" || rec.SetupTime == "" {
				t.Fatalf("expected catalogue data populated, got %+v", rec)
			}
		})
	}
}

func TestCalculateSolutionMatchScore(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name     string
		answers  AnswerSet
		product  Product
		expected int
	}{
		{
			name: "entry product for entry answers",
			answers: AnswerSet{
				Goals:         []string{GoalMoreCustomers},
				DigitalStatus: StatusNoPresence,
				Budget:        BudgetBelow2K,
				Challenge:     ChallengeNoLeads,
			},
			product:  ProductDisblay,
			expected: 76, // 60 + 0 alignment + 8 + 5 + 3
		},
		{
			name: "premium product caps at 95",
			answers: AnswerSet{
				Goals:         []string{GoalApp, GoalBrand},
				DigitalStatus: StatusNoResults,
				Budget:        Budget25KPlus,
				Challenge:     ChallengeDontKnow,
			},
			product:  ProductHEBT,
			expected: 95, // 80 + 7.5 + 10 + 8 - 3 = 102.5, clamped
		},
		{
			name: "mismatched product floors at 60",
			answers: AnswerSet{
				Goals:         []string{GoalShowcase},
				DigitalStatus: StatusNoPresence,
				Budget:        BudgetBelow2K,
				Challenge:     ChallengeDontKnow,
			},
			product:  ProductHEBT,
			expected: 60, // 80 + 0 - 15 - 8 - 3 = 54, clamped up
		},
		{
			name: "unknown product falls back to neutral base",
			answers: AnswerSet{
				Goals:         []string{GoalShowcase},
				DigitalStatus: StatusBasicWebsite,
				Budget:        Budget2KTo10K,
				Challenge:     ChallengeNoTime,
			},
			product:  Product("Mystery"),
			expected: 65,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.CalculateSolutionMatchScore(tc.answers, tc.product)
			if got != tc.expected {
				t.Fatalf("expected %d got %d", tc.expected, got)
			}
		})
	}
}

func TestSolutionMatchBounds(t *testing.T) {
	scorer := NewDefaultScorer()

	products := []Product{ProductDisblay, ProductTopiko, ProductBundle, ProductHEBT, Product("Mystery")}
	answerSets := []AnswerSet{
		{},
		{Goals: []string{"bogus"}, DigitalStatus: "bogus", Budget: "bogus", Challenge: "bogus"},
		{Goals: []string{GoalApp, GoalAutomate}, DigitalStatus: StatusNoResults, Budget: Budget25KPlus, Challenge: ChallengeNoTime},
		{Goals: []string{GoalShowcase}, DigitalStatus: StatusNoPresence, Budget: BudgetBelow2K, Challenge: ChallengeDontKnow},
	}

	for _, product := range products {
		for _, answers := range answerSets {
			got := scorer.CalculateSolutionMatchScore(answers, product)
			if got < 60 || got > 95 {
				t.Fatalf("solution match %d out of range for %q %+v", got, product, answers)
			}
		}
	}
}
