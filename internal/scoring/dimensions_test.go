package scoring

import "testing"

func TestCalculateDimensionScores(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name     string
		answers  AnswerSet
		expected DimensionScores
	}{
		{
			name: "showcase on social profiles",
			answers: AnswerSet{
				Goals:         []string{GoalShowcase},
				DigitalStatus: StatusBasicSocial,
				Budget:        Budget2KTo10K,
				Challenge:     ChallengeDontKnow,
			},
			expected: DimensionScores{Visibility: 65, Engagement: 30, Automation: 10, BrandPresentation: 40},
		},
		{
			name: "automation buyer",
			answers: AnswerSet{
				Goals:         []string{GoalAutomate},
				DigitalStatus: StatusBasicWebsite,
				Budget:        Budget10KTo25K,
				Challenge:     ChallengeNoTime,
			},
			expected: DimensionScores{Visibility: 75, Engagement: 30, Automation: 100, BrandPresentation: 40},
		},
		{
			name: "brand builder with top budget",
			answers: AnswerSet{
				Goals:         []string{GoalBrand, GoalApp},
				DigitalStatus: StatusNoResults,
				Budget:        Budget25KPlus,
				Challenge:     ChallengeLowSales,
			},
			expected: DimensionScores{Visibility: 90, Engagement: 75, Automation: 40, BrandPresentation: 100},
		},
		{
			name:     "unknown tags bottom out",
			answers:  AnswerSet{DigitalStatus: "bogus", Budget: "bogus", Challenge: "bogus"},
			expected: DimensionScores{Visibility: 0, Engagement: 30, Automation: 10, BrandPresentation: 40},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.CalculateDimensionScores(tc.answers)
			if got != tc.expected {
				t.Fatalf("expected %+v got %+v", tc.expected, got)
			}
		})
	}
}

func TestCalculateThreeCategoryMatch(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name     string
		answers  AnswerSet
		expected CategoryMatch
	}{
		{
			name: "new business chasing leads",
			answers: AnswerSet{
				Goals:         []string{GoalMoreCustomers},
				DigitalStatus: StatusNoPresence,
				Budget:        BudgetBelow2K,
				Challenge:     ChallengeNoLeads,
			},
			// marketing 40+25+20+10-10=85; website 50+15+25+15+10=115->95;
			// branding 35+5+5+10=55
			expected: CategoryMatch{Marketing: 85, Website: 95, Branding: 55},
		},
		{
			name: "brand investor",
			answers: AnswerSet{
				Goals:         []string{GoalBrand},
				DigitalStatus: StatusNoResults,
				Budget:        Budget25KPlus,
				Challenge:     ChallengeLowSales,
			},
			// marketing 40+10+15+25+15=105->95; website 50+10+10+10=80;
			// branding 35+30+25+20+15=125->95
			expected: CategoryMatch{Marketing: 95, Website: 80, Branding: 95},
		},
		{
			name:    "empty answers hit the floors or bases",
			answers: AnswerSet{},
			// marketing 40+10(budget fallback)+0=50; website 50+10=60;
			// branding 35+5=40
			expected: CategoryMatch{Marketing: 50, Website: 60, Branding: 40},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.CalculateThreeCategoryMatch(tc.answers)
			if got != tc.expected {
				t.Fatalf("expected %+v got %+v", tc.expected, got)
			}
		})
	}
}

func TestCategoryMatchBounds(t *testing.T) {
	scorer := NewDefaultScorer()

	goalSets := [][]string{
		nil,
		{GoalShowcase, GoalMoreCustomers, GoalBrand, GoalApp, GoalAutomate},
	}
	statuses := []string{StatusNoPresence, StatusBasicSocial, StatusBasicWebsite, StatusNoResults, "bogus"}
	budgets := []string{BudgetBelow2K, Budget2KTo10K, Budget10KTo25K, Budget25KPlus, "bogus"}
	challenges := []string{ChallengeNoLeads, ChallengeDontKnow, ChallengeNoTime, ChallengeLowSales, "bogus"}

	for _, goals := range goalSets {
		for _, status := range statuses {
			for _, budget := range budgets {
				for _, challenge := range challenges {
					answers := AnswerSet{Goals: goals, DigitalStatus: status, Budget: budget, Challenge: challenge}
					got := scorer.CalculateThreeCategoryMatch(answers)
					if got.Marketing < 25 || got.Marketing > 95 {
						t.Fatalf("marketing %d out of range for %+v", got.Marketing, answers)
					}
					if got.Website < 30 || got.Website > 95 {
						t.Fatalf("website %d out of range for %+v", got.Website, answers)
					}
					if got.Branding < 20 || got.Branding > 95 {
						t.Fatalf("branding %d out of range for %+v", got.Branding, answers)
					}
				}
			}
		}
	}
}
