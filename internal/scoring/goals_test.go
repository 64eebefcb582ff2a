package scoring

import (
	"math"
	"testing"
)

func TestGoalsScoreEmptySelection(t *testing.T) {
	scorer := NewDefaultScorer()

	if got := scorer.GoalsScore(AnswerSet{}).Final; got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
	if got := scorer.GoalsScore(AnswerSet{Goals: []string{}}).Final; got != 0 {
		t.Fatalf("expected 0 got %d", got)
	}
}

func TestGoalsScoreSingleGoal(t *testing.T) {
	scorer := NewDefaultScorer()

	// (25 base + 2 medium complexity) * 1.1 high impact = 29.7
	result := scorer.GoalsScore(AnswerSet{Goals: []string{GoalMoreCustomers}})
	if result.Final != 30 {
		t.Fatalf("expected 30 got %d", result.Final)
	}
	if result.CombinationBonus != 0 {
		t.Fatalf("expected no combination bonus got %d", result.CombinationBonus)
	}
}

func TestGoalsScoreCombinationBonuses(t *testing.T) {
	scorer := NewDefaultScorer()

	tests := []struct {
		name        string
		goals       []string
		expectBonus int
	}{
		{"brand plus showcase", []string{GoalBrand, GoalShowcase}, 13},      // 8 + sweet spot 5
		{"growth plus automation", []string{GoalMoreCustomers, GoalAutomate}, 15}, // 10 + 5
		{"app plus brand", []string{GoalApp, GoalBrand}, 17},                // 12 + 5
		{"stacked pairs", []string{GoalApp, GoalBrand, GoalShowcase}, 25},   // 12 + 8 + 5
		{"single goal", []string{GoalAutomate}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.GoalsScore(AnswerSet{Goals: tc.goals})
			if result.CombinationBonus != tc.expectBonus {
				t.Fatalf("expected bonus %d got %d", tc.expectBonus, result.CombinationBonus)
			}
		})
	}
}

func TestGoalsScoreFocusPenalty(t *testing.T) {
	scorer := NewDefaultScorer()

	// Four selections (one unknown) trip the penalty; the unknown tag adds
	// no points but still dilutes focus.
	result := scorer.GoalsScore(AnswerSet{
		Goals: []string{GoalShowcase, GoalMoreCustomers, GoalBrand, "megaphone"},
	})
	if !result.FocusPenalty {
		t.Fatal("expected focus penalty to apply")
	}

	prePenalty := float64(result.Base+result.ComplexityBonus)*result.ImpactMultiplier + float64(result.CombinationBonus)
	expected := clampRound(prePenalty*0.9, 0, 100)
	if result.Final != expected {
		t.Fatalf("expected %d got %d", expected, result.Final)
	}
	// (65 + 4) * 1.2 + 8 = 90.8, then * 0.9 = 81.72
	if result.Final != 82 {
		t.Fatalf("expected 82 got %d", result.Final)
	}
	if math.Abs(result.ImpactMultiplier-1.2) > 1e-9 {
		t.Fatalf("expected impact multiplier 1.2 got %v", result.ImpactMultiplier)
	}
}

func TestGoalsScoreClampsAtHundred(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.GoalsScore(AnswerSet{
		Goals: []string{GoalApp, GoalBrand, GoalShowcase, GoalMoreCustomers, GoalAutomate},
	})
	if result.Final != 100 {
		t.Fatalf("expected clamp to 100 got %d", result.Final)
	}
	if !result.FocusPenalty {
		t.Fatal("expected focus penalty with five goals")
	}
}

func TestGoalsScoreDuplicatesIgnored(t *testing.T) {
	scorer := NewDefaultScorer()

	single := scorer.GoalsScore(AnswerSet{Goals: []string{GoalBrand}})
	duplicated := scorer.GoalsScore(AnswerSet{Goals: []string{GoalBrand, GoalBrand, " Brand "}})
	if single.Final != duplicated.Final {
		t.Fatalf("expected duplicates to score as one goal: %d vs %d", single.Final, duplicated.Final)
	}
}
