package scoring

// DimensionBreakdown is the per-dimension entry of the overall breakdown.
// Qualifier fields are populated only for the dimensions they apply to.
type DimensionBreakdown struct {
	Score         int     `json:"score"`
	Weight        float64 `json:"weight"`
	WeightedScore float64 `json:"weighted_score"`
	Readiness     string  `json:"readiness,omitempty"`
	Gap           string  `json:"gap,omitempty"`
	Viability     string  `json:"viability,omitempty"`
	Risk          string  `json:"risk,omitempty"`
	Specificity   string  `json:"specificity,omitempty"`
	Urgency       string  `json:"urgency,omitempty"`
}

// Breakdown lists the four weighted dimensions in their fixed order.
type Breakdown struct {
	Goals         DimensionBreakdown `json:"goals"`
	DigitalStatus DimensionBreakdown `json:"digital_status"`
	Budget        DimensionBreakdown `json:"budget"`
	Challenge     DimensionBreakdown `json:"challenge"`
}

// Category is one of five labeled bands over the 0-100 score range.
type Category struct {
	Level string `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// ScoreResult is the full outcome of an overall-score evaluation.
type ScoreResult struct {
	TotalScore      int               `json:"total_score"`
	Breakdown       Breakdown         `json:"breakdown"`
	Category        Category          `json:"category"`
	Recommendations RecommendationSet `json:"recommendations"`
}

// CalculateOverallScore produces the weighted overall score, category band
// and recommendations for an answer set. It never fails: unrecognized tags
// score zero with an "unknown" qualifier.
func (s *Scorer) CalculateOverallScore(answers AnswerSet) ScoreResult {
	a := answers.Normalized()
	w := s.rules.Weights

	goals := s.GoalsScore(a)
	status := s.StatusScore(a)
	budget := s.BudgetScore(a)
	challenge := s.ChallengeScore(a)

	breakdown := Breakdown{
		Goals: DimensionBreakdown{
			Score:         goals.Final,
			Weight:        w.Goals,
			WeightedScore: float64(goals.Final) * w.Goals,
		},
		DigitalStatus: DimensionBreakdown{
			Score:         status.Final,
			Weight:        w.DigitalStatus,
			WeightedScore: float64(status.Final) * w.DigitalStatus,
			Readiness:     status.Readiness,
			Gap:           status.Gap,
		},
		Budget: DimensionBreakdown{
			Score:         budget.Final,
			Weight:        w.Budget,
			WeightedScore: float64(budget.Final) * w.Budget,
			Viability:     budget.Viability,
			Risk:          budget.Risk,
		},
		Challenge: DimensionBreakdown{
			Score:         challenge.Final,
			Weight:        w.Challenge,
			WeightedScore: float64(challenge.Final) * w.Challenge,
			Specificity:   challenge.Specificity,
			Urgency:       challenge.Urgency,
		},
	}

	total := breakdown.Goals.WeightedScore +
		breakdown.DigitalStatus.WeightedScore +
		breakdown.Budget.WeightedScore +
		breakdown.Challenge.WeightedScore

	totalScore := clampRound(total, 0, 100)

	return ScoreResult{
		TotalScore:      totalScore,
		Breakdown:       breakdown,
		Category:        categoryFor(total),
		Recommendations: s.Recommendations(totalScore, a),
	}
}

// ScoreCategory maps an integer score onto its category band.
func ScoreCategory(score int) Category {
	return categoryFor(float64(score))
}

// categoryFor bands the raw weighted total before rounding, matching the
// boundaries the business tuned (80/60/40/20).
func categoryFor(score float64) Category {
	switch {
	case score >= 80:
		return Category{Level: "high", Label: "Digitally Ready", Color: "#10b981"}
	case score >= 60:
		return Category{Level: "medium-high", Label: "Nearly Ready", Color: "#3b82f6"}
	case score >= 40:
		return Category{Level: "medium", Label: "Getting Started", Color: "#f59e0b"}
	case score >= 20:
		return Category{Level: "low-medium", Label: "Early Stage", Color: "#ef4444"}
	default:
		return Category{Level: "low", Label: "Just Beginning", Color: "#6b7280"}
	}
}
