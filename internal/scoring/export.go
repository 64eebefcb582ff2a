package scoring

import "time"

// Snapshot bundles every scoring output for one submission, shaped for the
// admin dashboard and persistence.
type Snapshot struct {
	Timestamp     time.Time       `json:"timestamp"`
	SessionID     string          `json:"session_id"`
	Overall       ScoreResult     `json:"overall"`
	Dimensions    DimensionScores `json:"dimensions"`
	CategoryMatch CategoryMatch   `json:"three_category_match"`
	SolutionMatch int             `json:"solution_match"`
	Insights      []Insight       `json:"insights"`
	Answers       AnswerSet       `json:"answers"`
}

// Export runs the full evaluation pipeline for one answer set.
func (s *Scorer) Export(answers AnswerSet, sessionID string) Snapshot {
	a := answers.Normalized()

	overall := s.CalculateOverallScore(a)
	product := overall.Recommendations.ProductSuggestion.Product

	return Snapshot{
		Timestamp:     time.Now().UTC(),
		SessionID:     sessionID,
		Overall:       overall,
		Dimensions:    s.CalculateDimensionScores(a),
		CategoryMatch: s.CalculateThreeCategoryMatch(a),
		SolutionMatch: s.CalculateSolutionMatchScore(a, product),
		Insights:      s.GenerateInsights(overall, a),
		Answers:       a,
	}
}
