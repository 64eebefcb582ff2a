package scoring

import "fmt"

const maxInsights = 5

// Insight is one human-readable takeaway shown on the results screen.
type Insight struct {
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// ActionItem is a single entry in the immediate/short/long-term lists.
type ActionItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// RecommendationSet groups next steps by horizon plus the product match.
type RecommendationSet struct {
	Immediate         []ActionItem   `json:"immediate"`
	ShortTerm         []ActionItem   `json:"short_term"`
	LongTerm          []ActionItem   `json:"long_term"`
	ProductSuggestion Recommendation `json:"product_suggestion"`
}

// Recommendations assembles the horizon-grouped action items and product
// suggestion for an answer set.
func (s *Scorer) Recommendations(score int, answers AnswerSet) RecommendationSet {
	a := answers.Normalized()
	set := RecommendationSet{
		Immediate: []ActionItem{},
		ShortTerm: []ActionItem{},
		LongTerm:  []ActionItem{},
	}

	if a.DigitalStatus == StatusNoPresence {
		set.Immediate = append(set.Immediate, ActionItem{
			Icon:        "🌐",
			Title:       "Establish Online Presence",
			Description: "Start with a basic website or social media profiles",
			Priority:    "high",
		})
	}
	if a.Challenge == ChallengeNoLeads {
		set.Immediate = append(set.Immediate, ActionItem{
			Icon:        "📈",
			Title:       "Lead Generation Setup",
			Description: "Implement basic lead capture and follow-up systems",
			Priority:    "high",
		})
	}

	if a.HasGoal(GoalAutomate) {
		set.ShortTerm = append(set.ShortTerm, ActionItem{
			Icon:        "🤖",
			Title:       "Process Automation",
			Description: "Set up automated customer management workflows",
			Priority:    "medium",
		})
	}
	if a.HasGoal(GoalBrand) {
		set.ShortTerm = append(set.ShortTerm, ActionItem{
			Icon:        "✨",
			Title:       "Brand Development",
			Description: "Create consistent brand identity across all platforms",
			Priority:    "medium",
		})
	}

	if a.Budget == Budget25KPlus {
		set.LongTerm = append(set.LongTerm, ActionItem{
			Icon:        "🚀",
			Title:       "Advanced Solutions",
			Description: "Custom development and enterprise-level features",
			Priority:    "low",
		})
	}

	set.ProductSuggestion = s.GetProductRecommendation(score, a)
	return set
}

// GenerateInsights derives at most five insights: the overall readiness
// insight always comes first, followed by improvement insights for weak
// dimensions in their fixed order, then the high-budget opportunity.
func (s *Scorer) GenerateInsights(result ScoreResult, answers AnswerSet) []Insight {
	a := answers.Normalized()

	overallIcon := "💡"
	switch result.Category.Level {
	case "high":
		overallIcon = "🎉"
	case "medium-high":
		overallIcon = "👍"
	}

	insights := []Insight{{
		Type:        "overall",
		Icon:        overallIcon,
		Title:       fmt.Sprintf("You're %s!", result.Category.Label),
		Description: readinessDescription(result.Category.Level, result.TotalScore),
		Priority:    "high",
	}}

	weak := []struct {
		score   int
		insight Insight
	}{
		{result.Breakdown.Goals.Score, Insight{
			Type:        "improvement",
			Icon:        "🎯",
			Title:       "Expand Your Vision",
			Description: "Consider additional goals like automation or branding to maximize your digital potential.",
			Priority:    "medium",
		}},
		{result.Breakdown.DigitalStatus.Score, Insight{
			Type:        "improvement",
			Icon:        "🌐",
			Title:       "Strengthen Online Presence",
			Description: "Building a more robust digital foundation will significantly improve your readiness score.",
			Priority:    "high",
		}},
		{result.Breakdown.Budget.Score, Insight{
			Type:        "improvement",
			Icon:        "💰",
			Title:       "Investment Planning",
			Description: "Consider allocating more resources to digital initiatives for better ROI.",
			Priority:    "low",
		}},
		{result.Breakdown.Challenge.Score, Insight{
			Type:        "improvement",
			Icon:        "🔍",
			Title:       "Problem Clarity",
			Description: "Identifying specific challenges helps us provide more targeted solutions.",
			Priority:    "medium",
		}},
	}
	for _, w := range weak {
		if w.score < 60 {
			insights = append(insights, w.insight)
		}
	}

	if a.Budget == Budget25KPlus && result.TotalScore < 80 {
		insights = append(insights, Insight{
			Type:        "opportunity",
			Icon:        "🚀",
			Title:       "High Growth Potential",
			Description: "Your budget allows for advanced solutions that could significantly accelerate your digital transformation.",
			Priority:    "medium",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

func readinessDescription(level string, score int) string {
	switch level {
	case "high":
		return fmt.Sprintf("With a score of %d/100, you're well-positioned for digital success. Your business shows strong readiness across multiple dimensions.", score)
	case "medium-high":
		return fmt.Sprintf("Your score of %d/100 indicates good digital readiness. A few strategic improvements could unlock significant growth.", score)
	case "low-medium":
		return fmt.Sprintf("Your %d/100 score shows potential. With the right guidance, you can build a strong digital foundation.", score)
	case "low":
		return fmt.Sprintf("Starting at %d/100 is perfectly fine. Every successful business began somewhere, and you're taking the right first step.", score)
	default:
		return fmt.Sprintf("At %d/100, you're on the right track. Focus on strengthening key areas to accelerate your digital journey.", score)
	}
}
