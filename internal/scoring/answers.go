package scoring

import "strings"

// Goal tags selectable in the questionnaire.
const (
	GoalMoreCustomers = "more_customers"
	GoalShowcase      = "showcase"
	GoalBrand         = "brand"
	GoalAutomate      = "automate"
	GoalApp           = "app"
)

// Digital status tags, ordered from least to most mature.
const (
	StatusNoPresence   = "no_presence"
	StatusBasicSocial  = "basic_social"
	StatusBasicWebsite = "basic_website"
	StatusNoResults    = "no_results"
)

// Budget band tags, ordered low to high.
const (
	BudgetBelow2K  = "below_2k"
	Budget2KTo10K  = "2k_10k"
	Budget10KTo25K = "10k_25k"
	Budget25KPlus  = "25k_plus"
)

// Challenge tags naming the primary stated business problem.
const (
	ChallengeNoLeads  = "no_leads"
	ChallengeDontKnow = "dont_know"
	ChallengeNoTime   = "no_time"
	ChallengeLowSales = "low_sales"
)

// AnswerSet holds one user's questionnaire responses. Unknown tags are
// never rejected; they simply score zero.
type AnswerSet struct {
	Goals         []string `json:"goals"`
	DigitalStatus string   `json:"digital_status"`
	Budget        string   `json:"budget"`
	Challenge     string   `json:"challenge"`
}

// Normalized returns a copy with trimmed lower-case tags and duplicate
// goals removed. Goal order is preserved.
func (a AnswerSet) Normalized() AnswerSet {
	out := AnswerSet{
		DigitalStatus: normalizeTag(a.DigitalStatus),
		Budget:        normalizeTag(a.Budget),
		Challenge:     normalizeTag(a.Challenge),
	}
	seen := make(map[string]struct{}, len(a.Goals))
	for _, goal := range a.Goals {
		goal = normalizeTag(goal)
		if goal == "" {
			continue
		}
		if _, ok := seen[goal]; ok {
			continue
		}
		seen[goal] = struct{}{}
		out.Goals = append(out.Goals, goal)
	}
	return out
}

// HasGoal reports whether the (already normalized) goal list contains tag.
func (a AnswerSet) HasGoal(tag string) bool {
	for _, goal := range a.Goals {
		if goal == tag {
			return true
		}
	}
	return false
}

func (a AnswerSet) countGoals(tags ...string) int {
	count := 0
	for _, goal := range a.Goals {
		for _, tag := range tags {
			if goal == tag {
				count++
				break
			}
		}
	}
	return count
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
