package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Qualifier value used when an answer tag has no rule table entry.
const QualifierUnknown = "unknown"

// Weights distribute the four dimension sub-scores into the overall score.
// They must sum to 1.0.
type Weights struct {
	Goals         float64 `json:"goals"`
	DigitalStatus float64 `json:"digital_status"`
	Budget        float64 `json:"budget"`
	Challenge     float64 `json:"challenge"`
}

// GoalRule assigns a base point value plus complexity/impact qualifiers
// to a single goal tag.
type GoalRule struct {
	Base       int    `json:"base"`
	Complexity string `json:"complexity"`
	Impact     string `json:"impact"`
}

// StatusRule scores a digital-maturity tag.
type StatusRule struct {
	Score     int    `json:"score"`
	Readiness string `json:"readiness"`
	Gap       string `json:"gap"`
}

// BudgetRule scores a spending band.
type BudgetRule struct {
	Score     int    `json:"score"`
	Viability string `json:"viability"`
	Risk      string `json:"risk"`
}

// ChallengeRule scores a stated business problem.
type ChallengeRule struct {
	Score       int    `json:"score"`
	Specificity string `json:"specificity"`
	Urgency     string `json:"urgency"`
}

// Rules is the static per-tag configuration driving all dimension scoring.
// It is constructed once per process and never mutated afterwards; business
// stakeholders tune point values through the JSON form, not the code.
type Rules struct {
	Weights       Weights                  `json:"weights"`
	Goals         map[string]GoalRule      `json:"goals"`
	DigitalStatus map[string]StatusRule    `json:"digital_status"`
	Budget        map[string]BudgetRule    `json:"budget"`
	Challenge     map[string]ChallengeRule `json:"challenge"`
}

// DefaultRules returns the compiled-in rule table.
func DefaultRules() Rules {
	return Rules{
		Weights: Weights{
			Goals:         0.25,
			DigitalStatus: 0.30,
			Budget:        0.25,
			Challenge:     0.20,
		},
		Goals: map[string]GoalRule{
			GoalMoreCustomers: {Base: 25, Complexity: "medium", Impact: "high"},
			GoalShowcase:      {Base: 20, Complexity: "low", Impact: "medium"},
			GoalBrand:         {Base: 20, Complexity: "medium", Impact: "high"},
			GoalAutomate:      {Base: 25, Complexity: "high", Impact: "high"},
			GoalApp:           {Base: 30, Complexity: "high", Impact: "high"},
		},
		DigitalStatus: map[string]StatusRule{
			StatusNoPresence:   {Score: 15, Readiness: "low", Gap: "major"},
			StatusBasicSocial:  {Score: 35, Readiness: "emerging", Gap: "significant"},
			StatusBasicWebsite: {Score: 65, Readiness: "developing", Gap: "moderate"},
			StatusNoResults:    {Score: 80, Readiness: "advanced", Gap: "minor"},
		},
		Budget: map[string]BudgetRule{
			BudgetBelow2K:  {Score: 25, Viability: "limited", Risk: "high"},
			Budget2KTo10K:  {Score: 55, Viability: "moderate", Risk: "medium"},
			Budget10KTo25K: {Score: 75, Viability: "good", Risk: "low"},
			Budget25KPlus:  {Score: 90, Viability: "excellent", Risk: "minimal"},
		},
		Challenge: map[string]ChallengeRule{
			ChallengeNoLeads:  {Score: 85, Specificity: "high", Urgency: "critical"},
			ChallengeDontKnow: {Score: 30, Specificity: "low", Urgency: "low"},
			ChallengeNoTime:   {Score: 65, Specificity: "medium", Urgency: "high"},
			ChallengeLowSales: {Score: 90, Specificity: "high", Urgency: "critical"},
		},
	}
}

// LoadRules reads a rule table from the provided JSON file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Rules{}, fmt.Errorf("read scoring rules: %w", err)
	}
	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("unmarshal scoring rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("validate scoring rules: %w", err)
	}
	return rules, nil
}

// Validate ensures the rule table has baseline configuration.
func (r Rules) Validate() error {
	sum := r.Weights.Goals + r.Weights.DigitalStatus + r.Weights.Budget + r.Weights.Challenge
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("dimension weights sum to %.4f, want 1.0", sum)
	}
	if len(r.Goals) == 0 {
		return errors.New("goal rules missing")
	}
	if len(r.DigitalStatus) == 0 {
		return errors.New("digital status rules missing")
	}
	if len(r.Budget) == 0 {
		return errors.New("budget rules missing")
	}
	if len(r.Challenge) == 0 {
		return errors.New("challenge rules missing")
	}
	return nil
}
