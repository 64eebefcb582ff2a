package scoring

import "math"

// Scorer evaluates answer sets against an immutable rule table. All methods
// are pure; a single Scorer is safe for concurrent use.
type Scorer struct {
	rules Rules
}

// NewScorer constructs a scorer around the provided rule table.
func NewScorer(rules Rules) *Scorer {
	return &Scorer{rules: rules}
}

// NewDefaultScorer constructs a scorer using the compiled-in rules.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultRules())
}

// Rules exposes the active rule table (primarily for the config endpoint).
func (s *Scorer) Rules() Rules {
	return s.rules
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRound(v float64, lo, hi int) int {
	return clampInt(int(math.Round(v)), lo, hi)
}
