package scoring

import (
	"encoding/json"
	"os"
	"testing"
)

func TestDefaultRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
}

func TestLoadRulesOverride(t *testing.T) {
	rules := DefaultRules()
	goal := rules.Goals[GoalApp]
	goal.Base = 40
	rules.Goals[GoalApp] = goal

	path := tempJSON(t, rules)
	loaded, err := LoadRules(path)
	if err != nil {
		t.Fatalf("load rules: %v", err)
	}
	if loaded.Goals[GoalApp].Base != 40 {
		t.Fatalf("expected overridden base 40 got %d", loaded.Goals[GoalApp].Base)
	}

	scorer := NewScorer(loaded)
	// (40 + 5 high complexity) * 1.1 = 49.5
	if got := scorer.GoalsScore(AnswerSet{Goals: []string{GoalApp}}).Final; got != 50 {
		t.Fatalf("expected 50 got %d", got)
	}
}

func TestLoadRulesRejectsBadWeights(t *testing.T) {
	rules := DefaultRules()
	rules.Weights.Goals = 0.5

	path := tempJSON(t, rules)
	if _, err := LoadRules(path); err == nil {
		t.Fatal("expected weight validation error")
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules("does-not-exist.json"); err == nil {
		t.Fatal("expected read error")
	}
}

func TestValidateEmptyTables(t *testing.T) {
	rules := DefaultRules()
	rules.Challenge = nil
	if err := rules.Validate(); err == nil {
		t.Fatal("expected missing challenge rules error")
	}
}

func tempJSON(t *testing.T, value any) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "rules-*.json")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return f.Name()
}
