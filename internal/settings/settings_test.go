package settings

import (
	"errors"
	"testing"

	"github.com/abhisek/multiz/internal/equation"
)

func TestDefault_IsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.SelectionPolicy != WithoutReplacement {
		t.Errorf("SelectionPolicy = %q, want %q", s.SelectionPolicy, WithoutReplacement)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameSettings)
		field  string
	}{
		{"inverted first factor", func(s *GameSettings) { s.Ranges.FirstFactor = equation.NumberRange{Min: 9, Max: 2} }, "ranges.first_factor"},
		{"inverted product", func(s *GameSettings) { s.Ranges.Product = equation.NumberRange{Min: 50, Max: 10} }, "ranges.product"},
		{"no roles", func(s *GameSettings) { s.UnknownRoles = nil }, "unknown_roles"},
		{"bad role", func(s *GameSettings) { s.UnknownRoles = []equation.Role{"divisor"} }, "unknown_roles"},
		{"repeated role", func(s *GameSettings) {
			s.UnknownRoles = []equation.Role{equation.Product, equation.Product, equation.FirstFactor}
		}, "unknown_roles"},
		{"zero questions", func(s *GameSettings) { s.QuestionsCount = 0 }, "questions_count"},
		{"negative timer", func(s *GameSettings) { s.TimerSeconds = -5 }, "timer_seconds"},
		{"odd challenging pct", func(s *GameSettings) { s.FosterChallengingPct = 30 }, "foster_challenging"},
		{"odd gaps pct", func(s *GameSettings) { s.FosterGapsPct = 101 }, "foster_gaps"},
		{"bad reward", func(s *GameSettings) { s.Reward.Type = "confetti" }, "reward.type"},
		{"zero threshold", func(s *GameSettings) { s.Reward.CorrectAnswersThreshold = 0 }, "reward.threshold"},
		{"bad stats", func(s *GameSettings) { s.StatsDisplay = "sometimes" }, "stats_display"},
		{"bad policy", func(s *GameSettings) { s.SelectionPolicy = "" }, "selection_policy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

func TestValidate_EqualBoundsAccepted(t *testing.T) {
	s := Default()
	s.Ranges.FirstFactor = equation.NumberRange{Min: 7, Max: 7}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestToggleRole(t *testing.T) {
	s := Default()
	s.ToggleRole(equation.FirstFactor)
	if !s.HasRole(equation.FirstFactor) || !s.HasRole(equation.Product) {
		t.Fatalf("roles = %v", s.UnknownRoles)
	}
	if s.UnknownRoles[0] != equation.FirstFactor {
		t.Errorf("roles not in display order: %v", s.UnknownRoles)
	}

	s.ToggleRole(equation.Product)
	if s.HasRole(equation.Product) {
		t.Errorf("product still selected: %v", s.UnknownRoles)
	}

	// The last role stays.
	s.ToggleRole(equation.FirstFactor)
	if len(s.UnknownRoles) != 1 || s.UnknownRoles[0] != equation.FirstFactor {
		t.Errorf("last role removed: %v", s.UnknownRoles)
	}
}

func TestClone_Independent(t *testing.T) {
	a := Default()
	b := a.Clone()
	b.UnknownRoles[0] = equation.FirstFactor
	if a.UnknownRoles[0] != equation.Product {
		t.Error("Clone shares UnknownRoles backing array")
	}
}
