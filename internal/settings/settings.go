// Package settings holds the per-session game configuration and its
// validation rules.
package settings

import (
	"fmt"
	"slices"

	"github.com/abhisek/multiz/internal/equation"
)

// RewardType selects the celebration shown when a streak milestone is hit.
type RewardType string

const (
	RewardNone          RewardType = "none"
	RewardFireworks     RewardType = "fireworks"
	RewardFunnyPicture  RewardType = "funny_picture"
	RewardAdorableKitty RewardType = "adorable_kitty"
)

// AllRewardTypes lists reward types in menu order.
var AllRewardTypes = []RewardType{RewardNone, RewardFireworks, RewardFunnyPicture, RewardAdorableKitty}

// StatsDisplay controls when running session stats are shown.
type StatsDisplay string

const (
	StatsNone      StatsDisplay = "none"
	StatsOnAnswer  StatsDisplay = "on_answer"
	StatsPermanent StatsDisplay = "permanent"
)

// SelectionPolicy controls whether equations may repeat within a session.
type SelectionPolicy string

const (
	WithReplacement    SelectionPolicy = "with_replacement"
	WithoutReplacement SelectionPolicy = "without_replacement"
)

// RewardPolicy configures streak rewards.
type RewardPolicy struct {
	Type                    RewardType `json:"type"`
	CorrectAnswersThreshold int        `json:"correctAnswersThreshold"`
}

// GameSettings is the configuration consumed by the engine. It is fixed for
// the lifetime of a session.
type GameSettings struct {
	Ranges               equation.Ranges `json:"ranges"`
	UnknownRoles         []equation.Role `json:"unknownRoles"`
	QuestionsCount       int             `json:"questionsCount"`
	TimerSeconds         int             `json:"timerSeconds"`
	FosterChallengingPct int             `json:"fosterChallengingPercentage"`
	FosterGapsPct        int             `json:"fosterGapsPercentage"`
	Reward               RewardPolicy    `json:"rewardPolicy"`
	StatsDisplay         StatsDisplay    `json:"sessionStatsDisplay"`
	SelectionPolicy      SelectionPolicy `json:"selectionPolicy"`
}

// Bounds applied to every range by the settings surfaces.
const (
	RangeFloor   = 1
	RangeCeiling = 100
)

// ValidPercentages are the allowed fostering percentages.
var ValidPercentages = []int{0, 25, 50, 75, 100}

// TimerOptions are the per-question time budgets offered to the player.
var TimerOptions = []int{0, 5, 10, 15, 20, 25, 30, 60}

// Default returns the settings used when nothing has been saved.
func Default() GameSettings {
	return GameSettings{
		Ranges: equation.Ranges{
			FirstFactor:  equation.NumberRange{Min: 1, Max: 10},
			SecondFactor: equation.NumberRange{Min: 1, Max: 10},
			Product:      equation.NumberRange{Min: 1, Max: 100},
		},
		UnknownRoles:         []equation.Role{equation.Product},
		QuestionsCount:       10,
		TimerSeconds:         0,
		FosterChallengingPct: 25,
		FosterGapsPct:        25,
		Reward:               RewardPolicy{Type: RewardNone, CorrectAnswersThreshold: 5},
		StatsDisplay:         StatsNone,
		SelectionPolicy:      WithoutReplacement,
	}
}

// ValidationError reports a settings field that breaks an invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the invariants the engine relies on.
func (s *GameSettings) Validate() error {
	ranges := []struct {
		field string
		r     equation.NumberRange
	}{
		{"ranges.first_factor", s.Ranges.FirstFactor},
		{"ranges.second_factor", s.Ranges.SecondFactor},
		{"ranges.product", s.Ranges.Product},
	}
	for _, rr := range ranges {
		if rr.r.Min > rr.r.Max {
			return &ValidationError{Field: rr.field, Reason: fmt.Sprintf("min %d is greater than max %d", rr.r.Min, rr.r.Max)}
		}
	}

	if len(s.UnknownRoles) == 0 {
		return &ValidationError{Field: "unknown_roles", Reason: "at least one role must be selectable"}
	}
	for i, r := range s.UnknownRoles {
		if !r.Valid() {
			return &ValidationError{Field: "unknown_roles", Reason: fmt.Sprintf("unknown role %q", r)}
		}
		if slices.Contains(s.UnknownRoles[:i], r) {
			return &ValidationError{Field: "unknown_roles", Reason: fmt.Sprintf("role %q listed twice", r)}
		}
	}

	if s.QuestionsCount <= 0 {
		return &ValidationError{Field: "questions_count", Reason: "must be positive"}
	}
	if s.TimerSeconds < 0 {
		return &ValidationError{Field: "timer_seconds", Reason: "must be 0 (off) or positive"}
	}
	if !slices.Contains(ValidPercentages, s.FosterChallengingPct) {
		return &ValidationError{Field: "foster_challenging", Reason: fmt.Sprintf("%d is not one of %v", s.FosterChallengingPct, ValidPercentages)}
	}
	if !slices.Contains(ValidPercentages, s.FosterGapsPct) {
		return &ValidationError{Field: "foster_gaps", Reason: fmt.Sprintf("%d is not one of %v", s.FosterGapsPct, ValidPercentages)}
	}

	if !slices.Contains(AllRewardTypes, s.Reward.Type) {
		return &ValidationError{Field: "reward.type", Reason: fmt.Sprintf("unknown reward %q", s.Reward.Type)}
	}
	if s.Reward.CorrectAnswersThreshold <= 0 {
		return &ValidationError{Field: "reward.threshold", Reason: "must be positive"}
	}

	switch s.StatsDisplay {
	case StatsNone, StatsOnAnswer, StatsPermanent:
	default:
		return &ValidationError{Field: "stats_display", Reason: fmt.Sprintf("unknown mode %q", s.StatsDisplay)}
	}
	switch s.SelectionPolicy {
	case WithReplacement, WithoutReplacement:
	default:
		return &ValidationError{Field: "selection_policy", Reason: fmt.Sprintf("unknown policy %q", s.SelectionPolicy)}
	}
	return nil
}

// HasRole reports whether role may be the unknown.
func (s *GameSettings) HasRole(role equation.Role) bool {
	return slices.Contains(s.UnknownRoles, role)
}

// ToggleRole adds or removes role from the unknown set. The last remaining
// role cannot be removed.
func (s *GameSettings) ToggleRole(role equation.Role) {
	if s.HasRole(role) {
		if len(s.UnknownRoles) == 1 {
			return
		}
		s.UnknownRoles = slices.DeleteFunc(slices.Clone(s.UnknownRoles), func(r equation.Role) bool { return r == role })
		return
	}
	roles := append(slices.Clone(s.UnknownRoles), role)
	// Keep display order stable.
	slices.SortFunc(roles, func(a, b equation.Role) int {
		return slices.Index(equation.AllRoles, a) - slices.Index(equation.AllRoles, b)
	})
	s.UnknownRoles = roles
}

// Clone returns a deep copy.
func (s GameSettings) Clone() GameSettings {
	s.UnknownRoles = slices.Clone(s.UnknownRoles)
	return s
}
