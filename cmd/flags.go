package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/spf13/pflag"
)

// addSettingsFlags registers the flags that override game settings.
func addSettingsFlags(fs *pflag.FlagSet) {
	fs.Int("questions", 0, "Questions per drill")
	fs.Int("timer", 0, "Seconds per question (0 disables the timer)")
	fs.StringSlice("unknowns", nil, "Hidden roles: first_factor, second_factor, product")
	fs.String("first-factor", "", "First factor range, e.g. 2-9")
	fs.String("second-factor", "", "Second factor range, e.g. 2-9")
	fs.String("product", "", "Product range, e.g. 1-100")
	fs.Int("challenging", 0, "Percentage of questions drawn from hard equations (0, 25, 50, 75, 100)")
	fs.Int("gaps", 0, "Percentage of questions whose unknown is a factor rather than the product (0, 25, 50, 75, 100)")
	fs.String("reward", "", "Streak reward: none, fireworks, funny_picture, adorable_kitty")
	fs.Int("reward-threshold", 0, "Correct answers in a row per reward")
	fs.String("stats", "", "Session stats: none, on_answer, permanent")
	fs.String("selection", "", "with_replacement or without_replacement")
}

// applySettingsFlags overlays the flags that were set on base and
// validates the result. changed reports whether any flag was set.
func applySettingsFlags(fs *pflag.FlagSet, base settings.GameSettings) (s settings.GameSettings, changed bool, err error) {
	s = base.Clone()

	ints := map[string]*int{
		"questions":        &s.QuestionsCount,
		"timer":            &s.TimerSeconds,
		"challenging":      &s.FosterChallengingPct,
		"gaps":             &s.FosterGapsPct,
		"reward-threshold": &s.Reward.CorrectAnswersThreshold,
	}
	for name, dst := range ints {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
			changed = true
		}
	}

	ranges := map[string]*equation.NumberRange{
		"first-factor":  &s.Ranges.FirstFactor,
		"second-factor": &s.Ranges.SecondFactor,
		"product":       &s.Ranges.Product,
	}
	for name, dst := range ranges {
		if !fs.Changed(name) {
			continue
		}
		v, _ := fs.GetString(name)
		r, err := parseRange(v)
		if err != nil {
			return base, false, fmt.Errorf("--%s: %w", name, err)
		}
		*dst = r
		changed = true
	}

	if fs.Changed("unknowns") {
		names, _ := fs.GetStringSlice("unknowns")
		roles := make([]equation.Role, 0, len(names))
		for _, n := range names {
			r, err := equation.ParseRole(strings.TrimSpace(n))
			if err != nil {
				return base, false, fmt.Errorf("--unknowns: %w", err)
			}
			roles = append(roles, r)
		}
		s.UnknownRoles = roles
		changed = true
	}

	if fs.Changed("reward") {
		v, _ := fs.GetString("reward")
		s.Reward.Type = settings.RewardType(v)
		changed = true
	}
	if fs.Changed("stats") {
		v, _ := fs.GetString("stats")
		s.StatsDisplay = settings.StatsDisplay(v)
		changed = true
	}
	if fs.Changed("selection") {
		v, _ := fs.GetString("selection")
		s.SelectionPolicy = settings.SelectionPolicy(v)
		changed = true
	}

	if err := s.Validate(); err != nil {
		return base, false, err
	}
	return s, changed, nil
}

// parseRange parses "min-max" or a single value.
func parseRange(v string) (equation.NumberRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(v), "-")
	if !ok {
		hi = lo
	}
	min, err1 := strconv.Atoi(strings.TrimSpace(lo))
	max, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return equation.NumberRange{}, fmt.Errorf("invalid range %q", v)
	}
	return equation.NumberRange{Min: min, Max: max}, nil
}
