// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game GameConfig `toml:"game"`
	Log  LogConfig  `toml:"log"`
}

// RangeConfig maps one [game.ranges.*] table.
type RangeConfig struct {
	Min *int `toml:"min"`
	Max *int `toml:"max"`
}

// RangesConfig maps the [game.ranges] tables.
type RangesConfig struct {
	FirstFactor  RangeConfig `toml:"first-factor"`
	SecondFactor RangeConfig `toml:"second-factor"`
	Product      RangeConfig `toml:"product"`
}

// GameConfig maps game-related settings. Unset fields keep their defaults.
type GameConfig struct {
	Ranges          RangesConfig `toml:"ranges"`
	Unknowns        []string     `toml:"unknowns"`
	Questions       *int         `toml:"questions"`
	Timer           *int         `toml:"timer"`
	Challenging     *int         `toml:"foster-challenging"`
	Gaps            *int         `toml:"foster-gaps"`
	Reward          *string      `toml:"reward"`
	RewardThreshold *int         `toml:"reward-threshold"`
	Stats           *string      `toml:"stats"`
	Selection       *string      `toml:"selection"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	Path  *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply overlays the file's game settings on base and validates the result.
func (c FileConfig) Apply(base settings.GameSettings) (settings.GameSettings, error) {
	s := base.Clone()
	g := c.Game

	applyRange(&s.Ranges.FirstFactor, g.Ranges.FirstFactor)
	applyRange(&s.Ranges.SecondFactor, g.Ranges.SecondFactor)
	applyRange(&s.Ranges.Product, g.Ranges.Product)

	if len(g.Unknowns) > 0 {
		roles := make([]equation.Role, 0, len(g.Unknowns))
		for _, u := range g.Unknowns {
			r, err := equation.ParseRole(u)
			if err != nil {
				return base, fmt.Errorf("game.unknowns: %w", err)
			}
			roles = append(roles, r)
		}
		s.UnknownRoles = roles
	}

	setInt(&s.QuestionsCount, g.Questions)
	setInt(&s.TimerSeconds, g.Timer)
	setInt(&s.FosterChallengingPct, g.Challenging)
	setInt(&s.FosterGapsPct, g.Gaps)
	setInt(&s.Reward.CorrectAnswersThreshold, g.RewardThreshold)
	if g.Reward != nil {
		s.Reward.Type = settings.RewardType(*g.Reward)
	}
	if g.Stats != nil {
		s.StatsDisplay = settings.StatsDisplay(*g.Stats)
	}
	if g.Selection != nil {
		s.SelectionPolicy = settings.SelectionPolicy(*g.Selection)
	}

	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

func applyRange(dst *equation.NumberRange, rc RangeConfig) {
	setInt(&dst.Min, rc.Min)
	setInt(&dst.Max, rc.Max)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
