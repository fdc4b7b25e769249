package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	s, err := cfg.Apply(settings.Default())
	require.NoError(t, err)
	assert.Equal(t, settings.Default(), s)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_Apply(t *testing.T) {
	path := writeConfig(t, `
[game]
unknowns = ["first_factor", "second_factor"]
questions = 20
timer = 10
foster-challenging = 50
foster-gaps = 0
reward = "adorable_kitty"
reward-threshold = 3
stats = "permanent"
selection = "with_replacement"

[game.ranges.first-factor]
min = 2
max = 9

[game.ranges.product]
max = 50

[log]
level = "debug"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	s, err := cfg.Apply(settings.Default())
	require.NoError(t, err)
	assert.Equal(t, equation.NumberRange{Min: 2, Max: 9}, s.Ranges.FirstFactor)
	assert.Equal(t, equation.NumberRange{Min: 1, Max: 10}, s.Ranges.SecondFactor)
	assert.Equal(t, equation.NumberRange{Min: 1, Max: 50}, s.Ranges.Product)
	assert.Equal(t, []equation.Role{equation.FirstFactor, equation.SecondFactor}, s.UnknownRoles)
	assert.Equal(t, 20, s.QuestionsCount)
	assert.Equal(t, 10, s.TimerSeconds)
	assert.Equal(t, 50, s.FosterChallengingPct)
	assert.Equal(t, 0, s.FosterGapsPct)
	assert.Equal(t, settings.RewardAdorableKitty, s.Reward.Type)
	assert.Equal(t, 3, s.Reward.CorrectAnswersThreshold)
	assert.Equal(t, settings.StatsPermanent, s.StatsDisplay)
	assert.Equal(t, settings.WithReplacement, s.SelectionPolicy)

	_, level, err := cfg.Log.Resolve()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestApply_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad role", "[game]\nunknowns = [\"divisor\"]\n"},
		{"inverted range", "[game.ranges.product]\nmin = 90\nmax = 10\n"},
		{"bad pct", "[game]\nfoster-gaps = 33\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tt.body))
			require.NoError(t, err)
			base := settings.Default()
			got, err := cfg.Apply(base)
			assert.Error(t, err)
			assert.Equal(t, base, got, "base returned unchanged on error")
		})
	}

	cfg, err := LoadConfig(writeConfig(t, "[game.ranges.product]\nmin = 90\nmax = 10\n"))
	require.NoError(t, err)
	_, err = cfg.Apply(settings.Default())
	var ve *settings.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestLoadConfig_Malformed(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[game\nquestions = "))
	assert.Error(t, err)
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")
	assert.Equal(t, filepath.Join("/cfg", "multiz", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/state", "multiz", "multiz.log"), DefaultLogPath())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"": slog.LevelInfo, "DEBUG": slog.LevelDebug, "warn": slog.LevelWarn, "error": slog.LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "multiz.log")
	closer, err := SetupLogger(path, slog.LevelInfo)
	require.NoError(t, err)
	slog.Info("hello", "k", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
