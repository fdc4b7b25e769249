package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abhisek/multiz/internal/settings"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the game settings",
	Long: "Show the effective game settings. Settings flags are saved and apply " +
		"to every later drill; values in the config file still take precedence.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		base, err := e.baseSettings(ctx)
		if err != nil {
			return err
		}
		if reset, _ := cmd.Flags().GetBool("defaults"); reset {
			base = settings.Default()
		}
		updated, changed, err := applySettingsFlags(cmd.Flags(), base)
		if err != nil {
			return err
		}
		if changed || cmd.Flags().Changed("defaults") {
			if err := e.store.StateRepo().SaveSettings(ctx, updated); err != nil {
				return fmt.Errorf("save settings: %w", err)
			}
			slog.Info("settings saved")
		}

		effective, err := e.effectiveSettings(ctx)
		if err != nil {
			return err
		}
		writeSettings(cmd.OutOrStdout(), effective)
		return nil
	},
}

func init() {
	addSettingsFlags(settingsCmd.Flags())
	settingsCmd.Flags().Bool("defaults", false, "Restore the default settings before applying flags")
}

func writeSettings(w io.Writer, s settings.GameSettings) {
	roles := make([]string, len(s.UnknownRoles))
	for i, r := range s.UnknownRoles {
		roles[i] = string(r)
	}
	timer := "off"
	if s.TimerSeconds > 0 {
		timer = fmt.Sprintf("%ds", s.TimerSeconds)
	}

	rows := [][2]string{
		{"first-factor", s.Ranges.FirstFactor.String()},
		{"second-factor", s.Ranges.SecondFactor.String()},
		{"product", s.Ranges.Product.String()},
		{"unknowns", strings.Join(roles, ", ")},
		{"questions", fmt.Sprint(s.QuestionsCount)},
		{"timer", timer},
		{"challenging", fmt.Sprintf("%d%%", s.FosterChallengingPct)},
		{"gaps", fmt.Sprintf("%d%%", s.FosterGapsPct)},
		{"reward", fmt.Sprintf("%s every %d", s.Reward.Type, s.Reward.CorrectAnswersThreshold)},
		{"stats", string(s.StatsDisplay)},
		{"selection", string(s.SelectionPolicy)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-14s %s\n", r[0], r[1])
	}
}
