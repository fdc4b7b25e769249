package cmd

import (
	"fmt"

	"github.com/abhisek/multiz/internal/screens"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a new session",
	Long:  "Start a new session. The answer log is kept; an unfinished drill is dropped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		deps := &screens.Deps{State: e.store.StateRepo()}
		if err := deps.NewSession(cmd.Context()); err != nil {
			return fmt.Errorf("new session: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "New session:", deps.SessionID)
		return nil
	},
}
