package cmd

import (
	"github.com/abhisek/multiz/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, opts app.Options) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	s, err := e.effectiveSettings(ctx)
	if err != nil {
		return err
	}
	if s, _, err = applySettingsFlags(cmd.Flags(), s); err != nil {
		return err
	}

	deps, err := e.buildDeps(ctx, s)
	if err != nil {
		return err
	}
	return app.Run(deps, opts)
}
