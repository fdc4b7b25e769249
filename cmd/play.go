package cmd

import (
	"github.com/abhisek/multiz/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill right away",
	Long: "Start a drill right away. Settings flags apply to this run only; " +
		"use `multiz settings` to keep them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{Play: true})
	},
}

func init() {
	addSettingsFlags(playCmd.Flags())
}
