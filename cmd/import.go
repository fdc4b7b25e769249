package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisek/multiz/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the answer log with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()

		answers, err := store.ImportAnswers(f)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := e.store.AnswerRepo().ReplaceAll(ctx, answers); err != nil {
			return fmt.Errorf("replace answers: %w", err)
		}

		slog.Info("answers imported", "path", args[0], "count", len(answers))
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d answers from %s\n", len(answers), args[0])
		return nil
	},
}
