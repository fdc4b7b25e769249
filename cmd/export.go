package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/abhisek/multiz/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the answer log as JSON",
	Long: "Write the answer log as an indented JSON array. The file defaults to " +
		"question-logs-<date>.json; use - for stdout.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		answers, err := e.store.AnswerRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}

		path := store.ExportFileName(time.Now())
		if len(args) == 1 {
			path = args[0]
		}
		if path == "-" {
			return store.ExportAnswers(cmd.OutOrStdout(), answers)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		if err := store.ExportAnswers(f, answers); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		slog.Info("answers exported", "path", path, "count", len(answers))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d answers to %s\n", len(answers), path)
		return nil
	},
}
