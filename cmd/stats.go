package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abhisek/multiz/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy and timing for a period",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name, _ := cmd.Flags().GetString("period")
		period, err := progress.ParsePeriod(name)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		id, err := e.store.StateRepo().LoadSessionID(ctx)
		if err != nil {
			return fmt.Errorf("load session id: %w", err)
		}
		answers, err := e.store.AnswerRepo().All(ctx)
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}

		writeReport(cmd.OutOrStdout(), progress.Aggregate(answers, period, id, time.Now()))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("period", string(progress.PeriodAllTime),
		"session, today, this_week, this_month or all_time")
}

// writeReport prints the summary and both heatmaps as text grids.
func writeReport(w io.Writer, rep progress.Report) {
	sum := rep.Summary
	fmt.Fprintf(w, "%s\n", rep.Period.DisplayName())
	if sum.TotalQuestions == 0 {
		fmt.Fprintln(w, "No answers yet.")
		return
	}
	fmt.Fprintf(w, "%d questions, %d correct, %d incorrect, %.0f%% accuracy\n\n",
		sum.TotalQuestions, sum.CorrectCount, sum.IncorrectCount, sum.AccuracyPercentage)

	fmt.Fprintln(w, "Accuracy (%)")
	writeGrid(w, func(i, j int) string {
		c := rep.Heatmap[i][j]
		if c.Total == 0 {
			return "."
		}
		return fmt.Sprintf("%.0f", c.Percentage)
	})

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Average seconds (last %d attempts)\n", progress.RecentSamples)
	writeGrid(w, func(i, j int) string {
		c := rep.Timing[i][j]
		if !c.HasData {
			return "."
		}
		return fmt.Sprintf("%.1f", c.AverageSeconds)
	})
}

func writeGrid(w io.Writer, cell func(i, j int) string) {
	var b strings.Builder
	b.WriteString("    ×")
	for j := range progress.GridSize {
		fmt.Fprintf(&b, "%5d", j+1)
	}
	b.WriteString("\n")
	for i := range progress.GridSize {
		fmt.Fprintf(&b, "%5d", i+1)
		for j := range progress.GridSize {
			fmt.Fprintf(&b, "%5s", cell(i, j))
		}
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}
