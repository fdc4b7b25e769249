package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/rewards"
	sess "github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/theme"
)

func centered(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
}

// renderQuestionView renders the active question, the verdict once
// answered, and the optional stats and reward banner.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	g := s.game
	var b strings.Builder

	stats := g.Stats()
	b.WriteString(components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", g.Index()+1, stats.Total),
		float64(stats.AnsweredCount)/float64(max(stats.Total, 1)),
		false,
		width-4,
	).View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(centered(width).Inherit(theme.Question).Render(s.questionText()))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Render("Answer: " + s.input.View()))
	b.WriteString("\n")

	if s.inputHint != "" {
		b.WriteString(centered(width).Inherit(theme.Hint).Render(s.inputHint))
	}
	b.WriteString("\n")

	if s.countdown.Running() || (s.showFeedback && s.lastAnswer != nil && s.lastAnswer.TimedOut()) {
		bar := components.CountdownBar(s.countdown.Remaining(), g.Settings().TimerSeconds, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
		b.WriteString("\n")
	}

	if s.showFeedback && s.lastAnswer != nil {
		b.WriteString("\n")
		b.WriteString(renderVerdict(*s.lastAnswer, width))
		b.WriteString("\n")
	}

	if line := s.statsLine(stats); line != "" {
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.TextDim).Render(line))
		b.WriteString("\n")
	}

	if s.reward != nil {
		b.WriteString("\n")
		b.WriteString(renderReward(*s.reward, width))
	}

	if s.storeErr != "" {
		b.WriteString("\n")
		b.WriteString(centered(width).Foreground(theme.Warning).Render(s.storeErr))
	}

	return b.String()
}

// questionText shows the hidden-unknown form while answering and the full
// equation once answered.
func (s *SessionScreen) questionText() string {
	q, ok := s.game.CurrentQuestion()
	if !ok {
		return ""
	}
	if s.showFeedback {
		return q.Equation.String()
	}
	return q.DisplayText()
}

// statsLine returns the running score if the settings ask for it now.
func (s *SessionScreen) statsLine(st sess.Stats) string {
	switch s.game.Settings().StatsDisplay {
	case settings.StatsPermanent:
	case settings.StatsOnAnswer:
		if !s.showFeedback {
			return ""
		}
	default:
		return ""
	}
	line := fmt.Sprintf("✓ %d   ✗ %d   %d%%", st.Correct, st.Incorrect, st.Percentage)
	if s.deps.Tracker != nil {
		line += fmt.Sprintf("   ★ streak %d", s.deps.Tracker.Streak())
	}
	return line
}

func renderVerdict(a sess.Answer, width int) string {
	q := a.Question
	switch {
	case a.IsCorrect():
		return centered(width).Inherit(theme.Correct).Render("Correct!")
	case a.TimedOut():
		return centered(width).Inherit(theme.Incorrect).Render("Time's up!") + "\n" +
			centered(width).Foreground(theme.TextDim).Render(
				fmt.Sprintf("The %s was %d", roleNoun(q.Unknown), q.Answer()))
	default:
		return centered(width).Inherit(theme.Incorrect).Render("Not quite") + "\n" +
			centered(width).Foreground(theme.TextDim).Render(
				fmt.Sprintf("You said %d, the %s is %d", a.Value, roleNoun(q.Unknown), q.Answer()))
	}
}

func roleNoun(r equation.Role) string {
	return strings.ToLower(r.DisplayName())
}

func renderReward(r rewards.Reward, width int) string {
	var b strings.Builder
	for _, line := range rewards.Art(r.Type) {
		b.WriteString(centered(width).Inherit(theme.Reward).Render(line))
		b.WriteString("\n")
	}
	b.WriteString(centered(width).Inherit(theme.Reward).Render(
		fmt.Sprintf("%s %d in a row! %s", rewards.Icon(r.Type), r.Streak, rewards.Icon(r.Type))))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered(width).Foreground(theme.Text).Bold(true).Render("Leave this drill?"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.TextDim).Render("You can resume it from the home screen."))
	b.WriteString("\n\n")
	b.WriteString(centered(width).Foreground(theme.Success).Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(centered(width).Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return centered(width).Foreground(theme.TextDim).Render("\n\n\n  Picking your questions...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return centered(width).Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", errMsg))
}
