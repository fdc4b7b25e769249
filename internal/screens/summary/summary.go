package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

// maxListed caps the per-question lines so the summary fits one screen.
const maxListed = 10

// SummaryScreen displays the results of a finished drill.
type SummaryScreen struct {
	summary   session.Summary
	answers   []session.Answer
	rewards   []rewards.Reward
	playAgain func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. playAgain builds the next drill; it may
// be nil.
func New(sum session.Summary, answers []session.Answer, earned []rewards.Reward, playAgain func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: sum, answers: answers, rewards: earned, playAgain: playAgain}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.playAgain != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "r", "R":
			if s.playAgain != nil {
				next := s.playAgain()
				return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render(headline(sum.Percentage)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(
		fmt.Sprintf("Time: %d:%02d    Average: %.1fs per question", mins, secs, sum.AverageSeconds)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Correct: %d/%d        Accuracy: %d%%        Best streak: %d",
		sum.Correct, sum.AnsweredCount, sum.Percentage, sum.BestStreak)
	if sum.TimedOut > 0 {
		statsLine += fmt.Sprintf("        Timed out: %d", sum.TimedOut)
	}
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(s.answers) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		var lines []string
		for i, a := range s.answers {
			if i == maxListed {
				lines = append(lines, theme.Hint.Render(fmt.Sprintf("… and %d more", len(s.answers)-maxListed)))
				break
			}
			lines = append(lines, answerLine(a))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
		b.WriteString("\n\n")
	}

	if len(s.rewards) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Rewards")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, r := range s.rewards {
			line := fmt.Sprintf("%s %s for %d in a row", rewards.Icon(r.Type), rewards.DisplayName(r.Type), r.Streak)
			b.WriteString(center.Inherit(theme.Reward).Render(line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func headline(pct int) string {
	switch {
	case pct == 100:
		return "Perfect drill!"
	case pct >= 80:
		return "Great work!"
	case pct >= 50:
		return "Drill complete!"
	default:
		return "Drill complete. Keep practising!"
	}
}

func answerLine(a session.Answer) string {
	eq := a.Question.Equation.String()
	secs := fmt.Sprintf("%5.1fs", a.Elapsed().Seconds())
	switch {
	case a.IsCorrect():
		return theme.Correct.Render("✓ ") + theme.Body.Render(fmt.Sprintf("%-16s %s", eq, secs))
	case a.TimedOut():
		return theme.Incorrect.Render("✗ ") + theme.Body.Render(fmt.Sprintf("%-16s %s", eq, secs)) +
			theme.Hint.Render("  timed out")
	default:
		return theme.Incorrect.Render("✗ ") + theme.Body.Render(fmt.Sprintf("%-16s %s", eq, secs)) +
			theme.Hint.Render(fmt.Sprintf("  answered %d", a.Value))
	}
}
