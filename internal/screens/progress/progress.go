package progress

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	stats "github.com/abhisek/multiz/internal/progress"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/screens"
	"github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

type answersLoadedMsg struct {
	Answers []session.Answer
	Err     error
}

type pane int

const (
	paneAccuracy pane = iota
	paneTiming
	paneReview
)

// ProgressScreen shows heatmaps and the answer log for a chosen period.
type ProgressScreen struct {
	deps     *screens.Deps
	answers  []session.Answer
	period   int // index into stats.AllPeriods
	pane     pane
	report   stats.Report
	review   []session.Answer
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)
var _ screen.Resumer = (*ProgressScreen)(nil)

// New creates a new ProgressScreen on the session period.
func New(deps *screens.Deps) *ProgressScreen {
	return &ProgressScreen{deps: deps}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ProgressScreen) Resume() tea.Cmd {
	return s.load()
}

func (s *ProgressScreen) load() tea.Cmd {
	repo := s.deps.Answers
	return func() tea.Msg {
		answers, err := repo.All(context.Background())
		return answersLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Period"},
		{Key: "Tab", Description: "View"},
	}
	if s.pane == paneReview {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Select"},
			layout.KeyHint{Key: "I", Description: "Ignore"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ProgressScreen) Period() stats.Period {
	return stats.AllPeriods[s.period]
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answersLoadedMsg:
		if msg.Err != nil {
			slog.Error("failed to load answers", "error", msg.Err)
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.answers = msg.Answers
			s.refresh()
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "left", "h":
			s.period = (s.period - 1 + len(stats.AllPeriods)) % len(stats.AllPeriods)
			s.refresh()
		case "right", "l":
			s.period = (s.period + 1) % len(stats.AllPeriods)
			s.refresh()
		case "tab":
			s.pane = (s.pane + 1) % 3
		case "shift+tab":
			s.pane = (s.pane + 2) % 3
		case "up", "k":
			if s.pane == paneReview && s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.pane == paneReview && s.selected < len(s.review)-1 {
				s.selected++
			}
		case "i", "space", " ":
			if s.pane == paneReview {
				return s, s.toggleIgnored()
			}
		}
	}
	return s, nil
}

// refresh recomputes the report and review list for the current period.
func (s *ProgressScreen) refresh() {
	now := s.deps.Clock()
	p := s.Period()
	s.report = stats.Aggregate(s.answers, p, s.deps.SessionID, now)
	s.review = stats.Review(s.answers, p, s.deps.SessionID, now)
	if s.selected >= len(s.review) {
		s.selected = max(len(s.review)-1, 0)
	}
}

// toggleIgnored flips the selected answer in the store and reloads.
func (s *ProgressScreen) toggleIgnored() tea.Cmd {
	if s.selected >= len(s.review) {
		return nil
	}
	a := s.review[s.selected]
	repo := s.deps.Answers
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.SetIgnored(ctx, a.ID, !a.IgnoredForStats); err != nil {
			slog.Warn("failed to toggle ignored", "answer_id", a.ID, "error", err)
			return answersLoadedMsg{Err: fmt.Errorf("toggle answer %s: %w", a.ID, err)}
		}
		answers, err := repo.All(ctx)
		return answersLoadedMsg{Answers: answers, Err: err}
	}
}

func (s *ProgressScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTabs()))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Text).Render(summaryLine(s.report.Summary)))
	b.WriteString("\n\n")

	if s.report.Summary.TotalQuestions == 0 && len(s.review) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).
			Render("No answers in this period yet. Go practise!"))
		return b.String()
	}

	switch s.pane {
	case paneAccuracy:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.AccuracyHeatmap(s.report).View()))
	case paneTiming:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.TimingHeatmap(s.report).View()))
	case paneReview:
		b.WriteString(s.renderReview(width, height-4))
	}
	return b.String()
}

func (s *ProgressScreen) renderTabs() string {
	var tabs []string
	for i, p := range stats.AllPeriods {
		if i == s.period {
			tabs = append(tabs, theme.TabActive.Render(p.DisplayName()))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(p.DisplayName()))
		}
	}
	return strings.Join(tabs, " ")
}

func summaryLine(sum stats.Summary) string {
	if sum.TotalQuestions == 0 {
		return "No questions answered"
	}
	return fmt.Sprintf("%d questions   %d correct   %d incorrect   %.0f%% accuracy",
		sum.TotalQuestions, sum.CorrectCount, sum.IncorrectCount, sum.AccuracyPercentage)
}

// renderReview lists the period's answers, scrolled to keep the selection
// visible.
func (s *ProgressScreen) renderReview(width, height int) string {
	visible := max(height-2, 3)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}
	end := min(s.offset+visible, len(s.review))

	var lines []string
	for i := s.offset; i < end; i++ {
		lines = append(lines, reviewLine(s.review[i], i == s.selected))
	}
	if end < len(s.review) {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("… %d more", len(s.review)-end)))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func reviewLine(a session.Answer, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "▸ "
	}
	mark := "✓"
	if !a.IsCorrect() {
		mark = "✗"
	}
	given := fmt.Sprint(a.Value)
	if a.TimedOut() {
		given = "timeout"
	}
	line := fmt.Sprintf("%s%s  %-18s %-8s %5.1fs  %s",
		prefix, mark, a.Question.DisplayText(), given, a.Elapsed().Seconds(),
		a.FinishedAt.Format("Jan 02 15:04"))

	style := theme.Correct
	switch {
	case a.IgnoredForStats:
		style = theme.Ignored
		line += "  (ignored)"
	case !a.IsCorrect():
		style = theme.Incorrect
	}
	if selected {
		style = style.Background(theme.BgCard)
	}
	return style.Render(line)
}
