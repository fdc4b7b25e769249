package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiz/internal/problemgen"
	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/screens"
	"github.com/abhisek/multiz/internal/screens/summary"
	sess "github.com/abhisek/multiz/internal/session"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/layout"
)

// FeedbackDelay is how long the verdict stays up before the next question.
const FeedbackDelay = 2 * time.Second

// SessionScreen implements screen.Screen for an active drill.
type SessionScreen struct {
	deps      *screens.Deps
	game      *sess.Game
	countdown sess.Countdown
	input     components.AnswerInput

	startedAt    time.Time
	lastAnswer   *sess.Answer
	reward       *rewards.Reward
	earned       []rewards.Reward
	showFeedback bool
	quitConfirm  bool
	inputHint    string
	storeErr     string
	errMsg       string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a SessionScreen. An in-progress game in deps is resumed,
// otherwise a new one is built from deps.Settings.
func New(deps *screens.Deps) *SessionScreen {
	return &SessionScreen{
		deps:  deps,
		input: newInput(),
	}
}

func newInput() components.AnswerInput {
	return components.NewAnswerInput("Type your answer...", 6)
}

func (s *SessionScreen) Init() tea.Cmd {
	if s.deps.HasGameInProgress() {
		game := s.deps.Game
		return func() tea.Msg { return gameReadyMsg{Game: game} }
	}
	return s.buildGame()
}

func (s *SessionScreen) Title() string {
	return "Play"
}

// HandlesEsc keeps the app from popping the drill without confirmation.
func (s *SessionScreen) HandlesEsc() bool {
	return s.errMsg == ""
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave drill"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showFeedback:
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.game == nil {
		return renderLoading(width, height)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		return s.handleGameReady(msg)

	case countdownTickMsg:
		return s.handleCountdownTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case rewardExpiredMsg:
		if s.deps.Tracker != nil && s.deps.Tracker.Active(s.deps.Clock()) == nil {
			s.reward = nil
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) acceptingInput() bool {
	return s.game != nil && !s.showFeedback && !s.quitConfirm && s.errMsg == ""
}

// buildGame creates a new game from the current settings asynchronously.
func (s *SessionScreen) buildGame() tea.Cmd {
	cfg := s.deps.Settings.Clone()
	builder := s.deps.Builder
	sessionID := s.deps.SessionID
	return func() tea.Msg {
		g, err := sess.NewGame(context.Background(), &cfg, builder, sessionID)
		return gameReadyMsg{Game: g, Err: err}
	}
}

func (s *SessionScreen) handleGameReady(msg gameReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		slog.Error("failed to build drill", "error", msg.Err)
		s.errMsg = describeError(msg.Err)
		return s, nil
	}

	if len(msg.Game.Questions()) == 0 {
		s.errMsg = "No questions fit the current settings."
		return s, nil
	}

	s.game = msg.Game
	s.deps.Game = msg.Game
	if err := s.deps.SaveGame(context.Background()); err != nil {
		s.storeErr = "Could not save progress."
	}
	slog.Info("drill started",
		"session_id", s.game.SessionID(),
		"questions", len(s.game.Questions()),
		"index", s.game.Index())

	if s.game.IsCompleted() {
		return s, s.finish()
	}
	if s.game.CurrentAnswered() {
		// Left during feedback last time.
		return s, s.next()
	}
	return s, s.startQuestion()
}

// startQuestion resets the input and arms the countdown for the current
// question.
func (s *SessionScreen) startQuestion() tea.Cmd {
	s.input = newInput()
	s.showFeedback = false
	s.lastAnswer = nil
	s.inputHint = ""
	s.startedAt = s.deps.Clock()

	cmds := []tea.Cmd{s.input.Init()}
	if secs := s.game.Settings().TimerSeconds; secs > 0 {
		cmds = append(cmds, tickCmd(s.countdown.Start(secs)))
	} else {
		s.countdown.Cancel()
	}
	return tea.Batch(cmds...)
}

func (s *SessionScreen) handleCountdownTick(msg countdownTickMsg) (screen.Screen, tea.Cmd) {
	if s.game == nil {
		return s, nil
	}
	if s.countdown.Tick(msg.Token) {
		a, err := s.game.Timeout(s.startedAt)
		if err != nil {
			return s, nil
		}
		return s, s.afterAnswer(a)
	}
	if s.countdown.Running() && msg.Token == s.countdown.Token() {
		return s, tickCmd(msg.Token)
	}
	return s, nil
}

func (s *SessionScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if s.game == nil || !s.showFeedback || msg.Index != s.game.Index() {
		return s, nil
	}
	return s, s.next()
}

// next leaves the feedback view for the following question, or the summary.
func (s *SessionScreen) next() tea.Cmd {
	if s.game.IsCompleted() {
		return s.finish()
	}
	if err := s.game.Advance(); err != nil {
		s.errMsg = describeError(err)
		return nil
	}
	if err := s.deps.SaveGame(context.Background()); err != nil {
		s.storeErr = "Could not save progress."
	}
	return s.startQuestion()
}

// finish clears the persisted game and swaps in the summary.
func (s *SessionScreen) finish() tea.Cmd {
	s.countdown.Cancel()
	sum := sess.BuildSummary(s.game)
	earned := s.earned
	if err := s.deps.SaveGame(context.Background()); err != nil {
		s.storeErr = "Could not save progress."
	}
	slog.Info("drill completed",
		"session_id", s.game.SessionID(),
		"correct", sum.Correct,
		"total", sum.Total)

	deps := s.deps
	answers := s.game.Answers()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sum, answers, earned, func() screen.Screen { return New(deps) }),
		}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.game == nil {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			s.countdown.Cancel()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
			return s, s.resumeCountdown()
		}
		return s, nil
	}

	if s.showFeedback {
		switch key {
		case "enter", "space", " ":
			return s, s.next()
		case "esc":
			s.quitConfirm = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		s.countdown.Pause()
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// resumeCountdown restarts the timer paused by the quit dialog.
func (s *SessionScreen) resumeCountdown() tea.Cmd {
	token, ok := s.countdown.Resume()
	if !ok {
		return nil
	}
	return tickCmd(token)
}

// submitAnswer evaluates the typed answer.
func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	v, err := problemgen.ParseAnswer(s.input.Value())
	if errors.Is(err, problemgen.ErrEmptyAnswer) {
		return s, nil
	}
	if err != nil {
		s.inputHint = "Numbers only, please."
		return s, nil
	}

	a, err := s.game.Submit(v, s.startedAt, s.deps.Clock())
	if err != nil {
		return s, nil
	}
	s.countdown.Cancel()
	return s, s.afterAnswer(a)
}

// afterAnswer records a resolved question and shows the verdict.
func (s *SessionScreen) afterAnswer(a sess.Answer) tea.Cmd {
	ctx := context.Background()
	s.lastAnswer = &a
	s.showFeedback = true
	s.inputHint = ""
	s.input.Lock(a.IsCorrect())

	s.storeErr = ""
	if err := s.deps.RecordAnswer(ctx, a); err != nil {
		s.storeErr = "Could not save your answer."
	}
	if err := s.deps.SaveGame(ctx); err != nil {
		s.storeErr = "Could not save progress."
	}

	index := s.game.Index()
	cmds := []tea.Cmd{
		tea.Tick(FeedbackDelay, func(time.Time) tea.Msg { return feedbackDoneMsg{Index: index} }),
	}

	if s.deps.Tracker != nil {
		s.deps.Tracker.SetPolicy(s.game.Settings().Reward)
		if r := s.deps.Tracker.Record(ctx, a.IsCorrect(), a.SessionID, a.FinishedAt); r != nil {
			s.reward = r
			s.earned = append(s.earned, *r)
			cmds = append(cmds, tea.Tick(rewards.DisplayDuration, func(time.Time) tea.Msg {
				return rewardExpiredMsg{}
			}))
		}
	}
	return tea.Batch(cmds...)
}

// describeError turns drill errors into a message for the player.
func describeError(err error) string {
	var cfgErr *problemgen.ConfigError
	var valErr *settings.ValidationError
	switch {
	case errors.As(err, &cfgErr):
		return fmt.Sprintf("No questions fit the current settings (%s).", cfgErr.Reason)
	case errors.As(err, &valErr):
		return fmt.Sprintf("Invalid settings: %s %s.", valErr.Field, valErr.Reason)
	case errors.Is(err, sess.ErrNilSettings):
		return "No settings loaded."
	}
	return err.Error()
}

// tickCmd returns a 1-second tick for countdown run token.
func tickCmd(token int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownTickMsg{Token: token}
	})
}
