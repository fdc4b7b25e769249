package session

import (
	sess "github.com/abhisek/multiz/internal/session"
)

// gameReadyMsg is sent when the questions for a drill have been built.
type gameReadyMsg struct {
	Game *sess.Game
	Err  error
}

// countdownTickMsg is sent every second while a timed question is open.
// Token identifies the countdown run it belongs to.
type countdownTickMsg struct {
	Token int
}

// feedbackDoneMsg is sent when the feedback display period ends for the
// question at Index.
type feedbackDoneMsg struct {
	Index int
}

// rewardExpiredMsg is sent when a reward banner should disappear.
type rewardExpiredMsg struct{}
