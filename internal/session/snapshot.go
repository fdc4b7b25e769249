package session

import (
	"fmt"
	"slices"

	"github.com/abhisek/multiz/internal/equation"
	"github.com/abhisek/multiz/internal/settings"
)

// Snapshot is the persisted form of a Game.
type Snapshot struct {
	Settings  settings.GameSettings `json:"settings"`
	Questions []equation.Question   `json:"questions"`
	Index     int                   `json:"index"`
	Answers   []Answer              `json:"answers"`
	SessionID string                `json:"sessionId"`
}

// Snapshot captures the game's state. It returns nil for a game that was
// never started.
func (g *Game) Snapshot() *Snapshot {
	if g.settings == nil {
		return nil
	}
	return &Snapshot{
		Settings:  g.settings.Clone(),
		Questions: slices.Clone(g.questions),
		Index:     g.index,
		Answers:   slices.Clone(g.answers),
		SessionID: g.sessionID,
	}
}

// Restore rebuilds a Game from a snapshot.
func Restore(snap *Snapshot) (*Game, error) {
	if snap == nil {
		return nil, ErrNilSettings
	}
	if len(snap.Answers) > len(snap.Questions) {
		return nil, fmt.Errorf("restore game: %d answers for %d questions", len(snap.Answers), len(snap.Questions))
	}
	if snap.Index < 0 || (len(snap.Questions) > 0 && snap.Index >= len(snap.Questions)) {
		return nil, fmt.Errorf("restore game: index %d out of range", snap.Index)
	}
	if len(snap.Answers) < snap.Index {
		return nil, fmt.Errorf("restore game: index %d ahead of %d answers", snap.Index, len(snap.Answers))
	}
	s := snap.Settings.Clone()
	return &Game{
		settings:  &s,
		questions: slices.Clone(snap.Questions),
		index:     snap.Index,
		answers:   slices.Clone(snap.Answers),
		sessionID: snap.SessionID,
	}, nil
}
