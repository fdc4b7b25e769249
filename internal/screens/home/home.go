package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/screens"
	"github.com/abhisek/multiz/internal/screens/progress"
	"github.com/abhisek/multiz/internal/screens/rewardvault"
	sessionscreen "github.com/abhisek/multiz/internal/screens/session"
	"github.com/abhisek/multiz/internal/ui/components"
	"github.com/abhisek/multiz/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps  *screens.Deps
	menu  components.Menu
	flash string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps *screens.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.menu = components.NewMenu(h.items())
	return h
}

// items builds the menu. The first entry resumes an unfinished drill when
// there is one.
func (h *HomeScreen) items() []components.MenuItem {
	deps := h.deps
	play := "PLAY"
	if deps.HasGameInProgress() {
		play = "RESUME DRILL"
	}
	return []components.MenuItem{
		{Label: play, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(deps)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(deps)}
			}
		}},
		{Label: "REWARDS", Disabled: deps.Rewards == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rewardvault.New(deps.Rewards)}
			}
		}},
		{Label: "NEW SESSION", Action: func() tea.Cmd {
			return func() tea.Msg { return newSessionMsg{} }
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

// newSessionMsg is sent when the player asks for a fresh session.
type newSessionMsg struct{}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the menu after returning from another screen.
func (h *HomeScreen) Resume() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	h.menu.Selected = selected
	h.flash = ""
	return nil
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(newSessionMsg); ok {
		if err := h.deps.NewSession(context.Background()); err != nil {
			h.flash = "New session started, but it could not be saved."
		} else {
			h.flash = "New session started."
		}
		h.menu = components.NewMenu(h.items())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := contentWidth(width)
	status := h.deps.Status()
	st := sessionStats{Correct: status.Correct, Answered: status.Answered, Streak: status.Streak}
	if h.deps.Tracker != nil {
		st.Best = h.deps.Tracker.Best()
	}

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st.Correct, st.Answered), cw))
	}
	sections = append(sections, renderStatsBar(st, cw, compact))
	sections = append(sections, renderSettingsLine(h.deps.Settings, cw))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(labels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(labels, h.menu.Selected, cw))
	}
	if h.flash != "" {
		sections = append(sections, renderFlash(h.flash, cw))
	}

	gap := "\n\n"
	if compact {
		gap = "\n"
	}
	return renderCabinetFrame(strings.Join(sections, gap), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
