package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screens"
	"github.com/abhisek/multiz/internal/screens/progress"
	sessionscreen "github.com/abhisek/multiz/internal/screens/session"
	"github.com/abhisek/multiz/internal/settings"
)

func testDeps() *screens.Deps {
	return &screens.Deps{
		Settings:  settings.Default(),
		SessionID: "s",
		Tracker:   rewards.NewTracker(settings.Default().Reward, nil),
	}
}

func TestInitPlayPushesDrill(t *testing.T) {
	m := newAppModel(testDeps(), Options{Play: true})
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("pushed %T", push.Screen)
	}

	if newAppModel(testDeps(), Options{}).Init() != nil {
		t.Error("expected no startup command without Play")
	}
}

func TestEscLetsDrillConfirm(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	m.router.Push(sessionscreen.New(m.deps))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("esc on the drill must not pop directly")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestEscPopsOtherScreens(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	m.router.Push(progress.New(m.deps))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the home screen should do nothing")
	}
}

func TestFooterHintsPreferScreen(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	p := progress.New(m.deps)
	m.router.Push(p)

	got := m.footerHints(m.router.Active())
	want := p.KeyHints()
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("footerHints = %v, want %v", got, want)
	}
}

func TestRenderTooSmall(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if got := updated.(AppModel).render(); !strings.Contains(got, "Terminal too small") {
		t.Errorf("render = %q", got)
	}
}

func TestRenderShowsHeaderAndHints(t *testing.T) {
	m := newAppModel(testDeps(), Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	got := updated.(AppModel).render()
	for _, want := range []string{"Multiz", "Ctrl+C"} {
		if !strings.Contains(got, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
