package rewardvault

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/rewards"
	"github.com/abhisek/multiz/internal/router"
	"github.com/abhisek/multiz/internal/screen"
	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/store"
	"github.com/abhisek/multiz/internal/ui/layout"
	"github.com/abhisek/multiz/internal/ui/theme"
)

// recentLimit caps how many reward events are loaded for the list.
const recentLimit = 200

type rewardsLoadedMsg struct {
	Records []store.RewardEventRecord
	Counts  map[string]int
	Total   int
	Err     error
}

// RewardVaultScreen lists the streak rewards earned so far.
type RewardVaultScreen struct {
	repo         store.RewardRepo
	records      []store.RewardEventRecord
	counts       map[string]int
	total        int
	selectedType int // index into earnable types
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*RewardVaultScreen)(nil)
var _ screen.KeyHintProvider = (*RewardVaultScreen)(nil)

// New creates a new RewardVaultScreen.
func New(repo store.RewardRepo) *RewardVaultScreen {
	return &RewardVaultScreen{repo: repo}
}

// earnable lists the reward types that can actually be triggered.
func earnable() []settings.RewardType {
	return settings.AllRewardTypes[1:]
}

func (s *RewardVaultScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()
		counts, total, err := repo.RewardCounts(ctx)
		if err != nil {
			return rewardsLoadedMsg{Err: err}
		}
		records, err := repo.QueryRewards(ctx, store.QueryOpts{Limit: recentLimit})
		return rewardsLoadedMsg{Records: records, Counts: counts, Total: total, Err: err}
	}
}

func (s *RewardVaultScreen) Title() string {
	return "Reward Vault"
}

func (s *RewardVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RewardVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rewardsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
			s.counts = msg.Counts
			s.total = msg.Total
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		types := earnable()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.selectedType = (s.selectedType + 1) % len(types)
			s.scrollOffset = 0
		case "shift+tab":
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			s.scrollOffset = 0
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.filtered())-1 {
				s.scrollOffset++
			}
		}
	}
	return s, nil
}

func (s *RewardVaultScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading rewards...")
	}

	var b strings.Builder
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf("\nTotal: %d rewards\n", s.total)))
	b.WriteString("\n")

	var tabs []string
	for i, t := range earnable() {
		label := fmt.Sprintf("%s %s (%d)", rewards.Icon(t), rewards.DisplayName(t), s.counts[string(t)])
		if i == s.selectedType {
			tabs = append(tabs, theme.Selected.Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	filtered := s.filtered()
	if len(filtered) == 0 {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).
			Render("None of these yet. Keep a streak going!"))
		return b.String()
	}

	maxVisible := max(height-10, 3)
	start := s.scrollOffset
	end := min(start+maxVisible, len(filtered))
	for i := start; i < end; i++ {
		rec := filtered[i]
		line := fmt.Sprintf("  %3d in a row    %s", rec.Streak, rec.Timestamp.Format("Jan 02, 2006 15:04"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Reward.Render(line)))
		b.WriteString("\n")
	}
	if end < len(filtered) {
		b.WriteString("\n")
		b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("... %d more", len(filtered)-end)))
	}
	return b.String()
}

func (s *RewardVaultScreen) filtered() []store.RewardEventRecord {
	selected := string(earnable()[s.selectedType])
	var out []store.RewardEventRecord
	for _, r := range s.records {
		if r.Type == selected {
			out = append(out, r)
		}
	}
	return out
}
