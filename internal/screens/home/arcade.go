package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/settings"
	"github.com/abhisek/multiz/internal/ui/theme"
)

const arcadeTitleFull = ` ███╗   ███╗██╗   ██╗██╗  ████████╗██╗███████╗
 ████╗ ████║██║   ██║██║  ╚══██╔══╝██║╚══███╔╝
 ██╔████╔██║██║   ██║██║     ██║   ██║  ███╔╝
 ██║╚██╔╝██║██║   ██║██║     ██║   ██║ ███╔╝
 ██║ ╚═╝ ██║╚██████╔╝███████╗██║   ██║███████╗
 ╚═╝     ╚═╝ ╚═════╝ ╚══════╝╚═╝   ╚═╝╚══════╝`

const arcadeTitleCompact = "M · U · L · T · I · Z"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// sessionStats is what the stats bar shows about the current session.
type sessionStats struct {
	Correct  int
	Answered int
	Streak   int
	Best     int
}

// renderStatsBar renders the session stats in a bordered box matching content width.
func renderStatsBar(st sessionStats, cw int, compact bool) string {
	correctStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			correctStyle.Render(fmt.Sprintf("✓%d/%d", st.Correct, st.Answered)),
			streakStyle.Render(fmt.Sprintf("★%d", st.Streak)),
			bestStyle.Render(fmt.Sprintf("▲%d", st.Best)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			correctStyle.Render(fmt.Sprintf("✓ %d/%d CORRECT", st.Correct, st.Answered)),
			streakStyle.Render(fmt.Sprintf("★ %d STREAK", st.Streak)),
			bestStyle.Render(fmt.Sprintf("▲ %d BEST", st.Best)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderSettingsLine summarises the drill the Play button will start.
func renderSettingsLine(s settings.GameSettings, cw int) string {
	timer := "no timer"
	if s.TimerSeconds > 0 {
		timer = fmt.Sprintf("%ds timer", s.TimerSeconds)
	}
	text := fmt.Sprintf("%s × %s  ·  %d questions  ·  %s",
		s.Ranges.FirstFactor, s.Ranges.SecondFactor, s.QuestionsCount, timer)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderFlash renders a one-line notice, e.g. after starting a new session.
func renderFlash(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
