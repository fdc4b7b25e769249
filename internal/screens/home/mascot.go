package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/multiz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no answers yet, or a middling run
	MascotCelebrating                      // strong session accuracy
	MascotAlert                            // struggling this session
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ×=? │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ×=✓ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ~  │
│ ×=? │
└─────┘`

// mascotFor picks the variant for the session so far.
func mascotFor(correct, answered int) MascotVariant {
	if answered == 0 {
		return MascotIdle
	}
	pct := correct * 100 / answered
	switch {
	case pct >= 90:
		return MascotCelebrating
	case answered >= 5 && pct < 50:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
