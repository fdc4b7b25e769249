package rewards

import (
	"time"

	"github.com/abhisek/multiz/internal/settings"
)

// DisplayDuration is how long a triggered reward stays on screen.
const DisplayDuration = 3 * time.Second

// Reward is a triggered celebration.
type Reward struct {
	Type        settings.RewardType
	Streak      int
	SessionID   string
	TriggeredAt time.Time
}

// ExpiresAt returns when the reward stops being shown.
func (r Reward) ExpiresAt() time.Time {
	return r.TriggeredAt.Add(DisplayDuration)
}

// DisplayName returns a human-readable label for the reward type.
func DisplayName(t settings.RewardType) string {
	switch t {
	case settings.RewardNone:
		return "None"
	case settings.RewardFireworks:
		return "Fireworks"
	case settings.RewardFunnyPicture:
		return "Funny picture"
	case settings.RewardAdorableKitty:
		return "Adorable kitty"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the reward type.
func Icon(t settings.RewardType) string {
	switch t {
	case settings.RewardFireworks:
		return "🎆"
	case settings.RewardFunnyPicture:
		return "🤡"
	case settings.RewardAdorableKitty:
		return "🐱"
	default:
		return "✦"
	}
}

// Art returns the ASCII picture shown for a reward.
func Art(t settings.RewardType) []string {
	switch t {
	case settings.RewardFireworks:
		return []string{
			`   .  *  .   *   .  *  `,
			` *  \ | /  *  \ | /  * `,
			`  -- ( * ) -- ( * ) -- `,
			` .  / | \  .  / | \  . `,
			`   *  .  *   .  *  .   `,
		}
	case settings.RewardFunnyPicture:
		return []string{
			`    _____    `,
			`   /     \   `,
			`  | o   O |  `,
			`  |   >   |  `,
			`   \ \_/ /   `,
			`    -----    `,
		}
	case settings.RewardAdorableKitty:
		return []string{
			`   /\_/\   `,
			`  ( o.o )  `,
			`   > ^ <   `,
			`  /     \  `,
			` (_)   (_) `,
		}
	default:
		return nil
	}
}
