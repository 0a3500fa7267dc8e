// Package streak computes check-in streaks and the badge shown for them.
package streak

import (
	"fmt"
	"time"
)

// maxDays caps the streak; a full week earns the top badge.
const maxDays = 7

// Compute counts consecutive calendar days with at least one check-in,
// walking backwards from now. Days are compared in now's location.
// The result is capped at 7.
func Compute(checkinTimes []time.Time, now time.Time) int {
	loc := now.Location()
	days := make(map[string]bool, len(checkinTimes))
	for _, ts := range checkinTimes {
		days[ts.In(loc).Format("2006-01-02")] = true
	}

	streak := 0
	for i := 0; i < maxDays; i++ {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		if !days[day] {
			break
		}
		streak++
	}
	return streak
}

// Tier identifies the badge level for a streak.
type Tier string

const (
	TierStart  Tier = "start"
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Badge is the rendered streak badge.
type Badge struct {
	Tier Tier
	Icon string
	Text string
}

// BadgeFor returns the badge for a streak length.
func BadgeFor(days int) Badge {
	switch {
	case days <= 0:
		return Badge{Tier: TierStart, Icon: "⭐", Text: "Start Journey"}
	case days <= 3:
		return Badge{Tier: TierBronze, Icon: "⭐", Text: dayCount(days)}
	case days <= 6:
		return Badge{Tier: TierSilver, Icon: "🏅", Text: dayCount(days)}
	default:
		return Badge{Tier: TierGold, Icon: "🏆", Text: "Week Master!"}
	}
}

func dayCount(days int) string {
	if days == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%d Days", days)
}
