package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/solace/internal/streak"
)

func badgeStyle(tier streak.Tier) lipgloss.Style {
	switch tier {
	case streak.TierGold:
		return lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	case streak.TierSilver:
		return lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	case streak.TierBronze:
		return lipgloss.NewStyle().Foreground(ColorHeader)
	default:
		return StyleDim
	}
}

// FormatStreakBadge renders the streak badge with its icon, label and
// day count, colored by tier.
func FormatStreakBadge(days int, badge streak.Badge) string {
	style := badgeStyle(badge.Tier)
	label := fmt.Sprintf("%s %s", badge.Icon, badge.Text)
	if days <= 0 {
		return style.Render(label)
	}
	return style.Render(label) + StyleDim.Render(fmt.Sprintf("  %d day streak", days))
}
