package formatter

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

type postcardPalette struct {
	background lipgloss.Color
	text       lipgloss.Color
}

// Fixed palettes for the postcard background tokens.
var postcardPalettes = map[string]postcardPalette{
	"sunset":   {background: lipgloss.Color("#d65d0e"), text: lipgloss.Color("#fbf1c7")},
	"ocean":    {background: lipgloss.Color("#458588"), text: lipgloss.Color("#fbf1c7")},
	"citrus":   {background: lipgloss.Color("#d79921"), text: lipgloss.Color("#282828")},
	"twilight": {background: lipgloss.Color("#b16286"), text: lipgloss.Color("#fbf1c7")},
	"meadow":   {background: lipgloss.Color("#98971a"), text: lipgloss.Color("#282828")},
}

// RenderPostcard renders a mood postcard: the message over its colored
// background with the share date underneath.
func RenderPostcard(message, style string, createdAt time.Time) string {
	palette, ok := postcardPalettes[style]
	if !ok {
		palette = postcardPalette{background: ColorDim, text: ColorFg}
	}

	card := lipgloss.NewStyle().
		Background(palette.background).
		Foreground(palette.text).
		Bold(true).
		Width(40).
		Align(lipgloss.Center).
		PaddingTop(1).
		PaddingBottom(1).
		PaddingLeft(2).
		PaddingRight(2).
		Render(message)

	footer := StyleDim.Render(HumanDate(createdAt) + " · " + style)
	return lipgloss.JoinVertical(lipgloss.Left, card, footer)
}
