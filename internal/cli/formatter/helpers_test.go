package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/streak"
)

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
	assert.Equal(t, "Yesterday", HumanTimestamp(now.AddDate(0, 0, -1)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long mess…", Truncate("long message here", 10))
	assert.Equal(t, "…", Truncate("anything", 1))
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "MOOD"},
		[][]string{
			{"Today", "happy"},
			{"Yesterday", "sad"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DATE")
	assert.Contains(t, lines[2], "happy")
	assert.Contains(t, lines[3], "Yesterday")
}

func TestRenderBoxContainsTitleAndContent(t *testing.T) {
	out := RenderBox("Daily Challenge", "Drink a glass of water")
	assert.Contains(t, out, "DAILY CHALLENGE")
	assert.Contains(t, out, "Drink a glass of water")
}

func TestMoodStyleCoversAllMoods(t *testing.T) {
	for _, m := range domain.Moods {
		assert.NotEqual(t, StyleDim, MoodStyle(m), "mood %s should have its own style", m)
	}
	assert.Equal(t, StyleDim, MoodStyle(domain.Mood("bogus")))
}

func TestFormatStreakBadge(t *testing.T) {
	out := FormatStreakBadge(0, streak.BadgeFor(0))
	assert.Contains(t, out, "Start Journey")
	assert.NotContains(t, out, "day streak")

	out = FormatStreakBadge(5, streak.BadgeFor(5))
	assert.Contains(t, out, "5 Days")
	assert.Contains(t, out, "5 day streak")

	out = FormatStreakBadge(7, streak.BadgeFor(7))
	assert.Contains(t, out, "Week Master!")
}

func TestRenderPostcard(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	out := RenderPostcard("You are enough.", "ocean", ts)
	assert.Contains(t, out, "You are enough.")
	assert.Contains(t, out, "ocean")
	assert.Contains(t, out, "Mar 1, 2024")

	// Unknown styles still render with a fallback palette.
	out = RenderPostcard("hi", "nope", ts)
	assert.Contains(t, out, "hi")
}
