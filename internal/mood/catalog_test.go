package mood

import (
	"testing"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivitiesForAllMoods(t *testing.T) {
	for _, m := range domain.Moods {
		activities := ActivitiesFor(m)
		require.NotEmpty(t, activities, "mood %q must have activities", m)
		for _, a := range activities {
			assert.NotEmpty(t, a.ID)
			assert.NotEmpty(t, a.Title)
			assert.NotEmpty(t, a.Description)
			assert.NotEmpty(t, a.Duration)
			assert.NotEmpty(t, a.Category)
		}
	}
}

func TestActivitiesForUnknownMood(t *testing.T) {
	assert.Empty(t, ActivitiesFor(domain.Mood("ecstatic")))
}

func TestVocabularyTotalOverMoods(t *testing.T) {
	for _, m := range domain.Moods {
		assert.NotEmpty(t, MessageFor(m), "message for %q", m)
		assert.NotEmpty(t, EmojiFor(m), "emoji for %q", m)
		assert.NotEmpty(t, LabelFor(m), "label for %q", m)
	}
	assert.Equal(t, "😐", EmojiFor(domain.Mood("unknown")))
}

func TestJournalPromptsForAllMoods(t *testing.T) {
	for _, m := range domain.Moods {
		assert.NotEmpty(t, JournalPromptsFor(m), "prompts for %q", m)
	}
}

func TestChallengeForDateStableWithinDay(t *testing.T) {
	morning := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 8, 29, 22, 30, 0, 0, time.UTC)
	assert.Equal(t, ChallengeForDate(morning), ChallengeForDate(evening))
}

func TestChallengeForDateVariesAcrossDays(t *testing.T) {
	// Over a month the pick must not be constant.
	seen := map[string]bool{}
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		seen[ChallengeForDate(day.AddDate(0, 0, i)).ID] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestChallengeForDateNeverOutOfRange(t *testing.T) {
	// The FNV sum regularly exceeds MaxInt32; a decade of dates must all
	// land on a valid table entry regardless of platform int width.
	day := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3650; i++ {
		c := ChallengeForDate(day.AddDate(0, 0, i))
		assert.NotEmpty(t, c.ID)
	}
}

func TestInsightFor(t *testing.T) {
	assert.Contains(t, InsightFor("anxious", ""), "deep breathing")
	assert.Contains(t, InsightFor("grateful", ""), "Gratitude")

	generic := InsightFor("bewildered", "")
	assert.Contains(t, generic, "Every feeling you experience is valid")

	withNote := InsightFor("happy", "aced my exam")
	assert.Contains(t, withNote, `"aced my exam"`)
	assert.Contains(t, withNote, "self-awareness is the first step")
}

func TestPlaylistsCatalog(t *testing.T) {
	lists := Playlists()
	require.NotEmpty(t, lists)
	for _, p := range lists {
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, p.URL, "open.spotify.com/playlist/")
	}
}
