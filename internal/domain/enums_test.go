package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodValid(t *testing.T) {
	for _, m := range Moods {
		assert.True(t, m.Valid(), "mood %q should be valid", m)
	}
	assert.False(t, Mood("ecstatic").Valid())
	assert.False(t, Mood("").Valid())
}

func TestMoodsOrder(t *testing.T) {
	assert.Equal(t, []Mood{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}, Moods)
}

func TestValidBackgroundStyle(t *testing.T) {
	for _, s := range BackgroundStyles {
		assert.True(t, ValidBackgroundStyle(s))
	}
	assert.False(t, ValidBackgroundStyle("plaid"))
	assert.False(t, ValidBackgroundStyle(""))
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"two words", 2},
		{"  spaced   out\nwith lines\t", 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CountWords(tt.in), "input %q", tt.in)
	}
}
