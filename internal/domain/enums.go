package domain

// Mood is one of the five fixed mood categories, ordered from
// very-sad to very-happy.
type Mood string

const (
	MoodVerySad   Mood = "very-sad"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
	MoodHappy     Mood = "happy"
	MoodVeryHappy Mood = "very-happy"
)

// Moods lists all mood categories in canonical order.
var Moods = []Mood{MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy}

// Valid reports whether m is one of the five mood categories.
func (m Mood) Valid() bool {
	switch m {
	case MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return true
	}
	return false
}

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// BackgroundStyles is the canonical set of postcard background style tokens.
var BackgroundStyles = []string{
	"sunset",
	"ocean",
	"citrus",
	"twilight",
	"meadow",
}

// ValidBackgroundStyle reports whether s is a known postcard background token.
func ValidBackgroundStyle(s string) bool {
	for _, b := range BackgroundStyles {
		if b == s {
			return true
		}
	}
	return false
}
