package mood

import "github.com/alexanderramin/solace/internal/domain"

// MessageFor returns the short empathetic message shown with a mood's
// recommendations. Unknown moods return an empty string.
func MessageFor(m domain.Mood) string {
	return messages[m]
}

// EmojiFor returns the emoji for a mood. Unknown moods fall back to the
// neutral face.
func EmojiFor(m domain.Mood) string {
	if e, ok := emojis[m]; ok {
		return e
	}
	return "😐"
}

// LabelFor returns the human-readable label for a mood.
func LabelFor(m domain.Mood) string {
	return labels[m]
}

var messages = map[domain.Mood]string{
	domain.MoodVerySad:   "We understand this is a difficult time. These activities are designed to provide comfort and support.",
	domain.MoodSad:       "It's okay to feel this way. These gentle activities can help you navigate through your emotions.",
	domain.MoodNeutral:   "You're in a balanced space. These activities can help you maintain or improve your wellbeing.",
	domain.MoodHappy:     "It's wonderful to see you feeling good! Let's build on this positive energy.",
	domain.MoodVeryHappy: "Your joy is beautiful! Here are some ways to celebrate and share your happiness.",
}

var emojis = map[domain.Mood]string{
	domain.MoodVerySad:   "😔",
	domain.MoodSad:       "🙁",
	domain.MoodNeutral:   "😐",
	domain.MoodHappy:     "🙂",
	domain.MoodVeryHappy: "😄",
}

var labels = map[domain.Mood]string{
	domain.MoodVerySad:   "Very Sad",
	domain.MoodSad:       "Sad",
	domain.MoodNeutral:   "Neutral",
	domain.MoodHappy:     "Happy",
	domain.MoodVeryHappy: "Very Happy",
}
