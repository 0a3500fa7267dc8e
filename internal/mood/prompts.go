package mood

import "github.com/alexanderramin/solace/internal/domain"

// JournalPromptsFor returns the writing prompts shown in the journaling
// view for a mood.
func JournalPromptsFor(m domain.Mood) []string {
	return journalPrompts[m]
}

var journalPrompts = map[domain.Mood][]string{
	domain.MoodVerySad: {
		"What is one small thing that brought you comfort today?",
		"Write about someone who makes you feel safe and supported.",
		"Describe a place where you feel peaceful and calm.",
		"What would you say to a friend feeling the same way?",
	},
	domain.MoodSad: {
		"What are three things you're grateful for today?",
		"Write about a happy memory that makes you smile.",
		"What is one thing you're looking forward to?",
		"How did you show kindness to yourself today?",
	},
	domain.MoodNeutral: {
		"What made today ordinary yet special?",
		"Describe something you learned about yourself recently.",
		"What are you curious about right now?",
		"Write about a goal you'd like to work towards.",
	},
	domain.MoodHappy: {
		"What made you smile today?",
		"Describe the positive energy you're feeling right now.",
		"Who would you like to share your happiness with?",
		"What are you most proud of today?",
	},
	domain.MoodVeryHappy: {
		"Capture this amazing feeling in words!",
		"What led to this wonderful moment?",
		"How can you remember this feeling for tough days?",
		"What would you tell your past self about this moment?",
	},
}
