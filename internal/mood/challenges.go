package mood

import (
	"hash/fnv"
	"time"

	"github.com/alexanderramin/solace/internal/domain"
)

// ChallengeForDate returns the day's challenge. The pick is a pure function
// of the calendar date so the same challenge shows all day and changes at
// midnight.
func ChallengeForDate(day time.Time) domain.Challenge {
	h := fnv.New32a()
	h.Write([]byte(day.Format("2006-01-02")))
	return challenges[h.Sum32()%uint32(len(challenges))]
}

// Challenges returns the full fixed challenge table.
func Challenges() []domain.Challenge {
	return challenges
}

var challenges = []domain.Challenge{
	{
		ID:          "1",
		Title:       "Gratitude List",
		Description: "Write down 5 things you are grateful for today and share one with a friend or family member.",
		Category:    "Mindfulness",
		Difficulty:  domain.DifficultyEasy,
	},
	{
		ID:          "2",
		Title:       "Random Act of Kindness",
		Description: "Do something nice for someone without expecting anything in return. It could be as simple as holding a door or giving a compliment.",
		Category:    "Social",
		Difficulty:  domain.DifficultyEasy,
	},
	{
		ID:          "3",
		Title:       "Learn Something New",
		Description: "Spend 30 minutes learning about a topic that interests you. Watch a TED talk, read an article, or try a new skill.",
		Category:    "Growth",
		Difficulty:  domain.DifficultyMedium,
	},
	{
		ID:          "4",
		Title:       "Digital Detox Hour",
		Description: "Spend one hour completely disconnected from all digital devices. Use this time for reading, walking, or meditation.",
		Category:    "Wellness",
		Difficulty:  domain.DifficultyMedium,
	},
	{
		ID:          "5",
		Title:       "Creative Expression",
		Description: "Create something artistic today - draw, write a poem, compose a song, or make a craft. Express yourself creatively for at least 20 minutes.",
		Category:    "Creativity",
		Difficulty:  domain.DifficultyMedium,
	},
	{
		ID:          "6",
		Title:       "Organize Your Space",
		Description: "Declutter and organize one area of your living space. A clean environment can boost your mood and productivity.",
		Category:    "Productivity",
		Difficulty:  domain.DifficultyEasy,
	},
	{
		ID:          "7",
		Title:       "Connect with Nature",
		Description: "Spend at least 45 minutes outdoors. Go for a walk, sit in a park, or tend to plants. Notice the natural world around you.",
		Category:    "Wellness",
		Difficulty:  domain.DifficultyEasy,
	},
	{
		ID:          "8",
		Title:       "Skill Building Challenge",
		Description: "Practice a skill you want to improve for 1 hour. This could be a musical instrument, a language, coding, or any hobby.",
		Category:    "Growth",
		Difficulty:  domain.DifficultyHard,
	},
	{
		ID:          "9",
		Title:       "Memory Lane",
		Description: "Look through old photos or videos and share a favorite memory with someone close to you. Reflect on positive experiences.",
		Category:    "Reflection",
		Difficulty:  domain.DifficultyEasy,
	},
	{
		ID:          "10",
		Title:       "Fitness Challenge",
		Description: "Do a 30-minute workout or physical activity. This could be dancing, yoga, walking, or any exercise you enjoy.",
		Category:    "Health",
		Difficulty:  domain.DifficultyMedium,
	},
	{
		ID:          "11",
		Title:       "Goal Planning Session",
		Description: "Spend 45 minutes planning and writing down your goals for the next month. Break them into actionable steps.",
		Category:    "Productivity",
		Difficulty:  domain.DifficultyHard,
	},
	{
		ID:          "12",
		Title:       "Cook Something New",
		Description: "Try cooking a new recipe or dish you have never made before. Enjoy the process and share it with others.",
		Category:    "Life Skills",
		Difficulty:  domain.DifficultyMedium,
	},
}
