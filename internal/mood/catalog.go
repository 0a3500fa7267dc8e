package mood

import "github.com/alexanderramin/solace/internal/domain"

// Action keys route an activity selection to its session view.
const (
	ActionBreathing  = "breathing"
	ActionJournaling = "journaling"
	ActionSupport    = "support"
	ActionSharing    = "mood-sharing"
	ActionGoal       = "goal-setting"
	ActionRoutine    = "routine"
	ActionChallenge  = "daily-challenge"
	ActionPlaylist   = "playlist"
	ActionStretching = "stretching"
)

// Activity is a static descriptor of a recommended self-care activity.
type Activity struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Category    string
	Action      string // empty when the activity has no session view
}

// ActivitiesFor returns the ordered activity recommendations for a mood.
// Every valid mood has a non-empty list; unknown moods return nil, which
// callers treat as a valid (if unfortunate) steady state.
func ActivitiesFor(m domain.Mood) []Activity {
	return catalog[m]
}

var catalog = map[domain.Mood][]Activity{
	domain.MoodVerySad: {
		{
			ID:          "breathing",
			Title:       "Guided Breathing Exercise",
			Description: "Gentle breathing techniques to help you feel calmer and more centered",
			Duration:    "5-10 min",
			Category:    "Mindfulness",
			Action:      ActionBreathing,
		},
		{
			ID:          "journaling",
			Title:       "Express Your Feelings",
			Description: "Write down your thoughts in a safe, private space",
			Duration:    "10-15 min",
			Category:    "Reflection",
			Action:      ActionJournaling,
		},
		{
			ID:          "support",
			Title:       "Get Support",
			Description: "Access trusted helplines and support resources",
			Duration:    "Immediate",
			Category:    "Support",
			Action:      ActionSupport,
		},
	},
	domain.MoodSad: {
		{
			ID:          "breathing-basic",
			Title:       "Simple Breathing",
			Description: "Basic breathing exercises to help lift your mood",
			Duration:    "3-5 min",
			Category:    "Mindfulness",
			Action:      ActionBreathing,
		},
		{
			ID:          "gentle-journal",
			Title:       "Gentle Journaling",
			Description: "Light journaling prompts to help process your feelings",
			Duration:    "5-10 min",
			Category:    "Reflection",
			Action:      ActionJournaling,
		},
		{
			ID:          "support",
			Title:       "Talk to Someone",
			Description: "Connect with trusted adults and support services",
			Duration:    "Immediate",
			Category:    "Support",
			Action:      ActionSupport,
		},
	},
	domain.MoodNeutral: {
		{
			ID:          "stretching",
			Title:       "Light Stretching",
			Description: "Gentle movements to energize your body and mind",
			Duration:    "10-15 min",
			Category:    "Movement",
			Action:      ActionStretching,
		},
		{
			ID:          "gratitude",
			Title:       "Gratitude Practice",
			Description: "Reflect on positive aspects of your day",
			Duration:    "5-10 min",
			Category:    "Reflection",
			Action:      ActionJournaling,
		},
		{
			ID:          "quick-meditation",
			Title:       "Quick Meditation",
			Description: "Short guided breathing meditation",
			Duration:    "5-10 min",
			Category:    "Mindfulness",
			Action:      ActionBreathing,
		},
	},
	domain.MoodHappy: {
		{
			ID:          "share-mood",
			Title:       "Share Your Joy",
			Description: "Create a digital postcard to celebrate your positive mood",
			Duration:    "5-10 min",
			Category:    "Social",
			Action:      ActionSharing,
		},
		{
			ID:          "goal-setting",
			Title:       "Set a Mini Goal",
			Description: "Channel your positive energy into achieving something today",
			Duration:    "10-15 min",
			Category:    "Growth",
			Action:      ActionGoal,
		},
		{
			ID:          "habit-tracker",
			Title:       "Track Your Habits",
			Description: "Update your daily habits and celebrate your progress",
			Duration:    "5 min",
			Category:    "Growth",
			Action:      ActionRoutine,
		},
	},
	domain.MoodVeryHappy: {
		{
			ID:          "celebration",
			Title:       "Celebrate Your Joy",
			Description: "Create something special to remember this wonderful moment",
			Duration:    "10-20 min",
			Category:    "Celebration",
			Action:      ActionSharing,
		},
		{
			ID:          "daily-challenge",
			Title:       "Fun Daily Challenge",
			Description: "Take on an exciting challenge while you're feeling great",
			Duration:    "15-30 min",
			Category:    "Growth",
			Action:      ActionChallenge,
		},
		{
			ID:          "music-playlist",
			Title:       "Uplifting Playlist",
			Description: "Listen to music that matches your amazing energy",
			Duration:    "20-30 min",
			Category:    "Entertainment",
			Action:      ActionPlaylist,
		},
	},
}
