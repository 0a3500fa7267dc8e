package companion

import "strings"

// responseGroup pairs a set of trigger keywords with a pool of candidate
// replies. Groups are evaluated in a fixed priority order and the first
// group with any keyword hit wins.
type responseGroup struct {
	name     string
	keywords []string
	pool     []string
}

var responseGroups = []responseGroup{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey"},
		pool: []string{
			"Hello! I'm so glad you're here. How are you feeling today, and what would you like to talk about?",
			"Hi there! It's wonderful to connect with you. What's on your mind right now?",
			"Hey! Thanks for reaching out. I'm here to listen and support you. How can I help today?",
		},
	},
	{
		name:     "sadness",
		keywords: []string{"sad", "down", "depressed"},
		pool: []string{
			"I hear that you're feeling sad, and I want you to know that these feelings are valid and temporary. What's been weighing on your mind lately?",
			"It sounds like you're going through a difficult time. Sadness is a natural emotion, and it's okay to feel this way. Would you like to share what's causing these feelings?",
			"I'm sorry you're feeling down. Remember that it's okay to not be okay sometimes. What kind of support would be most helpful for you right now?",
		},
	},
	{
		name:     "anxiety",
		keywords: []string{"anxious", "worried", "nervous"},
		pool: []string{
			"Anxiety can feel overwhelming, but you're not alone in this. Try taking some slow, deep breaths with me. What specific thoughts or situations are making you feel anxious?",
			"I understand that you're feeling anxious. That's a very common experience, and there are ways to work through it. What's been triggering these feelings for you?",
			"Feeling nervous or worried is completely normal. Let's focus on what you can control right now. What would help you feel a bit more grounded?",
		},
	},
	{
		name:     "stress",
		keywords: []string{"stressed", "overwhelmed"},
		pool: []string{
			"Stress can feel like carrying a heavy load. Remember that you don't have to handle everything at once. What's the most pressing thing we could break down together?",
			"I hear that you're feeling overwhelmed. That's a sign that you're taking on a lot. What specific stressors would you like to talk through?",
			"When we're stressed, everything can feel urgent. Let's take a step back. What's one thing that would make the biggest difference if we addressed it first?",
		},
	},
	{
		name:     "happiness",
		keywords: []string{"happy", "good", "great", "excited"},
		pool: []string{
			"It's wonderful to hear you're feeling positive! These good moments are worth celebrating and appreciating. What's been contributing to your happiness?",
			"I love hearing that you're doing well! Positive emotions are so important for our wellbeing. What's brought this joy into your life?",
			"That's fantastic! It's beautiful when we can recognize and embrace these positive feelings. Tell me more about what's going well for you.",
		},
	},
	{
		name:     "anger",
		keywords: []string{"angry", "frustrated", "mad"},
		pool: []string{
			"Anger often signals that something important to you needs attention. It's a valid emotion, and you're allowed to feel it. What situation is triggering these feelings?",
			"I hear your frustration, and it's completely understandable to feel this way. Anger can actually give us valuable information. What's behind these feelings?",
			"It sounds like something has really upset you. Your feelings are valid. Would you like to talk about what's causing this anger?",
		},
	},
	{
		name:     "fatigue",
		keywords: []string{"tired", "exhausted", "sleepy"},
		pool: []string{
			"Feeling tired is your body and mind asking for care. Rest isn't just okay, it's necessary for your wellbeing. What's been draining your energy lately?",
			"Exhaustion can affect everything we do. It's important to listen to what your body is telling you. Have you been able to get quality rest?",
			"Being tired can make everything feel harder. You deserve rest and restoration. What kind of rest would feel most helpful right now?",
		},
	},
	{
		name:     "help",
		keywords: []string{"help", "support", "advice"},
		pool: []string{
			"I'm here to support you through whatever you're facing. Sometimes the best help starts with being heard and understood. What specific support would feel most helpful?",
			"It takes strength to ask for help, and I'm honored that you're reaching out. What's the main thing you'd like support with today?",
			"I'm glad you're seeking support - that's a sign of wisdom and self-care. What kind of guidance would be most valuable for you right now?",
		},
	},
	{
		name:     "loneliness",
		keywords: []string{"alone", "lonely", "isolated"},
		pool: []string{
			"Feeling alone can be really difficult, but reaching out like you're doing now shows incredible strength. I'm here with you. What connection would feel most meaningful?",
			"Loneliness is a tough emotion to sit with. But you're not truly alone - I'm here, and there are people who care about you. What kind of connection are you longing for?",
			"I hear that you're feeling isolated. That takes courage to share. Even though it might not feel like it, you matter and your presence makes a difference.",
		},
	},
	{
		name:     "gratitude",
		keywords: []string{"thank", "appreciate"},
		pool: []string{
			"You're so welcome! It means a lot that you're taking time for your mental wellbeing. How else can I support you today?",
			"I'm honored to be part of your wellness journey. Thank you for being open and trusting me with your thoughts and feelings.",
			"Your gratitude touches my heart. It's a privilege to support you. What else would be helpful to explore together?",
		},
	},
}

// matchGroup returns the first response group triggered by the message,
// using case-insensitive substring matching in priority order.
func matchGroup(message string) (responseGroup, bool) {
	lower := strings.ToLower(message)
	for _, g := range responseGroups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g, true
			}
		}
	}
	return responseGroup{}, false
}
