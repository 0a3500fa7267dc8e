package companion

import (
	"math/rand"
	"strings"
	"time"
)

// Fallback pools for messages that don't trigger any keyword group,
// tiered by how far into the conversation the user is.
var (
	firstTurnPool = []string{
		"I'm so glad you're here and willing to share with me. How are you feeling in this moment, and what brought you here today?",
		"Welcome! I'm here to listen and support you. What's something that's been on your mind lately that you'd like to talk about?",
		"Thank you for reaching out. It takes courage to start a conversation about our wellbeing. What would you like to explore together?",
	}
	earlyPool = []string{
		"I appreciate you sharing that with me. How does it feel to put those thoughts into words?",
		"Thank you for being open with me. What else has been on your mind that you'd like to explore?",
		"I hear you. Sometimes talking through our experiences can bring new clarity. What stands out most to you about what you just shared?",
	}
	ongoingPool = []string{
		"As we continue talking, I'm noticing themes in what you're sharing. What feels most important for you to focus on right now?",
		"You've been really thoughtful in our conversation. What insights are emerging for you as we talk?",
		"I value the trust you're showing by continuing to share with me. What direction would feel most helpful for our conversation?",
		"You're doing important work by reflecting on your experiences. What would you like to explore more deeply?",
		"I'm curious about what you're discovering about yourself through our conversation. What's resonating most with you?",
	}
)

// FallbackReply is returned when response generation itself fails.
const FallbackReply = "I'm here to support you, though I'm having a technical moment. How are you feeling today, and what would be most helpful for you right now?"

// repetitionPrefixLen is how many leading characters of a candidate are
// compared against recent replies when filtering repeats.
const repetitionPrefixLen = 20

// RepeatWindow is how many of the latest assistant replies the repeat
// filter looks back over. Callers load that many into
// Conversation.RecentReplies.
const RepeatWindow = 2

// Conversation summarizes the prior exchange for reply selection.
type Conversation struct {
	Turns         int      // messages already in the conversation, both senders
	RecentReplies []string // latest assistant replies, newest first
}

// Responder produces deterministic companion replies via keyword
// matching with per-group response pools.
type Responder struct {
	rnd *rand.Rand
}

// NewResponder creates a Responder. The rand source is injected so
// tests can seed it; nil gets a time-seeded source.
func NewResponder(rnd *rand.Rand) *Responder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rnd: rnd}
}

// Respond picks a reply for the message given the prior conversation.
// Crisis detection is the caller's responsibility and runs before this.
func (r *Responder) Respond(message string, conv Conversation) string {
	if g, ok := matchGroup(message); ok {
		return r.pick(g.pool, conv.RecentReplies)
	}

	switch {
	case conv.Turns == 0:
		return r.pick(firstTurnPool, conv.RecentReplies)
	case conv.Turns < 3:
		return r.pick(earlyPool, conv.RecentReplies)
	default:
		return r.pick(ongoingPool, conv.RecentReplies)
	}
}

// pick chooses a random candidate, excluding any whose opening matches
// a recent reply. When every candidate was used recently the full pool
// is used again.
func (r *Responder) pick(pool []string, recent []string) string {
	available := make([]string, 0, len(pool))
	for _, candidate := range pool {
		prefix := candidate
		if len(prefix) > repetitionPrefixLen {
			prefix = prefix[:repetitionPrefixLen]
		}
		used := false
		for _, prior := range recent {
			if strings.Contains(prior, prefix) {
				used = true
				break
			}
		}
		if !used {
			available = append(available, candidate)
		}
	}
	if len(available) == 0 {
		available = pool
	}
	return available[r.rnd.Intn(len(available))]
}
