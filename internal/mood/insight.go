package mood

import "fmt"

// InsightFor returns the fixed one-sentence insight for a free-form mood
// label, with an optional note echoed back verbatim. Unknown labels fall
// back to a generic sentence; no analysis is performed on the note.
func InsightFor(label string, note string) string {
	base, ok := insights[label]
	if !ok {
		base = "Every feeling you experience is valid and part of your human experience. Be gentle with yourself as you navigate these emotions."
	}
	if note == "" {
		return base
	}
	return fmt.Sprintf("%s\n\nBased on your notes: %q - Remember that self-awareness is the first step toward growth and healing.", base, note)
}

var insights = map[string]string{
	"happy":    "It's wonderful that you're feeling happy! This positive energy can be a great foundation for connecting with others and pursuing activities you enjoy.",
	"sad":      "It's okay to feel sad sometimes. These feelings are valid and temporary. Consider gentle self-care activities or reaching out to someone you trust.",
	"anxious":  "Feeling anxious is common and manageable. Try some deep breathing exercises or grounding techniques. Remember that you've gotten through difficult times before.",
	"stressed": "Stress can feel overwhelming, but you have the strength to handle this. Break things down into smaller, manageable steps and be kind to yourself.",
	"excited":  "Your excitement is energizing! Channel this positive feeling into something meaningful to you, whether that's a project, hobby, or time with loved ones.",
	"tired":    "Feeling tired is your body and mind asking for care. Rest is productive and necessary. Consider what type of rest would serve you best right now.",
	"angry":    "Anger can signal that something important to you needs attention. Take some time to breathe and reflect on what might be behind this feeling.",
	"grateful": "Gratitude is a powerful emotion that can enhance your wellbeing. Consider keeping a gratitude journal or sharing your appreciation with others.",
}
