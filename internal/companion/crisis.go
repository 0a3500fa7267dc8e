package companion

import "strings"

// crisisPhrases are checked against every incoming message before any
// other handling. A match always yields EmergencyMessage.
var crisisPhrases = []string{
	"hurt myself",
	"end it",
	"suicide",
	"kill myself",
	"want to die",
	"better off dead",
	"self harm",
	"cut myself",
	"overdose",
	"jump off",
}

// EmergencyMessage is the fixed crisis response. It is returned verbatim
// and never varied or paraphrased.
const EmergencyMessage = `I'm very concerned about what you've shared and want you to get immediate support. Please reach out for help right now:

🆘 **EMERGENCY**: Call 000 if you're in immediate danger
📞 **Lifeline Australia**: 13 11 14 (24/7 crisis support)
💬 **Crisis Text Line**: Text HELLO to 741741
🌐 **Beyond Blue**: 1300 22 4636
👤 **Suicide Call Back Service**: 1300 659 467

You matter, your life has value, and there are people who want to help you through this difficult time. Please reach out to one of these services or go to your nearest emergency department.`

// DetectsCrisis reports whether the message contains any self-harm
// phrase. Matching is case-insensitive substring search.
func DetectsCrisis(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
