// Package safety implements the crisis-detection gate that runs before any
// LLM call. Detection is a pure, case-insensitive substring match against a
// fixed keyword list: deliberately biased toward false positives, since an
// unnecessary escalation message costs far less than a missed crisis.
package safety

import "strings"

// Keywords is the crisis keyword list. Matching is case-insensitive
// substring, so "Hopeless" and "hopelessness" both trigger. The list is
// small, hardcoded and English; localized lists would hook in here.
var Keywords = []string{
	"suicide",
	"kill myself",
	"end my life",
	"hopeless",
	"can't go on",
	"depressed",
	"worthless",
	"self harm",
	"hurt myself",
}

// Resource is a single helpline contact offered in an escalation response.
type Resource struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Resources is the ordered helpline list returned with every escalation.
// Order matters: the most immediate option comes first.
var Resources = []Resource{
	{Name: "988 Suicide & Crisis Lifeline", Contact: "Call or text 988"},
	{Name: "Crisis Text Line", Contact: "Text HOME to 741741"},
	{Name: "International Association for Suicide Prevention", Contact: "https://www.iasp.info/resources/Crisis_Centres/"},
}

// EscalationMessage is the fixed empathetic reply returned instead of an
// AI-generated response when a crisis is detected.
const EscalationMessage = "I'm really sorry you're feeling this way. You are not alone, " +
	"and you deserve support. Please consider reaching out to one of the crisis " +
	"resources below — they are free, confidential, and available 24/7. If you are " +
	"in immediate danger, please call your local emergency number."

// Detect reports whether message contains any crisis keyword.
// Pure and deterministic: no I/O, O(len(message) * len(Keywords)).
func Detect(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
