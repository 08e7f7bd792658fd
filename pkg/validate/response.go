package validate

import "strings"

// minAnswerLen is the length under which a refusal phrase marks the whole
// answer as a refusal. Longer texts may quote such phrases legitimately.
const minAnswerLen = 100

// personIndicators are phrases a provider emits when it recognized the input
// as a personal name or an unanswerable personal query. Any occurrence
// rejects the answer regardless of length.
var personIndicators = []string{
	"appears to be a person's name",
	"seems to be a person's name",
	"appears to be a personal name",
	"is a person's name",
	"looks like a person's name",
	"appears to be a private individual",
	"information about private individuals",
	"is a common given name",
	"without knowing who this person is",
}

// refusalPhrases mark short answers as refusals rather than explanations.
var refusalPhrases = []string{
	"i can't",
	"i cannot",
	"i'm unable",
	"i am unable",
	"unable to provide",
	"cannot provide",
	"can't help with",
	"cannot assist",
}

// AcceptableResponse reports whether a successful provider answer should be
// cached and served. It is the second line of defense behind Topic: it
// catches queries the request heuristics passed through but the provider
// itself recognized as out of scope.
func AcceptableResponse(text string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, phrase := range personIndicators {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	if len(text) < minAnswerLen {
		for _, phrase := range refusalPhrases {
			if strings.Contains(lower, phrase) {
				return false
			}
		}
	}

	return true
}
