// Package validate gates explanation requests and responses with curated
// heuristic tables. It is a filter, not a classifier: every rule is a static
// table lookup or pattern match, evaluated in a fixed priority order.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	minTopicLen = 2
	maxTopicLen = 200
)

// Verdict is the outcome of request validation. Reason is set only when the
// request is rejected.
type Verdict struct {
	Valid  bool
	Reason string
}

func accept() Verdict              { return Verdict{Valid: true} }
func reject(reason string) Verdict { return Verdict{Reason: reason} }

// rule checks one validation policy. It returns a verdict and whether the
// rule matched; an unmatched rule falls through to the next one.
type rule struct {
	name  string
	check func(raw, lower string) (Verdict, bool)
}

// requestRules run in priority order; the first matching rule decides.
var requestRules = []rule{
	{"length-bounds", checkLength},
	{"allow-list", checkKnownTopic},
	{"exact-name", checkExactName},
	{"two-word-name", checkTwoWordName},
	{"vague-list", checkVague},
	{"off-topic-patterns", checkOffTopicPatterns},
	{"academic-keywords", checkAcademicKeyword},
	{"structural", checkStructure},
}

// Topic validates a raw topic before any normalization, caching, or provider
// call. It never errors; heuristics that cannot decide fall through to the
// final too-vague rejection.
func Topic(raw string) Verdict {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)

	for _, r := range requestRules {
		if v, ok := r.check(trimmed, lower); ok {
			return v
		}
	}

	return reject(fmt.Sprintf("'%s' might be too vague. Try adding more context or using a full concept name.", trimmed))
}

func checkLength(raw, lower string) (Verdict, bool) {
	n := utf8.RuneCountInString(lower)
	if n < minTopicLen {
		return reject("Topic is too short. Please enter at least 2 characters."), true
	}
	if n > maxTopicLen {
		return reject("Topic is too long. Please keep it under 200 characters."), true
	}
	return Verdict{}, false
}

func checkKnownTopic(raw, lower string) (Verdict, bool) {
	if _, ok := knownTopics[lower]; ok {
		return accept(), true
	}
	return Verdict{}, false
}

func checkExactName(raw, lower string) (Verdict, bool) {
	if _, ok := firstNames[lower]; ok {
		return reject(fmt.Sprintf("'%s' looks like a person's name. Please enter an educational concept or topic instead.", raw)), true
	}
	return Verdict{}, false
}

// checkTwoWordName catches "firstname lastname" queries. A known first name
// followed by a word that is not a topic continuation and longer than two
// characters reads as a person, not a concept.
func checkTwoWordName(raw, lower string) (Verdict, bool) {
	words := strings.Fields(lower)
	if len(words) != 2 {
		return Verdict{}, false
	}
	if _, ok := firstNames[words[0]]; !ok {
		return Verdict{}, false
	}
	if _, ok := continuations[words[1]]; ok {
		return Verdict{}, false
	}
	if utf8.RuneCountInString(words[1]) <= 2 {
		return Verdict{}, false
	}
	return reject("That looks like a person's name rather than an educational topic. Try a concept like 'machine learning' or 'photosynthesis'."), true
}

func checkVague(raw, lower string) (Verdict, bool) {
	if _, ok := vagueTopics[lower]; ok {
		return reject(fmt.Sprintf("'%s' is too vague. Please be more specific about what you would like to learn.", raw)), true
	}
	return Verdict{}, false
}

func checkOffTopicPatterns(raw, lower string) (Verdict, bool) {
	for _, p := range offTopicPatterns {
		if p.MatchString(lower) {
			return reject(offTopicReason), true
		}
	}
	if isRepeatedRune(lower) {
		return reject(offTopicReason), true
	}
	return Verdict{}, false
}

const offTopicReason = "Please focus on educational and technical concepts. Try topics like 'quantum computing' or 'supply and demand'."

func checkAcademicKeyword(raw, lower string) (Verdict, bool) {
	for _, kw := range academicKeywords {
		if strings.Contains(lower, kw) {
			return accept(), true
		}
	}
	return Verdict{}, false
}

// checkStructure accepts anything that still looks substantial: multiple
// words, a reasonably long single word, or a recognizable technical suffix.
func checkStructure(raw, lower string) (Verdict, bool) {
	if len(strings.Fields(lower)) > 1 {
		return accept(), true
	}
	if utf8.RuneCountInString(lower) > 8 {
		return accept(), true
	}
	for _, suffix := range technicalSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return accept(), true
		}
	}
	return Verdict{}, false
}
