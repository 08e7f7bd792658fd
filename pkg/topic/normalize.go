// Package topic canonicalizes free-text topic strings into stable cache keys.
package topic

import (
	"regexp"
	"strings"
)

// prefixes that carry no semantic meaning for caching purposes. Checked in
// order; only the first match is stripped, so chained phrasings like
// "tell me explain entropy" lose "tell me" and nothing else.
var prefixes = []string{
	"explain",
	"tell me",
	"what is",
	"what are",
	"how does",
	"how do",
	"describe",
	"define",
	"give me",
	"show me",
	"help me understand",
	"can you explain",
	"please explain",
	"i want to know",
	"help with",
}

var punctuation = regexp.MustCompile(`[^\w\s]`)

// Normalize canonicalizes a raw topic for cache storage and lookup:
// lowercase, strip punctuation, remove one leading filler prefix, collapse
// whitespace. Deterministic and side-effect free.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = punctuation.ReplaceAllString(normalized, "")

	for _, p := range prefixes {
		if strings.HasPrefix(normalized, p) {
			normalized = strings.TrimSpace(normalized[len(p):])
			break
		}
	}

	return strings.Join(strings.Fields(normalized), " ")
}

// NormalizeLevel canonicalizes a level token. Levels are lower-cased only;
// prefix stripping never applies to them.
func NormalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
