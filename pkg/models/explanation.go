package models

import (
	"strings"
	"time"
)

// Level tokens accepted by the service, from shallowest to deepest.
const (
	LevelELI5     = "eli5"
	LevelStudent  = "student"
	LevelGraduate = "graduate"
	LevelAdvanced = "advanced"
)

// Levels lists all recognized difficulty levels.
var Levels = []string{LevelELI5, LevelStudent, LevelGraduate, LevelAdvanced}

// ValidLevel reports whether level is one of the recognized tokens,
// case-insensitively.
func ValidLevel(level string) bool {
	l := strings.ToLower(strings.TrimSpace(level))
	for _, v := range Levels {
		if l == v {
			return true
		}
	}
	return false
}

// CacheEntry is one stored explanation, keyed by (normalized topic, level).
type CacheEntry struct {
	Topic       string    `json:"topic"`
	Level       string    `json:"level"`
	Explanation string    `json:"explanation"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExplainRequest is the externally visible request for an explanation.
type ExplainRequest struct {
	Topic        string `json:"topic"`
	Level        string `json:"level"`
	ForceRefresh bool   `json:"force_refresh,omitempty"`
}

// Explanation is the externally visible result of an explain operation.
// ProviderUsed is "cached" when the answer came from the store.
type Explanation struct {
	Topic        string `json:"topic"`
	Level        string `json:"level"`
	Explanation  string `json:"explanation"`
	Cached       bool   `json:"cached"`
	Regenerated  bool   `json:"regenerated"`
	ProviderUsed string `json:"provider_used"`
}

// DeleteResult reports the outcome of an administrative delete.
// Deleted is false when no matching entry existed; that is not an error.
type DeleteResult struct {
	Deleted bool  `json:"deleted"`
	Removed int64 `json:"removed"`
}
