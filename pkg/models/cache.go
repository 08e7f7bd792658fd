package models

// CacheStats summarizes explanation cache contents and performance.
type CacheStats struct {
	Entries int64            `json:"total_cached"`
	ByLevel map[string]int64 `json:"by_level"`
	Hits    int64            `json:"hits"`
	Misses  int64            `json:"misses"`
}
