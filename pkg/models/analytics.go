package models

import "time"

// TopicCount is one row of the popular-topics report.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

// LevelCount is one row of the level-distribution report.
type LevelCount struct {
	Level string `json:"level"`
	Count int64  `json:"count"`
}

// DayCount is one row of the recent-activity report.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Analytics aggregates the cache-derived reporting queries.
type Analytics struct {
	TotalExplanations int64        `json:"total_explanations"`
	PopularTopics     []TopicCount `json:"popular_topics"`
	LevelDistribution []LevelCount `json:"level_distribution"`
	RecentActivity    []DayCount   `json:"recent_activity"`
	LastUpdated       time.Time    `json:"last_updated"`
}
