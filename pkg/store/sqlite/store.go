// Package sqlite persists explanations in an embedded SQLite database keyed
// by (normalized topic, level).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"github.com/utkarshrajputt/concept-ai/pkg/models"
	"github.com/utkarshrajputt/concept-ai/pkg/topic"
)

// Store is the durable explanation cache. A later write for the same
// (topic, level) pair fully replaces the prior entry; there is no TTL and no
// automatic eviction.
type Store struct {
	db     *sql.DB
	hits   atomic.Int64
	misses atomic.Int64
}

const createTable = `
CREATE TABLE IF NOT EXISTS explanations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	topic TEXT NOT NULL,
	level TEXT NOT NULL,
	explanation TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(topic, level)
);
`

// New opens the database at dbPath and runs auto-migration.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open explanations db: %w", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate explanations db: %w", err)
	}

	return &Store{db: db}, nil
}

// Get retrieves a cached explanation. The topic and level arguments are
// normalized internally, so callers may pass raw request values.
func (s *Store) Get(ctx context.Context, rawTopic, level string) (string, bool, error) {
	var explanation string
	err := s.db.QueryRowContext(ctx,
		`SELECT explanation FROM explanations WHERE topic = ? AND level = ?`,
		topic.Normalize(rawTopic), topic.NormalizeLevel(level),
	).Scan(&explanation)

	if err == sql.ErrNoRows {
		s.misses.Add(1)
		return "", false, nil
	}
	if err != nil {
		s.misses.Add(1)
		return "", false, fmt.Errorf("cache get: %w", err)
	}

	s.hits.Add(1)
	return explanation, true, nil
}

// Put stores an explanation, replacing any existing entry for the same
// normalized (topic, level) pair along with its timestamp.
func (s *Store) Put(ctx context.Context, rawTopic, level, explanation string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO explanations (topic, level, explanation, created_at)
		 VALUES (?, ?, ?, ?)`,
		topic.Normalize(rawTopic), topic.NormalizeLevel(level), explanation, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Delete removes the entry for (topic, level) and returns how many rows were
// removed. Zero rows is a normal outcome, not an error.
func (s *Store) Delete(ctx context.Context, rawTopic, level string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM explanations WHERE topic = ? AND level = ?`,
		topic.Normalize(rawTopic), topic.NormalizeLevel(level),
	)
	if err != nil {
		return 0, fmt.Errorf("cache delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache delete: %w", err)
	}
	return n, nil
}

// Clear removes all cached explanations.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM explanations`); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Stats returns cache contents and in-process hit/miss counters.
func (s *Store) Stats(ctx context.Context) (models.CacheStats, error) {
	stats := models.CacheStats{
		ByLevel: make(map[string]int64),
		Hits:    s.hits.Load(),
		Misses:  s.misses.Load(),
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM explanations`).Scan(&stats.Entries); err != nil {
		return models.CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `SELECT level, COUNT(*) FROM explanations GROUP BY level`)
	if err != nil {
		return models.CacheStats{}, fmt.Errorf("cache stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int64
		if err := rows.Scan(&level, &count); err != nil {
			return models.CacheStats{}, fmt.Errorf("scan stats: %w", err)
		}
		stats.ByLevel[level] = count
	}
	return stats, rows.Err()
}

// Analytics aggregates the cache-derived reporting queries: totals, top
// topics, level distribution, and per-day writes over the last week.
func (s *Store) Analytics(ctx context.Context) (models.Analytics, error) {
	a := models.Analytics{LastUpdated: time.Now().UTC()}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM explanations`).Scan(&a.TotalExplanations); err != nil {
		return models.Analytics{}, fmt.Errorf("analytics total: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, COUNT(*) AS c FROM explanations GROUP BY topic ORDER BY c DESC LIMIT 10`)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("analytics topics: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tc models.TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			return models.Analytics{}, fmt.Errorf("scan topic count: %w", err)
		}
		a.PopularTopics = append(a.PopularTopics, tc)
	}
	if err := rows.Err(); err != nil {
		return models.Analytics{}, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT level, COUNT(*) AS c FROM explanations GROUP BY level ORDER BY c DESC`)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("analytics levels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var lc models.LevelCount
		if err := rows.Scan(&lc.Level, &lc.Count); err != nil {
			return models.Analytics{}, fmt.Errorf("scan level count: %w", err)
		}
		a.LevelDistribution = append(a.LevelDistribution, lc)
	}
	if err := rows.Err(); err != nil {
		return models.Analytics{}, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT DATE(created_at) AS d, COUNT(*) FROM explanations
		 WHERE created_at >= DATE('now', '-7 days')
		 GROUP BY DATE(created_at) ORDER BY d DESC`)
	if err != nil {
		return models.Analytics{}, fmt.Errorf("analytics activity: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var dc models.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return models.Analytics{}, fmt.Errorf("scan day count: %w", err)
		}
		a.RecentActivity = append(a.RecentActivity, dc)
	}
	return a, rows.Err()
}

// List returns cached entries, most recently written first.
func (s *Store) List(ctx context.Context, limit int) ([]models.CacheEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, level, explanation, created_at FROM explanations
		 ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("cache list: %w", err)
	}
	defer rows.Close()

	var entries []models.CacheEntry
	for rows.Next() {
		var e models.CacheEntry
		if err := rows.Scan(&e.Topic, &e.Level, &e.Explanation, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cache entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Suggestions returns up to limit distinct cached topics, most recently
// written first.
func (s *Store) Suggestions(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, MAX(created_at) AS latest FROM explanations
		 WHERE topic IS NOT NULL AND topic != ''
		 GROUP BY topic ORDER BY latest DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("suggestions: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var tpc, latest string
		if err := rows.Scan(&tpc, &latest); err != nil {
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		topics = append(topics, tpc)
	}
	return topics, rows.Err()
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
