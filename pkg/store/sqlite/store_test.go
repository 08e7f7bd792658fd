package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "explanations_test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "Machine Learning", "Student", "ML is pattern recognition at scale."); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "machine learning", "student")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != "ML is pattern recognition at scale." {
		t.Errorf("unexpected explanation: %s", got)
	}

	// Unrelated pair misses.
	if _, ok, _ := s.Get(ctx, "machine learning", "graduate"); ok {
		t.Error("expected miss for different level")
	}
	if _, ok, _ := s.Get(ctx, "gravity", "student"); ok {
		t.Error("expected miss for different topic")
	}
}

func TestGetNormalizesLookupKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "quantum computing", "eli5", "Tiny switches that can be both on and off."); err != nil {
		t.Fatal(err)
	}

	// Differently-worded requests resolve to the same canonical key.
	for _, q := range []string{"What is quantum computing?", "explain Quantum Computing", "quantum computing"} {
		if _, ok, err := s.Get(ctx, q, "ELI5"); err != nil || !ok {
			t.Errorf("expected hit for %q (ok=%v err=%v)", q, ok, err)
		}
	}
}

func TestPutUpsertOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "entropy", "student", "first version"); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "What is entropy?", "student", "second version"); err != nil {
		t.Fatal(err)
	}

	got, ok, err := s.Get(ctx, "entropy", "student")
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got != "second version" {
		t.Errorf("upsert should replace: got %s", got)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 1 {
		t.Errorf("expected 1 entry after upsert, got %d", stats.Entries)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "osmosis", "eli5", "water moving through a membrane")

	n, err := s.Delete(ctx, "What is osmosis?", "ELI5")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("expected 1 row removed, got %d", n)
	}

	// Deleting a missing entry is a normal zero-count outcome.
	n, err = s.Delete(ctx, "osmosis", "eli5")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected 0 rows removed, got %d", n)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "gravity", "eli5", "things fall down")
	_ = s.Put(ctx, "gravity", "student", "mass attracts mass")
	_ = s.Put(ctx, "entropy", "student", "disorder tends to increase")

	s.Get(ctx, "gravity", "eli5")    // hit
	s.Get(ctx, "gravity", "student") // hit
	s.Get(ctx, "dna", "student")     // miss

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 3 {
		t.Errorf("expected 3 entries, got %d", stats.Entries)
	}
	if stats.ByLevel["student"] != 2 || stats.ByLevel["eli5"] != 1 {
		t.Errorf("unexpected level counts: %v", stats.ByLevel)
	}
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("expected 2 hits / 1 miss, got %d / %d", stats.Hits, stats.Misses)
	}
}

func TestAnalytics(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "gravity", "eli5", "a")
	_ = s.Put(ctx, "gravity", "student", "b")
	_ = s.Put(ctx, "entropy", "student", "c")

	a, err := s.Analytics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if a.TotalExplanations != 3 {
		t.Errorf("expected 3 total, got %d", a.TotalExplanations)
	}
	if len(a.PopularTopics) == 0 || a.PopularTopics[0].Topic != "gravity" || a.PopularTopics[0].Count != 2 {
		t.Errorf("unexpected popular topics: %v", a.PopularTopics)
	}
	if len(a.LevelDistribution) == 0 || a.LevelDistribution[0].Level != "student" {
		t.Errorf("unexpected level distribution: %v", a.LevelDistribution)
	}
	if len(a.RecentActivity) != 1 {
		t.Errorf("expected 1 activity day, got %v", a.RecentActivity)
	}
}

func TestSuggestions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "gravity", "eli5", "a")
	_ = s.Put(ctx, "entropy", "student", "b")
	_ = s.Put(ctx, "gravity", "student", "c")

	got, err := s.Suggestions(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct topics, got %v", got)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "gravity", "eli5", "a")
	_ = s.Put(ctx, "entropy", "student", "b")

	entries, err := s.List(ctx, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Topic == "" || e.Level == "" || e.CreatedAt.IsZero() {
			t.Errorf("incomplete entry: %+v", e)
		}
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.Put(ctx, "gravity", "eli5", "a")
	_ = s.Put(ctx, "entropy", "student", "b")

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	stats, _ := s.Stats(ctx)
	if stats.Entries != 0 {
		t.Errorf("expected 0 entries after clear, got %d", stats.Entries)
	}
}
