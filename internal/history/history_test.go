package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates an in-memory SQLite store for testing
func createTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestOpen(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		store, err := Open(":memory:")
		if err != nil {
			t.Fatalf("failed to open in-memory store: %v", err)
		}
		defer func() { _ = store.Close() }()

		if store.db == nil {
			t.Error("store database is nil")
		}
	})

	t.Run("file-based database persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.db")
		ctx := context.Background()

		store, err := Open(path)
		if err != nil {
			t.Fatalf("failed to open file store: %v", err)
		}
		if _, err := store.Add(ctx, Entry{Kind: KindRelease, Query: "1", Success: true}); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
		_ = store.Close()

		reopened, err := Open(path)
		if err != nil {
			t.Fatalf("failed to reopen store: %v", err)
		}
		defer func() { _ = reopened.Close() }()

		count, err := reopened.Count(ctx)
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 entry after reopen, got %d", count)
		}
	})
}

func TestStoreAdd(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	id, err := store.Add(ctx, Entry{
		Kind:    KindArtist,
		Query:   "Björk",
		Success: true,
		Summary: "Björk (Björk Guðmundsdóttir)",
	})
	if err != nil {
		t.Fatalf("failed to add entry: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive id, got %d", id)
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.ID != id || e.Kind != KindArtist || e.Query != "Björk" || !e.Success {
		t.Errorf("unexpected entry %+v", e)
	}
	if e.Summary != "Björk (Björk Guðmundsdóttir)" {
		t.Errorf("unexpected summary %q", e.Summary)
	}
	if e.Error != "" {
		t.Errorf("expected empty error, got %q", e.Error)
	}
	if time.Since(e.Timestamp) > time.Minute {
		t.Errorf("expected a current timestamp, got %v", e.Timestamp)
	}
}

func TestStoreRecent(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, q := range []string{"first", "second", "third"} {
		_, err := store.Add(ctx, Entry{
			Kind:      KindSearch,
			Query:     q,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{name: "no limit", limit: 0, want: []string{"third", "second", "first"}},
		{name: "limited", limit: 2, want: []string{"third", "second"}},
		{name: "limit above count", limit: 10, want: []string{"third", "second", "first"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.Recent(ctx, tt.limit)
			if err != nil {
				t.Fatalf("failed to list entries: %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("expected %d entries, got %d", len(tt.want), len(entries))
			}
			for i, q := range tt.want {
				if entries[i].Query != q {
					t.Errorf("entry %d: expected %q, got %q", i, q, entries[i].Query)
				}
			}
		})
	}
}

func TestStoreSearch(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	seed := []Entry{
		{Kind: KindArtist, Query: "Aphex Twin", Success: true},
		{Kind: KindSearch, Query: "aphex", Success: true},
		{Kind: KindLabel, Query: "Warp Records", Success: false, Error: "Not found"},
		{Kind: KindSearch, Query: "100% Silk", Success: true},
	}
	for _, e := range seed {
		if _, err := store.Add(ctx, e); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	tests := []struct {
		name  string
		kind  string
		term  string
		count int
	}{
		{name: "any kind case insensitive", kind: "", term: "APHEX", count: 2},
		{name: "filtered by kind", kind: KindArtist, term: "aphex", count: 1},
		{name: "no match", kind: "", term: "Autechre", count: 0},
		{name: "percent is literal", kind: "", term: "100%", count: 1},
		{name: "underscore is literal", kind: "", term: "_", count: 0},
		{name: "empty term matches all", kind: KindSearch, term: "", count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := store.Search(ctx, tt.kind, tt.term)
			if err != nil {
				t.Fatalf("failed to search: %v", err)
			}
			if len(entries) != tt.count {
				t.Errorf("expected %d entries, got %d: %+v", tt.count, len(entries), entries)
			}
		})
	}
}

func TestStoreCleanup(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	old := Entry{Kind: KindRelease, Query: "old", Timestamp: time.Now().Add(-48 * time.Hour)}
	recent := Entry{Kind: KindRelease, Query: "recent", Timestamp: time.Now()}
	for _, e := range []Entry{old, recent} {
		if _, err := store.Add(ctx, e); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	deleted, err := store.Cleanup(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("failed to cleanup: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted entry, got %d", deleted)
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Query != "recent" {
		t.Errorf("expected only the recent entry, got %+v", entries)
	}
}

func TestStoreCount(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty store, got %d", count)
	}

	for i := 0; i < 5; i++ {
		if _, err := store.Add(ctx, Entry{Kind: KindRelease, Query: "x"}); err != nil {
			t.Fatalf("failed to add entry: %v", err)
		}
	}

	count, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 entries, got %d", count)
	}
}
