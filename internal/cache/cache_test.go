package cache

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(filepath.Join(t.TempDir(), "cache.db"))
	if err := s.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("/api/personal/habits", []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	body, at, ok, err := s.Get("/api/personal/habits")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected cached entry")
	}
	if string(body) != `[{"id":1}]` {
		t.Fatalf("body = %q", body)
	}
	if time.Since(at) > time.Minute {
		t.Fatalf("fetched_at too old: %v", at)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, _, ok, err := s.Get("/api/finance/investments")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected no entry")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("k", []byte("old")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("k", []byte("new")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	body, _, ok, err := s.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(body) != "new" {
		t.Fatalf("body = %q, want new", body)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("k", []byte("v")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, _, ok, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("entry survived delete")
	}

	if err := s.Delete("missing"); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}
}

func TestPurgeRemovesOnlyStaleEntries(t *testing.T) {
	s := newTestStore(t)

	stale := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	if _, err := s.db.Exec(
		"INSERT INTO responses (key, body, fetched_at) VALUES (?, ?, ?)",
		"stale", []byte("x"), stale,
	); err != nil {
		t.Fatalf("seed stale entry: %v", err)
	}
	if err := s.Put("fresh", []byte("y")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	n, err := s.Purge(24 * time.Hour)
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if n != 1 {
		t.Fatalf("purged %d entries, want 1", n)
	}

	if _, _, ok, _ := s.Get("stale"); ok {
		t.Fatal("stale entry survived purge")
	}
	if _, _, ok, _ := s.Get("fresh"); !ok {
		t.Fatal("fresh entry was purged")
	}
}
