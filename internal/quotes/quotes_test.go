package quotes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLocalAlwaysReturnsQuote(t *testing.T) {
	p := NewProvider()
	for i := 0; i < 20; i++ {
		q := p.Local()
		if q.Content == "" || q.Author == "" {
			t.Fatalf("empty local quote: %+v", q)
		}
	}
}

func TestFetchUsesRemoteWhenAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":"Do the work.","author":"Somebody"}`))
	}))
	defer srv.Close()

	p := NewProvider()
	p.RemoteURL = srv.URL
	q, remote := p.Fetch(context.Background())
	if !remote {
		t.Fatal("expected remote quote")
	}
	if q.Content != "Do the work." || q.Author != "Somebody" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewProvider()
	p.RemoteURL = srv.URL
	q, remote := p.Fetch(context.Background())
	if remote {
		t.Fatal("expected fallback quote")
	}
	if q.Content == "" {
		t.Fatal("fallback quote is empty")
	}
}

func TestFetchFallsBackOnUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := NewProvider()
	p.RemoteURL = srv.URL
	q, remote := p.Fetch(context.Background())
	if remote {
		t.Fatal("expected fallback quote")
	}
	if q.Content == "" {
		t.Fatal("fallback quote is empty")
	}
}

func TestFetchRespectsDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Second):
		}
	}))
	defer srv.Close()

	p := NewProvider()
	p.RemoteURL = srv.URL
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, remote := p.Fetch(ctx)
	if remote {
		t.Fatal("expected fallback quote")
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("fetch did not honor the context deadline")
	}
}
