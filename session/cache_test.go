package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shopper-front/backend"
)

type stubBackend struct {
	meCalls       int32
	projectsCalls int32
	meStatus      int
	projectsFail  bool
}

func (s *stubBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.meCalls, 1)
		if s.meStatus != 0 {
			http.Error(w, "session expired", s.meStatus)
			return
		}
		w.Write([]byte(`{"id":"u1","name":"Ana","email":"ana@example.com","role":"seller","stores":{"Brew":"s1"},"stores_slugs":{"Brew":"brew"}}`))
	})
	mux.HandleFunc("/api/projects/mine", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.projectsCalls, 1)
		if s.projectsFail {
			http.Error(w, "projects unavailable", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id":"pr1","name":"Brew","created_at":"2025-01-01"}]`))
	})
	return mux
}

func newTestCache(t *testing.T, stub *stubBackend) *Cache {
	t.Helper()
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)
	return NewCache(backend.New(srv.URL, 5*time.Second))
}

func TestRefreshBuildsSnapshot(t *testing.T) {
	stub := &stubBackend{}
	cache := newTestCache(t, stub)

	snap, err := cache.Refresh(context.Background(), "tok")
	if err != nil {
		t.Fatal(err)
	}
	if snap.User.ID != "u1" || snap.User.Role != "seller" {
		t.Errorf("user = %+v", snap.User)
	}
	if len(snap.Projects) != 1 || snap.Projects[0].ID != "pr1" {
		t.Errorf("projects = %+v", snap.Projects)
	}
	if snap.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestRefreshCommitsProfileWhenProjectsFail(t *testing.T) {
	stub := &stubBackend{projectsFail: true}
	cache := newTestCache(t, stub)

	snap, err := cache.Refresh(context.Background(), "tok")
	if err != nil {
		t.Fatalf("profile must still commit: %v", err)
	}
	if snap.User.ID != "u1" {
		t.Errorf("user = %+v", snap.User)
	}
	if len(snap.Projects) != 0 {
		t.Errorf("projects should be empty, got %+v", snap.Projects)
	}
	if _, ok := cache.Get("tok"); !ok {
		t.Error("snapshot not cached")
	}
}

func TestRefreshDropsEntryWhenProfileFails(t *testing.T) {
	stub := &stubBackend{}
	cache := newTestCache(t, stub)

	if _, err := cache.Refresh(context.Background(), "tok"); err != nil {
		t.Fatal(err)
	}

	stub.meStatus = http.StatusUnauthorized
	if _, err := cache.Refresh(context.Background(), "tok"); err == nil {
		t.Fatal("expected error when the profile fetch fails")
	}
	if _, ok := cache.Get("tok"); ok {
		t.Error("stale snapshot survived a failed refresh")
	}
}

func TestGetOrRefreshUsesCache(t *testing.T) {
	stub := &stubBackend{}
	cache := newTestCache(t, stub)

	for i := 0; i < 3; i++ {
		if _, err := cache.GetOrRefresh(context.Background(), "tok"); err != nil {
			t.Fatal(err)
		}
	}
	if n := atomic.LoadInt32(&stub.meCalls); n != 1 {
		t.Errorf("me called %d times, want 1", n)
	}
}

func TestClearIsImmediate(t *testing.T) {
	stub := &stubBackend{}
	cache := newTestCache(t, stub)

	if _, err := cache.Refresh(context.Background(), "tok"); err != nil {
		t.Fatal(err)
	}
	cache.Clear("tok")
	if _, ok := cache.Get("tok"); ok {
		t.Error("snapshot survived Clear")
	}
}

func TestSnapshotMapsNeverNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/me" {
			w.Write([]byte(`{"id":"u2","email":"b@c.com","role":"client"}`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cache := NewCache(backend.New(srv.URL, 5*time.Second))
	snap, err := cache.Refresh(context.Background(), "tok")
	if err != nil {
		t.Fatal(err)
	}
	if snap.User.Stores == nil || snap.User.StoreSlugs == nil {
		t.Error("store maps must be non-nil for template iteration")
	}
}
