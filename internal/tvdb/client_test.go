package tvdb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/plexkit/seasonsort/internal/cache"
	"github.com/plexkit/seasonsort/internal/tvdb"
)

type fakeTVDB struct {
	logins   atomic.Int64
	searches atomic.Int64
	results  []map[string]string
}

func (f *fakeTVDB) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		f.logins.Add(1)
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req["apikey"] == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]string{"token": "test-jwt"},
		})
	})
	mux.HandleFunc("GET /search", func(w http.ResponseWriter, r *http.Request) {
		f.searches.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-jwt" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": f.results})
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeTVDB, opts ...tvdb.Option) *tvdb.Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	opts = append([]tvdb.Option{
		tvdb.WithBaseURL(srv.URL),
		tvdb.WithRateLimit(1000),
	}, opts...)
	c := tvdb.NewClient("test-key", opts...)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestSearchSeries(t *testing.T) {
	f := &fakeTVDB{results: []map[string]string{
		{"tvdb_id": "81189", "name": "Breaking Bad", "year": "2008"},
		{"tvdb_id": "99999", "name": "Breaking Bad Extras", "year": "2010"},
	}}
	c := newTestClient(t, f)

	got, err := c.SearchSeries(context.Background(), "Breaking Bad")
	if err != nil {
		t.Fatalf("SearchSeries() error = %v", err)
	}
	if got == nil || got.Name != "Breaking Bad" || got.Year != "2008" || got.TVDBID != "81189" {
		t.Errorf("SearchSeries() = %+v; want first result", got)
	}
	if f.logins.Load() != 1 {
		t.Errorf("logins = %d; want 1", f.logins.Load())
	}
}

func TestSearchSeriesNoResults(t *testing.T) {
	c := newTestClient(t, &fakeTVDB{})

	got, err := c.SearchSeries(context.Background(), "No Such Show")
	if err != nil {
		t.Fatalf("SearchSeries() error = %v", err)
	}
	if got != nil {
		t.Errorf("SearchSeries() = %+v; want nil", got)
	}
}

func TestSearchSeriesReusesToken(t *testing.T) {
	f := &fakeTVDB{results: []map[string]string{{"name": "The Wire", "year": "2002"}}}
	c := newTestClient(t, f)

	for i := 0; i < 3; i++ {
		if _, err := c.SearchSeries(context.Background(), "The Wire"); err != nil {
			t.Fatal(err)
		}
	}
	if f.logins.Load() != 1 {
		t.Errorf("logins = %d; want token reused after first login", f.logins.Load())
	}
	if f.searches.Load() != 3 {
		t.Errorf("searches = %d; want 3", f.searches.Load())
	}
}

func TestSearchSeriesCached(t *testing.T) {
	store, err := cache.Open(filepath.Join(t.TempDir(), "api_cache.db"), cache.DefaultTTL)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	f := &fakeTVDB{results: []map[string]string{{"name": "The Wire", "year": "2002"}}}
	c := newTestClient(t, f, tvdb.WithCache(store))

	for i := 0; i < 3; i++ {
		got, err := c.SearchSeries(context.Background(), "The Wire")
		if err != nil {
			t.Fatal(err)
		}
		if got == nil || got.Year != "2002" {
			t.Fatalf("SearchSeries() = %+v", got)
		}
	}
	if f.searches.Load() != 1 {
		t.Errorf("searches = %d; want 1 network hit", f.searches.Load())
	}

	stats := c.Statistics()
	if stats.CacheHits != 2 || stats.CacheMisses != 1 {
		t.Errorf("Statistics() = %+v; want 2 hits, 1 miss", stats)
	}
}

func TestLoginRejected(t *testing.T) {
	f := &fakeTVDB{}
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)

	c := tvdb.NewClient("", tvdb.WithBaseURL(srv.URL), tvdb.WithRateLimit(1000))
	t.Cleanup(func() { c.Close() })

	if err := c.Login(context.Background()); err == nil {
		t.Error("Login() succeeded with an empty API key")
	}
}
