package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"butler/internal/adapters/catalog"
)

const sampleDoc = `{
  "hotel": {
    "name": "The AI Butler Hotel",
    "services": [
      {
        "id": "taxi-1",
        "name": "Hotel Taxi Service",
        "description": "24/7 taxi service for hotel guests.",
        "price": 25,
        "duration": 0,
        "vendor": "Reliable Taxi Co.",
        "type": "transport",
        "location": "Hotel entrance"
      }
    ]
  },
  "restaurants": [
    {
      "id": "rest-1",
      "name": "The Terrace",
      "cuisine": "Fine Dining",
      "type": "restaurant",
      "menu": [{"item": "The Terrace", "price": "$55"}]
    }
  ],
  "spa_services": [],
  "attractions": []
}`

func TestClient_Fetch_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/services" {
			w.WriteHeader(404)
			return
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_, _ = w.Write([]byte(sampleDoc))
		}
	}))
	defer ts.Close()

	cl := catalog.New(ts.URL, 2*time.Second, 100) // high RPS for tests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	snap, err := cl.Fetch(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(snap.Hotel.Services) != 1 || snap.Hotel.Services[0].ID != "taxi-1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Hotel.Services[0].Price == nil || *snap.Hotel.Services[0].Price != 25 {
		t.Fatalf("expected price 25, got %+v", snap.Hotel.Services[0].Price)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Fetch_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := catalog.New(ts.URL, time.Second, 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.Fetch(ctx); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestClient_Fetch_MalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte(`{"restaurants": "nope"}`))
	}))
	defer ts.Close()

	cl := catalog.New(ts.URL, time.Second, 100)
	if _, err := cl.Fetch(context.Background()); err == nil {
		t.Fatalf("expected schema validation error")
	}
}

func TestFileSource_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	snap, err := catalog.NewFileSource(path).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(snap.Restaurants) != 1 || snap.Restaurants[0].Cuisine != "Fine Dining" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestFileSource_Missing(t *testing.T) {
	if _, err := catalog.NewFileSource("/does/not/exist.json").Fetch(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
