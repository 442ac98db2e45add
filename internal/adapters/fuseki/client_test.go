package fuseki_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"lombok_paradise/internal/adapters/fuseki"
	"lombok_paradise/internal/domain"
)

const destinationsJSON = `{
  "results": {
    "bindings": [
      {
        "name":    {"type": "literal", "value": "Pantai Kuta"},
        "typeURI": {"type": "uri", "value": "http://x#MarineTourism"},
        "descriptionId": {"type": "literal", "xml:lang": "id", "value": "pantai indah"},
        "locationsEn": {"type": "literal", "value": "Central_Lombok"},
        "transports": {"type": "literal", "value": "Car, Bus"}
      }
    ]
  }
}`

const eventsJSON = `{
  "results": {
    "bindings": [
      {
        "eventNameEn": {"type": "literal", "value": "Bau Nyale"},
        "descEn": {"type": "literal", "xml:lang": "en", "value": "sea worm festival"},
        "time": {"type": "literal", "value": "February"}
      }
    ]
  }
}`

func TestClient_FetchDestinations_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/sparql-query" {
			t.Errorf("content type = %s", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "to:TourismName") {
			t.Errorf("query body missing TourismName pattern")
		}
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.Header().Set("Content-Type", "application/sparql-results+json")
			_, _ = w.Write([]byte(destinationsJSON))
		}
	}))
	defer ts.Close()

	cl, err := fuseki.New(ts.URL, 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	bags, err := cl.FetchDestinations(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(bags) != 1 {
		t.Fatalf("bags = %d, want 1", len(bags))
	}
	bag := bags[0]
	if bag["name"] != "Pantai Kuta" || bag["typeURI"] != "http://x#MarineTourism" {
		t.Fatalf("unexpected bag: %+v", bag)
	}
	if bag["descriptionId"] != "pantai indah" || bag["transports"] != "Car, Bus" {
		t.Fatalf("unexpected bag values: %+v", bag)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_FetchEvents_ReshapesBindings(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(eventsJSON))
	}))
	defer ts.Close()

	cl, err := fuseki.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	bags, err := cl.FetchEvents(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(bags) != 1 {
		t.Fatalf("bags = %d, want 1", len(bags))
	}
	bag := bags[0]
	if bag["name"] != "Bau Nyale" {
		t.Fatalf("name = %q", bag["name"])
	}
	if bag["typeURI"] != domain.EventsTypeURI {
		t.Fatalf("typeURI = %q", bag["typeURI"])
	}
	if bag["labelEn"] != "Events" || bag["labelId"] != "Acara" {
		t.Fatalf("labels = %q/%q", bag["labelEn"], bag["labelId"])
	}
	if bag["descriptionEn"] != "sea worm festival" || bag["timeEventsVal"] != "February" {
		t.Fatalf("unexpected bag: %+v", bag)
	}
}

func TestClient_FetchDestinations_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := fuseki.New(ts.URL, 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := cl.FetchDestinations(ctx); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestClient_New_MissingEndpoint(t *testing.T) {
	if _, err := fuseki.New("", 5); !errors.Is(err, domain.ErrMissingEndpoint) {
		t.Fatalf("err = %v, want ErrMissingEndpoint", err)
	}
}
