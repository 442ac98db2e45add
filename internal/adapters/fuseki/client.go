// internal/adapters/fuseki/client.go
package fuseki

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"lombok_paradise/internal/domain"
)

type Client struct {
	endpoint string
	hc       *http.Client
	rl       *rate.Limiter
}

// New builds a client for a Fuseki SPARQL endpoint. An empty endpoint is a
// configuration error, reported as such rather than surfacing later as a
// connection failure.
func New(endpoint string, rps int) (*Client, error) {
	if endpoint == "" {
		return nil, domain.ErrMissingEndpoint
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 20 * time.Second},
		rl:       rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API ----

// FetchDestinations runs the grouped catalog query: one row per
// name+typeURI pair, one SAMPLE per optional attribute, locations and
// transports pre-joined with ", ".
func (c *Client) FetchDestinations(ctx context.Context) ([]domain.AttributeBag, error) {
	var out sparqlResponse
	if err := c.query(ctx, destinationsQuery, &out); err != nil {
		return nil, err
	}
	bags := make([]domain.AttributeBag, 0, len(out.Results.Bindings))
	for _, b := range out.Results.Bindings {
		bags = append(bags, flatten(b))
	}
	return bags, nil
}

// FetchEvents runs the separate events query (event individuals carry
// rdfs:label instead of TourismName) and reshapes its bindings into the
// catalog bag layout so one normalizer handles both.
func (c *Client) FetchEvents(ctx context.Context) ([]domain.AttributeBag, error) {
	var out sparqlResponse
	if err := c.query(ctx, eventsQuery, &out); err != nil {
		return nil, err
	}
	bags := make([]domain.AttributeBag, 0, len(out.Results.Bindings))
	for _, b := range out.Results.Bindings {
		raw := flatten(b)
		bag := domain.AttributeBag{
			"name":          firstOf(raw, "eventNameEn", "eventNameId"),
			"typeURI":       domain.EventsTypeURI,
			"labelEn":       "Events",
			"labelId":       "Acara",
			"description":   raw["desc"],
			"descriptionEn": raw["descEn"],
			"descriptionId": raw["descId"],
			"image":         raw["img"],
			"videoUrl":      raw["video"],
			"timeEventsVal": raw["time"],
		}
		bags = append(bags, bag)
	}
	return bags, nil
}

// ---- Internals ----

type sparqlResponse struct {
	Results struct {
		Bindings []map[string]sparqlTerm `json:"bindings"`
	} `json:"results"`
}

type sparqlTerm struct {
	Type    string `json:"type"`
	Value   string `json:"value"`
	XMLLang string `json:"xml:lang,omitempty"`
}

func flatten(b map[string]sparqlTerm) domain.AttributeBag {
	bag := make(domain.AttributeBag, len(b))
	for k, t := range b {
		if t.Value != "" {
			bag[k] = t.Value
		}
	}
	return bag
}

func firstOf(bag domain.AttributeBag, keys ...string) string {
	for _, k := range keys {
		if v := bag[k]; v != "" {
			return v
		}
	}
	return ""
}

// query posts a SPARQL query with client-side rate limiting and retries on
// 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) query(ctx context.Context, q string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBufferString(q))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/sparql-query")
		req.Header.Set("Accept", "application/sparql-results+json")
		req.Header.Set("User-Agent", "lombok-paradise/1.0")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNotFound:
			resp.Body.Close()
			return domain.ErrNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("fuseki %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	if lastErr == nil {
		lastErr = errors.New("fuseki query failed")
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// i = retry attempt (0,1,2,...). Base doubles each attempt (200ms, 400ms, 800ms...),
// with up to +50% random jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
