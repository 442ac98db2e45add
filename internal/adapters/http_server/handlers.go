// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lombok_paradise/internal/app"
	"lombok_paradise/internal/domain"
)

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/destinations", h.searchDestinations)
}

// selectLang picks the UI language, Indonesian-first: an explicit id prefix
// wins, everything else falls back to English.
func selectLang(al string) domain.Lang {
	if strings.HasPrefix(strings.ToLower(al), "id") {
		return domain.LangID
	}
	return domain.LangEN
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- response shaping ----

type destinationView struct {
	domain.Destination
	ImageURL     string `json:"imageUrl"`
	DisplayPrice string `json:"displayPrice"`
}

type ruleView struct {
	ID    string `json:"id"`
	Badge string `json:"badge"`
}

type catalogResponse struct {
	Results        []destinationView `json:"results"`
	TriggeredRules []ruleView        `json:"triggeredRules"`
	Badge          string            `json:"badge,omitempty"`
}

// avatarURL is the placeholder image used when a destination has no usable
// image of its own.
func avatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random&size=300"
}

// formatPrice renders a raw price string for display: empty and "0"/"free"
// variants localize to Free/Gratis, digit-bearing values become
// "Rp 1.234.567", anything else passes through unchanged.
func formatPrice(price string, lang domain.Lang) string {
	free := "Free"
	if lang == domain.LangID {
		free = "Gratis"
	}
	if price == "" {
		return free
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil && n > 0 {
		return "Rp " + groupThousands(n)
	}
	lower := strings.ToLower(price)
	if strings.Contains(lower, "free") || strings.Contains(lower, "gratis") || price == "0" {
		return free
	}
	return price
}

// groupThousands formats n with '.' separators, id-ID style.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < len(s); i += 3 {
		b.WriteByte('.')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func toResponse(ev domain.Evaluation, lang domain.Lang) catalogResponse {
	resp := catalogResponse{
		Results:        make([]destinationView, 0, len(ev.Results)),
		TriggeredRules: make([]ruleView, 0, len(ev.TriggeredRules)),
	}
	for _, d := range ev.Results {
		img := d.Img
		if img == "" || !strings.HasPrefix(img, "http") {
			img = avatarURL(d.Name)
		}
		resp.Results = append(resp.Results, destinationView{
			Destination:  d,
			ImageURL:     img,
			DisplayPrice: formatPrice(d.Price, lang),
		})
	}
	for _, r := range ev.TriggeredRules {
		resp.TriggeredRules = append(resp.TriggeredRules, ruleView{ID: r.ID, Badge: r.Badge(lang)})
	}
	// The badge shown on every card comes from the first triggered rule.
	if len(ev.TriggeredRules) > 0 {
		resp.Badge = ev.TriggeredRules[0].Badge(lang)
	}
	return resp
}

// ---- handlers ----

func (h *Handlers) searchDestinations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	langParam := q.Get("lang")
	var lang domain.Lang
	switch langParam {
	case "":
		lang = selectLang(r.Header.Get("Accept-Language"))
	case "en":
		lang = domain.LangEN
	case "id":
		lang = domain.LangID
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid lang", "lang must be en or id")
		return
	}

	state := domain.QueryState{
		Keyword:   q.Get("q"),
		Category:  q.Get("category"),
		Location:  q.Get("location"),
		Transport: q.Get("transport"),
	}

	ev, err := h.Q.Search(r.Context(), lang, state)
	if err != nil {
		log.Error().Err(err).Msg("catalog search failed")
		writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "could not load destination catalog")
		return
	}

	resp := toResponse(ev, lang)
	etag, body := calcETagAndBody(resp)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(lang))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write searchDestinations body")
	}
}
