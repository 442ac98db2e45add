//go:build integration || !unit

package integration_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	httpserver "lombok_paradise/internal/adapters/http_server"
	redisad "lombok_paradise/internal/adapters/redis"
	"lombok_paradise/internal/app"
	"lombok_paradise/internal/domain"
	mysqlrepo "lombok_paradise/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=lombok",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/lombok?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		t.Fatal("MIGRATIONS_DIR not set")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func seed(t *testing.T, repo *mysqlrepo.Repo) {
	t.Helper()
	ctx := context.Background()

	rows := []struct {
		d  domain.Destination
		en domain.DestinationI18n
		id domain.DestinationI18n
	}{
		{
			d: domain.Destination{Name: "Pantai Senggigi", TypeURI: "http://x#MarineTourism", Img: "https://cdn.example/senggigi.jpg"},
			en: domain.DestinationI18n{TypeLabel: "Marine Tourism", Desc: "calm beach with sunset views", Price: "Free",
				Location: "West_Lombok", Transport: "Car"},
			id: domain.DestinationI18n{TypeLabel: "Wisata Bahari", Desc: "pantai tenang", Price: "Gratis",
				Location: "West_Lombok", Transport: "Mobil"},
		},
		{
			d: domain.Destination{Name: "Luxury Resort Spa", TypeURI: "http://x#CulinaryTour", Img: ""},
			en: domain.DestinationI18n{TypeLabel: "Culinary Tour", Desc: "fine dining", Price: "Rp 500.000",
				Location: "Mataram", Transport: "Car"},
			id: domain.DestinationI18n{TypeLabel: "Wisata Kuliner", Desc: "makan mewah", Price: "Rp 500.000",
				Location: "Mataram", Transport: "Mobil"},
		},
	}
	for _, r := range rows {
		if err := repo.UpsertDestination(ctx, r.d); err != nil {
			t.Fatalf("seed destination: %v", err)
		}
		for _, i := range []struct {
			lang domain.Lang
			row  domain.DestinationI18n
		}{{domain.LangEN, r.en}, {domain.LangID, r.id}} {
			row := i.row
			row.Name, row.TypeURI, row.Lang = r.d.Name, r.d.TypeURI, i.lang
			if err := repo.UpsertI18n(ctx, row); err != nil {
				t.Fatalf("seed i18n: %v", err)
			}
		}
	}
}

func TestHTTP_Destinations_EndToEnd(t *testing.T) {
	db := startMySQL(t)
	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	seed(t, repo)

	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	qs := app.NewQueryService(repo, cache, 30*time.Second)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{Q: qs})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)

	get := func(path string) (*http.Response, map[string]any) {
		t.Helper()
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var body map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		resp.Body.Close()
		return resp, body
	}

	// Plain list, English.
	resp, body := get("/v1/destinations?lang=en")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	results := body["results"].([]any)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	// Smart search: "liburan murah" keeps only budget-priced marine/nature types.
	_, body = get("/v1/destinations?lang=id&q=liburan+murah")
	results = body["results"].([]any)
	if len(results) != 1 {
		t.Fatalf("smart results = %d, want 1", len(results))
	}
	first := results[0].(map[string]any)
	if first["name"] != "Pantai Senggigi" {
		t.Fatalf("smart result = %v", first["name"])
	}
	if body["badge"] == nil || body["badge"] == "" {
		t.Fatalf("badge missing: %v", body["badge"])
	}

	// ETag round trip.
	resp, _ = get("/v1/destinations?lang=en")
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/destinations?lang=en", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("conditional status = %d, want 304", resp2.StatusCode)
	}

	// Unknown lang rejected.
	reqBad, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/destinations?lang=fr", nil)
	respBad, err := http.DefaultClient.Do(reqBad)
	if err != nil {
		t.Fatalf("bad lang GET: %v", err)
	}
	respBad.Body.Close()
	if respBad.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad lang status = %d, want 400", respBad.StatusCode)
	}
}
