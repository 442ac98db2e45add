package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"lombok_paradise/internal/domain"
)

type IngestionService struct {
	sparql domain.SparqlClient
	repo   domain.DestinationRepository
	cache  domain.Cache
}

func NewIngestionService(c domain.SparqlClient, r domain.DestinationRepository, cache domain.Cache) *IngestionService {
	return &IngestionService{sparql: c, repo: r, cache: cache}
}

// IngestStats summarizes one catalog ingestion run.
type IngestStats struct {
	Fetched  int
	Ingested int
	Skipped  int
}

// IngestCatalog fetches the full record set from the triple store,
// normalizes each bag for both languages, and upserts base plus i18n rows.
// Malformed bags are recorded as misses and skipped; one bad record never
// aborts the batch. workers bounds the concurrent upserts.
func (s *IngestionService) IngestCatalog(ctx context.Context, workers int) (IngestStats, error) {
	bags, err := s.sparql.FetchDestinations(ctx)
	if err != nil {
		return IngestStats{}, fmt.Errorf("fetch destinations: %w", err)
	}

	// Events live under rdfs:label rather than TourismName and come from a
	// second query; losing them degrades the catalog but is not fatal.
	if events, eerr := s.sparql.FetchEvents(ctx); eerr != nil {
		log.Warn().Err(eerr).Msg("events fetch failed, continuing without events")
	} else {
		bags = append(bags, events...)
	}

	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	stats := IngestStats{Fetched: len(bags)}

	for _, bag := range bags {
		bag := bag
		if err := sem.Acquire(ctx, 1); err != nil {
			return stats, err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			ok := s.ingestOne(ctx, bag)
			mu.Lock()
			if ok {
				stats.Ingested++
			} else {
				stats.Skipped++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// The snapshot changed; evict both language views.
	if s.cache != nil {
		for _, lang := range []domain.Lang{domain.LangEN, domain.LangID} {
			_ = s.cache.Del(ctx, catalogKey(lang))
		}
	}
	return stats, nil
}

func (s *IngestionService) ingestOne(ctx context.Context, bag domain.AttributeBag) bool {
	// Normalize the English view first; it carries the language-agnostic
	// base fields and decides whether the record is usable at all.
	base, err := Normalize(bag, domain.LangEN)
	if err != nil {
		_ = s.repo.LogMiss(ctx, bag["name"], bag["typeURI"], "malformed")
		return false
	}
	if err := s.repo.UpsertDestination(ctx, base); err != nil {
		log.Warn().Err(err).Str("name", base.Name).Msg("upsert destination failed")
		return false
	}
	for _, lang := range []domain.Lang{domain.LangEN, domain.LangID} {
		d, nerr := Normalize(bag, lang)
		if nerr != nil {
			// name/typeURI do not vary by language, so this cannot differ
			// from the base outcome; guard anyway
			continue
		}
		if err := s.repo.UpsertI18n(ctx, i18nOf(d)); err != nil {
			log.Warn().Err(err).Str("name", d.Name).Str("lang", string(lang)).Msg("upsert i18n failed")
			return false
		}
	}
	return true
}

func i18nOf(d domain.Destination) domain.DestinationI18n {
	return domain.DestinationI18n{
		Name:         d.Name,
		TypeURI:      d.TypeURI,
		Lang:         d.Language,
		TypeLabel:    d.TypeLabel,
		Desc:         d.Desc,
		Price:        d.Price,
		Location:     d.Location,
		Transport:    d.Transport,
		Activity:     d.Activity,
		Facility:     d.Facility,
		OpeningHours: d.OpeningHours,
	}
}
