package app

import (
	"context"
	"fmt"
	"time"

	"lombok_paradise/internal/domain"
)

type QueryService struct {
	repo     domain.DestinationRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.DestinationRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

// Search loads the localized catalog snapshot (cache-aside per language) and
// evaluates the query against it. Evaluation is pure, so each call operates
// on its own snapshot with no shared mutable state.
func (s *QueryService) Search(ctx context.Context, lang domain.Lang, q domain.QueryState) (domain.Evaluation, error) {
	records, err := s.catalog(ctx, lang)
	if err != nil {
		return domain.Evaluation{}, err
	}
	return Evaluate(records, q), nil
}

func (s *QueryService) catalog(ctx context.Context, lang domain.Lang) ([]domain.Destination, error) {
	key := catalogKey(lang)
	var cached []domain.Destination
	if ok, _ := s.cache.Get(ctx, key, &cached); ok {
		return cached, nil
	}
	records, err := s.repo.ListDestinations(ctx, lang)
	if err != nil {
		return nil, err
	}
	// copy before caching so later callers cannot mutate the cached snapshot
	cp := make([]domain.Destination, len(records))
	copy(cp, records)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return records, nil
}

func catalogKey(lang domain.Lang) string { return fmt.Sprintf("catalog:%s", lang) }
