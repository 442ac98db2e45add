package domain

import "context"

type DestinationRepository interface {
	// Write paths
	UpsertDestination(ctx context.Context, d Destination) error
	UpsertI18n(ctx context.Context, i DestinationI18n) error
	LogMiss(ctx context.Context, name, typeURI, reason string) error

	// Read paths
	ListDestinations(ctx context.Context, lang Lang) ([]Destination, error)
}

type SparqlClient interface {
	FetchDestinations(ctx context.Context) ([]AttributeBag, error)
	FetchEvents(ctx context.Context) ([]AttributeBag, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
