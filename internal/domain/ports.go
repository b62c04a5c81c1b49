package domain

import "context"

// CatalogSource produces a full CatalogSnapshot or fails. Implementations:
// the catalog HTTP client, the static-file source, and the MySQL source.
type CatalogSource interface {
	Fetch(ctx context.Context) (CatalogSnapshot, error)
}

// Cache is a shared key/value snapshot store (Redis in production).
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
