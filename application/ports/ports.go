// Package ports defines the interfaces the application services depend on.
// Infrastructure provides the implementations; tests provide mocks.
package ports

import (
	"context"

	"novena-backend/domain/novena"
)

// CatalogCache is the persistent key-value store for the fetched catalog.
// Read returns (nil, nil) on first run; Write overwrites fully.
type CatalogCache interface {
	Read(ctx context.Context) (novena.Catalog, error)
	Write(ctx context.Context, catalog novena.Catalog) error
}

// CatalogFetcher retrieves the catalog from the remote endpoint.
type CatalogFetcher interface {
	Fetch(ctx context.Context) (novena.Catalog, error)
}
