// Package sqlite holds the local persistence for the catalog cache: a
// single-row key-value table carrying the last successfully fetched catalog
// as a JSON array. Writes overwrite fully; there is no merge or versioning.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"novena-backend/domain/novena"
	apperrors "novena-backend/pkg/errors"
)

const catalogCacheKey = "novena_catalog"

// CatalogCache persists the fetched catalog between runs.
type CatalogCache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*CatalogCache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure cache dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "open sqlite at %s", path)
	}

	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pragma journal_mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_cache (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv_cache: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &CatalogCache{db: db}, nil
}

// Close closes the underlying database.
func (c *CatalogCache) Close() error {
	return c.db.Close()
}

// Read returns the persisted catalog. A missing row (first run) returns
// (nil, nil); a corrupt row is an error the caller degrades past.
func (c *CatalogCache) Read(ctx context.Context) (novena.Catalog, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT value FROM kv_cache WHERE key = ?`, catalogCacheKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.NewDatabaseError("read catalog cache", err)
	}

	var catalog novena.Catalog
	if err := json.Unmarshal([]byte(raw), &catalog); err != nil {
		return nil, apperrors.Wrap(err, "decode catalog cache")
	}
	return catalog, nil
}

// Write overwrites the persisted catalog. Last writer wins.
func (c *CatalogCache) Write(ctx context.Context, catalog novena.Catalog) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return apperrors.Wrap(err, "encode catalog cache")
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO kv_cache (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, catalogCacheKey, string(raw), time.Now().UTC())
	if err != nil {
		return apperrors.NewDatabaseError("write catalog cache", err)
	}
	return nil
}
