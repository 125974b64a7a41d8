// Package store persists opaque records keyed by path. Every world model,
// stats record and shared list goes through a Store as a CBOR blob.
package store

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

import (
	"context"
	"errors"
	"fmt"

	"dungeon-crawl/internal/config"
)

// ErrNotFound is returned by Read and Delete when no record exists at path.
var ErrNotFound = errors.New("store: record not found")

// Store is a flat key/value blob store.
type Store interface {
	Read(ctx context.Context, path string) ([]byte, error)
	Write(ctx context.Context, path string, data []byte) error
	Delete(ctx context.Context, path string) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

// Open returns the backend selected by cfg.
func Open(cfg config.Config) (Store, error) {
	switch cfg.Backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		return OpenSQLite(cfg.SQLitePath)
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres backend requires DATABASE_URL")
		}
		return NewPostgresStore(cfg.DatabaseURL)
	case BackendFile:
		dir, err := config.DataDir(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		return NewFileStore(dir)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
