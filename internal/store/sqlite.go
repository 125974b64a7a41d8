package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLite stores blobs in a single-table SQLite database.
type SQLite struct {
	sqlDB *sql.DB
}

// OpenSQLite opens and migrates a SQLite blob store at path.
func OpenSQLite(path string) (*SQLite, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s := &SQLite{sqlDB: sqlDB}
	if err := s.migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	_, err := s.sqlDB.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		path TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (unixepoch())
	)`)
	return err
}

// Close releases the underlying SQLite connection.
func (s *SQLite) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *SQLite) Read(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM blobs WHERE path = ?`, path).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (s *SQLite) Write(ctx context.Context, path string, data []byte) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO blobs (path, data, updated_at) VALUES (?, ?, unixepoch())
		 ON CONFLICT(path) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		path, data)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, path string) error {
	res, err := s.sqlDB.ExecContext(ctx, `DELETE FROM blobs WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
