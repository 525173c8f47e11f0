// Package sqlite loads resource content from a SQLite content table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mwantia/namespace/data"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps resource content in a single namespace_content table
// keyed by descriptor key. The dbPath can be ":memory:" for an in-memory
// database or a file path.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the content database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	store := &SQLiteStore{
		db: db,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS namespace_content (
		key TEXT PRIMARY KEY,
		content BLOB NOT NULL,
		modify_time INTEGER NOT NULL
	);`

	_, err := s.db.Exec(schema)
	return err
}

// Kind returns the descriptor discriminator handled by this store.
func (*SQLiteStore) Kind() string {
	return data.DescriptorKindSQLiteBlob
}

// Load reads the content row the descriptor points at. A missing row or
// a failing database surfaces as data.ErrUnavailable.
func (s *SQLiteStore) Load(ctx context.Context, descriptor data.ResourceDescriptor) ([]byte, error) {
	blob, ok := descriptor.(*data.SQLiteBlobDescriptor)
	if !ok {
		return nil, fmt.Errorf("%w: expected a sqliteblob descriptor", data.ErrInvalidArgument)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var content []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT content FROM namespace_content WHERE key = ?", blob.Key).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: sqlite key %s does not exist", data.ErrUnavailable, blob.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite key %s: %v", data.ErrUnavailable, blob.Key, err)
	}

	return content, nil
}

// Put writes or replaces a content row. Used by packaging tooling and
// tests to seed the store.
func (s *SQLiteStore) Put(ctx context.Context, key string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO namespace_content (key, content, modify_time) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET content = excluded.content, modify_time = excluded.modify_time`,
		key, content, time.Now().Unix())

	return err
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}
