package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"smart-timetable/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TEXT NOT NULL,
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, created_at);
`

// Store is a generic document store over named collections, backed by a
// single SQLite file. Documents are stored as JSON bodies keyed by a
// store-generated id.
type Store struct {
	db *sql.DB
	l  log.Logger
}

// Open opens the store. An empty or "none" driver returns (nil, nil): a nil
// *Store is a valid handle on which every operation reports ErrUnavailable.
func Open(cfg Config, l log.Logger) (*Store, error) {
	switch cfg.Driver {
	case "", "none":
		return nil, nil
	case "sqlite":
	default:
		return nil, fmt.Errorf("unknown docstore driver %q", cfg.Driver)
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, l: l}, nil
}

// Available reports whether the store can serve requests.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Close closes the backing database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Insert stores doc in the named collection and returns the generated id.
// The document itself is not mutated.
func (s *Store) Insert(ctx context.Context, collection string, doc Document) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	if collection == "" {
		return "", errors.New("collection name is required")
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents(collection, id, body, created_at) VALUES(?,?,?,?)`,
		collection, id, string(body), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %q: %w", collection, err)
	}
	return id, nil
}

// Find returns all documents in the collection matching every filter, in
// insertion order. The store-native key is attached under KeyField.
func (s *Store) Find(ctx context.Context, collection string, filters ...Filter) ([]Document, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY created_at, id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %q: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}

		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("corrupt document %s/%s: %w", collection, id, err)
		}
		if !matches(doc, filters) {
			continue
		}
		doc[KeyField] = id
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Collections lists the distinct collection names currently stored.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func matches(doc Document, filters []Filter) bool {
	for _, f := range filters {
		got, ok := doc[f.Field]
		switch f.Op {
		case OpEq:
			if !ok || !equal(got, f.Value) {
				return false
			}
		case OpNeq:
			if ok && equal(got, f.Value) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// equal compares a decoded JSON value against a filter value. Numbers decode
// as float64, so numeric filter values are normalized before comparison.
func equal(a, b any) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
