// Package kvstore persists whole JSON documents under namespaced keys in a
// single SQLite table. The marketplace state uses a flat key-value layout:
// one document per collection, read and written in full, so every query
// above it is a plain scan.
package kvstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

const keyPrefix = "starmarket_"

// Collection keys plus the singleton current-user slot.
const (
	KeyUsers         = "users"
	KeyListings      = "listings"
	KeyNotifications = "notifications"
	KeyTransactions  = "transactions"
	KeyCurrentUser   = "current_user"
)

type Store struct {
	db *sql.DB

	// Serializes read-modify-write cycles across repositories. The world is
	// single-actor by design; the lock keeps concurrent HTTP requests from
	// tearing a document.
	mu sync.Mutex
}

// Open opens (or creates) the backing database and initializes every
// collection to an empty list and the current-user slot to null on first run.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(),
		`CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	s := &Store{db: db}

	for _, key := range []string{KeyUsers, KeyListings, KeyNotifications, KeyTransactions} {
		if err := s.initKey(key, "[]"); err != nil {
			db.Close()
			return nil, err
		}
	}
	if err := s.initKey(KeyCurrentUser, "null"); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) initKey(key, value string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
		keyPrefix+key, value)
	if err != nil {
		return fmt.Errorf("init key %s: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Lock takes the store-wide mutation lock. Callers performing a
// read-modify-write cycle must hold it across the whole cycle.
func (s *Store) Lock() { s.mu.Lock() }

func (s *Store) Unlock() { s.mu.Unlock() }

// Get unmarshals the document stored under key into v. It reports whether
// the key was present.
func (s *Store) Get(ctx context.Context, key string, v interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, keyPrefix+key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Put marshals v and stores it under key, replacing any previous document.
func (s *Store) Put(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		keyPrefix+key, string(raw))
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}
