/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package sqlite provides a file-backed DataStore for running the registry
// without AWS. Entities are kept as JSON documents in one table per
// collection, keyed by a caller-supplied key function.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/suparena/clientregistry/errors"
)

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = stderrors.New("store closed")

var (
	json             = jsoniter.ConfigCompatibleWithStandardLibrary
	collectionNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// DataStore implements datastore.DataStore[T] on SQLite.
type DataStore[T any] struct {
	db         *sql.DB
	collection string
	keyFunc    func(T) string

	mu     sync.RWMutex
	closed bool
}

// New opens (or creates) the database at path and the collection table in
// it. The path should be a file path or ":memory:" for testing.
func New[T any](path, collection string, keyFunc func(T) string) (*DataStore[T], error) {
	if !collectionNameRe.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}
	if keyFunc == nil {
		return nil, stderrors.New("key function is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection serializes writers and keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %q (
			key TEXT NOT NULL PRIMARY KEY,
			doc TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`, collection)); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &DataStore[T]{db: db, collection: collection, keyFunc: keyFunc}, nil
}

// Put upserts entity under keyFunc(entity).
func (s *DataStore[T]) Put(ctx context.Context, entity T) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return errors.NewStorageError("Put", errors.KindUnavailable, ErrStoreClosed)
	}

	key := s.keyFunc(entity)
	if key == "" {
		return errors.NewStorageError("Put", errors.KindRejected, stderrors.New("entity has an empty key"))
	}

	doc, err := json.Marshal(entity)
	if err != nil {
		return errors.NewStorageError("Put", errors.KindRejected, fmt.Errorf("encode document: %w", err))
	}

	_, err = s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %q (key, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			doc = excluded.doc,
			updated_at = excluded.updated_at
	`, s.collection), key, string(doc), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return classifyError("Put", err)
	}
	return nil
}

// GetOne returns the entity stored under key.
func (s *DataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, errors.NewStorageError("GetOne", errors.KindUnavailable, ErrStoreClosed)
	}

	var doc string
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT doc FROM %q WHERE key = ?`, s.collection), key).Scan(&doc)
	if err == sql.ErrNoRows {
		var zero T
		return nil, errors.NewNotFoundError(fmt.Sprintf("%T", zero), key)
	}
	if err != nil {
		return nil, classifyError("GetOne", err)
	}

	result := new(T)
	if err := json.UnmarshalFromString(doc, result); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return result, nil
}

// Close closes the database. It is safe to call more than once.
func (s *DataStore[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func classifyError(op string, err error) error {
	kind := errors.KindUnknown
	switch {
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		kind = errors.KindUnavailable
	case strings.Contains(err.Error(), "database is locked"):
		kind = errors.KindUnavailable
	case strings.Contains(err.Error(), "no such table"):
		kind = errors.KindTableMissing
	}
	return errors.NewStorageError(op, kind, err)
}
