// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package store implements the generic JSON file entity store: one directory
// per collection, one <id>.json per entity, plus an index.json holding the
// JSON array of known IDs.
//
// The index is a cache, not a source of truth. Every write and delete fully
// regenerates it from a directory scan, so a crash between the entity write
// and the index write leaves the index stale only until the next mutation.
// Entity write always precedes index regeneration and the pair is not
// atomic.
//
// The store performs no locking; writers are not mutually excluded. Callers
// that read-modify-write the same entity concurrently race, and the last
// write wins.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/metrics"
)

// indexFile is the per-collection ID index, excluded from its own listing.
const indexFile = "index.json"

// Store persists entities of type T as JSON files in one collection
// directory.
type Store[T any] struct {
	dir        string
	collection string
}

// New creates a store for the collection under dataRoot, creating the
// collection directory if needed. Creation is idempotent.
func New[T any](dataRoot, collection string) (*Store[T], error) {
	if collection == "" {
		return nil, NewError(KindInvalidArgument, collection, "", "new", errors.New("empty collection name"))
	}

	dir := filepath.Join(dataRoot, collection)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, storageErr(collection, "", "new", err)
	}

	return &Store[T]{dir: dir, collection: collection}, nil
}

// Collection returns the collection name.
func (s *Store[T]) Collection() string {
	return s.collection
}

// Dir returns the collection directory path.
func (s *Store[T]) Dir() string {
	return s.dir
}

// Read deserializes the entity file for id. The second return value is false
// when the file is absent. A file that exists but cannot be parsed is a
// StorageFailure, never a silent miss.
func (s *Store[T]) Read(id string) (T, bool, error) {
	var zero T
	start := time.Now()

	if err := s.checkID(id, "read"); err != nil {
		return zero, false, err
	}

	data, err := os.ReadFile(s.entityPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			metrics.RecordStoreOperation("read", s.collection, "", time.Since(start))
			return zero, false, nil
		}
		return zero, false, storageErr(s.collection, id, "read", err)
	}

	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return zero, false, storageErr(s.collection, id, "read", err)
	}

	metrics.RecordStoreOperation("read", s.collection, "", time.Since(start))
	return entity, true, nil
}

// Write serializes and overwrites the entity file, then regenerates the
// index from a full directory scan.
func (s *Store[T]) Write(id string, entity T) error {
	start := time.Now()

	if err := s.checkID(id, "write"); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entity, "", "  ")
	if err != nil {
		return storageErr(s.collection, id, "write", err)
	}

	if err := os.WriteFile(s.entityPath(id), data, 0o644); err != nil {
		return storageErr(s.collection, id, "write", err)
	}

	if err := s.rebuildIndex(); err != nil {
		return err
	}

	metrics.RecordStoreOperation("write", s.collection, "", time.Since(start))
	return nil
}

// Delete removes the entity file if present and reports whether it existed,
// then regenerates the index.
func (s *Store[T]) Delete(id string) (bool, error) {
	start := time.Now()

	if err := s.checkID(id, "delete"); err != nil {
		return false, err
	}

	err := os.Remove(s.entityPath(id))
	existed := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, storageErr(s.collection, id, "delete", err)
	}

	if err := s.rebuildIndex(); err != nil {
		return existed, err
	}

	metrics.RecordStoreOperation("delete", s.collection, "", time.Since(start))
	return existed, nil
}

// List reads the index and then each referenced entity. An absent index
// means an empty collection. IDs whose file has since disappeared are
// skipped; a file that exists but cannot be parsed fails the whole call.
// The two failure paths are deliberately distinct.
func (s *Store[T]) List() ([]T, error) {
	start := time.Now()

	ids, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	entities := make([]T, 0, len(ids))
	for _, id := range ids {
		entity, found, err := s.Read(id)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		entities = append(entities, entity)
	}

	metrics.RecordStoreOperation("list", s.collection, "", time.Since(start))
	return entities, nil
}

// Exists checks for the entity file without deserializing it.
func (s *Store[T]) Exists(id string) bool {
	if id == "" || !validID(id) {
		return false
	}
	_, err := os.Stat(s.entityPath(id))
	return err == nil
}

// Filter returns the entities matching pred. Always a full scan; there is no
// secondary index.
func (s *Store[T]) Filter(pred func(T) bool) ([]T, error) {
	entities, err := s.List()
	if err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(entities))
	for _, e := range entities {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// rebuildIndex scans the collection directory and rewrites index.json with
// the IDs of every entity file present, in lexicographic order.
func (s *Store[T]) rebuildIndex() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return storageErr(s.collection, "", "index", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return storageErr(s.collection, "", "index", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, indexFile), data, 0o644); err != nil {
		return storageErr(s.collection, "", "index", err)
	}

	metrics.SetCollectionSize(s.collection, len(ids))
	return nil
}

// readIndex loads index.json; an absent index is an empty collection.
func (s *Store[T]) readIndex() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, indexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, storageErr(s.collection, "", "index", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, storageErr(s.collection, "", "index", err)
	}
	return ids, nil
}

func (s *Store[T]) entityPath(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// checkID rejects empty IDs and IDs that would escape the collection
// directory.
func (s *Store[T]) checkID(id, op string) error {
	if id == "" {
		return NewError(KindInvalidArgument, s.collection, id, op, errors.New("empty entity id"))
	}
	if !validID(id) {
		return NewError(KindInvalidArgument, s.collection, id, op,
			fmt.Errorf("entity id %q contains path characters", id))
	}
	return nil
}

func validID(id string) bool {
	return !strings.ContainsAny(id, "/\\") && id != "." && id != ".."
}

// storageErr wraps an I/O failure, logging it with full identifying context
// before it propagates.
func storageErr(collection, id, op string, err error) *Error {
	logging.Error().
		Err(err).
		Str("collection", collection).
		Str("id", id).
		Str("operation", op).
		Msg("Store operation failed")
	metrics.RecordStoreOperation(op, collection, string(KindStorageFailure), 0)
	return NewError(KindStorageFailure, collection, id, op, err)
}
