// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package repository layers identity and referential-integrity rules on top
// of the raw JSON file store: one repository per entity kind (Service,
// Diagram, Pipeline, PipelineExecution, Project).
//
// Nested-collection mutators (diagram elements/relationships, project
// refs/members) are read-modify-write sequences with no locking. Two
// concurrent mutations of the same parent both read the pre-mutation state
// and the second write silently wins. That lost-update hazard is inherited
// from the original design and covered by a test.
package repository

import (
	"errors"
	"time"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/store"
)

// persistable is satisfied by every domain entity: stable ID plus a
// replaceable audit metadata block.
type persistable[T any] interface {
	EntityID() string
	Meta() models.EntityMetadata
	WithMeta(models.EntityMetadata) T
}

// repo is the shared contract implementation embedded by every concrete
// repository.
type repo[T persistable[T]] struct {
	store *store.Store[T]
}

// Create writes a new entity. InvalidArgument on empty ID, Conflict when the
// ID is already taken. Stamps createdAt and updatedAt to now.
func (r *repo[T]) Create(entity T) (T, error) {
	var zero T
	id := entity.EntityID()

	if id == "" {
		return zero, store.NewError(store.KindInvalidArgument, r.store.Collection(), id, "create",
			errors.New("entity id must not be empty"))
	}
	if r.store.Exists(id) {
		return zero, store.NewError(store.KindConflict, r.store.Collection(), id, "create",
			errors.New("entity id already exists"))
	}

	now := time.Now().UTC()
	meta := entity.Meta()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	entity = entity.WithMeta(meta)

	if err := r.store.Write(id, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

// Update replaces a stored entity. NotFound when the ID does not exist.
// Stamps updatedAt and carries forward the stored createdAt (and createdBy
// when the update does not supply one).
func (r *repo[T]) Update(entity T) (T, error) {
	var zero T
	id := entity.EntityID()

	if id == "" {
		return zero, store.NewError(store.KindInvalidArgument, r.store.Collection(), id, "update",
			errors.New("entity id must not be empty"))
	}

	prior, found, err := r.store.Read(id)
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, store.NewError(store.KindNotFound, r.store.Collection(), id, "update",
			errors.New("entity does not exist"))
	}

	meta := entity.Meta()
	meta.CreatedAt = prior.Meta().CreatedAt
	if meta.CreatedBy == "" {
		meta.CreatedBy = prior.Meta().CreatedBy
	}
	meta.UpdatedAt = time.Now().UTC()
	entity = entity.WithMeta(meta)

	if err := r.store.Write(id, entity); err != nil {
		return zero, err
	}
	return entity, nil
}

// Get reads an entity; the second return value is false when absent.
func (r *repo[T]) Get(id string) (T, bool, error) {
	return r.store.Read(id)
}

// Delete removes an entity, reporting whether it existed. Absence is not an
// error.
func (r *repo[T]) Delete(id string) (bool, error) {
	return r.store.Delete(id)
}

// List returns every entity in the collection.
func (r *repo[T]) List() ([]T, error) {
	return r.store.List()
}

// Exists checks for the entity without reading it.
func (r *repo[T]) Exists(id string) bool {
	return r.store.Exists(id)
}

// Filter returns the entities matching pred via a full scan.
func (r *repo[T]) Filter(pred func(T) bool) ([]T, error) {
	return r.store.Filter(pred)
}
