// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package models provides the domain data structures for C4Engineering:
// services, C4 diagrams, pipelines, pipeline executions, projects and the
// shared API response envelope. All persisted entities serialize with
// lowerCamelCase field names and RFC3339 UTC timestamps.
package models

import "time"

// EntityMetadata is the audit block every persisted entity carries.
// CreatedAt is set once at creation and never changes; UpdatedAt is
// refreshed on every successful update.
type EntityMetadata struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `json:"createdBy,omitempty"`
}
