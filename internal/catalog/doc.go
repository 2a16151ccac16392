// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package catalog holds the service layer: one service type per entity kind,
// each wrapping its repository and enforcing the rules that span entities
// (cross-entity reference checks, execution status transitions, diagram
// change fan-out). Services return the typed store errors; HTTP mapping
// happens in the api package.
package catalog
