// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package api provides the HTTP surface of the catalog: REST handlers for
// services, diagrams, pipelines, executions, projects and deployments, the
// websocket upgrade endpoint for collaborative diagram editing, and the Chi
// router that wires them together.
//
// Handler methods are split across files by entity:
//   - handlers.go: Handler struct, constructor, websocket upgrade
//   - handlers_helpers.go: shared respond/decode/validate helpers
//   - handlers_services.go, handlers_diagrams.go, handlers_pipelines.go,
//     handlers_executions.go, handlers_projects.go, handlers_deployments.go
//   - handlers_health.go: liveness, readiness and performance stats
//
// Every response uses the models.APIResponse envelope. Store errors map to
// HTTP status codes by kind: not_found 404, conflict 409, invalid_argument
// 400, storage_failure 500.
package api
