// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package supervisor builds the suture supervision tree that keeps the
// long-running parts of the catalog alive: the websocket hub and the HTTP
// server. Each runs under its own child supervisor so a crash in one layer
// restarts only that layer.
//
// Supervisor events are logged through sutureslog, which bridges suture's
// event hook to the application's zerolog-backed slog handler.
package supervisor
