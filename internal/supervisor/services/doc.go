// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package services wraps the application's long-running components as
// suture services: the HTTP server and the websocket hub. Each wrapper
// adapts a component's own lifecycle to suture's context-aware Serve
// pattern and names itself for supervisor event logs.
package services
