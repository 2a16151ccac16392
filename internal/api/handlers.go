// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chavp/c4engineering/internal/catalog"
	"github.com/chavp/c4engineering/internal/config"
	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/middleware"
	ws "github.com/chavp/c4engineering/internal/websocket"
)

// Handler contains dependencies for API handlers.
type Handler struct {
	services    *catalog.ServiceCatalog
	diagrams    *catalog.DiagramService
	pipelines   *catalog.PipelineService
	executions  *catalog.ExecutionService
	projects    *catalog.ProjectService
	deployments catalog.DeploymentProvider
	config      *config.Config
	wsHub       *ws.Hub
	startTime   time.Time
	perfMon     *middleware.PerformanceMonitor
}

// Deps bundles the collaborators a Handler needs.
type Deps struct {
	Services    *catalog.ServiceCatalog
	Diagrams    *catalog.DiagramService
	Pipelines   *catalog.PipelineService
	Executions  *catalog.ExecutionService
	Projects    *catalog.ProjectService
	Deployments catalog.DeploymentProvider
	Config      *config.Config
	Hub         *ws.Hub
}

// NewHandler creates a new API handler with all required dependencies.
//
// The handler initializes with a performance monitor tracking the last 1000
// requests and a start time for uptime calculations.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		services:    deps.Services,
		diagrams:    deps.Diagrams,
		pipelines:   deps.Pipelines,
		executions:  deps.Executions,
		projects:    deps.Projects,
		deployments: deps.Deployments,
		config:      deps.Config,
		wsHub:       deps.Hub,
		startTime:   time.Now(),
		perfMon:     middleware.NewPerformanceMonitor(1000),
	}
}

// PerformanceMonitor exposes the request monitor for router wiring.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// getUpgrader creates a websocket upgrader with origin checking and a
// handshake timeout against slow clients.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates websocket connection origins against the
// configured CORS origins. Browser connections always carry an Origin
// header; a missing header means a non-browser client and is allowed.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	if h.config == nil {
		return true
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

// HandleWebSocket upgrades the connection and joins the client to the room
// named by the "room" query parameter. Collaborative diagram sessions use
// the diagram ID as the room name.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "room query parameter is required", nil)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		logging.Warn().Err(err).Str("room", sanitizeLogValue(room)).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn, room)
	h.wsHub.Register <- client
	client.Start()

	logging.Debug().Str("client_id", client.ID()).Str("room", sanitizeLogValue(room)).Msg("WebSocket client connected")
}
