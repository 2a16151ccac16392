// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"net/http"
	"time"

	"github.com/chavp/c4engineering/internal/catalog"
)

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	StorageReady     bool    `json:"storageReady"`
	ConnectedClients int     `json:"connectedClients"`
	ActiveRooms      int     `json:"activeRooms"`
	Uptime           float64 `json:"uptime"`
}

// Version is the reported application version.
const Version = "1.0.0"

// Health returns overall health: storage reachability, websocket counters
// and uptime. Storage failures degrade the status instead of failing the
// request.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	storageReady := h.storageReady()

	status := "healthy"
	if !storageReady {
		status = "degraded"
	}

	health := HealthStatus{
		Status:       status,
		Version:      Version,
		StorageReady: storageReady,
		Uptime:       time.Since(h.startTime).Seconds(),
	}
	if h.wsHub != nil {
		health.ConnectedClients = h.wsHub.ClientCount()
		health.ActiveRooms = h.wsHub.RoomCount()
	}

	respondSuccess(w, http.StatusOK, health, started)
}

// HealthLive is the liveness probe. It answers 200 whenever the process is
// alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	started := time.Now()
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, started)
}

// HealthReady is the readiness probe. It answers 503 until the file store
// can serve reads.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	started := time.Now()

	if !h.storageReady() {
		respondError(w, http.StatusServiceUnavailable, ErrCodeStorageError, "storage is not ready", nil)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]string{"status": "ready"}, started)
}

// storageReady probes the file store with a list read.
func (h *Handler) storageReady() bool {
	if h.services == nil {
		return false
	}
	_, err := h.services.List(catalog.ServiceFilter{})
	return err == nil
}

// PerformanceStats returns per-endpoint latency percentiles collected by
// the performance monitor.
func (h *Handler) PerformanceStats(w http.ResponseWriter, _ *http.Request) {
	started := time.Now()
	respondSuccess(w, http.StatusOK, h.perfMon.GetStats(), started)
}
