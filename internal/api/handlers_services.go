// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chavp/c4engineering/internal/catalog"
	"github.com/chavp/c4engineering/internal/models"
)

// ListServices returns service summaries, optionally filtered by owner,
// system, type and lifecycle query parameters. Filters combine with AND.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	q := r.URL.Query()
	filter := catalog.ServiceFilter{
		Owner:     q.Get("owner"),
		System:    q.Get("system"),
		Type:      q.Get("type"),
		Lifecycle: q.Get("lifecycle"),
	}

	summaries, err := h.services.List(filter)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, summaries, started)
}

// CreateService registers a new service in the catalog.
func (h *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CreateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.services.Create(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, svc, started)
}

// GetService returns a single service by ID.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	svc, found, err := h.services.Get(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("service %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, svc, started)
}

// UpdateService applies a merge-partial update to a service.
func (h *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	var req models.UpdateServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	svc, err := h.services.Update(id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, svc, started)
}

// DeleteService removes a service. Deleting an absent service answers 404.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.services.Delete(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("service %q not found", id), nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
