// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"fmt"
	"net/http"
	"time"
)

// ListDeployments returns deployment status records from the configured
// provider. The bundled provider serves canned data.
func (h *Handler) ListDeployments(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	deployments, err := h.deployments.ListDeployments(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, deployments, started)
}

// GetDeployment returns a single deployment status record by ID.
func (h *Handler) GetDeployment(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	d, found, err := h.deployments.GetDeployment(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("deployment %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}
