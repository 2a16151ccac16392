// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/chavp/c4engineering/internal/models"
)

// StartExecution queues a new execution of the pipeline in the URL. The
// body is optional; an empty body queues an execution with no triggeredBy.
func (h *Handler) StartExecution(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	pipelineID := r.PathValue("id")

	var req models.StartExecutionRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "failed to read request body", err)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body", err)
			return
		}
		if apiErr := validateRequest(&req); apiErr != nil {
			respondJSON(w, http.StatusBadRequest, &models.APIResponse{
				Status:   "error",
				Metadata: models.Metadata{Timestamp: time.Now()},
				Error:    apiErr,
			})
			return
		}
	}

	exec, err := h.executions.Start(r.Context(), pipelineID, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, exec, started)
}

// ListExecutions returns the execution history of a pipeline.
func (h *Handler) ListExecutions(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	pipelineID := r.PathValue("id")

	execs, err := h.executions.ListByPipeline(pipelineID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, execs, started)
}

// GetExecution returns a single execution by ID.
func (h *Handler) GetExecution(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	exec, found, err := h.executions.Get(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("execution %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, exec, started)
}

// CancelExecution cancels a queued or running execution. Cancelling an
// execution already in a terminal state answers 409.
func (h *Handler) CancelExecution(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	exec, err := h.executions.Cancel(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, exec, started)
}
