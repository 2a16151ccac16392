// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chavp/c4engineering/internal/models"
)

// ListPipelines returns all pipelines, or the ones belonging to the service
// named in the serviceId query parameter.
func (h *Handler) ListPipelines(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	pipelines, err := h.pipelines.List(r.URL.Query().Get("serviceId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, pipelines, started)
}

// CreatePipeline defines a new pipeline for an existing service.
func (h *Handler) CreatePipeline(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CreatePipelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.pipelines.Create(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, p, started)
}

// GetPipeline returns a single pipeline by ID.
func (h *Handler) GetPipeline(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	p, found, err := h.pipelines.Get(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("pipeline %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// UpdatePipeline applies a merge-partial update to a pipeline definition.
func (h *Handler) UpdatePipeline(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	var req models.UpdatePipelineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.pipelines.Update(id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// DeletePipeline removes a pipeline definition. Existing execution records
// are kept.
func (h *Handler) DeletePipeline(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.pipelines.Delete(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("pipeline %q not found", id), nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPipelineTemplates returns the built-in pipeline templates.
func (h *Handler) ListPipelineTemplates(w http.ResponseWriter, _ *http.Request) {
	started := time.Now()
	respondSuccess(w, http.StatusOK, h.pipelines.Templates(), started)
}

// GetPipelineTemplate returns a single built-in template by ID.
func (h *Handler) GetPipelineTemplate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	tmpl, found := h.pipelines.Template(id)
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("template %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, tmpl, started)
}

// CreatePipelineFromTemplate instantiates a pipeline from a built-in
// template for an existing service.
func (h *Handler) CreatePipelineFromTemplate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.FromTemplateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.pipelines.CreateFromTemplate(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, p, started)
}
