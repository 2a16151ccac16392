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

// senderID identifies the websocket client behind a REST mutation so the
// resulting broadcast skips it. Clients that hold a websocket connection
// send their connection ID in the X-Client-ID header; everyone else gets
// the full fan-out.
func senderID(r *http.Request) string {
	return r.Header.Get("X-Client-ID")
}

// ListDiagrams returns all diagrams, or the ones referenced by the project
// named in the projectId query parameter.
func (h *Handler) ListDiagrams(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	diagrams, err := h.diagrams.List(r.URL.Query().Get("projectId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, diagrams, started)
}

// CreateDiagram creates an empty diagram of the requested C4 type.
func (h *Handler) CreateDiagram(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CreateDiagramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.diagrams.Create(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, d, started)
}

// GetDiagram returns a single diagram by ID.
func (h *Handler) GetDiagram(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	d, found, err := h.diagrams.Get(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("diagram %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}

// UpdateDiagram applies a merge-partial update and broadcasts the result to
// the diagram's room.
func (h *Handler) UpdateDiagram(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	var req models.UpdateDiagramRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.diagrams.Update(id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}

// DeleteDiagram removes a diagram.
func (h *Handler) DeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.diagrams.Delete(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("diagram %q not found", id), nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddDiagramElement places an element on a diagram.
func (h *Handler) AddDiagramElement(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	diagramID := r.PathValue("id")

	var req models.AddElementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.diagrams.AddElement(diagramID, req, senderID(r))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, d, started)
}

// UpdateDiagramElement applies a merge-partial update to an element.
func (h *Handler) UpdateDiagramElement(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	diagramID := r.PathValue("id")
	elementID := r.PathValue("elementId")

	var req models.UpdateElementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.diagrams.UpdateElement(diagramID, elementID, req, senderID(r))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}

// RemoveDiagramElement removes an element and its attached relationships.
func (h *Handler) RemoveDiagramElement(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	diagramID := r.PathValue("id")
	elementID := r.PathValue("elementId")

	d, err := h.diagrams.RemoveElement(diagramID, elementID, senderID(r))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}

// AddDiagramRelationship connects two elements on a diagram.
func (h *Handler) AddDiagramRelationship(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	diagramID := r.PathValue("id")

	var req models.AddRelationshipRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := h.diagrams.AddRelationship(diagramID, req, senderID(r))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, d, started)
}

// RemoveDiagramRelationship removes a relationship from a diagram.
func (h *Handler) RemoveDiagramRelationship(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	diagramID := r.PathValue("id")
	relationshipID := r.PathValue("relationshipId")

	d, err := h.diagrams.RemoveRelationship(diagramID, relationshipID, senderID(r))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, d, started)
}
