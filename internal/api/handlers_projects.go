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

// ListProjects returns all projects, optionally filtered by the status
// query parameter.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	projects, err := h.projects.List(r.URL.Query().Get("status"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, projects, started)
}

// CreateProject creates a new project workspace.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req models.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.projects.Create(req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, p, started)
}

// GetProject returns a single project by ID.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	p, found, err := h.projects.Get(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("project %q not found", id), nil)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// UpdateProject applies a merge-partial update to a project.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := r.PathValue("id")

	var req models.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.projects.Update(id, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// DeleteProject removes a project. Referenced services and diagrams are
// not deleted with it.
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	existed, err := h.projects.Delete(id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, fmt.Sprintf("project %q not found", id), nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddProjectService attaches an existing service to a project.
func (h *Handler) AddProjectService(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	p, err := h.projects.AddServiceRef(r.PathValue("id"), r.PathValue("serviceId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// RemoveProjectService detaches a service from a project.
func (h *Handler) RemoveProjectService(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	p, err := h.projects.RemoveServiceRef(r.PathValue("id"), r.PathValue("serviceId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// AddProjectDiagram attaches an existing diagram to a project.
func (h *Handler) AddProjectDiagram(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	p, err := h.projects.AddDiagramRef(r.PathValue("id"), r.PathValue("diagramId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// RemoveProjectDiagram detaches a diagram from a project.
func (h *Handler) RemoveProjectDiagram(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	p, err := h.projects.RemoveDiagramRef(r.PathValue("id"), r.PathValue("diagramId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// AddProjectMember attaches a team member to a project.
func (h *Handler) AddProjectMember(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	projectID := r.PathValue("id")

	var req models.AddTeamMemberRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.projects.AddTeamMember(projectID, req)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}

// RemoveProjectMember detaches a team member from a project.
func (h *Handler) RemoveProjectMember(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	p, err := h.projects.RemoveTeamMember(r.PathValue("id"), r.PathValue("memberId"))
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, p, started)
}
