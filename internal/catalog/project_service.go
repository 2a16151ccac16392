// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
)

// ProjectService manages projects and their references into the rest of the
// catalog. Adding a service or diagram reference checks the referenced
// entity exists at the time of the add; references are not re-validated
// afterwards (the catalog has no cascading deletes across collections).
type ProjectService struct {
	projects *repository.ProjectRepository
	services *repository.ServiceRepository
	diagrams *repository.DiagramRepository
	logger   zerolog.Logger
}

// NewProjectService creates the project service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProjectService(projects *repository.ProjectRepository, services *repository.ServiceRepository, diagrams *repository.DiagramRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		services: services,
		diagrams: diagrams,
		logger:   logger.With().Str("component", "project_service").Logger(),
	}
}

// Create stores a new project. The status defaults to planning when the
// request leaves it empty.
func (s *ProjectService) Create(req models.CreateProjectRequest) (models.Project, error) {
	status := models.ProjectStatusPlanning
	if req.Status != "" {
		var ok bool
		status, ok = models.ParseProjectStatus(req.Status)
		if !ok {
			return models.Project{}, invalidArg(repository.ProjectCollection, req.ID, "create",
				fmt.Errorf("unknown project status %q", req.Status))
		}
	}

	p := models.Project{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		ServiceIDs:  []string{},
		DiagramIDs:  []string{},
		TeamMembers: []models.TeamMember{},
		Metadata:    models.EntityMetadata{CreatedBy: req.CreatedBy},
	}

	created, err := s.projects.Create(p)
	if err != nil {
		return models.Project{}, err
	}

	s.logger.Info().
		Str("project_id", created.ID).
		Str("status", string(created.Status)).
		Msg("Project created")
	return created, nil
}

// Get returns one project by ID.
func (s *ProjectService) Get(id string) (models.Project, bool, error) {
	return s.projects.Get(id)
}

// List returns all projects, optionally narrowed by status. An unknown
// status string is an InvalidArgument.
func (s *ProjectService) List(status string) ([]models.Project, error) {
	if status == "" {
		return s.projects.List()
	}
	parsed, ok := models.ParseProjectStatus(status)
	if !ok {
		return nil, invalidArg(repository.ProjectCollection, "", "list",
			fmt.Errorf("unknown project status %q", status))
	}
	return s.projects.FindByStatus(parsed)
}

// Update applies a merge-partial update to a project.
func (s *ProjectService) Update(id string, req models.UpdateProjectRequest) (models.Project, error) {
	p, found, err := s.projects.Get(id)
	if err != nil {
		return models.Project{}, err
	}
	if !found {
		return models.Project{}, notFound(repository.ProjectCollection, id, "update")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		status, ok := models.ParseProjectStatus(*req.Status)
		if !ok {
			return models.Project{}, invalidArg(repository.ProjectCollection, id, "update",
				fmt.Errorf("unknown project status %q", *req.Status))
		}
		p.Status = status
	}

	return s.projects.Update(p)
}

// Delete removes a project. Referenced services and diagrams are untouched.
func (s *ProjectService) Delete(id string) (bool, error) {
	return s.projects.Delete(id)
}

// AddServiceRef attaches a catalog service to the project. The service must
// exist.
func (s *ProjectService) AddServiceRef(projectID, serviceID string) (models.Project, error) {
	if !s.services.Exists(serviceID) {
		return models.Project{}, invalidArg(repository.ProjectCollection, projectID, "addServiceRef",
			fmt.Errorf("service %q does not exist", serviceID))
	}
	return s.projects.AddServiceRef(projectID, serviceID)
}

// RemoveServiceRef detaches a service reference.
func (s *ProjectService) RemoveServiceRef(projectID, serviceID string) (models.Project, error) {
	return s.projects.RemoveServiceRef(projectID, serviceID)
}

// AddDiagramRef attaches a diagram to the project. The diagram must exist.
func (s *ProjectService) AddDiagramRef(projectID, diagramID string) (models.Project, error) {
	if !s.diagrams.Exists(diagramID) {
		return models.Project{}, invalidArg(repository.ProjectCollection, projectID, "addDiagramRef",
			fmt.Errorf("diagram %q does not exist", diagramID))
	}
	return s.projects.AddDiagramRef(projectID, diagramID)
}

// RemoveDiagramRef detaches a diagram reference.
func (s *ProjectService) RemoveDiagramRef(projectID, diagramID string) (models.Project, error) {
	return s.projects.RemoveDiagramRef(projectID, diagramID)
}

// AddTeamMember attaches a member to the project team.
func (s *ProjectService) AddTeamMember(projectID string, req models.AddTeamMemberRequest) (models.Project, error) {
	member := models.TeamMember{ID: req.ID, Name: req.Name, Role: req.Role}
	return s.projects.AddTeamMember(projectID, member)
}

// RemoveTeamMember detaches a member by ID.
func (s *ProjectService) RemoveTeamMember(projectID, memberID string) (models.Project, error) {
	return s.projects.RemoveTeamMember(projectID, memberID)
}
