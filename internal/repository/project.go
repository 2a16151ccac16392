// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package repository

import (
	"errors"
	"fmt"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/store"
)

// ProjectCollection is the on-disk directory name for projects.
const ProjectCollection = "projects"

// ProjectRepository persists projects and owns their nested ref/member
// mutations. Cross-entity existence checks (does the referenced service
// exist?) live in the service layer, not here.
type ProjectRepository struct {
	repo[models.Project]
}

// NewProjectRepository creates the repository over dataRoot/projects.
func NewProjectRepository(dataRoot string) (*ProjectRepository, error) {
	s, err := store.New[models.Project](dataRoot, ProjectCollection)
	if err != nil {
		return nil, err
	}
	return &ProjectRepository{repo[models.Project]{store: s}}, nil
}

// FindByStatus returns projects in exactly the given status.
func (r *ProjectRepository) FindByStatus(status models.ProjectStatus) ([]models.Project, error) {
	return r.Filter(func(p models.Project) bool {
		return p.Status == status
	})
}

func (r *ProjectRepository) getParent(projectID, op string) (models.Project, error) {
	p, found, err := r.Get(projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !found {
		return models.Project{}, store.NewError(store.KindNotFound, ProjectCollection, projectID, op,
			errors.New("project does not exist"))
	}
	return p, nil
}

// AddServiceRef attaches a service reference. Conflict when already present.
func (r *ProjectRepository) AddServiceRef(projectID, serviceID string) (models.Project, error) {
	p, err := r.getParent(projectID, "addServiceRef")
	if err != nil {
		return models.Project{}, err
	}

	if serviceID == "" {
		return models.Project{}, store.NewError(store.KindInvalidArgument, ProjectCollection, projectID, "addServiceRef",
			errors.New("service id must not be empty"))
	}
	if p.HasServiceRef(serviceID) {
		return models.Project{}, store.NewError(store.KindConflict, ProjectCollection, projectID, "addServiceRef",
			fmt.Errorf("service %q already referenced", serviceID))
	}

	p.ServiceIDs = append(p.ServiceIDs, serviceID)
	return r.Update(p)
}

// RemoveServiceRef detaches a service reference. NotFound when absent.
func (r *ProjectRepository) RemoveServiceRef(projectID, serviceID string) (models.Project, error) {
	p, err := r.getParent(projectID, "removeServiceRef")
	if err != nil {
		return models.Project{}, err
	}

	for i, id := range p.ServiceIDs {
		if id == serviceID {
			p.ServiceIDs = append(p.ServiceIDs[:i], p.ServiceIDs[i+1:]...)
			return r.Update(p)
		}
	}

	return models.Project{}, store.NewError(store.KindNotFound, ProjectCollection, projectID, "removeServiceRef",
		fmt.Errorf("service %q not referenced", serviceID))
}

// AddDiagramRef attaches a diagram reference. Conflict when already present.
func (r *ProjectRepository) AddDiagramRef(projectID, diagramID string) (models.Project, error) {
	p, err := r.getParent(projectID, "addDiagramRef")
	if err != nil {
		return models.Project{}, err
	}

	if diagramID == "" {
		return models.Project{}, store.NewError(store.KindInvalidArgument, ProjectCollection, projectID, "addDiagramRef",
			errors.New("diagram id must not be empty"))
	}
	if p.HasDiagramRef(diagramID) {
		return models.Project{}, store.NewError(store.KindConflict, ProjectCollection, projectID, "addDiagramRef",
			fmt.Errorf("diagram %q already referenced", diagramID))
	}

	p.DiagramIDs = append(p.DiagramIDs, diagramID)
	return r.Update(p)
}

// RemoveDiagramRef detaches a diagram reference. NotFound when absent.
func (r *ProjectRepository) RemoveDiagramRef(projectID, diagramID string) (models.Project, error) {
	p, err := r.getParent(projectID, "removeDiagramRef")
	if err != nil {
		return models.Project{}, err
	}

	for i, id := range p.DiagramIDs {
		if id == diagramID {
			p.DiagramIDs = append(p.DiagramIDs[:i], p.DiagramIDs[i+1:]...)
			return r.Update(p)
		}
	}

	return models.Project{}, store.NewError(store.KindNotFound, ProjectCollection, projectID, "removeDiagramRef",
		fmt.Errorf("diagram %q not referenced", diagramID))
}

// AddTeamMember attaches a member. Conflict on a duplicate member ID.
func (r *ProjectRepository) AddTeamMember(projectID string, member models.TeamMember) (models.Project, error) {
	p, err := r.getParent(projectID, "addTeamMember")
	if err != nil {
		return models.Project{}, err
	}

	if member.ID == "" {
		return models.Project{}, store.NewError(store.KindInvalidArgument, ProjectCollection, projectID, "addTeamMember",
			errors.New("member id must not be empty"))
	}
	for _, existing := range p.TeamMembers {
		if existing.ID == member.ID {
			return models.Project{}, store.NewError(store.KindConflict, ProjectCollection, projectID, "addTeamMember",
				fmt.Errorf("member %q already exists", member.ID))
		}
	}

	p.TeamMembers = append(p.TeamMembers, member)
	return r.Update(p)
}

// RemoveTeamMember detaches a member by ID. NotFound when absent.
func (r *ProjectRepository) RemoveTeamMember(projectID, memberID string) (models.Project, error) {
	p, err := r.getParent(projectID, "removeTeamMember")
	if err != nil {
		return models.Project{}, err
	}

	for i, member := range p.TeamMembers {
		if member.ID == memberID {
			p.TeamMembers = append(p.TeamMembers[:i], p.TeamMembers[i+1:]...)
			return r.Update(p)
		}
	}

	return models.Project{}, store.NewError(store.KindNotFound, ProjectCollection, projectID, "removeTeamMember",
		fmt.Errorf("member %q does not exist", memberID))
}
