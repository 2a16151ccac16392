// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "strings"

// ProjectStatus is where a project sits in its delivery life.
type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// ValidProjectStatuses contains all valid project statuses.
var ValidProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusActive,
	ProjectStatusPaused,
	ProjectStatusCompleted,
	ProjectStatusArchived,
}

// IsValidProjectStatus checks if a project status is valid.
func IsValidProjectStatus(s ProjectStatus) bool {
	for _, valid := range ValidProjectStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// ParseProjectStatus parses a project status string, matching case-insensitively.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	for _, valid := range ValidProjectStatuses {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// TeamMember is one person attached to a project.
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// Project bundles catalog services, diagrams and a team into one delivery
// effort. Service and diagram references must point at existing entities at
// the time they are added.
type Project struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Status      ProjectStatus  `json:"status"`
	ServiceIDs  []string       `json:"serviceIds"`
	DiagramIDs  []string       `json:"diagramIds"`
	TeamMembers []TeamMember   `json:"teamMembers"`
	Metadata    EntityMetadata `json:"metadata"`
}

// EntityID returns the unique identifier.
func (p Project) EntityID() string { return p.ID }

// Meta returns the audit metadata block.
func (p Project) Meta() EntityMetadata { return p.Metadata }

// WithMeta returns a copy with the metadata block replaced.
func (p Project) WithMeta(m EntityMetadata) Project {
	p.Metadata = m
	return p
}

// HasServiceRef reports whether the project references the service ID.
func (p Project) HasServiceRef(id string) bool {
	for _, s := range p.ServiceIDs {
		if s == id {
			return true
		}
	}
	return false
}

// HasDiagramRef reports whether the project references the diagram ID.
func (p Project) HasDiagramRef(id string) bool {
	for _, d := range p.DiagramIDs {
		if d == id {
			return true
		}
	}
	return false
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	ID          string `json:"id" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status"`
	CreatedBy   string `json:"createdBy" validate:"max=100"`
}

// UpdateProjectRequest is the merge-partial payload for updating a project.
type UpdateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      *string `json:"status"`
}

// AddTeamMemberRequest is the payload for attaching a team member.
type AddTeamMemberRequest struct {
	ID   string `json:"id" validate:"required,min=1,max=100"`
	Name string `json:"name" validate:"required,min=1,max=100"`
	Role string `json:"role" validate:"max=100"`
}
