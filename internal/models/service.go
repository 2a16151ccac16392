// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "strings"

// ServiceType classifies a registered service in the catalog.
type ServiceType string

const (
	ServiceTypeFrontend       ServiceType = "frontend"
	ServiceTypeBackend        ServiceType = "backend"
	ServiceTypeAPI            ServiceType = "api"
	ServiceTypeDatabase       ServiceType = "database"
	ServiceTypeLibrary        ServiceType = "library"
	ServiceTypeInfrastructure ServiceType = "infrastructure"
)

// ValidServiceTypes contains all valid service types.
var ValidServiceTypes = []ServiceType{
	ServiceTypeFrontend,
	ServiceTypeBackend,
	ServiceTypeAPI,
	ServiceTypeDatabase,
	ServiceTypeLibrary,
	ServiceTypeInfrastructure,
}

// IsValidServiceType checks if a service type is valid.
func IsValidServiceType(t ServiceType) bool {
	for _, valid := range ValidServiceTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseServiceType parses a service type string, matching case-insensitively.
func ParseServiceType(s string) (ServiceType, bool) {
	for _, valid := range ValidServiceTypes {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// ServiceLifecycle tracks where a service sits in its life.
type ServiceLifecycle string

const (
	LifecycleExperimental ServiceLifecycle = "experimental"
	LifecycleDevelopment  ServiceLifecycle = "development"
	LifecycleProduction   ServiceLifecycle = "production"
	LifecycleDeprecated   ServiceLifecycle = "deprecated"
)

// ValidServiceLifecycles contains all valid lifecycle values.
var ValidServiceLifecycles = []ServiceLifecycle{
	LifecycleExperimental,
	LifecycleDevelopment,
	LifecycleProduction,
	LifecycleDeprecated,
}

// IsValidServiceLifecycle checks if a lifecycle value is valid.
func IsValidServiceLifecycle(l ServiceLifecycle) bool {
	for _, valid := range ValidServiceLifecycles {
		if l == valid {
			return true
		}
	}
	return false
}

// ParseServiceLifecycle parses a lifecycle string, matching case-insensitively.
func ParseServiceLifecycle(s string) (ServiceLifecycle, bool) {
	for _, valid := range ValidServiceLifecycles {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// Service is a catalog entry for one owned, deployable (or consumable) unit.
type Service struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Owner         string            `json:"owner"`
	System        string            `json:"system,omitempty"`
	Type          ServiceType       `json:"type"`
	Lifecycle     ServiceLifecycle  `json:"lifecycle"`
	RepositoryURL string            `json:"repositoryUrl,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Labels        map[string]string `json:"labels,omitempty"`
	Metadata      EntityMetadata    `json:"metadata"`
}

// EntityID returns the unique identifier.
func (s Service) EntityID() string { return s.ID }

// Meta returns the audit metadata block.
func (s Service) Meta() EntityMetadata { return s.Metadata }

// WithMeta returns a copy with the metadata block replaced.
func (s Service) WithMeta(m EntityMetadata) Service {
	s.Metadata = m
	return s
}

// ServiceSummary is the projection returned by list endpoints.
type ServiceSummary struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Owner     string           `json:"owner"`
	System    string           `json:"system,omitempty"`
	Type      ServiceType      `json:"type"`
	Lifecycle ServiceLifecycle `json:"lifecycle"`
	Tags      []string         `json:"tags,omitempty"`
}

// Summary projects the service into its list representation.
func (s Service) Summary() ServiceSummary {
	return ServiceSummary{
		ID:        s.ID,
		Name:      s.Name,
		Owner:     s.Owner,
		System:    s.System,
		Type:      s.Type,
		Lifecycle: s.Lifecycle,
		Tags:      s.Tags,
	}
}

// CreateServiceRequest is the payload for registering a service.
type CreateServiceRequest struct {
	ID            string            `json:"id" validate:"required,min=1,max=100"`
	Name          string            `json:"name" validate:"required,min=1,max=100"`
	Description   string            `json:"description" validate:"max=1000"`
	Owner         string            `json:"owner" validate:"required,min=1,max=100"`
	System        string            `json:"system" validate:"max=100"`
	Type          string            `json:"type" validate:"required"`
	Lifecycle     string            `json:"lifecycle"`
	RepositoryURL string            `json:"repositoryUrl" validate:"omitempty,url"`
	Tags          []string          `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Labels        map[string]string `json:"labels"`
	CreatedBy     string            `json:"createdBy" validate:"max=100"`
}

// UpdateServiceRequest is the merge-partial payload for updating a service.
// Nil fields keep the stored values.
type UpdateServiceRequest struct {
	Name          *string            `json:"name" validate:"omitempty,min=1,max=100"`
	Description   *string            `json:"description" validate:"omitempty,max=1000"`
	Owner         *string            `json:"owner" validate:"omitempty,min=1,max=100"`
	System        *string            `json:"system" validate:"omitempty,max=100"`
	Type          *string            `json:"type"`
	Lifecycle     *string            `json:"lifecycle"`
	RepositoryURL *string            `json:"repositoryUrl" validate:"omitempty,url"`
	Tags          *[]string          `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
	Labels        *map[string]string `json:"labels"`
}
