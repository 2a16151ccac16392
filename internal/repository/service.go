// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package repository

import (
	"strings"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/store"
)

// ServiceCollection is the on-disk directory name for services.
const ServiceCollection = "services"

// ServiceRepository persists catalog services.
type ServiceRepository struct {
	repo[models.Service]
}

// NewServiceRepository creates the repository over dataRoot/services.
func NewServiceRepository(dataRoot string) (*ServiceRepository, error) {
	s, err := store.New[models.Service](dataRoot, ServiceCollection)
	if err != nil {
		return nil, err
	}
	return &ServiceRepository{repo[models.Service]{store: s}}, nil
}

// FindByOwner returns services owned by the given team, matched
// case-insensitively.
func (r *ServiceRepository) FindByOwner(owner string) ([]models.Service, error) {
	return r.Filter(func(s models.Service) bool {
		return strings.EqualFold(s.Owner, owner)
	})
}

// FindBySystem returns services belonging to the given system, matched
// case-insensitively.
func (r *ServiceRepository) FindBySystem(system string) ([]models.Service, error) {
	return r.Filter(func(s models.Service) bool {
		return strings.EqualFold(s.System, system)
	})
}

// FindByType returns services of exactly the given type.
func (r *ServiceRepository) FindByType(t models.ServiceType) ([]models.Service, error) {
	return r.Filter(func(s models.Service) bool {
		return s.Type == t
	})
}

// FindByLifecycle returns services in exactly the given lifecycle.
func (r *ServiceRepository) FindByLifecycle(l models.ServiceLifecycle) ([]models.Service, error) {
	return r.Filter(func(s models.Service) bool {
		return s.Lifecycle == l
	})
}
