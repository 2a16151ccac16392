// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
	"github.com/chavp/c4engineering/internal/store"
)

// ServiceFilter narrows a service listing. Zero-value fields are ignored.
// Type and lifecycle are parsed strictly; an unknown value is an
// InvalidArgument, not an empty result.
type ServiceFilter struct {
	Owner     string
	System    string
	Type      string
	Lifecycle string
}

// ServiceCatalog manages catalog service entries.
type ServiceCatalog struct {
	services *repository.ServiceRepository
	logger   zerolog.Logger
}

// NewServiceCatalog creates the service catalog over the given repository.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewServiceCatalog(services *repository.ServiceRepository, logger zerolog.Logger) *ServiceCatalog {
	return &ServiceCatalog{
		services: services,
		logger:   logger.With().Str("component", "service_catalog").Logger(),
	}
}

// Create registers a new service. The lifecycle defaults to experimental
// when the request leaves it empty.
func (c *ServiceCatalog) Create(req models.CreateServiceRequest) (models.Service, error) {
	svcType, ok := models.ParseServiceType(req.Type)
	if !ok {
		return models.Service{}, invalidArg(repository.ServiceCollection, req.ID, "create",
			fmt.Errorf("unknown service type %q", req.Type))
	}

	lifecycle := models.LifecycleExperimental
	if req.Lifecycle != "" {
		lifecycle, ok = models.ParseServiceLifecycle(req.Lifecycle)
		if !ok {
			return models.Service{}, invalidArg(repository.ServiceCollection, req.ID, "create",
				fmt.Errorf("unknown lifecycle %q", req.Lifecycle))
		}
	}

	svc := models.Service{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Owner:         req.Owner,
		System:        req.System,
		Type:          svcType,
		Lifecycle:     lifecycle,
		RepositoryURL: req.RepositoryURL,
		Tags:          req.Tags,
		Labels:        req.Labels,
		Metadata:      models.EntityMetadata{CreatedBy: req.CreatedBy},
	}

	created, err := c.services.Create(svc)
	if err != nil {
		return models.Service{}, err
	}

	c.logger.Info().
		Str("service_id", created.ID).
		Str("owner", created.Owner).
		Str("type", string(created.Type)).
		Msg("Service registered")
	return created, nil
}

// Get returns one service by ID.
func (c *ServiceCatalog) Get(id string) (models.Service, bool, error) {
	return c.services.Get(id)
}

// Update applies a merge-partial update. Nil request fields keep the stored
// values.
func (c *ServiceCatalog) Update(id string, req models.UpdateServiceRequest) (models.Service, error) {
	svc, found, err := c.services.Get(id)
	if err != nil {
		return models.Service{}, err
	}
	if !found {
		return models.Service{}, notFound(repository.ServiceCollection, id, "update")
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Owner != nil {
		svc.Owner = *req.Owner
	}
	if req.System != nil {
		svc.System = *req.System
	}
	if req.Type != nil {
		t, ok := models.ParseServiceType(*req.Type)
		if !ok {
			return models.Service{}, invalidArg(repository.ServiceCollection, id, "update",
				fmt.Errorf("unknown service type %q", *req.Type))
		}
		svc.Type = t
	}
	if req.Lifecycle != nil {
		l, ok := models.ParseServiceLifecycle(*req.Lifecycle)
		if !ok {
			return models.Service{}, invalidArg(repository.ServiceCollection, id, "update",
				fmt.Errorf("unknown lifecycle %q", *req.Lifecycle))
		}
		svc.Lifecycle = l
	}
	if req.RepositoryURL != nil {
		svc.RepositoryURL = *req.RepositoryURL
	}
	if req.Tags != nil {
		svc.Tags = *req.Tags
	}
	if req.Labels != nil {
		svc.Labels = *req.Labels
	}

	return c.services.Update(svc)
}

// Delete removes a service. Deleting an absent service is not an error.
func (c *ServiceCatalog) Delete(id string) (bool, error) {
	existed, err := c.services.Delete(id)
	if err != nil {
		return false, err
	}
	if existed {
		c.logger.Info().Str("service_id", id).Msg("Service removed")
	}
	return existed, nil
}

// List returns summaries of the services matching the filter.
func (c *ServiceCatalog) List(filter ServiceFilter) ([]models.ServiceSummary, error) {
	start := time.Now()

	var (
		svcType   models.ServiceType
		lifecycle models.ServiceLifecycle
		ok        bool
	)
	if filter.Type != "" {
		svcType, ok = models.ParseServiceType(filter.Type)
		if !ok {
			return nil, invalidArg(repository.ServiceCollection, "", "list",
				fmt.Errorf("unknown service type %q", filter.Type))
		}
	}
	if filter.Lifecycle != "" {
		lifecycle, ok = models.ParseServiceLifecycle(filter.Lifecycle)
		if !ok {
			return nil, invalidArg(repository.ServiceCollection, "", "list",
				fmt.Errorf("unknown lifecycle %q", filter.Lifecycle))
		}
	}

	matched, err := c.services.Filter(func(s models.Service) bool {
		if filter.Owner != "" && !strings.EqualFold(s.Owner, filter.Owner) {
			return false
		}
		if filter.System != "" && !strings.EqualFold(s.System, filter.System) {
			return false
		}
		if filter.Type != "" && s.Type != svcType {
			return false
		}
		if filter.Lifecycle != "" && s.Lifecycle != lifecycle {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ServiceSummary, 0, len(matched))
	for _, s := range matched {
		summaries = append(summaries, s.Summary())
	}

	c.logger.Debug().
		Int("matched", len(summaries)).
		Dur("elapsed", time.Since(start)).
		Msg("Service list evaluated")
	return summaries, nil
}

// Exists reports whether the service ID is registered.
func (c *ServiceCatalog) Exists(id string) bool {
	return c.services.Exists(id)
}

var errEntityAbsent = errors.New("entity does not exist")

func invalidArg(collection, id, op string, err error) error {
	return store.NewError(store.KindInvalidArgument, collection, id, op, err)
}

func notFound(collection, id, op string) error {
	return store.NewError(store.KindNotFound, collection, id, op, errEntityAbsent)
}

func conflict(collection, id, op string, err error) error {
	return store.NewError(store.KindConflict, collection, id, op, err)
}
