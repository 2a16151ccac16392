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

// PipelineCollection is the on-disk directory name for pipelines.
const PipelineCollection = "pipelines"

// PipelineRepository persists pipeline definitions.
type PipelineRepository struct {
	repo[models.Pipeline]
}

// NewPipelineRepository creates the repository over dataRoot/pipelines.
func NewPipelineRepository(dataRoot string) (*PipelineRepository, error) {
	s, err := store.New[models.Pipeline](dataRoot, PipelineCollection)
	if err != nil {
		return nil, err
	}
	return &PipelineRepository{repo[models.Pipeline]{store: s}}, nil
}

// FindByServiceID returns pipelines attached to the given service, matched
// case-insensitively.
func (r *PipelineRepository) FindByServiceID(serviceID string) ([]models.Pipeline, error) {
	return r.Filter(func(p models.Pipeline) bool {
		return strings.EqualFold(p.ServiceID, serviceID)
	})
}
