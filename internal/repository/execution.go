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

// ExecutionCollection is the on-disk directory name for pipeline executions.
const ExecutionCollection = "executions"

// ExecutionRepository persists pipeline execution records.
type ExecutionRepository struct {
	repo[models.PipelineExecution]
}

// NewExecutionRepository creates the repository over dataRoot/executions.
func NewExecutionRepository(dataRoot string) (*ExecutionRepository, error) {
	s, err := store.New[models.PipelineExecution](dataRoot, ExecutionCollection)
	if err != nil {
		return nil, err
	}
	return &ExecutionRepository{repo[models.PipelineExecution]{store: s}}, nil
}

// FindByPipelineID returns executions of the given pipeline, matched
// case-insensitively.
func (r *ExecutionRepository) FindByPipelineID(pipelineID string) ([]models.PipelineExecution, error) {
	return r.Filter(func(e models.PipelineExecution) bool {
		return strings.EqualFold(e.PipelineID, pipelineID)
	})
}

// FindByStatus returns executions in exactly the given status.
func (r *ExecutionRepository) FindByStatus(status models.ExecutionStatus) ([]models.PipelineExecution, error) {
	return r.Filter(func(e models.PipelineExecution) bool {
		return e.Status == status
	})
}
