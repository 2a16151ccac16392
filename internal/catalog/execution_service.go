// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/metrics"
	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
)

// ExecutionEngine runs queued executions. The service only records status;
// actually advancing an execution through running to a terminal state is the
// engine's job. The bundled NoopEngine does nothing.
type ExecutionEngine interface {
	// Run is handed a freshly queued execution. Implementations own every
	// status transition except cancellation.
	Run(ctx context.Context, execution models.PipelineExecution) error
}

// NoopEngine is a stub ExecutionEngine: it accepts every execution and never
// advances it. Executions stay queued until cancelled.
type NoopEngine struct{}

// Run implements ExecutionEngine. It does nothing.
func (NoopEngine) Run(_ context.Context, _ models.PipelineExecution) error { return nil }

// ExecutionService manages pipeline execution records.
type ExecutionService struct {
	executions *repository.ExecutionRepository
	pipelines  *repository.PipelineRepository
	engine     ExecutionEngine
	logger     zerolog.Logger
}

// NewExecutionService creates the execution service. A nil engine falls back
// to NoopEngine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewExecutionService(executions *repository.ExecutionRepository, pipelines *repository.PipelineRepository, engine ExecutionEngine, logger zerolog.Logger) *ExecutionService {
	if engine == nil {
		engine = NoopEngine{}
	}
	return &ExecutionService{
		executions: executions,
		pipelines:  pipelines,
		engine:     engine,
		logger:     logger.With().Str("component", "execution_service").Logger(),
	}
}

// Start queues a new execution of the pipeline. The record is created in
// queued with one pending stage record per pipeline stage, then handed to
// the engine.
func (s *ExecutionService) Start(ctx context.Context, pipelineID string, req models.StartExecutionRequest) (models.PipelineExecution, error) {
	p, found, err := s.pipelines.Get(pipelineID)
	if err != nil {
		return models.PipelineExecution{}, err
	}
	if !found {
		return models.PipelineExecution{}, notFound(repository.PipelineCollection, pipelineID, "startExecution")
	}

	stages := make([]models.StageRecord, 0, len(p.Stages))
	for _, st := range p.Stages {
		stages = append(stages, models.StageRecord{
			Name:   st.Name,
			Status: models.StageStatusPending,
		})
	}

	exec := models.PipelineExecution{
		ID:          uuid.NewString(),
		PipelineID:  p.ID,
		Status:      models.ExecutionStatusQueued,
		Stages:      stages,
		TriggeredBy: req.TriggeredBy,
		StartedAt:   time.Now().UTC(),
		Metadata:    models.EntityMetadata{CreatedBy: req.TriggeredBy},
	}

	created, err := s.executions.Create(exec)
	if err != nil {
		return models.PipelineExecution{}, err
	}

	metrics.RecordExecutionStarted(p.ID)
	s.logger.Info().
		Str("execution_id", created.ID).
		Str("pipeline_id", p.ID).
		Str("triggered_by", req.TriggeredBy).
		Msg("Execution queued")

	if err := s.engine.Run(ctx, created); err != nil {
		// The record is already committed; engine refusal is logged but
		// does not undo the queued execution.
		s.logger.Error().Err(err).
			Str("execution_id", created.ID).
			Msg("Execution engine rejected run")
	}

	return created, nil
}

// Get returns one execution by ID.
func (s *ExecutionService) Get(id string) (models.PipelineExecution, bool, error) {
	return s.executions.Get(id)
}

// ListByPipeline returns executions of one pipeline.
func (s *ExecutionService) ListByPipeline(pipelineID string) ([]models.PipelineExecution, error) {
	return s.executions.FindByPipelineID(pipelineID)
}

// Cancel moves a queued or running execution to cancelled and marks its
// unfinished stages cancelled. Cancelling a terminal execution is a
// Conflict.
func (s *ExecutionService) Cancel(id string) (models.PipelineExecution, error) {
	exec, found, err := s.executions.Get(id)
	if err != nil {
		return models.PipelineExecution{}, err
	}
	if !found {
		return models.PipelineExecution{}, notFound(repository.ExecutionCollection, id, "cancel")
	}
	if exec.Status.IsTerminal() {
		return models.PipelineExecution{}, conflict(repository.ExecutionCollection, id, "cancel",
			fmt.Errorf("execution is already %s", exec.Status))
	}

	now := time.Now().UTC()
	exec.Status = models.ExecutionStatusCancelled
	exec.CompletedAt = &now
	for i, st := range exec.Stages {
		switch st.Status {
		case models.StageStatusPending, models.StageStatusQueued, models.StageStatusRunning:
			exec.Stages[i].Status = models.StageStatusCancelled
		}
	}

	updated, err := s.executions.Update(exec)
	if err != nil {
		return models.PipelineExecution{}, err
	}

	metrics.RecordExecutionCompleted(string(models.ExecutionStatusCancelled))
	s.logger.Info().
		Str("execution_id", id).
		Str("pipeline_id", exec.PipelineID).
		Msg("Execution cancelled")
	return updated, nil
}
