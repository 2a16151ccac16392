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

// PipelineService manages pipeline definitions and the predefined template
// catalog they can be instantiated from.
type PipelineService struct {
	pipelines *repository.PipelineRepository
	services  *repository.ServiceRepository
	logger    zerolog.Logger
}

// NewPipelineService creates the pipeline service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPipelineService(pipelines *repository.PipelineRepository, services *repository.ServiceRepository, logger zerolog.Logger) *PipelineService {
	return &PipelineService{
		pipelines: pipelines,
		services:  services,
		logger:    logger.With().Str("component", "pipeline_service").Logger(),
	}
}

// Create defines a pipeline. The referenced service must exist.
func (s *PipelineService) Create(req models.CreatePipelineRequest) (models.Pipeline, error) {
	if !s.services.Exists(req.ServiceID) {
		return models.Pipeline{}, invalidArg(repository.PipelineCollection, req.ID, "create",
			fmt.Errorf("service %q does not exist", req.ServiceID))
	}

	stages, err := buildStages(req.ID, "create", req.Stages)
	if err != nil {
		return models.Pipeline{}, err
	}

	p := models.Pipeline{
		ID:          req.ID,
		ServiceID:   req.ServiceID,
		Name:        req.Name,
		Description: req.Description,
		Stages:      stages,
		Triggers:    req.Triggers,
		Metadata:    models.EntityMetadata{CreatedBy: req.CreatedBy},
	}

	created, err := s.pipelines.Create(p)
	if err != nil {
		return models.Pipeline{}, err
	}

	s.logger.Info().
		Str("pipeline_id", created.ID).
		Str("service_id", created.ServiceID).
		Int("stages", len(created.Stages)).
		Msg("Pipeline defined")
	return created, nil
}

// Get returns one pipeline by ID.
func (s *PipelineService) Get(id string) (models.Pipeline, bool, error) {
	return s.pipelines.Get(id)
}

// List returns all pipelines, optionally narrowed to one service.
func (s *PipelineService) List(serviceID string) ([]models.Pipeline, error) {
	if serviceID != "" {
		return s.pipelines.FindByServiceID(serviceID)
	}
	return s.pipelines.List()
}

// Update applies a merge-partial update to a pipeline definition.
func (s *PipelineService) Update(id string, req models.UpdatePipelineRequest) (models.Pipeline, error) {
	p, found, err := s.pipelines.Get(id)
	if err != nil {
		return models.Pipeline{}, err
	}
	if !found {
		return models.Pipeline{}, notFound(repository.PipelineCollection, id, "update")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Stages != nil {
		stages, err := buildStages(id, "update", *req.Stages)
		if err != nil {
			return models.Pipeline{}, err
		}
		p.Stages = stages
	}
	if req.Triggers != nil {
		p.Triggers = *req.Triggers
	}

	return s.pipelines.Update(p)
}

// Delete removes a pipeline definition. Existing executions keep their
// records; they are status history, not children.
func (s *PipelineService) Delete(id string) (bool, error) {
	return s.pipelines.Delete(id)
}

// Templates returns the predefined template catalog.
func (s *PipelineService) Templates() []models.PipelineTemplate {
	out := make([]models.PipelineTemplate, len(builtinTemplates))
	copy(out, builtinTemplates)
	return out
}

// Template returns one template by ID.
func (s *PipelineService) Template(id string) (models.PipelineTemplate, bool) {
	for _, t := range builtinTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return models.PipelineTemplate{}, false
}

// CreateFromTemplate instantiates a pipeline from a predefined template.
// The referenced service must exist; an unknown template is NotFound.
func (s *PipelineService) CreateFromTemplate(req models.FromTemplateRequest) (models.Pipeline, error) {
	tpl, ok := s.Template(req.TemplateID)
	if !ok {
		return models.Pipeline{}, notFound("templates", req.TemplateID, "fromTemplate")
	}
	if !s.services.Exists(req.ServiceID) {
		return models.Pipeline{}, invalidArg(repository.PipelineCollection, req.PipelineID, "fromTemplate",
			fmt.Errorf("service %q does not exist", req.ServiceID))
	}

	name := req.Name
	if name == "" {
		name = tpl.Name
	}

	p := models.Pipeline{
		ID:          req.PipelineID,
		ServiceID:   req.ServiceID,
		Name:        name,
		Description: tpl.Description,
		Stages:      cloneStages(tpl.Stages),
		Triggers:    append([]string(nil), tpl.Triggers...),
		Metadata:    models.EntityMetadata{CreatedBy: req.CreatedBy},
	}

	created, err := s.pipelines.Create(p)
	if err != nil {
		return models.Pipeline{}, err
	}

	s.logger.Info().
		Str("pipeline_id", created.ID).
		Str("template_id", req.TemplateID).
		Str("service_id", created.ServiceID).
		Msg("Pipeline instantiated from template")
	return created, nil
}

func buildStages(pipelineID, op string, inputs []models.StageInput) ([]models.Stage, error) {
	stages := make([]models.Stage, 0, len(inputs))
	for _, in := range inputs {
		steps := make([]models.Step, 0, len(in.Steps))
		for _, st := range in.Steps {
			stepType, ok := models.ParseStepType(st.Type)
			if !ok {
				return nil, invalidArg(repository.PipelineCollection, pipelineID, op,
					fmt.Errorf("unknown step type %q", st.Type))
			}
			steps = append(steps, models.Step{
				Name:    st.Name,
				Type:    stepType,
				Command: st.Command,
				Config:  st.Config,
			})
		}
		stages = append(stages, models.Stage{Name: in.Name, Steps: steps})
	}
	return stages, nil
}

// cloneStages deep-copies template stages so instantiated pipelines never
// share step slices with the template catalog.
func cloneStages(stages []models.Stage) []models.Stage {
	out := make([]models.Stage, len(stages))
	for i, st := range stages {
		out[i] = models.Stage{
			Name:  st.Name,
			Steps: append([]models.Step(nil), st.Steps...),
		}
	}
	return out
}
