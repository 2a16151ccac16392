// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "strings"

// StepType classifies a pipeline step.
type StepType string

const (
	StepTypeBuild  StepType = "build"
	StepTypeTest   StepType = "test"
	StepTypeDeploy StepType = "deploy"
	StepTypeScript StepType = "script"
)

// ValidStepTypes contains all valid step types.
var ValidStepTypes = []StepType{
	StepTypeBuild,
	StepTypeTest,
	StepTypeDeploy,
	StepTypeScript,
}

// IsValidStepType checks if a step type is valid.
func IsValidStepType(t StepType) bool {
	for _, valid := range ValidStepTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseStepType parses a step type string, matching case-insensitively.
func ParseStepType(s string) (StepType, bool) {
	for _, valid := range ValidStepTypes {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// Step is one unit of work inside a stage.
type Step struct {
	Name    string            `json:"name"`
	Type    StepType          `json:"type"`
	Command string            `json:"command,omitempty"`
	Config  map[string]string `json:"config,omitempty"`
}

// Stage is an ordered group of steps.
type Stage struct {
	Name  string `json:"name"`
	Steps []Step `json:"steps"`
}

// Pipeline is a build/deploy definition attached to a catalog service.
// Pipelines describe work; they never run it here. Executions are status
// records only.
type Pipeline struct {
	ID          string         `json:"id"`
	ServiceID   string         `json:"serviceId"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Stages      []Stage        `json:"stages"`
	Triggers    []string       `json:"triggers,omitempty"`
	Metadata    EntityMetadata `json:"metadata"`
}

// EntityID returns the unique identifier.
func (p Pipeline) EntityID() string { return p.ID }

// Meta returns the audit metadata block.
func (p Pipeline) Meta() EntityMetadata { return p.Metadata }

// WithMeta returns a copy with the metadata block replaced.
func (p Pipeline) WithMeta(m EntityMetadata) Pipeline {
	p.Metadata = m
	return p
}

// PipelineTemplate is a predefined pipeline shape that can be instantiated
// for a service.
type PipelineTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stages      []Stage  `json:"stages"`
	Triggers    []string `json:"triggers,omitempty"`
}

// CreatePipelineRequest is the payload for defining a pipeline.
type CreatePipelineRequest struct {
	ID          string       `json:"id" validate:"required,min=1,max=100"`
	ServiceID   string       `json:"serviceId" validate:"required,min=1,max=100"`
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Description string       `json:"description" validate:"max=1000"`
	Stages      []StageInput `json:"stages" validate:"required,min=1,dive"`
	Triggers    []string     `json:"triggers" validate:"max=10,dive,min=1,max=100"`
	CreatedBy   string       `json:"createdBy" validate:"max=100"`
}

// StageInput is the request form of a stage.
type StageInput struct {
	Name  string      `json:"name" validate:"required,min=1,max=100"`
	Steps []StepInput `json:"steps" validate:"required,min=1,dive"`
}

// StepInput is the request form of a step.
type StepInput struct {
	Name    string            `json:"name" validate:"required,min=1,max=100"`
	Type    string            `json:"type" validate:"required"`
	Command string            `json:"command" validate:"max=1000"`
	Config  map[string]string `json:"config"`
}

// UpdatePipelineRequest is the merge-partial payload for updating a pipeline.
type UpdatePipelineRequest struct {
	Name        *string       `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string       `json:"description" validate:"omitempty,max=1000"`
	Stages      *[]StageInput `json:"stages" validate:"omitempty,min=1,dive"`
	Triggers    *[]string     `json:"triggers" validate:"omitempty,max=10,dive,min=1,max=100"`
}

// FromTemplateRequest instantiates a pipeline from a predefined template.
type FromTemplateRequest struct {
	TemplateID string `json:"templateId" validate:"required,min=1,max=100"`
	PipelineID string `json:"pipelineId" validate:"required,min=1,max=100"`
	ServiceID  string `json:"serviceId" validate:"required,min=1,max=100"`
	Name       string `json:"name" validate:"max=100"`
	CreatedBy  string `json:"createdBy" validate:"max=100"`
}
