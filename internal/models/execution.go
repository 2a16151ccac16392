// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "time"

// ExecutionStatus is the lifecycle state of a pipeline execution.
// Executions are created queued and never advance on their own; the only
// user-triggered transition is queued|running -> cancelled. Everything else
// belongs to an execution engine this codebase deliberately does not have.
type ExecutionStatus string

const (
	ExecutionStatusQueued    ExecutionStatus = "queued"
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusSuccess   ExecutionStatus = "success"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusCancelled ExecutionStatus = "cancelled"
)

// ValidExecutionStatuses contains all valid execution statuses.
var ValidExecutionStatuses = []ExecutionStatus{
	ExecutionStatusQueued,
	ExecutionStatusRunning,
	ExecutionStatusSuccess,
	ExecutionStatusFailed,
	ExecutionStatusCancelled,
}

// IsValidExecutionStatus checks if an execution status is valid.
func IsValidExecutionStatus(s ExecutionStatus) bool {
	for _, valid := range ValidExecutionStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status is a terminal state.
func (s ExecutionStatus) IsTerminal() bool {
	return s == ExecutionStatusSuccess || s == ExecutionStatusFailed || s == ExecutionStatusCancelled
}

// StageStatus is the state of one stage record within an execution.
// Stages add pending and skipped on top of the execution statuses.
type StageStatus string

const (
	StageStatusPending   StageStatus = "pending"
	StageStatusQueued    StageStatus = "queued"
	StageStatusRunning   StageStatus = "running"
	StageStatusSuccess   StageStatus = "success"
	StageStatusFailed    StageStatus = "failed"
	StageStatusCancelled StageStatus = "cancelled"
	StageStatusSkipped   StageStatus = "skipped"
)

// StageRecord is the per-stage status entry inside an execution.
type StageRecord struct {
	Name        string      `json:"name"`
	Status      StageStatus `json:"status"`
	StartedAt   *time.Time  `json:"startedAt,omitempty"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
}

// PipelineExecution is a status record for one requested run of a pipeline.
// No actual work runs anywhere; see ExecutionStatus.
type PipelineExecution struct {
	ID          string          `json:"id"`
	PipelineID  string          `json:"pipelineId"`
	Status      ExecutionStatus `json:"status"`
	Stages      []StageRecord   `json:"stages"`
	TriggeredBy string          `json:"triggeredBy,omitempty"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	Metadata    EntityMetadata  `json:"metadata"`
}

// EntityID returns the unique identifier.
func (e PipelineExecution) EntityID() string { return e.ID }

// Meta returns the audit metadata block.
func (e PipelineExecution) Meta() EntityMetadata { return e.Metadata }

// WithMeta returns a copy with the metadata block replaced.
func (e PipelineExecution) WithMeta(m EntityMetadata) PipelineExecution {
	e.Metadata = m
	return e
}

// StartExecutionRequest is the payload for queueing an execution.
type StartExecutionRequest struct {
	TriggeredBy string `json:"triggeredBy" validate:"max=100"`
}
