// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "time"

// DeploymentStatus is the state reported for a container deployment.
type DeploymentStatus string

const (
	DeploymentStatusPending DeploymentStatus = "pending"
	DeploymentStatusRunning DeploymentStatus = "running"
	DeploymentStatusStopped DeploymentStatus = "stopped"
	DeploymentStatusFailed  DeploymentStatus = "failed"
)

// Deployment is a container deployment status record. The bundled provider
// returns canned data; there is no container orchestration here.
type Deployment struct {
	ID         string           `json:"id"`
	ServiceID  string           `json:"serviceId"`
	Image      string           `json:"image"`
	Status     DeploymentStatus `json:"status"`
	Replicas   int              `json:"replicas"`
	Endpoint   string           `json:"endpoint,omitempty"`
	DeployedAt time.Time        `json:"deployedAt"`
}
