// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"context"
	"time"

	"github.com/chavp/c4engineering/internal/models"
)

// DeploymentProvider reports container deployment status for catalog
// services. A real implementation would query an orchestrator; the bundled
// StubDeploymentProvider returns canned records.
type DeploymentProvider interface {
	// ListDeployments returns the known deployments.
	ListDeployments(ctx context.Context) ([]models.Deployment, error)

	// GetDeployment returns one deployment by ID.
	GetDeployment(ctx context.Context, id string) (models.Deployment, bool, error)
}

// StubDeploymentProvider is a canned-data DeploymentProvider. It exists so
// the deployment endpoints have a shape to serve; nothing is deployed
// anywhere.
type StubDeploymentProvider struct {
	deployments []models.Deployment
}

// NewStubDeploymentProvider returns a provider preloaded with a fixed set of
// deployment records.
func NewStubDeploymentProvider() *StubDeploymentProvider {
	deployedAt := time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)
	return &StubDeploymentProvider{
		deployments: []models.Deployment{
			{
				ID:         "deploy-catalog-api",
				ServiceID:  "catalog-api",
				Image:      "registry.local/catalog-api:1.4.2",
				Status:     models.DeploymentStatusRunning,
				Replicas:   3,
				Endpoint:   "https://catalog-api.internal",
				DeployedAt: deployedAt,
			},
			{
				ID:         "deploy-catalog-web",
				ServiceID:  "catalog-web",
				Image:      "registry.local/catalog-web:2.0.0",
				Status:     models.DeploymentStatusRunning,
				Replicas:   2,
				Endpoint:   "https://catalog.internal",
				DeployedAt: deployedAt.Add(2 * time.Hour),
			},
			{
				ID:         "deploy-reporting-job",
				ServiceID:  "reporting-job",
				Image:      "registry.local/reporting-job:0.9.1",
				Status:     models.DeploymentStatusStopped,
				Replicas:   0,
				DeployedAt: deployedAt.Add(-48 * time.Hour),
			},
		},
	}
}

// ListDeployments implements DeploymentProvider.
func (p *StubDeploymentProvider) ListDeployments(_ context.Context) ([]models.Deployment, error) {
	out := make([]models.Deployment, len(p.deployments))
	copy(out, p.deployments)
	return out, nil
}

// GetDeployment implements DeploymentProvider.
func (p *StubDeploymentProvider) GetDeployment(_ context.Context, id string) (models.Deployment, bool, error) {
	for _, d := range p.deployments {
		if d.ID == id {
			return d, true, nil
		}
	}
	return models.Deployment{}, false, nil
}
