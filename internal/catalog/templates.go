// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import "github.com/chavp/c4engineering/internal/models"

// builtinTemplates is the predefined pipeline template catalog. Templates
// are read-only; CreateFromTemplate copies their stages.
var builtinTemplates = []models.PipelineTemplate{
	{
		ID:          "build-test-deploy",
		Name:        "Build, Test and Deploy",
		Description: "Standard three-stage delivery pipeline for backend services.",
		Stages: []models.Stage{
			{
				Name: "build",
				Steps: []models.Step{
					{Name: "compile", Type: models.StepTypeBuild, Command: "make build"},
				},
			},
			{
				Name: "test",
				Steps: []models.Step{
					{Name: "unit-tests", Type: models.StepTypeTest, Command: "make test"},
					{Name: "lint", Type: models.StepTypeScript, Command: "make lint"},
				},
			},
			{
				Name: "deploy",
				Steps: []models.Step{
					{Name: "release", Type: models.StepTypeDeploy, Config: map[string]string{"environment": "production"}},
				},
			},
		},
		Triggers: []string{"push"},
	},
	{
		ID:          "container-build",
		Name:        "Container Build",
		Description: "Builds and publishes a container image without deploying it.",
		Stages: []models.Stage{
			{
				Name: "build",
				Steps: []models.Step{
					{Name: "docker-build", Type: models.StepTypeBuild, Command: "docker build -t $IMAGE ."},
					{Name: "docker-push", Type: models.StepTypeScript, Command: "docker push $IMAGE"},
				},
			},
		},
		Triggers: []string{"push", "tag"},
	},
	{
		ID:          "static-site",
		Name:        "Static Site",
		Description: "Builds a static site and publishes the generated assets.",
		Stages: []models.Stage{
			{
				Name: "build",
				Steps: []models.Step{
					{Name: "install", Type: models.StepTypeScript, Command: "npm ci"},
					{Name: "bundle", Type: models.StepTypeBuild, Command: "npm run build"},
				},
			},
			{
				Name: "publish",
				Steps: []models.Step{
					{Name: "upload", Type: models.StepTypeDeploy, Config: map[string]string{"target": "cdn"}},
				},
			},
		},
		Triggers: []string{"push"},
	},
}
