// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"net/http"
	"testing"

	"github.com/chavp/c4engineering/internal/models"
)

func createTestPipeline(t *testing.T, baseURL, id, serviceID string) {
	t.Helper()

	status, envelope := doJSON(t, http.MethodPost, baseURL+"/api/v1/pipelines", models.CreatePipelineRequest{
		ID:        id,
		ServiceID: serviceID,
		Name:      "Pipeline " + id,
		Stages: []models.StageInput{
			{Name: "build", Steps: []models.StepInput{{Name: "compile", Type: "build"}}},
			{Name: "test", Steps: []models.StepInput{{Name: "unit", Type: "test"}}},
		},
	})
	if status != http.StatusCreated {
		t.Fatalf("create pipeline %s: status = %d, error = %+v", id, status, envelope.Error)
	}
}

func TestPipelineEndpoints_CRUD(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL
	createTestService(t, base, "svc-a")
	createTestPipeline(t, base, "p1", "svc-a")

	status, envelope := doJSON(t, http.MethodGet, base+"/api/v1/pipelines/p1", nil)
	if status != http.StatusOK {
		t.Fatalf("get: status = %d, error = %+v", status, envelope.Error)
	}
	var p models.Pipeline
	decodeData(t, envelope, &p)
	if len(p.Stages) != 2 {
		t.Errorf("got %d stages, want 2", len(p.Stages))
	}

	status, envelope = doJSON(t, http.MethodGet, base+"/api/v1/pipelines?serviceId=svc-a", nil)
	if status != http.StatusOK {
		t.Fatalf("list: status = %d", status)
	}
	var pipelines []models.Pipeline
	decodeData(t, envelope, &pipelines)
	if len(pipelines) != 1 {
		t.Errorf("got %d pipelines for svc-a, want 1", len(pipelines))
	}

	status, _ = doJSON(t, http.MethodDelete, base+"/api/v1/pipelines/p1", nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: status = %d, want 204", status)
	}
}

func TestPipelineEndpoints_CreateRequiresService(t *testing.T) {
	srv, _ := newTestServer(t)

	status, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/pipelines", models.CreatePipelineRequest{
		ID:        "p1",
		ServiceID: "ghost",
		Name:      "Orphan",
		Stages:    []models.StageInput{{Name: "build", Steps: []models.StepInput{{Name: "compile", Type: "build"}}}},
	})
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if envelope.Error == nil || envelope.Error.Code != ErrCodeInvalidArgument {
		t.Errorf("error = %+v, want INVALID_ARGUMENT", envelope.Error)
	}
}

func TestPipelineEndpoints_Templates(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL
	createTestService(t, base, "svc-a")

	status, envelope := doJSON(t, http.MethodGet, base+"/api/v1/pipelines/templates", nil)
	if status != http.StatusOK {
		t.Fatalf("list templates: status = %d", status)
	}
	var templates []models.PipelineTemplate
	decodeData(t, envelope, &templates)
	if len(templates) == 0 {
		t.Fatal("expected built-in templates")
	}

	status, _ = doJSON(t, http.MethodGet, base+"/api/v1/pipelines/templates/build-test-deploy", nil)
	if status != http.StatusOK {
		t.Fatalf("get template: status = %d", status)
	}

	status, envelope = doJSON(t, http.MethodPost, base+"/api/v1/pipelines/from-template", models.FromTemplateRequest{
		TemplateID: "build-test-deploy",
		PipelineID: "p-templated",
		ServiceID:  "svc-a",
	})
	if status != http.StatusCreated {
		t.Fatalf("from template: status = %d, error = %+v", status, envelope.Error)
	}
	var p models.Pipeline
	decodeData(t, envelope, &p)
	if p.ServiceID != "svc-a" {
		t.Errorf("instantiated serviceId = %q, want svc-a", p.ServiceID)
	}
	if len(p.Stages) == 0 {
		t.Error("instantiated pipeline has no stages")
	}

	status, envelope = doJSON(t, http.MethodPost, base+"/api/v1/pipelines/from-template", models.FromTemplateRequest{
		TemplateID: "no-such-template",
		PipelineID: "p2",
		ServiceID:  "svc-a",
	})
	if status != http.StatusNotFound {
		t.Fatalf("unknown template: status = %d, want 404 (error = %+v)", status, envelope.Error)
	}
}

func TestExecutionEndpoints_Lifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL
	createTestService(t, base, "svc-a")
	createTestPipeline(t, base, "p1", "svc-a")

	// Start with a body
	status, envelope := doJSON(t, http.MethodPost, base+"/api/v1/pipelines/p1/executions", models.StartExecutionRequest{TriggeredBy: "alex"})
	if status != http.StatusCreated {
		t.Fatalf("start: status = %d, error = %+v", status, envelope.Error)
	}
	var exec models.PipelineExecution
	decodeData(t, envelope, &exec)
	if exec.Status != models.ExecutionStatusQueued {
		t.Errorf("status = %q, want queued", exec.Status)
	}
	if exec.TriggeredBy != "alex" {
		t.Errorf("triggeredBy = %q, want alex", exec.TriggeredBy)
	}
	if len(exec.Stages) != 2 {
		t.Errorf("got %d stage records, want 2", len(exec.Stages))
	}

	// Start with an empty body is allowed
	status, envelope = doJSON(t, http.MethodPost, base+"/api/v1/pipelines/p1/executions", nil)
	if status != http.StatusCreated {
		t.Fatalf("start without body: status = %d, error = %+v", status, envelope.Error)
	}

	// History
	status, envelope = doJSON(t, http.MethodGet, base+"/api/v1/pipelines/p1/executions", nil)
	if status != http.StatusOK {
		t.Fatalf("history: status = %d", status)
	}
	var execs []models.PipelineExecution
	decodeData(t, envelope, &execs)
	if len(execs) != 2 {
		t.Errorf("got %d executions, want 2", len(execs))
	}

	// Get and cancel
	status, envelope = doJSON(t, http.MethodGet, base+"/api/v1/executions/"+exec.ID, nil)
	if status != http.StatusOK {
		t.Fatalf("get execution: status = %d", status)
	}

	status, envelope = doJSON(t, http.MethodPost, base+"/api/v1/executions/"+exec.ID+"/cancel", nil)
	if status != http.StatusOK {
		t.Fatalf("cancel: status = %d, error = %+v", status, envelope.Error)
	}
	var cancelled models.PipelineExecution
	decodeData(t, envelope, &cancelled)
	if cancelled.Status != models.ExecutionStatusCancelled {
		t.Errorf("cancelled status = %q, want cancelled", cancelled.Status)
	}

	// Cancelling a terminal execution conflicts
	status, envelope = doJSON(t, http.MethodPost, base+"/api/v1/executions/"+exec.ID+"/cancel", nil)
	if status != http.StatusConflict {
		t.Fatalf("cancel terminal: status = %d, want 409 (error = %+v)", status, envelope.Error)
	}
}

func TestExecutionEndpoints_StartMissingPipeline(t *testing.T) {
	srv, _ := newTestServer(t)

	status, envelope := doJSON(t, http.MethodPost, srv.URL+"/api/v1/pipelines/ghost/executions", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (error = %+v)", status, envelope.Error)
	}
}
