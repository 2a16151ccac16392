// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/catalog"
	"github.com/chavp/c4engineering/internal/config"
	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
	ws "github.com/chavp/c4engineering/internal/websocket"
)

//nolint:gochecknoinits // silence global logger for the whole test package
func init() {
	logging.Init(logging.Config{Level: "error", Format: "json", Output: io.Discard})
}

// newTestServer builds a full router over a temp-dir file store and returns
// the httptest server plus the hub so websocket tests can run end to end.
func newTestServer(t *testing.T) (*httptest.Server, *ws.Hub) {
	t.Helper()

	root := t.TempDir()
	logger := zerolog.Nop()

	services, err := repository.NewServiceRepository(root)
	if err != nil {
		t.Fatalf("NewServiceRepository: %v", err)
	}
	diagrams, err := repository.NewDiagramRepository(root)
	if err != nil {
		t.Fatalf("NewDiagramRepository: %v", err)
	}
	pipelines, err := repository.NewPipelineRepository(root)
	if err != nil {
		t.Fatalf("NewPipelineRepository: %v", err)
	}
	executions, err := repository.NewExecutionRepository(root)
	if err != nil {
		t.Fatalf("NewExecutionRepository: %v", err)
	}
	projects, err := repository.NewProjectRepository(root)
	if err != nil {
		t.Fatalf("NewProjectRepository: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	cfg := &config.Config{}
	cfg.Security.CORSOrigins = []string{"*"}
	cfg.Security.RateLimitDisabled = true

	handler := NewHandler(Deps{
		Services:    catalog.NewServiceCatalog(services, logger),
		Diagrams:    catalog.NewDiagramService(diagrams, hub, logger),
		Pipelines:   catalog.NewPipelineService(pipelines, services, logger),
		Executions:  catalog.NewExecutionService(executions, pipelines, nil, logger),
		Projects:    catalog.NewProjectService(projects, services, diagrams, logger),
		Deployments: catalog.NewStubDeploymentProvider(),
		Config:      cfg,
		Hub:         hub,
	})

	router := NewRouter(handler, NewChiMiddleware(NewChiMiddlewareConfigFromSecurity(cfg.Security)))
	srv := httptest.NewServer(router.SetupChi())
	t.Cleanup(srv.Close)

	return srv, hub
}

// doJSON issues a request with an optional JSON body and decodes the
// envelope. A nil body sends an empty request.
func doJSON(t *testing.T, method, url string, body interface{}) (int, models.APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, models.APIResponse{}
	}

	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, envelope
}

// decodeData re-marshals the envelope's data into a typed value.
func decodeData(t *testing.T, envelope models.APIResponse, v interface{}) {
	t.Helper()

	data, err := json.Marshal(envelope.Data)
	if err != nil {
		t.Fatalf("marshal envelope data: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal envelope data: %v", err)
	}
}

// createTestService registers a service through the API.
func createTestService(t *testing.T, baseURL, id string) {
	t.Helper()

	status, envelope := doJSON(t, http.MethodPost, baseURL+"/api/v1/services", models.CreateServiceRequest{
		ID:    id,
		Name:  "Service " + id,
		Owner: "team-platform",
		Type:  "backend",
	})
	if status != http.StatusCreated {
		t.Fatalf("create service %s: status = %d, error = %+v", id, status, envelope.Error)
	}
}
