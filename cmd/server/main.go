// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package main is the entry point for the C4Engineering catalog server.
//
// C4Engineering is a self-hosted platform engineering catalog: it tracks
// services, C4 architecture diagrams, build pipelines and their execution
// history, and project workspaces that tie them together. Diagrams support
// collaborative editing over websocket rooms.
//
// The server initializes components in the following order:
//
//  1. Configuration: layered Koanf v2 load (defaults, config file, env)
//  2. Storage: flat-JSON file repositories under the configured data dir
//  3. WebSocket hub: room-based relay for collaborative diagram sessions
//  4. Catalog services: business logic over the repositories
//  5. HTTP server: Chi router with the REST API and websocket endpoint
//  6. Supervisor tree: suture supervision of the hub and the server
//
// Configuration comes from environment variables (HTTP_PORT, DATA_DIR,
// LOG_LEVEL, CORS_ORIGINS, ...) layered over an optional config.yaml; see
// internal/config for the full set.
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the configured
// shutdown timeout and closes all websocket clients.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/chavp/c4engineering/internal/api"
	"github.com/chavp/c4engineering/internal/catalog"
	"github.com/chavp/c4engineering/internal/config"
	"github.com/chavp/c4engineering/internal/logging"
	"github.com/chavp/c4engineering/internal/repository"
	"github.com/chavp/c4engineering/internal/supervisor"
	"github.com/chavp/c4engineering/internal/supervisor/services"
	ws "github.com/chavp/c4engineering/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("data_dir", cfg.Storage.DataDir).
		Str("environment", cfg.Server.Environment).
		Msg("Starting C4Engineering catalog")

	// File-backed repositories share one data root, one subdirectory per
	// collection.
	serviceRepo, err := repository.NewServiceRepository(cfg.Storage.DataDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open service repository")
	}
	diagramRepo, err := repository.NewDiagramRepository(cfg.Storage.DataDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open diagram repository")
	}
	pipelineRepo, err := repository.NewPipelineRepository(cfg.Storage.DataDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open pipeline repository")
	}
	executionRepo, err := repository.NewExecutionRepository(cfg.Storage.DataDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open execution repository")
	}
	projectRepo, err := repository.NewProjectRepository(cfg.Storage.DataDir)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open project repository")
	}
	logging.Info().Msg("Storage initialized")

	// Websocket hub relays diagram mutations to room members.
	wsHub := ws.NewHub()

	logger := logging.Logger()
	handler := api.NewHandler(api.Deps{
		Services:    catalog.NewServiceCatalog(serviceRepo, logger),
		Diagrams:    catalog.NewDiagramService(diagramRepo, wsHub, logger),
		Pipelines:   catalog.NewPipelineService(pipelineRepo, serviceRepo, logger),
		Executions:  catalog.NewExecutionService(executionRepo, pipelineRepo, nil, logger),
		Projects:    catalog.NewProjectService(projectRepo, serviceRepo, diagramRepo, logger),
		Deployments: catalog.NewStubDeploymentProvider(),
		Config:      cfg,
		Hub:         wsHub,
	})

	chiMw := api.NewChiMiddleware(api.NewChiMiddlewareConfigFromSecurity(cfg.Security))
	router := api.NewRouter(handler, chiMw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	slogLogger := logging.NewSlogLogger()

	tree := supervisor.NewTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Catalog stopped gracefully")
}
