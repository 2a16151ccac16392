// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chavp/c4engineering/internal/middleware"
)

// Router wires the API handlers into a Chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for the given handler and middleware factory.
func NewRouter(handler *Handler, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts HandlerFunc-shaped middleware to Chi's
// func(http.Handler) http.Handler form.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// chiPathValue injects Chi URL params into the request so handlers using
// r.PathValue() keep working. This bridges chi.URLParam with Go 1.22+'s
// PathValue.
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					r.SetPathValue(key, rctx.URLParams.Values[i])
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SetupChi builds the Chi mux with all API routes.
func (router *Router) SetupChi() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())
	r.Use(chiMiddleware(middleware.Compression))
	r.Use(router.handler.perfMon.Middleware)

	// Health and monitoring
	r.Get("/health", router.handler.Health)
	r.Get("/health/live", router.handler.HealthLive)
	r.Get("/health/ready", router.handler.HealthReady)
	r.Handle("/metrics", promhttp.Handler())

	router.registerServiceRoutes(r)
	router.registerDiagramRoutes(r)
	router.registerPipelineRoutes(r)
	router.registerProjectRoutes(r)
	router.registerDeploymentRoutes(r)

	// Performance stats
	r.Route("/api/v1/performance", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Get("/stats", router.handler.PerformanceStats)
	})

	// Websocket upgrade endpoint. No rate limiting here, the connection is
	// long-lived and metrics are collected by the hub itself.
	r.Get("/api/v1/ws", router.handler.HandleWebSocket)

	return r
}

func (router *Router) registerServiceRoutes(r chi.Router) {
	r.Route("/api/v1/services", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.ListServices)
		r.Post("/", router.handler.CreateService)
		r.Get("/{id}", router.handler.GetService)
		r.Put("/{id}", router.handler.UpdateService)
		r.Delete("/{id}", router.handler.DeleteService)
	})
}

func (router *Router) registerDiagramRoutes(r chi.Router) {
	r.Route("/api/v1/diagrams", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.ListDiagrams)
		r.Post("/", router.handler.CreateDiagram)
		r.Get("/{id}", router.handler.GetDiagram)
		r.Put("/{id}", router.handler.UpdateDiagram)
		r.Delete("/{id}", router.handler.DeleteDiagram)

		// Nested element and relationship operations
		r.Post("/{id}/elements", router.handler.AddDiagramElement)
		r.Put("/{id}/elements/{elementId}", router.handler.UpdateDiagramElement)
		r.Delete("/{id}/elements/{elementId}", router.handler.RemoveDiagramElement)
		r.Post("/{id}/relationships", router.handler.AddDiagramRelationship)
		r.Delete("/{id}/relationships/{relationshipId}", router.handler.RemoveDiagramRelationship)
	})
}

func (router *Router) registerPipelineRoutes(r chi.Router) {
	r.Route("/api/v1/pipelines", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		// Templates before /{id} so "templates" never matches as an ID
		r.Get("/templates", router.handler.ListPipelineTemplates)
		r.Get("/templates/{id}", router.handler.GetPipelineTemplate)
		r.Post("/from-template", router.handler.CreatePipelineFromTemplate)

		r.Get("/", router.handler.ListPipelines)
		r.Post("/", router.handler.CreatePipeline)
		r.Get("/{id}", router.handler.GetPipeline)
		r.Put("/{id}", router.handler.UpdatePipeline)
		r.Delete("/{id}", router.handler.DeletePipeline)

		// Execution history of a pipeline
		r.Post("/{id}/executions", router.handler.StartExecution)
		r.Get("/{id}/executions", router.handler.ListExecutions)
	})

	r.Route("/api/v1/executions", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/{id}", router.handler.GetExecution)
		r.Post("/{id}/cancel", router.handler.CancelExecution)
	})
}

func (router *Router) registerProjectRoutes(r chi.Router) {
	r.Route("/api/v1/projects", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.ListProjects)
		r.Post("/", router.handler.CreateProject)
		r.Get("/{id}", router.handler.GetProject)
		r.Put("/{id}", router.handler.UpdateProject)
		r.Delete("/{id}", router.handler.DeleteProject)

		r.Post("/{id}/services/{serviceId}", router.handler.AddProjectService)
		r.Delete("/{id}/services/{serviceId}", router.handler.RemoveProjectService)
		r.Post("/{id}/diagrams/{diagramId}", router.handler.AddProjectDiagram)
		r.Delete("/{id}/diagrams/{diagramId}", router.handler.RemoveProjectDiagram)
		r.Post("/{id}/members", router.handler.AddProjectMember)
		r.Delete("/{id}/members/{memberId}", router.handler.RemoveProjectMember)
	})
}

func (router *Router) registerDeploymentRoutes(r chi.Router) {
	r.Route("/api/v1/deployments", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiPathValue)
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/", router.handler.ListDeployments)
		r.Get("/{id}", router.handler.GetDeployment)
	})
}
