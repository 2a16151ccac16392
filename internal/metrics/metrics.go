// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

// Package metrics defines the Prometheus instrumentation for C4Engineering:
// API endpoint latency and throughput, JSON file store operations, WebSocket
// room activity, and pipeline execution counts. Metrics are registered via
// promauto at package load and exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// File Store Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of JSON file store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of failed JSON file store operations",
		},
		[]string{"operation", "collection", "kind"},
	)

	StoreEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_entities",
			Help: "Current number of entities per collection, as counted at last index rebuild",
		},
		[]string{"collection"},
	)

	// WebSocket Relay Metrics
	WSConnectedClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_connected_clients",
			Help: "Current number of connected WebSocket clients",
		},
	)

	WSActiveRooms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_active_rooms",
			Help: "Current number of rooms with at least one member",
		},
	)

	WSBroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "websocket_broadcasts_total",
			Help: "Total number of messages fanned out to rooms",
		},
		[]string{"message_type"},
	)

	WSDroppedMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_dropped_messages_total",
			Help: "Total number of messages dropped due to full client send buffers",
		},
	)

	// Pipeline Execution Metrics
	ExecutionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_executions_started_total",
			Help: "Total number of pipeline executions started",
		},
		[]string{"pipeline_id"},
	)

	ExecutionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_executions_completed_total",
			Help: "Total number of pipeline executions that reached a terminal status",
		},
		[]string{"status"},
	)
)

// RecordAPIRequest records latency and count for a completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordStoreOperation records a completed store operation. The kind label is
// only recorded for failures; pass an empty kind for success.
func RecordStoreOperation(operation, collection, kind string, duration time.Duration) {
	StoreOperationDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if kind != "" {
		StoreOperationErrors.WithLabelValues(operation, collection, kind).Inc()
	}
}

// SetCollectionSize updates the entity count gauge for a collection.
func SetCollectionSize(collection string, n int) {
	StoreEntities.WithLabelValues(collection).Set(float64(n))
}

// RecordBroadcast counts a room fan-out by message type.
func RecordBroadcast(messageType string) {
	WSBroadcastsTotal.WithLabelValues(messageType).Inc()
}

// RecordExecutionStarted counts a newly queued pipeline execution.
func RecordExecutionStarted(pipelineID string) {
	ExecutionsStarted.WithLabelValues(pipelineID).Inc()
}

// RecordExecutionCompleted counts an execution reaching a terminal status.
func RecordExecutionCompleted(status string) {
	ExecutionsCompleted.WithLabelValues(status).Inc()
}
