// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPerformanceMonitor_RecordAndStats(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100)

	for i := 0; i < 10; i++ {
		pm.RecordRequest(&RequestMetrics{
			Path:       "/api/v1/services",
			Method:     http.MethodGet,
			DurationMS: int64(i + 1),
			StatusCode: http.StatusOK,
			Timestamp:  time.Now(),
		})
	}

	stats := pm.GetStats()
	if len(stats) != 1 {
		t.Fatalf("expected 1 endpoint, got %d", len(stats))
	}

	s := stats[0]
	if s.RequestCount != 10 {
		t.Errorf("expected 10 requests, got %d", s.RequestCount)
	}
	if s.MinDuration != 1 || s.MaxDuration != 10 {
		t.Errorf("expected min 1 max 10, got min %d max %d", s.MinDuration, s.MaxDuration)
	}
	if s.AvgDuration != 5.5 {
		t.Errorf("expected avg 5.5, got %f", s.AvgDuration)
	}
}

func TestPerformanceMonitor_SlidingWindow(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(5)

	for i := 0; i < 8; i++ {
		pm.RecordRequest(&RequestMetrics{
			Path:       "/api/v1/projects",
			Method:     http.MethodGet,
			DurationMS: int64(i),
		})
	}

	recent := pm.GetRecentMetrics(10)
	if len(recent) != 5 {
		t.Fatalf("expected window capped at 5, got %d", len(recent))
	}
	if recent[0].DurationMS != 3 {
		t.Errorf("expected oldest surviving sample to be 3, got %d", recent[0].DurationMS)
	}
}

func TestPerformanceMonitor_StatsSortedByCount(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100)
	for i := 0; i < 3; i++ {
		pm.RecordRequest(&RequestMetrics{Path: "/a", Method: "GET", DurationMS: 1})
	}
	pm.RecordRequest(&RequestMetrics{Path: "/b", Method: "GET", DurationMS: 1})

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 endpoints, got %d", len(stats))
	}
	if stats[0].Path != "GET /a" {
		t.Errorf("expected busiest endpoint first, got %q", stats[0].Path)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10)
	handler := pm.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/diagrams", nil))

	recent := pm.GetRecentMetrics(1)
	if len(recent) != 1 {
		t.Fatalf("expected 1 recorded sample, got %d", len(recent))
	}
	if recent[0].StatusCode != http.StatusCreated {
		t.Errorf("expected status 201, got %d", recent[0].StatusCode)
	}
	if recent[0].Path != "/api/v1/diagrams" {
		t.Errorf("unexpected path %q", recent[0].Path)
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	sorted := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	if got := percentile(sorted, 0.50); got != 5 {
		t.Errorf("p50 = %d, want 5", got)
	}
	if got := percentile(sorted, 0.99); got != 9 {
		t.Errorf("p99 = %d, want 9", got)
	}
	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("empty slice p50 = %d, want 0", got)
	}
}
