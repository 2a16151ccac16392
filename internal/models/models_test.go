// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
)

func TestParseServiceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  ServiceType
		ok    bool
	}{
		{"backend", ServiceTypeBackend, true},
		{"BACKEND", ServiceTypeBackend, true},
		{"Frontend", ServiceTypeFrontend, true},
		{"infrastructure", ServiceTypeInfrastructure, true},
		{"mainframe", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseServiceType(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseServiceType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseServiceLifecycle(t *testing.T) {
	t.Parallel()

	if got, ok := ParseServiceLifecycle("Production"); !ok || got != LifecycleProduction {
		t.Errorf("expected production, got (%q, %v)", got, ok)
	}
	if _, ok := ParseServiceLifecycle("retired"); ok {
		t.Error("expected unknown lifecycle to fail")
	}
}

func TestParseDiagramType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  DiagramType
		ok    bool
	}{
		{"systemContext", DiagramTypeSystemContext, true},
		{"SYSTEMCONTEXT", DiagramTypeSystemContext, true},
		{"container", DiagramTypeContainer, true},
		{"deployment", DiagramTypeDeployment, true},
		{"sequence", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDiagramType(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseDiagramType(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseElementType(t *testing.T) {
	t.Parallel()

	if got, ok := ParseElementType("Person"); !ok || got != ElementTypePerson {
		t.Errorf("expected person, got (%q, %v)", got, ok)
	}
	if _, ok := ParseElementType("database"); ok {
		t.Error("expected unknown element type to fail")
	}
}

func TestParseStepType(t *testing.T) {
	t.Parallel()

	if got, ok := ParseStepType("DEPLOY"); !ok || got != StepTypeDeploy {
		t.Errorf("expected deploy, got (%q, %v)", got, ok)
	}
	if _, ok := ParseStepType("compile"); ok {
		t.Error("expected unknown step type to fail")
	}
}

func TestParseProjectStatus(t *testing.T) {
	t.Parallel()

	if got, ok := ParseProjectStatus("Archived"); !ok || got != ProjectStatusArchived {
		t.Errorf("expected archived, got (%q, %v)", got, ok)
	}
	if _, ok := ParseProjectStatus("cancelled"); ok {
		t.Error("expected unknown project status to fail")
	}
}

func TestExecutionStatusIsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   ExecutionStatus
		terminal bool
	}{
		{ExecutionStatusQueued, false},
		{ExecutionStatusRunning, false},
		{ExecutionStatusSuccess, true},
		{ExecutionStatusFailed, true},
		{ExecutionStatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestServiceJSONEncoding(t *testing.T) {
	t.Parallel()

	svc := Service{
		ID:        "payment-api",
		Name:      "Payment API",
		Owner:     "team-payments",
		Type:      ServiceTypeBackend,
		Lifecycle: LifecycleProduction,
		Metadata: EntityMetadata{
			CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
		},
	}

	data, err := json.Marshal(svc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`"id":"payment-api"`,
		`"type":"backend"`,
		`"lifecycle":"production"`,
		`"createdAt":"2026-08-01T10:00:00Z"`,
		`"repositoryUrl"`,
	} {
		if want == `"repositoryUrl"` {
			// empty optional field must be omitted
			if strings.Contains(out, want) {
				t.Errorf("expected %s to be omitted: %s", want, out)
			}
			continue
		}
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestDiagramHasElement(t *testing.T) {
	t.Parallel()

	d := Diagram{
		Elements: []Element{
			{ID: "e1", Name: "Web", Type: ElementTypeContainer},
		},
	}

	if !d.HasElement("e1") {
		t.Error("expected e1 to be present")
	}
	if d.HasElement("e2") {
		t.Error("expected e2 to be absent")
	}
}

func TestProjectRefHelpers(t *testing.T) {
	t.Parallel()

	p := Project{
		ServiceIDs: []string{"svc-a"},
		DiagramIDs: []string{"d1"},
	}

	if !p.HasServiceRef("svc-a") || p.HasServiceRef("svc-b") {
		t.Error("service ref lookup incorrect")
	}
	if !p.HasDiagramRef("d1") || p.HasDiagramRef("d2") {
		t.Error("diagram ref lookup incorrect")
	}
}

func TestServiceSummaryProjection(t *testing.T) {
	t.Parallel()

	svc := Service{
		ID:          "svc-a",
		Name:        "Service A",
		Description: "long description never shown in lists",
		Owner:       "team-x",
		Type:        ServiceTypeAPI,
		Lifecycle:   LifecycleDevelopment,
		Tags:        []string{"go"},
	}

	sum := svc.Summary()
	if sum.ID != "svc-a" || sum.Owner != "team-x" || sum.Type != ServiceTypeAPI {
		t.Errorf("unexpected summary: %+v", sum)
	}
}
