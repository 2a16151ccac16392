// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
	"github.com/chavp/c4engineering/internal/store"
)

func newProjectService(t *testing.T) (*ProjectService, *ServiceCatalog, *DiagramService) {
	t.Helper()
	root := t.TempDir()
	projects, err := repository.NewProjectRepository(root)
	if err != nil {
		t.Fatalf("failed to create project repository: %v", err)
	}
	services, err := repository.NewServiceRepository(root)
	if err != nil {
		t.Fatalf("failed to create service repository: %v", err)
	}
	diagrams, err := repository.NewDiagramRepository(root)
	if err != nil {
		t.Fatalf("failed to create diagram repository: %v", err)
	}
	return NewProjectService(projects, services, diagrams, zerolog.Nop()),
		NewServiceCatalog(services, zerolog.Nop()),
		NewDiagramService(diagrams, nil, zerolog.Nop())
}

func TestProjectServiceCreate_DefaultStatus(t *testing.T) {
	t.Parallel()

	ps, _, _ := newProjectService(t)
	p, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "Replatform"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Status != models.ProjectStatusPlanning {
		t.Errorf("expected default status planning, got %s", p.Status)
	}
	if p.ServiceIDs == nil || p.DiagramIDs == nil || p.TeamMembers == nil {
		t.Error("expected empty, non-nil reference sets")
	}
}

func TestProjectServiceCreate_UnknownStatus(t *testing.T) {
	t.Parallel()

	ps, _, _ := newProjectService(t)
	_, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "x", Status: "abandoned"})
	if !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestProjectServiceAddServiceRef_ValidatesExistence(t *testing.T) {
	t.Parallel()

	ps, sc, _ := newProjectService(t)
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "x"}); err != nil {
		t.Fatal(err)
	}

	if _, err := ps.AddServiceRef("p1", "ghost"); !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument for missing service, got %v", err)
	}

	if _, err := sc.Create(validCreateRequest("payments")); err != nil {
		t.Fatal(err)
	}
	p, err := ps.AddServiceRef("p1", "payments")
	if err != nil {
		t.Fatalf("add ref failed: %v", err)
	}
	if !p.HasServiceRef("payments") {
		t.Error("expected payments referenced")
	}
}

func TestProjectServiceAddDiagramRef_ValidatesExistence(t *testing.T) {
	t.Parallel()

	ps, _, ds := newProjectService(t)
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "x"}); err != nil {
		t.Fatal(err)
	}

	if _, err := ps.AddDiagramRef("p1", "ghost"); !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument for missing diagram, got %v", err)
	}

	createDiagram(t, ds, "d1")
	p, err := ps.AddDiagramRef("p1", "d1")
	if err != nil {
		t.Fatalf("add ref failed: %v", err)
	}
	if !p.HasDiagramRef("d1") {
		t.Error("expected d1 referenced")
	}
}

func TestProjectServiceTeamMembers(t *testing.T) {
	t.Parallel()

	ps, _, _ := newProjectService(t)
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "x"}); err != nil {
		t.Fatal(err)
	}

	p, err := ps.AddTeamMember("p1", models.AddTeamMemberRequest{ID: "m1", Name: "Alex", Role: "lead"})
	if err != nil {
		t.Fatalf("add member failed: %v", err)
	}
	if len(p.TeamMembers) != 1 || p.TeamMembers[0].Role != "lead" {
		t.Errorf("unexpected members: %+v", p.TeamMembers)
	}

	if _, err = ps.AddTeamMember("p1", models.AddTeamMemberRequest{ID: "m1", Name: "Alex"}); !store.IsConflict(err) {
		t.Errorf("expected Conflict for duplicate member, got %v", err)
	}

	p, err = ps.RemoveTeamMember("p1", "m1")
	if err != nil {
		t.Fatalf("remove member failed: %v", err)
	}
	if len(p.TeamMembers) != 0 {
		t.Errorf("expected no members, got %+v", p.TeamMembers)
	}
}

func TestProjectServiceList_ByStatus(t *testing.T) {
	t.Parallel()

	ps, _, _ := newProjectService(t)
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "one", Status: "active"}); err != nil {
		t.Fatal(err)
	}
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p2", Name: "two", Status: "archived"}); err != nil {
		t.Fatal(err)
	}

	got, err := ps.List("ACTIVE")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("expected p1 only, got %+v", got)
	}

	if _, err = ps.List("abandoned"); !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument for unknown status, got %v", err)
	}
}

func TestProjectServiceUpdate_MergePartial(t *testing.T) {
	t.Parallel()

	ps, _, _ := newProjectService(t)
	if _, err := ps.Create(models.CreateProjectRequest{ID: "p1", Name: "one", Description: "keep me"}); err != nil {
		t.Fatal(err)
	}

	status := "active"
	p, err := ps.Update("p1", models.UpdateProjectRequest{Status: &status})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if p.Status != models.ProjectStatusActive {
		t.Errorf("expected active, got %s", p.Status)
	}
	if p.Description != "keep me" {
		t.Errorf("expected description untouched, got %q", p.Description)
	}
}
