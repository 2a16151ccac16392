// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package repository

import (
	"testing"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/store"
)

func newProjectRepo(t *testing.T) *ProjectRepository {
	t.Helper()
	r, err := NewProjectRepository(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return r
}

func seedProject(t *testing.T, r *ProjectRepository) models.Project {
	t.Helper()
	p, err := r.Create(models.Project{
		ID:     "proj-1",
		Name:   "Replatform",
		Status: models.ProjectStatusActive,
	})
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return p
}

func TestProjectServiceRefs(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)
	seedProject(t, r)

	p, err := r.AddServiceRef("proj-1", "svc-a")
	if err != nil {
		t.Fatalf("add service ref failed: %v", err)
	}
	if !p.HasServiceRef("svc-a") {
		t.Error("expected svc-a to be referenced")
	}

	_, err = r.AddServiceRef("proj-1", "svc-a")
	if !store.IsConflict(err) {
		t.Errorf("expected Conflict for duplicate ref, got %v", err)
	}

	p, err = r.RemoveServiceRef("proj-1", "svc-a")
	if err != nil {
		t.Fatalf("remove service ref failed: %v", err)
	}
	if p.HasServiceRef("svc-a") {
		t.Error("expected svc-a removed")
	}

	_, err = r.RemoveServiceRef("proj-1", "svc-a")
	if !store.IsNotFound(err) {
		t.Errorf("expected NotFound for absent ref, got %v", err)
	}
}

func TestProjectDiagramRefs(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)
	seedProject(t, r)

	p, err := r.AddDiagramRef("proj-1", "d1")
	if err != nil {
		t.Fatalf("add diagram ref failed: %v", err)
	}
	if !p.HasDiagramRef("d1") {
		t.Error("expected d1 to be referenced")
	}

	if _, err = r.AddDiagramRef("proj-1", "d1"); !store.IsConflict(err) {
		t.Errorf("expected Conflict, got %v", err)
	}

	if _, err = r.RemoveDiagramRef("proj-1", "ghost"); !store.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestProjectTeamMembers(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)
	seedProject(t, r)

	member := models.TeamMember{ID: "m1", Name: "Alex", Role: "lead"}

	p, err := r.AddTeamMember("proj-1", member)
	if err != nil {
		t.Fatalf("add member failed: %v", err)
	}
	if len(p.TeamMembers) != 1 {
		t.Errorf("expected 1 member, got %d", len(p.TeamMembers))
	}

	if _, err = r.AddTeamMember("proj-1", member); !store.IsConflict(err) {
		t.Errorf("expected Conflict for duplicate member, got %v", err)
	}

	if _, err = r.AddTeamMember("proj-1", models.TeamMember{Name: "no id"}); !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument for empty member ID, got %v", err)
	}

	p, err = r.RemoveTeamMember("proj-1", "m1")
	if err != nil {
		t.Fatalf("remove member failed: %v", err)
	}
	if len(p.TeamMembers) != 0 {
		t.Errorf("expected no members, got %d", len(p.TeamMembers))
	}

	if _, err = r.RemoveTeamMember("proj-1", "m1"); !store.IsNotFound(err) {
		t.Errorf("expected NotFound for absent member, got %v", err)
	}
}

func TestProjectMutators_MissingParent(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)

	if _, err := r.AddServiceRef("ghost", "svc-a"); !store.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
	if _, err := r.AddTeamMember("ghost", models.TeamMember{ID: "m1"}); !store.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestProjectFindByStatus(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)
	_, _ = r.Create(models.Project{ID: "p1", Name: "one", Status: models.ProjectStatusActive})
	_, _ = r.Create(models.Project{ID: "p2", Name: "two", Status: models.ProjectStatusArchived})

	got, err := r.FindByStatus(models.ProjectStatusArchived)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("expected p2 only, got %+v", got)
	}
}

func TestProjectMutators_RefreshUpdatedAt(t *testing.T) {
	t.Parallel()

	r := newProjectRepo(t)
	created := seedProject(t, r)

	p, err := r.AddServiceRef("proj-1", "svc-a")
	if err != nil {
		t.Fatal(err)
	}
	if p.Metadata.UpdatedAt.Before(created.Metadata.UpdatedAt) {
		t.Error("expected nested mutation to refresh updatedAt")
	}
	if !p.Metadata.CreatedAt.Equal(created.Metadata.CreatedAt) {
		t.Error("expected nested mutation to preserve createdAt")
	}
}
