// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
	"github.com/chavp/c4engineering/internal/store"
)

// recordingBroadcaster captures fan-out calls for assertions.
type recordingBroadcaster struct {
	rooms    []string
	senders  []string
	payloads [][]byte
}

func (b *recordingBroadcaster) BroadcastToRoom(room, sender string, payload []byte) {
	b.rooms = append(b.rooms, room)
	b.senders = append(b.senders, sender)
	b.payloads = append(b.payloads, payload)
}

func newDiagramService(t *testing.T, b Broadcaster) *DiagramService {
	t.Helper()
	repo, err := repository.NewDiagramRepository(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	return NewDiagramService(repo, b, zerolog.Nop())
}

func createDiagram(t *testing.T, s *DiagramService, id string) models.Diagram {
	t.Helper()
	d, err := s.Create(models.CreateDiagramRequest{
		ID:   id,
		Name: "Payments Context",
		Type: "systemContext",
	})
	if err != nil {
		t.Fatalf("failed to create diagram: %v", err)
	}
	return d
}

func TestDiagramServiceCreate(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	d := createDiagram(t, s, "d1")

	if d.Type != models.DiagramTypeSystemContext {
		t.Errorf("expected systemContext, got %s", d.Type)
	}
	if d.Elements == nil || d.Relationships == nil {
		t.Error("expected empty, non-nil element and relationship sets")
	}
}

func TestDiagramServiceCreate_UnknownType(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	_, err := s.Create(models.CreateDiagramRequest{ID: "d1", Name: "x", Type: "sequence"})
	if !store.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgument, got %v", err)
	}
}

func TestDiagramServiceNestedOps_NilBroadcaster(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	createDiagram(t, s, "d1")

	d, err := s.AddElement("d1", models.AddElementRequest{ID: "e1", Name: "API", Type: "container"}, "")
	if err != nil {
		t.Fatalf("add element failed: %v", err)
	}
	if !d.HasElement("e1") {
		t.Error("expected element e1")
	}

	if _, err = s.AddElement("d1", models.AddElementRequest{ID: "e2", Name: "DB", Type: "container"}, ""); err != nil {
		t.Fatal(err)
	}

	d, err = s.AddRelationship("d1", models.AddRelationshipRequest{ID: "r1", SourceID: "e1", TargetID: "e2"}, "")
	if err != nil {
		t.Fatalf("add relationship failed: %v", err)
	}
	if len(d.Relationships) != 1 {
		t.Fatalf("expected 1 relationship, got %d", len(d.Relationships))
	}

	d, err = s.RemoveElement("d1", "e1", "")
	if err != nil {
		t.Fatalf("remove element failed: %v", err)
	}
	if len(d.Relationships) != 0 {
		t.Errorf("expected cascade to remove relationships, got %d", len(d.Relationships))
	}
}

func TestDiagramServiceFanOut(t *testing.T) {
	t.Parallel()

	b := &recordingBroadcaster{}
	s := newDiagramService(t, b)
	createDiagram(t, s, "d1")

	if _, err := s.AddElement("d1", models.AddElementRequest{ID: "e1", Name: "API", Type: "container"}, "conn-42"); err != nil {
		t.Fatal(err)
	}

	if len(b.payloads) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(b.payloads))
	}
	if b.rooms[0] != "d1" {
		t.Errorf("expected room d1, got %s", b.rooms[0])
	}
	if b.senders[0] != "conn-42" {
		t.Errorf("expected sender conn-42, got %s", b.senders[0])
	}

	var event DiagramEvent
	if err := json.Unmarshal(b.payloads[0], &event); err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if event.Type != "element-added" || event.Room != "d1" {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestDiagramServiceFanOut_NotSentOnFailure(t *testing.T) {
	t.Parallel()

	b := &recordingBroadcaster{}
	s := newDiagramService(t, b)
	createDiagram(t, s, "d1")

	// Relationship endpoints are missing, so the mutation fails and no
	// event may go out.
	_, err := s.AddRelationship("d1", models.AddRelationshipRequest{ID: "r1", SourceID: "ghost", TargetID: "e2"}, "")
	if !store.IsInvalidArgument(err) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if len(b.payloads) != 0 {
		t.Errorf("expected no broadcast after failed mutation, got %d", len(b.payloads))
	}
}

func TestDiagramServiceUpdateElement_MergePartial(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	createDiagram(t, s, "d1")
	if _, err := s.AddElement("d1", models.AddElementRequest{
		ID: "e1", Name: "API", Type: "container", Technology: "Go",
		Position: models.Position{X: 10, Y: 20},
	}, ""); err != nil {
		t.Fatal(err)
	}

	pos := models.Position{X: 100, Y: 200}
	d, err := s.UpdateElement("d1", "e1", models.UpdateElementRequest{Position: &pos}, "")
	if err != nil {
		t.Fatalf("update element failed: %v", err)
	}

	el := d.Elements[0]
	if el.Position != pos {
		t.Errorf("expected position %+v, got %+v", pos, el.Position)
	}
	if el.Technology != "Go" {
		t.Errorf("expected technology untouched, got %q", el.Technology)
	}
}

func TestDiagramServiceUpdateElement_NotFound(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	createDiagram(t, s, "d1")

	name := "x"
	if _, err := s.UpdateElement("d1", "ghost", models.UpdateElementRequest{Name: &name}, ""); !store.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
	if _, err := s.UpdateElement("ghost", "e1", models.UpdateElementRequest{Name: &name}, ""); !store.IsNotFound(err) {
		t.Errorf("expected NotFound for missing diagram, got %v", err)
	}
}

func TestDiagramServiceList_ByProject(t *testing.T) {
	t.Parallel()

	s := newDiagramService(t, nil)
	if _, err := s.Create(models.CreateDiagramRequest{ID: "d1", Name: "one", Type: "container", ProjectID: "p1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Create(models.CreateDiagramRequest{ID: "d2", Name: "two", Type: "container", ProjectID: "p2"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.List("p2")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "d2" {
		t.Errorf("expected d2 only, got %+v", got)
	}

	all, err := s.List("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 diagrams, got %d", len(all))
	}
}
