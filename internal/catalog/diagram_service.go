// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package catalog

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/repository"
)

// Broadcaster fans a diagram change out to other viewers of the same room.
// The websocket hub implements it; a nil Broadcaster disables fan-out
// without changing any mutation semantics.
type Broadcaster interface {
	// BroadcastToRoom sends the payload to every room member except the
	// sender. Sender may be empty, meaning "no originating connection".
	BroadcastToRoom(room, sender string, payload []byte)
}

// DiagramEvent is the message shape relayed to diagram rooms.
type DiagramEvent struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Data any    `json:"data"`
}

// DiagramService manages C4 diagrams and their nested elements and
// relationships.
type DiagramService struct {
	diagrams    *repository.DiagramRepository
	broadcaster Broadcaster
	logger      zerolog.Logger
}

// NewDiagramService creates the diagram service. broadcaster may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDiagramService(diagrams *repository.DiagramRepository, broadcaster Broadcaster, logger zerolog.Logger) *DiagramService {
	return &DiagramService{
		diagrams:    diagrams,
		broadcaster: broadcaster,
		logger:      logger.With().Str("component", "diagram_service").Logger(),
	}
}

// Create stores a new diagram with empty element and relationship sets.
func (s *DiagramService) Create(req models.CreateDiagramRequest) (models.Diagram, error) {
	dType, ok := models.ParseDiagramType(req.Type)
	if !ok {
		return models.Diagram{}, invalidArg(repository.DiagramCollection, req.ID, "create",
			fmt.Errorf("unknown diagram type %q", req.Type))
	}

	d := models.Diagram{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		Type:          dType,
		ProjectID:     req.ProjectID,
		Elements:      []models.Element{},
		Relationships: []models.Relationship{},
		Metadata:      models.EntityMetadata{CreatedBy: req.CreatedBy},
	}

	created, err := s.diagrams.Create(d)
	if err != nil {
		return models.Diagram{}, err
	}

	s.logger.Info().
		Str("diagram_id", created.ID).
		Str("type", string(created.Type)).
		Msg("Diagram created")
	return created, nil
}

// Get returns one diagram by ID.
func (s *DiagramService) Get(id string) (models.Diagram, bool, error) {
	return s.diagrams.Get(id)
}

// List returns all diagrams, optionally narrowed to one project.
func (s *DiagramService) List(projectID string) ([]models.Diagram, error) {
	if projectID != "" {
		return s.diagrams.FindByProject(projectID)
	}
	return s.diagrams.List()
}

// Update applies a merge-partial update to the diagram shell. Elements and
// relationships are mutated through their own operations.
func (s *DiagramService) Update(id string, req models.UpdateDiagramRequest) (models.Diagram, error) {
	d, found, err := s.diagrams.Get(id)
	if err != nil {
		return models.Diagram{}, err
	}
	if !found {
		return models.Diagram{}, notFound(repository.DiagramCollection, id, "update")
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = *req.Description
	}
	if req.Type != nil {
		t, ok := models.ParseDiagramType(*req.Type)
		if !ok {
			return models.Diagram{}, invalidArg(repository.DiagramCollection, id, "update",
				fmt.Errorf("unknown diagram type %q", *req.Type))
		}
		d.Type = t
	}
	if req.ProjectID != nil {
		d.ProjectID = *req.ProjectID
	}

	updated, err := s.diagrams.Update(d)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("diagram-updated", updated, "")
	return updated, nil
}

// Delete removes a diagram. Deleting an absent diagram is not an error.
func (s *DiagramService) Delete(id string) (bool, error) {
	return s.diagrams.Delete(id)
}

// AddElement places an element on the diagram and notifies other viewers.
func (s *DiagramService) AddElement(diagramID string, req models.AddElementRequest, sender string) (models.Diagram, error) {
	elType, ok := models.ParseElementType(req.Type)
	if !ok {
		return models.Diagram{}, invalidArg(repository.DiagramCollection, diagramID, "addElement",
			fmt.Errorf("unknown element type %q", req.Type))
	}

	el := models.Element{
		ID:          req.ID,
		Name:        req.Name,
		Type:        elType,
		Description: req.Description,
		Technology:  req.Technology,
		ServiceID:   req.ServiceID,
		Position:    req.Position,
	}

	updated, err := s.diagrams.AddElement(diagramID, el)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("element-added", updated, sender)
	return updated, nil
}

// UpdateElement applies a merge-partial update to one element.
func (s *DiagramService) UpdateElement(diagramID, elementID string, req models.UpdateElementRequest, sender string) (models.Diagram, error) {
	d, found, err := s.diagrams.Get(diagramID)
	if err != nil {
		return models.Diagram{}, err
	}
	if !found {
		return models.Diagram{}, notFound(repository.DiagramCollection, diagramID, "updateElement")
	}

	var current models.Element
	ok := false
	for _, el := range d.Elements {
		if el.ID == elementID {
			current = el
			ok = true
			break
		}
	}
	if !ok {
		return models.Diagram{}, notFound(repository.DiagramCollection, diagramID, "updateElement")
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.Technology != nil {
		current.Technology = *req.Technology
	}
	if req.ServiceID != nil {
		current.ServiceID = *req.ServiceID
	}
	if req.Position != nil {
		current.Position = *req.Position
	}

	updated, err := s.diagrams.UpdateElement(diagramID, current)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("element-updated", updated, sender)
	return updated, nil
}

// RemoveElement deletes an element and every relationship touching it.
func (s *DiagramService) RemoveElement(diagramID, elementID, sender string) (models.Diagram, error) {
	updated, err := s.diagrams.RemoveElement(diagramID, elementID)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("element-removed", updated, sender)
	return updated, nil
}

// AddRelationship connects two elements of the diagram.
func (s *DiagramService) AddRelationship(diagramID string, req models.AddRelationshipRequest, sender string) (models.Diagram, error) {
	rel := models.Relationship{
		ID:          req.ID,
		SourceID:    req.SourceID,
		TargetID:    req.TargetID,
		Description: req.Description,
		Technology:  req.Technology,
	}

	updated, err := s.diagrams.AddRelationship(diagramID, rel)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("relationship-added", updated, sender)
	return updated, nil
}

// RemoveRelationship deletes one relationship by ID.
func (s *DiagramService) RemoveRelationship(diagramID, relationshipID, sender string) (models.Diagram, error) {
	updated, err := s.diagrams.RemoveRelationship(diagramID, relationshipID)
	if err != nil {
		return models.Diagram{}, err
	}
	s.fanOut("relationship-removed", updated, sender)
	return updated, nil
}

// fanOut relays the post-mutation diagram to other viewers of the diagram
// room. Marshal failures are logged and dropped; the mutation itself has
// already committed.
func (s *DiagramService) fanOut(eventType string, d models.Diagram, sender string) {
	if s.broadcaster == nil {
		return
	}

	payload, err := json.Marshal(DiagramEvent{
		Type: eventType,
		Room: d.ID,
		Data: d,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("diagram_id", d.ID).
			Str("event_type", eventType).
			Msg("Failed to encode diagram event")
		return
	}

	s.broadcaster.BroadcastToRoom(d.ID, sender, payload)
}
