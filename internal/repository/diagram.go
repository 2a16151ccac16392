// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package repository

import (
	"errors"
	"fmt"

	"github.com/chavp/c4engineering/internal/models"
	"github.com/chavp/c4engineering/internal/store"
)

// DiagramCollection is the on-disk directory name for diagrams.
const DiagramCollection = "diagrams"

// DiagramRepository persists C4 diagrams and owns their nested
// element/relationship mutations.
type DiagramRepository struct {
	repo[models.Diagram]
}

// NewDiagramRepository creates the repository over dataRoot/diagrams.
func NewDiagramRepository(dataRoot string) (*DiagramRepository, error) {
	s, err := store.New[models.Diagram](dataRoot, DiagramCollection)
	if err != nil {
		return nil, err
	}
	return &DiagramRepository{repo[models.Diagram]{store: s}}, nil
}

// FindByProject returns diagrams attached to the given project ID.
func (r *DiagramRepository) FindByProject(projectID string) ([]models.Diagram, error) {
	return r.Filter(func(d models.Diagram) bool {
		return d.ProjectID == projectID
	})
}

// getParent loads the diagram a nested mutation targets, as NotFound when
// absent.
func (r *DiagramRepository) getParent(diagramID, op string) (models.Diagram, error) {
	d, found, err := r.Get(diagramID)
	if err != nil {
		return models.Diagram{}, err
	}
	if !found {
		return models.Diagram{}, store.NewError(store.KindNotFound, DiagramCollection, diagramID, op,
			errors.New("diagram does not exist"))
	}
	return d, nil
}

// AddElement appends an element to the diagram. Conflict when an element
// with the same ID is already present.
func (r *DiagramRepository) AddElement(diagramID string, el models.Element) (models.Diagram, error) {
	d, err := r.getParent(diagramID, "addElement")
	if err != nil {
		return models.Diagram{}, err
	}

	if el.ID == "" {
		return models.Diagram{}, store.NewError(store.KindInvalidArgument, DiagramCollection, diagramID, "addElement",
			errors.New("element id must not be empty"))
	}
	if d.HasElement(el.ID) {
		return models.Diagram{}, store.NewError(store.KindConflict, DiagramCollection, diagramID, "addElement",
			fmt.Errorf("element %q already exists", el.ID))
	}

	d.Elements = append(d.Elements, el)
	return r.Update(d)
}

// UpdateElement replaces an existing element in place. NotFound when the
// element is absent.
func (r *DiagramRepository) UpdateElement(diagramID string, el models.Element) (models.Diagram, error) {
	d, err := r.getParent(diagramID, "updateElement")
	if err != nil {
		return models.Diagram{}, err
	}

	for i := range d.Elements {
		if d.Elements[i].ID == el.ID {
			d.Elements[i] = el
			return r.Update(d)
		}
	}

	return models.Diagram{}, store.NewError(store.KindNotFound, DiagramCollection, diagramID, "updateElement",
		fmt.Errorf("element %q does not exist", el.ID))
}

// RemoveElement deletes an element and cascades removal of every
// relationship whose source or target references it.
func (r *DiagramRepository) RemoveElement(diagramID, elementID string) (models.Diagram, error) {
	d, err := r.getParent(diagramID, "removeElement")
	if err != nil {
		return models.Diagram{}, err
	}

	if !d.HasElement(elementID) {
		return models.Diagram{}, store.NewError(store.KindNotFound, DiagramCollection, diagramID, "removeElement",
			fmt.Errorf("element %q does not exist", elementID))
	}

	elements := make([]models.Element, 0, len(d.Elements)-1)
	for _, e := range d.Elements {
		if e.ID != elementID {
			elements = append(elements, e)
		}
	}
	d.Elements = elements

	relationships := make([]models.Relationship, 0, len(d.Relationships))
	for _, rel := range d.Relationships {
		if rel.SourceID == elementID || rel.TargetID == elementID {
			continue
		}
		relationships = append(relationships, rel)
	}
	d.Relationships = relationships

	return r.Update(d)
}

// AddRelationship connects two existing elements. Conflict on a duplicate
// relationship ID; InvalidArgument when either endpoint element is absent
// from the diagram. The relationship list is left untouched on failure.
func (r *DiagramRepository) AddRelationship(diagramID string, rel models.Relationship) (models.Diagram, error) {
	d, err := r.getParent(diagramID, "addRelationship")
	if err != nil {
		return models.Diagram{}, err
	}

	if rel.ID == "" {
		return models.Diagram{}, store.NewError(store.KindInvalidArgument, DiagramCollection, diagramID, "addRelationship",
			errors.New("relationship id must not be empty"))
	}
	for _, existing := range d.Relationships {
		if existing.ID == rel.ID {
			return models.Diagram{}, store.NewError(store.KindConflict, DiagramCollection, diagramID, "addRelationship",
				fmt.Errorf("relationship %q already exists", rel.ID))
		}
	}
	if !d.HasElement(rel.SourceID) {
		return models.Diagram{}, store.NewError(store.KindInvalidArgument, DiagramCollection, diagramID, "addRelationship",
			fmt.Errorf("source element %q does not exist", rel.SourceID))
	}
	if !d.HasElement(rel.TargetID) {
		return models.Diagram{}, store.NewError(store.KindInvalidArgument, DiagramCollection, diagramID, "addRelationship",
			fmt.Errorf("target element %q does not exist", rel.TargetID))
	}

	d.Relationships = append(d.Relationships, rel)
	return r.Update(d)
}

// RemoveRelationship deletes a relationship by ID. NotFound when absent.
func (r *DiagramRepository) RemoveRelationship(diagramID, relationshipID string) (models.Diagram, error) {
	d, err := r.getParent(diagramID, "removeRelationship")
	if err != nil {
		return models.Diagram{}, err
	}

	for i, rel := range d.Relationships {
		if rel.ID == relationshipID {
			d.Relationships = append(d.Relationships[:i], d.Relationships[i+1:]...)
			return r.Update(d)
		}
	}

	return models.Diagram{}, store.NewError(store.KindNotFound, DiagramCollection, diagramID, "removeRelationship",
		fmt.Errorf("relationship %q does not exist", relationshipID))
}
