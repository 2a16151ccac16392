// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package models

import "strings"

// DiagramType is the C4 abstraction level a diagram is drawn at.
type DiagramType string

const (
	DiagramTypeSystemContext DiagramType = "systemContext"
	DiagramTypeContainer     DiagramType = "container"
	DiagramTypeComponent     DiagramType = "component"
	DiagramTypeDeployment    DiagramType = "deployment"
)

// ValidDiagramTypes contains all valid diagram types.
var ValidDiagramTypes = []DiagramType{
	DiagramTypeSystemContext,
	DiagramTypeContainer,
	DiagramTypeComponent,
	DiagramTypeDeployment,
}

// IsValidDiagramType checks if a diagram type is valid.
func IsValidDiagramType(t DiagramType) bool {
	for _, valid := range ValidDiagramTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseDiagramType parses a diagram type string, matching case-insensitively.
func ParseDiagramType(s string) (DiagramType, bool) {
	for _, valid := range ValidDiagramTypes {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// ElementType is the C4 element kind placed on a diagram.
type ElementType string

const (
	ElementTypePerson    ElementType = "person"
	ElementTypeSystem    ElementType = "system"
	ElementTypeContainer ElementType = "container"
	ElementTypeComponent ElementType = "component"
)

// ValidElementTypes contains all valid element types.
var ValidElementTypes = []ElementType{
	ElementTypePerson,
	ElementTypeSystem,
	ElementTypeContainer,
	ElementTypeComponent,
}

// IsValidElementType checks if an element type is valid.
func IsValidElementType(t ElementType) bool {
	for _, valid := range ValidElementTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseElementType parses an element type string, matching case-insensitively.
func ParseElementType(s string) (ElementType, bool) {
	for _, valid := range ValidElementTypes {
		if strings.EqualFold(s, string(valid)) {
			return valid, true
		}
	}
	return "", false
}

// Position is the canvas placement of an element.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Element is one box (or person) on a C4 diagram. ServiceID optionally links
// the element back to a catalog service.
type Element struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ElementType `json:"type"`
	Description string      `json:"description,omitempty"`
	Technology  string      `json:"technology,omitempty"`
	ServiceID   string      `json:"serviceId,omitempty"`
	Position    Position    `json:"position"`
}

// Relationship is a directed edge between two elements of the same diagram.
type Relationship struct {
	ID          string `json:"id"`
	SourceID    string `json:"sourceId"`
	TargetID    string `json:"targetId"`
	Description string `json:"description,omitempty"`
	Technology  string `json:"technology,omitempty"`
}

// Diagram is a C4 architecture diagram: elements plus relationships between
// them. Relationships may only reference element IDs present in the same
// diagram; removing an element cascades to every relationship touching it.
type Diagram struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Type          DiagramType    `json:"type"`
	ProjectID     string         `json:"projectId,omitempty"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
	Metadata      EntityMetadata `json:"metadata"`
}

// EntityID returns the unique identifier.
func (d Diagram) EntityID() string { return d.ID }

// Meta returns the audit metadata block.
func (d Diagram) Meta() EntityMetadata { return d.Metadata }

// WithMeta returns a copy with the metadata block replaced.
func (d Diagram) WithMeta(m EntityMetadata) Diagram {
	d.Metadata = m
	return d
}

// HasElement reports whether an element with the given ID exists.
func (d Diagram) HasElement(id string) bool {
	for _, e := range d.Elements {
		if e.ID == id {
			return true
		}
	}
	return false
}

// CreateDiagramRequest is the payload for creating a diagram.
type CreateDiagramRequest struct {
	ID          string `json:"id" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Type        string `json:"type" validate:"required"`
	ProjectID   string `json:"projectId" validate:"max=100"`
	CreatedBy   string `json:"createdBy" validate:"max=100"`
}

// UpdateDiagramRequest is the merge-partial payload for updating a diagram.
type UpdateDiagramRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Type        *string `json:"type"`
	ProjectID   *string `json:"projectId" validate:"omitempty,max=100"`
}

// AddElementRequest is the payload for placing an element on a diagram.
type AddElementRequest struct {
	ID          string   `json:"id" validate:"required,min=1,max=100"`
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Type        string   `json:"type" validate:"required"`
	Description string   `json:"description" validate:"max=1000"`
	Technology  string   `json:"technology" validate:"max=200"`
	ServiceID   string   `json:"serviceId" validate:"max=100"`
	Position    Position `json:"position"`
}

// UpdateElementRequest is the merge-partial payload for an element.
type UpdateElementRequest struct {
	Name        *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string   `json:"description" validate:"omitempty,max=1000"`
	Technology  *string   `json:"technology" validate:"omitempty,max=200"`
	ServiceID   *string   `json:"serviceId" validate:"omitempty,max=100"`
	Position    *Position `json:"position"`
}

// AddRelationshipRequest is the payload for connecting two elements.
type AddRelationshipRequest struct {
	ID          string `json:"id" validate:"required,min=1,max=100"`
	SourceID    string `json:"sourceId" validate:"required,min=1,max=100"`
	TargetID    string `json:"targetId" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Technology  string `json:"technology" validate:"max=200"`
}
