// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package validation

import (
	"strings"
	"testing"
)

type createServiceRequest struct {
	Name        string `validate:"required,min=1,max=100"`
	Type        string `validate:"required,oneof=frontend backend api database library infrastructure"`
	Description string `validate:"max=500"`
	Repository  string `validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{
		Name:       "payment-api",
		Type:       "backend",
		Repository: "https://example.com/payment-api.git",
	}

	if err := ValidateStruct(&req); err != nil {
		t.Errorf("expected valid struct, got: %v", err)
	}
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{Type: "backend"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Name is required") {
		t.Errorf("expected required message, got: %v", err)
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{Name: "x", Type: "mainframe"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("expected oneof message, got: %v", err)
	}
}

func TestValidateStruct_MaxString(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{
		Name: strings.Repeat("a", 101),
		Type: "api",
	}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "at most 100 characters") {
		t.Errorf("expected max length message, got: %v", err)
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{Name: "x"}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("expected VALIDATION_ERROR code, got %q", apiErr.Code)
	}
	if apiErr.Details["field"] != "Type" {
		t.Errorf("expected field detail 'Type', got %v", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	t.Parallel()

	req := createServiceRequest{}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("expected fields detail, got %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(fields))
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("expected the same validator instance")
	}
}
