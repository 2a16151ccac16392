// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := NewError(KindNotFound, "services", "svc-a", "update", nil)

	msg := err.Error()
	for _, want := range []string{"services", "update", `"svc-a"`, "not_found"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message: %s", want, msg)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := NewError(KindStorageFailure, "services", "", "write", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		pred func(error) bool
	}{
		{KindNotFound, IsNotFound},
		{KindConflict, IsConflict},
		{KindInvalidArgument, IsInvalidArgument},
		{KindStorageFailure, IsStorageFailure},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			err := NewError(tt.kind, "c", "id", "op", nil)
			if !tt.pred(err) {
				t.Errorf("predicate for %s did not match its own kind", tt.kind)
			}

			// wrapped errors still match
			wrapped := fmt.Errorf("context: %w", err)
			if !tt.pred(wrapped) {
				t.Errorf("predicate for %s did not match wrapped error", tt.kind)
			}

			for _, other := range tests {
				if other.kind == tt.kind {
					continue
				}
				if other.pred(err) {
					t.Errorf("predicate for %s matched %s", other.kind, tt.kind)
				}
			}
		})
	}
}

func TestPredicates_NonStoreError(t *testing.T) {
	t.Parallel()

	err := errors.New("plain")
	if IsNotFound(err) || IsConflict(err) || IsInvalidArgument(err) || IsStorageFailure(err) {
		t.Error("predicates must not match plain errors")
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(NewError(KindConflict, "c", "id", "op", nil)); got != KindConflict {
		t.Errorf("expected conflict, got %s", got)
	}
	if got := KindOf(errors.New("plain")); got != KindStorageFailure {
		t.Errorf("expected plain errors to map to storage failure, got %s", got)
	}
}
