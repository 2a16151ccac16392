// C4Engineering - Platform Engineering Catalog and C4 Modelling
// Copyright 2026 chavp
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/chavp/c4engineering

package store

import (
	"errors"
	"fmt"
)

// Kind classifies a store or repository failure. The HTTP boundary maps
// kinds to status codes: NotFound 404, Conflict 409, InvalidArgument 400,
// StorageFailure 500.
type Kind string

const (
	// KindNotFound means an operation referenced an entity ID absent from
	// the collection.
	KindNotFound Kind = "not_found"

	// KindConflict means a create (or nested add) used an ID that already
	// exists.
	KindConflict Kind = "conflict"

	// KindInvalidArgument means an empty ID, unparseable enum value or
	// malformed nested reference.
	KindInvalidArgument Kind = "invalid_argument"

	// KindStorageFailure means an underlying I/O or deserialization failure.
	// Never swallowed, always logged with identifying context.
	KindStorageFailure Kind = "storage_failure"
)

// Error is the typed error every store and repository operation returns.
type Error struct {
	Kind       Kind
	Collection string
	ID         string
	Op         string
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s", e.Collection, e.Op)
	if e.ID != "" {
		msg = fmt.Sprintf("%s %q", msg, e.ID)
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Kind)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed store error.
func NewError(kind Kind, collection, id, op string, err error) *Error {
	return &Error{
		Kind:       kind,
		Collection: collection,
		ID:         id,
		Op:         op,
		Err:        err,
	}
}

// KindOf extracts the error kind; non-store errors report StorageFailure.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindStorageFailure
}

// IsNotFound reports whether err is a NotFound store error.
func IsNotFound(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindNotFound
}

// IsConflict reports whether err is a Conflict store error.
func IsConflict(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindConflict
}

// IsInvalidArgument reports whether err is an InvalidArgument store error.
func IsInvalidArgument(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindInvalidArgument
}

// IsStorageFailure reports whether err is a StorageFailure store error.
func IsStorageFailure(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindStorageFailure
}
