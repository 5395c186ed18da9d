package storage

import "errors"

var (
	// ErrNotFound marks the absence of a matching document, as opposed to
	// a failure reaching the store.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidResult marks a FindAll destination that is not a pointer
	// to a slice.
	ErrInvalidResult = errors.New("result must be a pointer to a slice")
)
