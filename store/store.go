// Package store is the data access layer: one function per entity and
// operation, translating between rows and the API entity shape. Multi-table
// writes run inside one transaction; a failed insert rolls the whole write
// back. Child collections use full-replace semantics on update.
//
// Concurrent updates to the same row are last-write-wins: there is no
// version token and neither writer sees an error.
package store

import (
	"errors"
	"time"
)

// ErrInvalidInput marks errors the API should surface as a 400 rather
// than a 500.
var ErrInvalidInput = errors.New("invalid input")

// parseDate interprets an optional RFC3339 date field where an explicit
// empty string clears the stored value.
func parseDate(value *string) (set bool, t *time.Time, err error) {
	if value == nil {
		return false, nil, nil
	}
	if *value == "" {
		return true, nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return false, nil, ErrInvalidInput
	}
	return true, &parsed, nil
}
