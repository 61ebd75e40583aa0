package utils

import (
	"log"

	"github.com/google/uuid"
)

// NormalizeRef validates an optional uuid-shaped reference field. Empty
// input means "no reference". A malformed value is coerced to null with a
// logged warning instead of failing the request; clients have historically
// sent placeholder ids in these fields and rejecting them would break them.
func NormalizeRef(field, value string) *string {
	if value == "" {
		return nil
	}
	if _, err := uuid.Parse(value); err != nil {
		log.Printf("refs: dropping malformed %s reference %q", field, value)
		return nil
	}
	v := value
	return &v
}

// FilterRefs drops malformed ids from a reference list, preserving the
// order of the survivors.
func FilterRefs(field string, values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, err := uuid.Parse(v); err != nil {
			log.Printf("refs: dropping malformed %s reference %q", field, v)
			continue
		}
		out = append(out, v)
	}
	return out
}
