package domain

import (
	"fmt"
	"strings"
)

// A single persisted, user-downloaded route. Immutable once written except
// for full replacement; the device-local store exclusively owns these.
type StoredRouteRecord struct {
	Key           string
	StartLocation string
	EndLocation   string
	Route         RouteAlternative
}

// DeriveRouteKey builds the storage key for a downloaded route from its two
// endpoint texts and the ordinal of the chosen alternative. Deterministic so
// that re-downloading the same endpoints with a different alternative index
// does not overwrite a previous download of a different alternative.
//
// Keys are not guaranteed globally unique after sanitization: two endpoint
// pairs differing only in stripped punctuation collide, and the later Put
// wins. Accepted product risk.
func DeriveRouteKey(startText, endText string, alternativeOrdinal int) string {
	return fmt.Sprintf("%s-%s-ruta%d",
		sanitizeKeyPart(startText),
		sanitizeKeyPart(endText),
		alternativeOrdinal+1,
	)
}

// sanitizeKeyPart collapses whitespace and drops characters that are unsafe
// in a flat file namespace. Keys double as file names.
func sanitizeKeyPart(s string) string {
	s = strings.Join(strings.Fields(s), "_")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate enforces the persisted record invariants. Records failing this
// are treated as corrupt at the store boundary, never trusted as-is.
func (r StoredRouteRecord) Validate() error {
	if strings.TrimSpace(r.StartLocation) == "" {
		return fmt.Errorf("stored route: startLocation must be non-empty")
	}
	if strings.TrimSpace(r.EndLocation) == "" {
		return fmt.Errorf("stored route: endLocation must be non-empty")
	}
	if err := r.Route.Validate(); err != nil {
		return fmt.Errorf("stored route: %w", err)
	}
	return nil
}
