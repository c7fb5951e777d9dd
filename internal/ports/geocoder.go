package ports

import (
	"context"

	"trail-route-service/internal/domain"
)

// Contract for resolving a free-text place name to coordinates.
//
// Resolve returns domain.ErrNotFound when the service has no match for the
// text, including empty input. Geocoding misses are semantic, not transient:
// no automatic retries, the caller re-invokes after the user edits the text.
type Geocoder interface {
	Resolve(ctx context.Context, text string) (domain.Coordinate, error)
}
