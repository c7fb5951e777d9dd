package ports

import (
	"context"

	"trail-route-service/internal/domain"
)

// Persistent cache of place-name -> coordinate resolutions. Keys are
// expected to be normalized by the caller.
type GeocodeCache interface {
	GetMany(ctx context.Context, texts []string) (map[string]domain.Coordinate, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinate) error
}
