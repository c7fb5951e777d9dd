package ports

import (
	"context"

	"trail-route-service/internal/domain"
)

// Port: durable, key-addressable storage of downloaded routes.
//
// All operations are fallible and report "not found" distinctly from other
// failures. Implementations must tolerate corrupt entries during List and
// serialize writes per key.
type RouteStore interface {
	// Put persists the record under its key, replacing any previous value.
	// Write faults surface as domain.ErrWriteFailed.
	Put(ctx context.Context, record domain.StoredRouteRecord) error

	// Get returns the record stored under key, domain.ErrNotFound when the
	// key is absent, domain.ErrCorruptRecord when present but unreadable.
	Get(ctx context.Context, key string) (domain.StoredRouteRecord, error)

	// List enumerates every readable record. Entries that fail to parse are
	// skipped and logged, never fatal to the listing.
	List(ctx context.Context) ([]domain.StoredRouteRecord, error)

	// Delete removes the record under key. Deleting a missing key returns
	// domain.ErrNotFound but is safe to repeat.
	Delete(ctx context.Context, key string) error
}
