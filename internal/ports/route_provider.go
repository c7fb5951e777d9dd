package ports

import (
	"context"

	"trail-route-service/internal/domain"
)

// Contract for fetching candidate paths from an external routing engine.
type RouteProvider interface {
	// FetchAlternatives issues one request for the endpoint pair and profile.
	// When wantAlternatives is true, multiple candidate geometries are
	// requested in the same round trip, never as N separate calls.
	//
	// Errors: domain.ErrRoutingUnavailable for network/service faults,
	// domain.ErrNoRouteFound for a valid response containing no path. The
	// two differ in user-facing remedy and must stay distinguishable.
	FetchAlternatives(ctx context.Context, start, end domain.Coordinate, profile domain.Profile, wantAlternatives bool) ([]domain.RouteAlternative, error)

	// FetchSinglePath returns just the point sequence of the best route, for
	// drawing a known trail on a map. Same error taxonomy as
	// FetchAlternatives; callers typically degrade instead of failing.
	FetchSinglePath(ctx context.Context, start, end domain.Coordinate, profile domain.Profile) ([]domain.Coordinate, error)
}
