package services

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rs/zerolog/log"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
)

// TrailPathResult carries the drawable point sequence for a known trail.
// Routed is false when the engine could not be used and the path degraded
// to the straight line between the endpoints.
type TrailPathResult struct {
	Path           []domain.Coordinate
	DistanceMeters float64
	Routed         bool
}

// TrailPath fetches the single path for displaying a known trail between
// two fixed points, deriving the profile from the trail-type label. An
// engine failure degrades to a straight endpoint-to-endpoint line instead
// of failing the whole screen.
//
// The single-path engine variant reports no total length, so the distance
// here is the haversine length of whatever path is drawn. It is a display
// hint, not the authoritative figure downloaded routes carry.
func TrailPath(
	ctx context.Context,
	start, end domain.Coordinate,
	trailTypeLabel string,
	provider ports.RouteProvider,
) TrailPathResult {
	profile := domain.ClassifyProfile(trailTypeLabel)

	path, err := provider.FetchSinglePath(ctx, start, end, profile)
	if err != nil {
		log.Warn().Err(err).Str("profile", string(profile)).Msg("trail path degraded to straight line")
		fallback := []domain.Coordinate{start, end}
		return TrailPathResult{
			Path:           fallback,
			DistanceMeters: pathLengthMeters(fallback),
			Routed:         false,
		}
	}

	return TrailPathResult{
		Path:           path,
		DistanceMeters: pathLengthMeters(path),
		Routed:         true,
	}
}

func pathLengthMeters(path []domain.Coordinate) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		a := orb.Point{path[i-1].Lon, path[i-1].Lat}
		b := orb.Point{path[i].Lon, path[i].Lat}
		total += geo.DistanceHaversine(a, b)
	}
	return total
}
