package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-route-service/internal/adapters/routing"
	"trail-route-service/internal/domain"
)

func TestTrailPathRouted(t *testing.T) {
	provider := &routing.MockRouteProvider{Alternatives: twoAlternatives()}

	start := domain.Coordinate{Lat: 43.85, Lon: 18.41}
	end := domain.Coordinate{Lat: 44.55, Lon: 18.10}
	result := TrailPath(context.Background(), start, end, "planinarska staza", provider)

	assert.True(t, result.Routed)
	require.GreaterOrEqual(t, len(result.Path), 2)
	assert.Greater(t, result.DistanceMeters, 0.0)
}

func TestTrailPathDegradesToStraightLine(t *testing.T) {
	provider := &routing.MockRouteProvider{Err: domain.ErrRoutingUnavailable}

	start := domain.Coordinate{Lat: 43.85, Lon: 18.41}
	end := domain.Coordinate{Lat: 44.55, Lon: 18.10}
	result := TrailPath(context.Background(), start, end, "pješačka", provider)

	assert.False(t, result.Routed)
	require.Len(t, result.Path, 2)
	assert.Equal(t, start, result.Path[0])
	assert.Equal(t, end, result.Path[1])
	// roughly 80 km apart, the haversine figure must be in that ballpark
	assert.InDelta(t, 80000, result.DistanceMeters, 20000)
}
