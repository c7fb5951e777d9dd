package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-route-service/internal/domain"
)

type memoryGeocodeCache struct {
	entries  map[string]domain.Coordinate
	putErr   error
	getCalls int
	putCalls int
}

func newMemoryGeocodeCache() *memoryGeocodeCache {
	return &memoryGeocodeCache{entries: map[string]domain.Coordinate{}}
}

func (c *memoryGeocodeCache) GetMany(_ context.Context, places []string) (map[string]domain.Coordinate, error) {
	c.getCalls++
	out := map[string]domain.Coordinate{}
	for _, p := range places {
		if coord, ok := c.entries[p]; ok {
			out[p] = coord
		}
	}
	return out, nil
}

func (c *memoryGeocodeCache) PutMany(_ context.Context, entries map[string]domain.Coordinate) error {
	c.putCalls++
	if c.putErr != nil {
		return c.putErr
	}
	for p, coord := range entries {
		c.entries[p] = coord
	}
	return nil
}

func TestCachedResolveHitSkipsNext(t *testing.T) {
	next := NewMockGeocoder(map[string]domain.Coordinate{
		"Sarajevo": {Lat: 43.8563, Lon: 18.4131},
	})
	cache := newMemoryGeocodeCache()
	g := NewCachedGeocoder(next, cache, zerolog.Nop())

	first, err := g.Resolve(context.Background(), "Sarajevo")
	require.NoError(t, err)
	second, err := g.Resolve(context.Background(), " Sarajevo ")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.Calls, "second lookup must be served from the cache")
	assert.Equal(t, 1, cache.putCalls)
}

func TestCachedResolveMissNotCached(t *testing.T) {
	next := NewMockGeocoder(map[string]domain.Coordinate{})
	cache := newMemoryGeocodeCache()
	g := NewCachedGeocoder(next, cache, zerolog.Nop())

	_, err := g.Resolve(context.Background(), "Atlantida")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = g.Resolve(context.Background(), "Atlantida")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 2, next.Calls, "failed lookups must not be cached")
	assert.Equal(t, 0, cache.putCalls)
}

func TestCachedResolveWriteFailureNonFatal(t *testing.T) {
	next := NewMockGeocoder(map[string]domain.Coordinate{
		"Maglaj": {Lat: 44.5464, Lon: 18.0977},
	})
	cache := newMemoryGeocodeCache()
	cache.putErr = errors.New("disk full")
	g := NewCachedGeocoder(next, cache, zerolog.Nop())

	coord, err := g.Resolve(context.Background(), "Maglaj")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 44.5464, Lon: 18.0977}, coord)
}

func TestCachedResolveBlankInput(t *testing.T) {
	next := NewMockGeocoder(map[string]domain.Coordinate{})
	cache := newMemoryGeocodeCache()
	g := NewCachedGeocoder(next, cache, zerolog.Nop())

	_, err := g.Resolve(context.Background(), "   ")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, cache.getCalls)
	assert.Equal(t, 0, next.Calls)
}
