package geocode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
)

// CachedGeocoder wraps another Geocoder with a persistent cache so repeated
// place names never hit the external service twice. Misses (ErrNotFound)
// are not cached: the user is expected to edit the text and retry.
type CachedGeocoder struct {
	next  ports.Geocoder
	cache ports.GeocodeCache
	log   zerolog.Logger
}

func NewCachedGeocoder(next ports.Geocoder, cache ports.GeocodeCache, log zerolog.Logger) *CachedGeocoder {
	return &CachedGeocoder{next: next, cache: cache, log: log}
}

func (g *CachedGeocoder) Resolve(ctx context.Context, text string) (domain.Coordinate, error) {
	norm := normalize(text)
	if norm == "" {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", text, domain.ErrNotFound)
	}

	if g.cache != nil {
		hits, err := g.cache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.Coordinate{}, fmt.Errorf("geocode cache lookup %q: %w", norm, err)
		}
		if c, ok := hits[norm]; ok {
			return c, nil
		}
	}

	coord, err := g.next.Resolve(ctx, norm)
	if err != nil {
		return domain.Coordinate{}, err
	}

	if g.cache != nil {
		if err := g.cache.PutMany(ctx, map[string]domain.Coordinate{norm: coord}); err != nil {
			// A cache write failure must not fail the resolution itself.
			g.log.Warn().Str("text", norm).Err(err).Msg("geocode cache write failed")
		}
	}

	return coord, nil
}
