package geocode

import (
	"context"
	"fmt"

	"trail-route-service/internal/domain"
)

// MockGeocoder serves a fixed place-name table for tests.
type MockGeocoder struct {
	m     map[string]domain.Coordinate
	Calls int
}

func NewMockGeocoder(places map[string]domain.Coordinate) *MockGeocoder {
	m := make(map[string]domain.Coordinate, len(places))
	for k, v := range places {
		m[normalize(k)] = v
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) Resolve(ctx context.Context, text string) (domain.Coordinate, error) {
	g.Calls++
	norm := normalize(text)
	if norm == "" {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", text, domain.ErrNotFound)
	}
	c, ok := g.m[norm]
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", norm, domain.ErrNotFound)
	}
	return c, nil
}
