package routing

import (
	"context"

	"trail-route-service/internal/domain"
)

// MockRouteProvider returns canned alternatives (or a canned error) for
// tests.
type MockRouteProvider struct {
	Alternatives []domain.RouteAlternative
	Err          error
	Calls        int
}

func (p *MockRouteProvider) FetchAlternatives(ctx context.Context, start, end domain.Coordinate, profile domain.Profile, wantAlternatives bool) ([]domain.RouteAlternative, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	out := make([]domain.RouteAlternative, len(p.Alternatives))
	copy(out, p.Alternatives)
	for i := range out {
		out[i].Profile = profile
	}
	return out, nil
}

func (p *MockRouteProvider) FetchSinglePath(ctx context.Context, start, end domain.Coordinate, profile domain.Profile) ([]domain.Coordinate, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	if len(p.Alternatives) == 0 {
		return nil, domain.ErrNoRouteFound
	}
	return p.Alternatives[0].Path, nil
}
