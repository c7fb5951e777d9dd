package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/platform/obs"
)

// OSRMRouteProvider fetches candidate paths from an OSRM instance
// (/route/v1). One HTTP round trip per fetch; alternatives are requested
// through the alternatives query flag, never as separate calls.
//
// The provider is safe for concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message,omitempty"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	// Either an encoded polyline string or a GeoJSON LineString object,
	// depending on the geometries parameter the server honored.
	Geometry json.RawMessage `json:"geometry"`
	Distance float64         `json:"distance"`
	Duration float64         `json:"duration"`
}

func osrmProfile(p domain.Profile) string {
	switch p {
	case domain.ProfileWalking:
		return "walking"
	case domain.ProfileCycling:
		return "cycling"
	default:
		return "driving"
	}
}

// FetchAlternatives requests candidate routes between two coordinates.
// Distances are taken verbatim from the engine; each alternative gets a
// freshly drawn display color.
func (o *OSRMRouteProvider) FetchAlternatives(ctx context.Context, start, end domain.Coordinate, profile domain.Profile, wantAlternatives bool) (_ []domain.RouteAlternative, err error) {
	defer obs.Time(ctx, "osrm.FetchAlternatives")(&err)

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("fetch alternatives: start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("fetch alternatives: end: %w", err)
	}

	routes, err := o.query(ctx, start, end, profile, wantAlternatives)
	if err != nil {
		return nil, err
	}

	picker := newColorPicker()
	alternatives := make([]domain.RouteAlternative, 0, len(routes))
	for i, r := range routes {
		path, err := decodeGeometry(r.Geometry)
		if err != nil {
			return nil, fmt.Errorf("fetch alternatives: route %d: %w: %v", i, domain.ErrRoutingUnavailable, err)
		}

		alternatives = append(alternatives, domain.RouteAlternative{
			Path:           path,
			DistanceMeters: r.Distance,
			Color:          picker.next(),
			Profile:        profile,
		})
	}

	return alternatives, nil
}

// FetchSinglePath returns the point sequence of the best route only.
func (o *OSRMRouteProvider) FetchSinglePath(ctx context.Context, start, end domain.Coordinate, profile domain.Profile) (_ []domain.Coordinate, err error) {
	defer obs.Time(ctx, "osrm.FetchSinglePath")(&err)

	routes, err := o.query(ctx, start, end, profile, false)
	if err != nil {
		return nil, err
	}

	path, err := decodeGeometry(routes[0].Geometry)
	if err != nil {
		return nil, fmt.Errorf("fetch single path: %w: %v", domain.ErrRoutingUnavailable, err)
	}

	return path, nil
}

// query performs the round trip and maps engine outcomes onto the domain
// error taxonomy. A non-empty route list is guaranteed on nil error.
func (o *OSRMRouteProvider) query(ctx context.Context, start, end domain.Coordinate, profile domain.Profile, wantAlternatives bool) ([]osrmRoute, error) {
	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "polyline")
	params.Set("alternatives", fmt.Sprintf("%t", wantAlternatives))

	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?%s",
		o.baseURL, osrmProfile(profile),
		start.Lon, start.Lat, end.Lon, end.Lat,
		params.Encode(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("route query: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route query: %w: %v", domain.ErrRoutingUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("route query: %w: status %d", domain.ErrRoutingUnavailable, resp.StatusCode)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("route query: %w: decode response: %v", domain.ErrRoutingUnavailable, err)
	}

	switch decoded.Code {
	case "Ok":
		// fallthrough to the route list check
	case "NoRoute", "NoSegment":
		return nil, fmt.Errorf("route query: %w", domain.ErrNoRouteFound)
	default:
		return nil, fmt.Errorf("route query: %w: code=%s message=%s", domain.ErrRoutingUnavailable, decoded.Code, decoded.Message)
	}

	if len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("route query: %w", domain.ErrNoRouteFound)
	}

	return decoded.Routes, nil
}
