package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/platform/obs"
)

// NominatimGeocoder resolves free-text place names using a Nominatim
// instance (/search). Only the first match is used; ambiguity is the user's
// problem, not ours.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewNominatimGeocoder(baseURL, userAgent string) *NominatimGeocoder {
	return &NominatimGeocoder{
		session:   &http.Client{Timeout: 10 * time.Second},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// normalize ensures consistent lookups by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve maps a place name to its first geocoding match. Empty or blank
// input short-circuits to domain.ErrNotFound without contacting the service.
func (g *NominatimGeocoder) Resolve(ctx context.Context, text string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "nominatim.Resolve")(&err)

	norm := normalize(text)
	if norm == "" {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", text, domain.ErrNotFound)
	}

	params := url.Values{}
	params.Set("q", norm)
	params.Set("format", "json")
	params.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: create request: %w", norm, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: execute request: %w", norm, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: unexpected status: %d", norm, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: decode response: %w", norm, err)
	}

	if len(results) == 0 {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", norm, domain.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: parse latitude: %w", norm, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: parse longitude: %w", norm, err)
	}

	coord := domain.Coordinate{Lat: lat, Lon: lon}
	if err := coord.Validate(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("resolve %q: %w", norm, err)
	}

	return coord, nil
}
