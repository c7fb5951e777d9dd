package routing

import (
	"encoding/json"
	"fmt"

	"github.com/twpayne/go-polyline"

	"trail-route-service/internal/domain"
)

type geoJSONLineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// decodeGeometry normalizes a routing-engine geometry into an ordered point
// sequence. Engines deliver either an encoded polyline string or a GeoJSON
// LineString ([lon, lat] pairs); both collapse into the same shape here so
// nothing downstream cares which wire format was used.
func decodeGeometry(raw json.RawMessage) ([]domain.Coordinate, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("decode geometry: empty geometry")
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("decode geometry: unmarshal polyline: %w", err)
		}
		coords, _, err := polyline.DecodeCoords([]byte(encoded))
		if err != nil {
			return nil, fmt.Errorf("decode geometry: decode polyline: %w", err)
		}
		path := make([]domain.Coordinate, 0, len(coords))
		for _, c := range coords {
			path = append(path, domain.Coordinate{Lat: c[0], Lon: c[1]})
		}
		return validatePath(path)
	}

	var line geoJSONLineString
	if err := json.Unmarshal(raw, &line); err != nil {
		return nil, fmt.Errorf("decode geometry: unmarshal geojson: %w", err)
	}
	path := make([]domain.Coordinate, 0, len(line.Coordinates))
	for i, pair := range line.Coordinates {
		if len(pair) != 2 {
			return nil, fmt.Errorf("decode geometry: geojson point %d has %d components", i, len(pair))
		}
		path = append(path, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}
	return validatePath(path)
}

func validatePath(path []domain.Coordinate) ([]domain.Coordinate, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("decode geometry: path has %d points, need at least 2", len(path))
	}
	for i, p := range path {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("decode geometry: point %d: %w", i, err)
		}
	}
	return path, nil
}
