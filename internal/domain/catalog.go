package domain

import "fmt"

// Read-only projection of a StoredRouteRecord for display listings.
// Never persisted; recomputed on every catalog read.
type CatalogEntry struct {
	Key           string
	StartLocation string
	EndLocation   string
	DistanceKm    string
}

// FormatDistanceKm renders a routing-engine distance in kilometers with two
// decimal places, the user-facing figure.
func FormatDistanceKm(meters float64) string {
	return fmt.Sprintf("%.2f", meters/1000)
}

// NewCatalogEntry derives the display projection of a persisted record.
func NewCatalogEntry(r StoredRouteRecord) CatalogEntry {
	return CatalogEntry{
		Key:           r.Key,
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		DistanceKm:    FormatDistanceKm(r.Route.DistanceMeters),
	}
}
