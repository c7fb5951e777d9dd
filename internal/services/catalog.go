package services

import (
	"context"
	"fmt"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
)

// ListCatalog projects every stored route into its display entry. No
// caching of its own: always recomputed from the store so a delete is
// visible to the very next listing.
func ListCatalog(ctx context.Context, routeStore ports.RouteStore) ([]domain.CatalogEntry, error) {
	records, err := routeStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	entries := make([]domain.CatalogEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, domain.NewCatalogEntry(r))
	}
	return entries, nil
}
