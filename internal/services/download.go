package services

import (
	"context"
	"errors"
	"fmt"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
)

// ErrNothingSelected reports a download request with no active pick.
var ErrNothingSelected = errors.New("no route alternative selected")

// DownloadSelected freezes the session's picked alternative into a stored
// record and persists it. The key is derived from the endpoint texts and
// the pick's ordinal, so downloading a different alternative for the same
// endpoints lands under a different key.
//
// The returned record is exactly what a later Get yields; the persisted
// shape does not carry the travel profile, so it is dropped here.
func DownloadSelected(
	ctx context.Context,
	sess *Session,
	routeStore ports.RouteStore,
) (domain.StoredRouteRecord, error) {
	pick, ok := sess.SelectedPick()
	if !ok {
		return domain.StoredRouteRecord{}, fmt.Errorf("download route: %w", ErrNothingSelected)
	}

	route := pick.Alternative
	route.Profile = ""

	record := domain.StoredRouteRecord{
		Key:           domain.DeriveRouteKey(pick.StartText, pick.EndText, pick.Index),
		StartLocation: pick.StartText,
		EndLocation:   pick.EndText,
		Route:         route,
	}

	if err := routeStore.Put(ctx, record); err != nil {
		return domain.StoredRouteRecord{}, fmt.Errorf("download route: key=%q: %w", record.Key, err)
	}

	return record, nil
}
