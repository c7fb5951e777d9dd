package services

import (
	"context"
	"fmt"
	"strings"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
)

// PlanRoute resolves both endpoint texts, derives the travel profile from
// the route-type hint and fetches candidate alternatives in one round trip.
//
// Geocoding misses and routing faults come back as the domain sentinels the
// caller must branch on; none of them are retried here, the user retries by
// editing input and re-invoking.
func PlanRoute(
	ctx context.Context,
	query domain.RouteQuery,
	geocoder ports.Geocoder,
	provider ports.RouteProvider,
) ([]domain.RouteAlternative, error) {
	if strings.TrimSpace(query.StartText) == "" {
		return nil, fmt.Errorf("plan route: start %q: %w", query.StartText, domain.ErrNotFound)
	}
	if strings.TrimSpace(query.EndText) == "" {
		return nil, fmt.Errorf("plan route: end %q: %w", query.EndText, domain.ErrNotFound)
	}

	start, err := geocoder.Resolve(ctx, query.StartText)
	if err != nil {
		return nil, fmt.Errorf("plan route: start %q: %w", query.StartText, err)
	}

	end, err := geocoder.Resolve(ctx, query.EndText)
	if err != nil {
		return nil, fmt.Errorf("plan route: end %q: %w", query.EndText, err)
	}

	profile := domain.ClassifyProfile(query.ProfileHint)

	alternatives, err := provider.FetchAlternatives(ctx, start, end, profile, true)
	if err != nil {
		return nil, fmt.Errorf("plan route: %q -> %q: %w", query.StartText, query.EndText, err)
	}

	return alternatives, nil
}

// PlanIntoSession runs PlanRoute for a session, resetting it first and
// applying the result only if no newer query superseded it meanwhile. The
// fetch fully completes (success or failure) before the session is touched
// again; there is no partial delivery.
//
// On ErrNoRouteFound the session is left Empty and the error still reaches
// the caller, whose remedy differs from a service outage.
func PlanIntoSession(
	ctx context.Context,
	sess *Session,
	query domain.RouteQuery,
	geocoder ports.Geocoder,
	provider ports.RouteProvider,
) ([]domain.RouteAlternative, error) {
	fetchID := sess.BeginFetch(query)

	alternatives, planErr := PlanRoute(ctx, query, geocoder, provider)
	if planErr != nil {
		// A failed or empty fetch still completes the transition: the
		// session ends Empty, not stuck on the previous query's result.
		if err := sess.SetAlternatives(fetchID, nil); err != nil {
			return nil, err
		}
		return nil, planErr
	}

	if err := sess.SetAlternatives(fetchID, alternatives); err != nil {
		return nil, err
	}

	return alternatives, nil
}
