package domain

import "errors"

// Failure taxonomy shared across the engine. Callers branch with errors.Is;
// each class maps to a different user-facing remedy.
var (
	// A geocoding or store lookup found nothing. Recoverable: retry with
	// different input.
	ErrNotFound = errors.New("not found")

	// The routing engine could not be reached or answered with a fault.
	// Recoverable: retry later.
	ErrRoutingUnavailable = errors.New("routing service unavailable")

	// The routing engine answered but found no path between the endpoints.
	// Recoverable: change endpoints.
	ErrNoRouteFound = errors.New("no route found")

	// A store write failed (disk full, permissions). Surfaced to the caller,
	// never retried automatically.
	ErrWriteFailed = errors.New("route store write failed")

	// A persisted record failed to deserialize or validate. Skipped during
	// listing, fatal only for direct reads of that key.
	ErrCorruptRecord = errors.New("corrupt route record")
)
