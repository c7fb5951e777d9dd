package domain

import (
	"fmt"
	"strings"
)

// Travel mode passed to the routing engine.
type Profile string

const (
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
	ProfileDriving Profile = "driving"
)

// Route-type labels arrive as free text from historical data ("pješačka
// staza", "biciklistička", ...). Cycling markers are matched before walking
// markers: a label can carry both a generic trail token and a
// cycling-specific one, and cycling must win.
var (
	cyclingMarkers = []string{"bicikl", "bike", "cycl"}
	walkingMarkers = []string{"pješ", "pjes", "staza", "walk", "foot", "planinar"}
)

// ClassifyProfile maps a human-readable route-type label to a routing
// profile. Total over all inputs; anything without a walking or cycling
// marker is treated as driving.
func ClassifyProfile(label string) Profile {
	l := strings.ToLower(label)
	for _, m := range cyclingMarkers {
		if strings.Contains(l, m) {
			return ProfileCycling
		}
	}
	for _, m := range walkingMarkers {
		if strings.Contains(l, m) {
			return ProfileWalking
		}
	}
	return ProfileDriving
}

// One user route request, discarded after resolution.
type RouteQuery struct {
	StartText   string
	EndText     string
	ProfileHint string
}

// One candidate path returned by the routing engine for a given
// start/end/profile. Never mutated after creation; replaced wholesale.
type RouteAlternative struct {
	Path           []Coordinate
	DistanceMeters float64
	Color          string
	Profile        Profile
}

// Validate enforces the alternative invariants: at least two path points,
// all of them valid coordinates, non-negative distance.
func (a RouteAlternative) Validate() error {
	if len(a.Path) < 2 {
		return fmt.Errorf("route alternative: path has %d points, need at least 2", len(a.Path))
	}
	for i, p := range a.Path {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("route alternative: path point %d: %w", i, err)
		}
	}
	if a.DistanceMeters < 0 {
		return fmt.Errorf("route alternative: negative distance %v", a.DistanceMeters)
	}
	return nil
}
