package api

import (
	"net/http"

	"trail-route-service/internal/api/handlers"
	"trail-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(geocoder ports.Geocoder, provider ports.RouteProvider, routeStore ports.RouteStore) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{
		Geocoder: geocoder,
		Provider: provider,
		Store:    routeStore,
	}
	trailHandler := &handlers.TrailHandler{Provider: provider}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes/plan", routeHandler.Plan)
	mux.HandleFunc("/routes/download", routeHandler.Download)
	mux.HandleFunc("/routes", routeHandler.Catalog)
	// Subtree pattern: /routes/{key} for single-record read/delete. The
	// exact patterns above take precedence over this one.
	mux.HandleFunc("/routes/", routeHandler.Record)
	mux.HandleFunc("/trails/path", trailHandler.Path)

	return loggingMiddleware(mux)
}
