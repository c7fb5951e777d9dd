package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"trail-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Str("method", r.Method).Str("path", r.URL.Path).Err(err).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeDomainError maps the engine's failure taxonomy onto HTTP statuses.
// Each class carries a different user remedy, so they must stay
// distinguishable at the surface too.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "location or route not found")
	case errors.Is(err, domain.ErrNoRouteFound):
		writeError(w, r, http.StatusUnprocessableEntity, "no route between the given endpoints")
	case errors.Is(err, domain.ErrRoutingUnavailable):
		writeError(w, r, http.StatusBadGateway, "routing service unavailable, try again later")
	case errors.Is(err, domain.ErrCorruptRecord):
		writeError(w, r, http.StatusInternalServerError, "stored route is unreadable")
	default:
		log.Error().Str("method", r.Method).Str("path", r.URL.Path).Err(err).Msg("request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
