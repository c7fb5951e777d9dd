package handlers

import (
	"net/http"

	"trail-route-service/internal/api/dto"
	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
	"trail-route-service/internal/services"
)

// TrailHandler serves the drawable path of a known trail between two fixed
// coordinates.
type TrailHandler struct {
	Provider ports.RouteProvider
}

// Path never fails on engine trouble: the response degrades to the straight
// line between the endpoints with routed=false.
func (h *TrailHandler) Path(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TrailPathRequest
	if !decodeBody(w, r, &req) {
		return
	}

	start := domain.Coordinate{Lat: req.StartLat, Lon: req.StartLon}
	end := domain.Coordinate{Lat: req.EndLat, Lon: req.EndLon}
	if err := start.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid start coordinate")
		return
	}
	if err := end.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid end coordinate")
		return
	}

	result := services.TrailPath(r.Context(), start, end, req.TrailType, h.Provider)

	writeJSON(w, r, http.StatusOK, dto.TrailPathResponse{
		Path:           toCoordinateResponses(result.Path),
		DistanceMeters: result.DistanceMeters,
		Routed:         result.Routed,
	})
}
