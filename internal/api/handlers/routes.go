package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"trail-route-service/internal/api/dto"
	"trail-route-service/internal/domain"
	"trail-route-service/internal/ports"
	"trail-route-service/internal/services"
)

// RouteHandler exposes the route planning, download and offline catalog
// endpoints.
type RouteHandler struct {
	Geocoder ports.Geocoder
	Provider ports.RouteProvider
	Store    ports.RouteStore
}

// Plan resolves two place names and returns the candidate alternatives for
// the derived profile. Nothing is selected or persisted here.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	query := domain.RouteQuery{StartText: req.Start, EndText: req.End, ProfileHint: req.RouteType}
	alternatives, err := services.PlanRoute(r.Context(), query, h.Geocoder, h.Provider)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.PlanRouteResponse{Alternatives: make([]dto.AlternativeResponse, 0, len(alternatives))}
	for _, a := range alternatives {
		res.Alternatives = append(res.Alternatives, toAlternativeResponse(a))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Download re-plans the query, picks the requested alternative and persists
// it as an offline record. The derived key comes back to the client so the
// record can be addressed later.
func (h *RouteHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.DownloadRouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess := services.NewSession()
	query := domain.RouteQuery{StartText: req.Start, EndText: req.End, ProfileHint: req.RouteType}

	if _, err := services.PlanIntoSession(r.Context(), sess, query, h.Geocoder, h.Provider); err != nil {
		writeDomainError(w, r, err)
		return
	}

	if err := sess.Select(req.Alternative); err != nil {
		writeError(w, r, http.StatusBadRequest, "alternative index out of range")
		return
	}

	record, err := services.DownloadSelected(r.Context(), sess, h.Store)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.DownloadRouteResponse{
		Key:           record.Key,
		StartLocation: record.StartLocation,
		EndLocation:   record.EndLocation,
		DistanceKm:    domain.FormatDistanceKm(record.Route.DistanceMeters),
	})
}

// Catalog lists every stored route with its display metadata.
func (h *RouteHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries, err := services.ListCatalog(r.Context(), h.Store)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.CatalogResponse{Routes: make([]dto.CatalogEntryResponse, 0, len(entries))}
	for _, e := range entries {
		res.Routes = append(res.Routes, dto.CatalogEntryResponse{
			Key:           e.Key,
			StartLocation: e.StartLocation,
			EndLocation:   e.EndLocation,
			DistanceKm:    e.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Record reads or deletes a single stored route by key (/routes/{key}).
func (h *RouteHandler) Record(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/routes/")
	if key == "" || strings.Contains(key, "/") {
		writeError(w, r, http.StatusNotFound, "unknown route key")
		return
	}

	switch r.Method {
	case http.MethodGet:
		record, err := h.Store.Get(r.Context(), key)
		if err != nil {
			writeDomainError(w, r, err)
			return
		}

		res := dto.RouteRecordResponse{
			Key:           record.Key,
			StartLocation: record.StartLocation,
			EndLocation:   record.EndLocation,
			DistanceKm:    domain.FormatDistanceKm(record.Route.DistanceMeters),
			Path:          toCoordinateResponses(record.Route.Path),
			Color:         record.Route.Color,
		}
		writeJSON(w, r, http.StatusOK, res)

	case http.MethodDelete:
		if err := h.Store.Delete(r.Context(), key); err != nil {
			writeDomainError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", "GET, DELETE")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// decodeBody parses a single-object JSON body, rejecting unknown fields and
// trailing content.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func toAlternativeResponse(a domain.RouteAlternative) dto.AlternativeResponse {
	return dto.AlternativeResponse{
		Path:           toCoordinateResponses(a.Path),
		DistanceMeters: a.DistanceMeters,
		Color:          a.Color,
		Profile:        string(a.Profile),
	}
}

func toCoordinateResponses(path []domain.Coordinate) []dto.CoordinateResponse {
	out := make([]dto.CoordinateResponse, 0, len(path))
	for _, p := range path {
		out = append(out, dto.CoordinateResponse{Latitude: p.Lat, Longitude: p.Lon})
	}
	return out
}
