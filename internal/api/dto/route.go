package dto

type PlanRouteRequest struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	RouteType string `json:"route_type"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AlternativeResponse struct {
	Path           []CoordinateResponse `json:"path"`
	DistanceMeters float64              `json:"distance_meters"`
	Color          string               `json:"color"`
	Profile        string               `json:"profile"`
}

type PlanRouteResponse struct {
	Alternatives []AlternativeResponse `json:"alternatives"`
}

type DownloadRouteRequest struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	RouteType   string `json:"route_type"`
	Alternative int    `json:"alternative"`
}

type DownloadRouteResponse struct {
	Key           string `json:"key"`
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	DistanceKm    string `json:"distance_km"`
}

type CatalogEntryResponse struct {
	Key           string `json:"key"`
	StartLocation string `json:"start_location"`
	EndLocation   string `json:"end_location"`
	DistanceKm    string `json:"distance_km"`
}

type CatalogResponse struct {
	Routes []CatalogEntryResponse `json:"routes"`
}

type RouteRecordResponse struct {
	Key           string               `json:"key"`
	StartLocation string               `json:"start_location"`
	EndLocation   string               `json:"end_location"`
	DistanceKm    string               `json:"distance_km"`
	Path          []CoordinateResponse `json:"path"`
	Color         string               `json:"color"`
}

type TrailPathRequest struct {
	StartLat  float64 `json:"start_lat"`
	StartLon  float64 `json:"start_lon"`
	EndLat    float64 `json:"end_lat"`
	EndLon    float64 `json:"end_lon"`
	TrailType string  `json:"trail_type"`
}

type TrailPathResponse struct {
	Path           []CoordinateResponse `json:"path"`
	DistanceMeters float64              `json:"distance_meters"`
	Routed         bool                 `json:"routed"`
}
