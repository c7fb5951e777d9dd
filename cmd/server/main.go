package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"trail-route-service/internal/adapters/cache"
	"trail-route-service/internal/adapters/geocode"
	"trail-route-service/internal/adapters/routing"
	"trail-route-service/internal/adapters/store"
	"trail-route-service/internal/api"
	"trail-route-service/internal/config"
	"trail-route-service/internal/platform/db"
	"trail-route-service/internal/platform/logging"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, OSRM, file store, SQLite cache)
// behind ports and starts the HTTP server.
func main() {
	// No .env file is fine: configuration then comes from the environment.
	_ = godotenv.Load()

	logger := logging.New(config.Get("LOG_LEVEL", "info"))

	port := config.Get("PORT", "8080")
	routeDir := config.Get("ROUTE_DIR", "data/routes")
	cachePath := config.Get("GEOCODE_CACHE_PATH", "data/geocode.db")
	nominatimURL := config.Get("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	osrmURL := config.Get("OSRM_URL", "https://router.project-osrm.org")
	userAgent := config.Get("GEOCODER_USER_AGENT", "trail-route-service/1.0")

	cacheDB, err := db.Open(cachePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open geocode cache db")
	}
	defer cacheDB.Close()

	if err := cache.InitSchema(cacheDB); err != nil {
		logger.Fatal().Err(err).Msg("init geocode cache schema")
	}

	// Geocoding goes through a persistent SQLite cache so repeated place
	// names never hit the external service twice.
	geocoder := geocode.NewCachedGeocoder(
		geocode.NewNominatimGeocoder(nominatimURL, userAgent),
		cache.NewSqliteGeocodeCache(cacheDB),
		logger,
	)

	provider := routing.NewOSRMRouteProvider(osrmURL)

	routeStore, err := store.NewFileRouteStore(routeDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open route store")
	}

	router := api.NewRouter(geocoder, provider, routeStore)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	logger.Info().Str("addr", ":"+port).Str("route_dir", routeDir).Msg("server listening")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	logger.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
