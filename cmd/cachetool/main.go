package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"trail-route-service/internal/adapters/store"
	"trail-route-service/internal/config"
	"trail-route-service/internal/platform/logging"
)

// cachetool inspects the offline route directory without going through the
// server: list stored routes, verify every document, and optionally prune
// the ones that no longer parse.
//
//	cachetool -list
//	cachetool -verify
//	cachetool -verify -prune
func main() {
	_ = godotenv.Load()

	list := flag.Bool("list", false, "list stored routes")
	verify := flag.Bool("verify", false, "report corrupt route documents")
	prune := flag.Bool("prune", false, "with -verify: delete corrupt documents")
	flag.Parse()

	logger := logging.New(config.Get("LOG_LEVEL", "info"))
	routeDir := config.Get("ROUTE_DIR", "data/routes")

	routeStore, err := store.NewFileRouteStore(routeDir, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open route store")
	}

	ctx := context.Background()

	switch {
	case *list:
		records, err := routeStore.List(ctx)
		if err != nil {
			logger.Fatal().Err(err).Msg("list routes")
		}
		for _, r := range records {
			fmt.Printf("%-40s %s -> %s  %.2f km\n",
				r.Key, r.StartLocation, r.EndLocation, r.Route.DistanceMeters/1000)
		}
		fmt.Printf("%d route(s)\n", len(records))

	case *verify:
		corrupt, err := findCorrupt(routeDir)
		if err != nil {
			logger.Fatal().Err(err).Msg("verify routes")
		}
		if len(corrupt) == 0 {
			fmt.Println("all route documents are valid")
			return
		}
		for _, name := range corrupt {
			fmt.Printf("corrupt: %s\n", name)
			if *prune {
				if err := os.Remove(filepath.Join(routeDir, name)); err != nil {
					logger.Error().Str("file", name).Err(err).Msg("prune failed")
					continue
				}
				fmt.Printf("pruned:  %s\n", name)
			}
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// findCorrupt returns the file names under dir that the store would skip
// during List: unreadable, unparseable, or parseable but failing record
// validation. Judging by the store's own decoding keeps the two in lockstep.
func findCorrupt(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %q: %w", dir, err)
	}

	var corrupt []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			corrupt = append(corrupt, e.Name())
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if _, err := store.DecodeRecord(key, data); err != nil {
			corrupt = append(corrupt, e.Name())
		}
	}
	return corrupt, nil
}
