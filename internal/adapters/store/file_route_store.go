package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"trail-route-service/internal/domain"
	"trail-route-service/internal/platform/obs"
)

const recordExt = ".json"

// FileRouteStore keeps downloaded routes as one JSON document per key in a
// flat directory. The directory has no transactional guarantees and partial
// writes are expected in the wild (process killed mid-write), so reads
// treat unparseable files as corrupt instead of failing wholesale.
//
// Writes and deletes are serialized per key so the store stays correct on a
// multi-threaded host even though user actions arrive one at a time.
type FileRouteStore struct {
	dir string
	log zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileRouteStore ensures the backing directory exists and returns the
// store. Creation is idempotent and safe on every cold start.
func NewFileRouteStore(dir string, log zerolog.Logger) (*FileRouteStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("route store: dir must be non-empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("route store: create dir %q: %w", dir, err)
	}
	return &FileRouteStore{
		dir:   dir,
		log:   log,
		locks: map[string]*sync.Mutex{},
	}, nil
}

// Wire shape of a persisted record. Field names are load-bearing: existing
// devices already hold documents in this exact layout.
type pathPointJSON struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type routeJSON struct {
	Path     []pathPointJSON `json:"path"`
	Distance float64         `json:"distance"`
	Color    string          `json:"color"`
}

type storedRouteJSON struct {
	StartLocation string    `json:"startLocation"`
	EndLocation   string    `json:"endLocation"`
	Route         routeJSON `json:"route"`
}

func encodeRecord(r domain.StoredRouteRecord) ([]byte, error) {
	doc := storedRouteJSON{
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		Route: routeJSON{
			Path:     make([]pathPointJSON, 0, len(r.Route.Path)),
			Distance: r.Route.DistanceMeters,
			Color:    r.Route.Color,
		},
	}
	for _, p := range r.Route.Path {
		doc.Route.Path = append(doc.Route.Path, pathPointJSON{Latitude: p.Lat, Longitude: p.Lon})
	}
	return json.Marshal(doc)
}

// DecodeRecord parses and validates a stored document. Any failure makes
// the document corrupt; it is never trusted as-is. Exported so offline
// tooling judges documents by the exact rules List applies.
func DecodeRecord(key string, data []byte) (domain.StoredRouteRecord, error) {
	var doc storedRouteJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.StoredRouteRecord{}, fmt.Errorf("%w: key=%q: %v", domain.ErrCorruptRecord, key, err)
	}

	rec := domain.StoredRouteRecord{
		Key:           key,
		StartLocation: doc.StartLocation,
		EndLocation:   doc.EndLocation,
		Route: domain.RouteAlternative{
			Path:           make([]domain.Coordinate, 0, len(doc.Route.Path)),
			DistanceMeters: doc.Route.Distance,
			Color:          doc.Route.Color,
		},
	}
	for _, p := range doc.Route.Path {
		rec.Route.Path = append(rec.Route.Path, domain.Coordinate{Lat: p.Latitude, Lon: p.Longitude})
	}

	if err := rec.Validate(); err != nil {
		return domain.StoredRouteRecord{}, fmt.Errorf("%w: key=%q: %v", domain.ErrCorruptRecord, key, err)
	}

	return rec, nil
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("route store: key must be non-empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("route store: key %q contains path elements", key)
	}
	return nil
}

func (s *FileRouteStore) path(key string) string {
	return filepath.Join(s.dir, key+recordExt)
}

// keyLock returns the mutex serializing mutations of one key.
func (s *FileRouteStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

// Put persists the record under its key, replacing any previous value. The
// document is written to a temp file, flushed, and renamed into place so a
// crash never leaves a half-written record under the final name.
func (s *FileRouteStore) Put(ctx context.Context, record domain.StoredRouteRecord) (err error) {
	defer obs.Time(ctx, "routestore.Put")(&err)

	if err := validKey(record.Key); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriteFailed, err)
	}

	data, err := encodeRecord(record)
	if err != nil {
		return fmt.Errorf("%w: encode key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}

	l := s.keyLock(record.Key)
	l.Lock()
	defer l.Unlock()

	tmp, err := os.CreateTemp(s.dir, record.Key+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}
	// Flush before rename: the record must be visible to the very next List.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: sync key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}

	if err := os.Rename(tmpName, s.path(record.Key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: rename key=%q: %v", domain.ErrWriteFailed, record.Key, err)
	}

	return nil
}

// Get returns the record stored under key.
func (s *FileRouteStore) Get(ctx context.Context, key string) (_ domain.StoredRouteRecord, err error) {
	defer obs.Time(ctx, "routestore.Get")(&err)

	if err := validKey(key); err != nil {
		return domain.StoredRouteRecord{}, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.StoredRouteRecord{}, fmt.Errorf("%w: key=%q", domain.ErrNotFound, key)
		}
		return domain.StoredRouteRecord{}, fmt.Errorf("route store: read key=%q: %w", key, err)
	}

	return DecodeRecord(key, data)
}

// List enumerates every readable record, skipping corrupt entries. A single
// truncated document must never prevent the rest of the catalog from
// loading.
func (s *FileRouteStore) List(ctx context.Context) (_ []domain.StoredRouteRecord, err error) {
	defer obs.Time(ctx, "routestore.List")(&err)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("route store: read dir %q: %w", s.dir, err)
	}

	records := make([]domain.StoredRouteRecord, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), recordExt) {
			continue
		}
		key := strings.TrimSuffix(e.Name(), recordExt)

		data, err := os.ReadFile(filepath.Join(s.dir, e.Name()))
		if err != nil {
			s.log.Warn().Str("key", key).Err(err).Msg("skipping unreadable route record")
			continue
		}

		rec, err := DecodeRecord(key, data)
		if err != nil {
			s.log.Warn().Str("key", key).Err(err).Msg("skipping corrupt route record")
			continue
		}

		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records, nil
}

// Delete removes the record under key. Missing keys report ErrNotFound but
// repeating the call is safe.
func (s *FileRouteStore) Delete(ctx context.Context, key string) (err error) {
	defer obs.Time(ctx, "routestore.Delete")(&err)

	if err := validKey(key); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}

	l := s.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if err := os.Remove(s.path(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: key=%q", domain.ErrNotFound, key)
		}
		return fmt.Errorf("route store: delete key=%q: %w", key, err)
	}

	return nil
}
