package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-route-service/internal/domain"
)

func testRecord(key, start, end string, distance float64) domain.StoredRouteRecord {
	return domain.StoredRouteRecord{
		Key:           key,
		StartLocation: start,
		EndLocation:   end,
		Route: domain.RouteAlternative{
			Path: []domain.Coordinate{
				{Lat: 43.8563, Lon: 18.4131},
				{Lat: 44.2000, Lon: 18.2500},
				{Lat: 44.5500, Lon: 18.1000},
			},
			DistanceMeters: distance,
			Color:          "#336699",
		},
	}
}

func newTestStore(t *testing.T) (*FileRouteStore, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewFileRouteStore(dir, zerolog.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestPutGetRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("Sarajevo-Maglaj-ruta1", "Sarajevo", "Maglaj", 42000)
	require.NoError(t, s.Put(ctx, rec))

	got, err := s.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestPutReplacesExisting(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testRecord("k", "A", "B", 1000)))
	require.NoError(t, s.Put(ctx, testRecord("k", "A", "B", 2000)))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, got.Route.DistanceMeters)

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGetMissingKey(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListSkipsCorruptEntries(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := testRecord(fmt.Sprintf("route-%d", i), "A", "B", float64(1000*(i+1)))
		require.NoError(t, s.Put(ctx, rec))
	}

	// a partial write left behind by a killed process
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"startLocation":"A","endLoc`), 0o644))
	// valid JSON, invalid record (single-point path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thin.json"),
		[]byte(`{"startLocation":"A","endLocation":"B","route":{"path":[{"latitude":1,"longitude":2}],"distance":5,"color":"#fff"}}`), 0o644))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.NotEqual(t, "broken", r.Key)
		assert.NotEqual(t, "thin", r.Key)
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	s, dir := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testRecord("k", "A", "B", 1000)))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDeleteIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testRecord("k", "A", "B", 1000)))
	require.NoError(t, s.Delete(ctx, "k"))

	// deleting a missing key reports NotFound, calling it again is safe
	require.ErrorIs(t, s.Delete(ctx, "k"), domain.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, "k"), domain.ErrNotFound)

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListVisibleImmediatelyAfterPut(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testRecord("fresh", "A", "B", 1234)))

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "fresh", records[0].Key)
}

func TestDirCreationIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "routes")
	for i := 0; i < 2; i++ {
		_, err := NewFileRouteStore(dir, zerolog.Nop())
		require.NoError(t, err)
	}
}

func TestRejectsPathElementKeys(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	rec := testRecord("../escape", "A", "B", 1000)
	require.ErrorIs(t, s.Put(ctx, rec), domain.ErrWriteFailed)

	_, err := s.Get(ctx, "a/b")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
