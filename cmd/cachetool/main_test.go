package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-route-service/internal/adapters/store"
)

func writeDoc(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const validDoc = `{
	"startLocation": "Sarajevo",
	"endLocation": "Maglaj",
	"route": {
		"path": [
			{"latitude": 43.8563, "longitude": 18.4131},
			{"latitude": 44.5500, "longitude": 18.1000}
		],
		"distance": 42000,
		"color": "#336699"
	}
}`

// A document can be valid JSON yet still not a route record (here: a
// single-point path). findCorrupt must flag exactly what List skips.
func TestFindCorruptMatchesListSkips(t *testing.T) {
	dir := t.TempDir()

	writeDoc(t, dir, "Sarajevo-Maglaj-ruta1.json", validDoc)
	writeDoc(t, dir, "broken.json", `{"startLocation": "Sara`)
	writeDoc(t, dir, "thin.json", `{
		"startLocation": "A",
		"endLocation": "B",
		"route": {"path": [{"latitude": 1, "longitude": 2}], "distance": 10, "color": "#fff"}
	}`)
	writeDoc(t, dir, "notes.txt", "not a route document")

	corrupt, err := findCorrupt(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"broken.json", "thin.json"}, corrupt)

	s, err := store.NewFileRouteStore(dir, zerolog.Nop())
	require.NoError(t, err)
	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Sarajevo-Maglaj-ruta1", records[0].Key)
}

func TestFindCorruptEmptyDir(t *testing.T) {
	corrupt, err := findCorrupt(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, corrupt)
}
