package routing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestDecodeGeometryPolyline(t *testing.T) {
	encoded := polyline.EncodeCoords(testCoords)
	raw, err := json.Marshal(string(encoded))
	require.NoError(t, err)

	path, err := decodeGeometry(raw)
	require.NoError(t, err)
	require.Len(t, path, len(testCoords))
	assert.InDelta(t, testCoords[1][0], path[1].Lat, 1e-4)
	assert.InDelta(t, testCoords[1][1], path[1].Lon, 1e-4)
}

func TestDecodeGeometryGeoJSON(t *testing.T) {
	raw := json.RawMessage(`{"type":"LineString","coordinates":[[18.4131,43.8563],[18.1,44.55]]}`)

	path, err := decodeGeometry(raw)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, 43.8563, path[0].Lat)
	assert.Equal(t, 18.4131, path[0].Lon)
}

func TestDecodeGeometryTooShort(t *testing.T) {
	raw := json.RawMessage(`{"type":"LineString","coordinates":[[18.4131,43.8563]]}`)
	_, err := decodeGeometry(raw)
	require.Error(t, err)
}

func TestDecodeGeometryMalformed(t *testing.T) {
	for _, raw := range []string{``, `"%%%not-a-polyline`, `{"coordinates":[[1]]}`} {
		_, err := decodeGeometry(json.RawMessage(raw))
		assert.Error(t, err, "input %q", raw)
	}
}

func TestColorPickerDistinctWithinFetch(t *testing.T) {
	p := newColorPicker()
	seen := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		c := p.next()
		assert.Regexp(t, `^#[0-9a-f]{6}$`, c)
		seen[c] = struct{}{}
	}
	// 5 draws out of 16.7M colors with redraw-on-collision: all distinct
	assert.Len(t, seen, 5)
}
