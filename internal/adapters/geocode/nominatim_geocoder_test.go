package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trail-route-service/internal/domain"
)

func nominatimServer(t *testing.T, body string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	return srv, &calls
}

func TestResolveFirstMatch(t *testing.T) {
	srv, calls := nominatimServer(t, `[
		{"lat":"43.8563","lon":"18.4131"},
		{"lat":"0","lon":"0"}
	]`)
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent")
	coord, err := g.Resolve(context.Background(), "  Sarajevo  ")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 43.8563, Lon: 18.4131}, coord)
	assert.Equal(t, 1, *calls)
}

func TestResolveNoMatches(t *testing.T) {
	srv, _ := nominatimServer(t, `[]`)
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent")
	_, err := g.Resolve(context.Background(), "Atlantida")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveEmptyInputSkipsNetwork(t *testing.T) {
	srv, calls := nominatimServer(t, `[]`)
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent")
	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := g.Resolve(context.Background(), text)
		require.ErrorIs(t, err, domain.ErrNotFound)
	}
	assert.Equal(t, 0, *calls, "blank input must not contact the service")
}

func TestResolveServiceFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent")
	_, err := g.Resolve(context.Background(), "Sarajevo")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveBogusCoordinates(t *testing.T) {
	srv, _ := nominatimServer(t, `[{"lat":"999","lon":"18.4"}]`)
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "test-agent")
	_, err := g.Resolve(context.Background(), "Sarajevo")
	require.Error(t, err)
}
