package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, handler http.HandlerFunc) *HTTPEngine {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPEngine(models.EngineConfig{URL: server.URL, TimeoutSeconds: 5}, nil)
}

func TestHTTPEngine_CalculateRoute(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, engineRoutePath, r.URL.Path)

		var req routeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 8.0, req.SpeedMps)
		assert.Equal(t, []models.Coordinate{{Lat: 35.10, Lon: 129.04}, {Lat: 1.29, Lon: 103.85}}, req.Waypoints)

		_, _ = w.Write([]byte(`{
			"success": true,
			"shortest": {"total_distance_km": 4600, "total_time_hours": 160, "total_fuel_kg": 250000,
				"full_path": [{"lat": 35.10, "lon": 129.04}, {"lat": 1.29, "lon": 103.85}]},
			"optimal": {"total_distance_km": 4700, "total_time_hours": 163, "total_fuel_kg": 230000}
		}`))
	})

	result, err := engine.CalculateRoute(context.Background(),
		[]models.Coordinate{{Lat: 35.10, Lon: 129.04}, {Lat: 1.29, Lon: 103.85}}, 8.0)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4600.0, result.Shortest.TotalDistanceKm)
	assert.Len(t, result.Shortest.FullPath, 2)
	assert.Equal(t, 230000.0, result.Optimal.TotalFuelKg)
}

func TestHTTPEngine_CalculateRouteReportedFailure(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error_message": "no sea path found"}`))
	})

	result, err := engine.CalculateRoute(context.Background(), nil, 8)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "no sea path found", result.ErrorMessage)
}

func TestHTTPEngine_CalculateRouteHTTPError(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine crashed", http.StatusInternalServerError)
	})

	_, err := engine.CalculateRoute(context.Background(), nil, 8)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "engine crashed")
}

func TestHTTPEngine_Initialize(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		var req initializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.BathymetryPath == "missing.tif" {
			_, _ = w.Write([]byte(`{"success": false, "error": "bathymetry not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	ctx := context.Background()

	ok, err := engine.Initialize(ctx, "gebco.tif", "coast.shp")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = engine.Initialize(ctx, "missing.tif", "coast.shp")
	assert.False(t, ok)
	assert.EqualError(t, err, "bathymetry not found")
}

func TestHTTPEngine_LoadWeather(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, engineWeatherPath, r.URL.Path)
		var req weatherRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Directory == "" {
			_, _ = w.Write([]byte(`{"success": false}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": true}`))
	})
	ctx := context.Background()

	assert.NoError(t, engine.LoadWeather(ctx, "weather"))
	assert.Error(t, engine.LoadWeather(ctx, ""))
}

func TestHTTPEngine_CheckHealth(t *testing.T) {
	engine := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "engine crashed", http.StatusInternalServerError)
	})

	assert.NoError(t, engine.CheckHealth(context.Background()))

	for i := 0; i < 3; i++ {
		_, err := engine.CalculateRoute(context.Background(), nil, 8)
		require.Error(t, err)
	}

	err := engine.CheckHealth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker")
}
