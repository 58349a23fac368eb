package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Taeppir/Link/internal/pkg/circuitbreaker"
	httpclient "github.com/Taeppir/Link/internal/pkg/http"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/internal/pkg/retry"
)

// Routing engine endpoints
const (
	engineInitializePath = "/initialize"
	engineWeatherPath    = "/weather"
	engineRoutePath      = "/route"
)

type initializeRequest struct {
	BathymetryPath string `json:"bathymetry_path"`
	CoastlinePath  string `json:"coastline_path"`
}

type weatherRequest struct {
	Directory string `json:"directory"`
}

type engineStatus struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type routeRequest struct {
	Waypoints []models.Coordinate `json:"waypoints"`
	SpeedMps  float64             `json:"speed_mps"`
}

// HTTPEngine talks to the routing engine over HTTP
type HTTPEngine struct {
	client *httpclient.EnhancedClient
}

// NewHTTPEngine creates a routing engine client. Route searches may run for
// minutes, so only connection failures are retried.
func NewHTTPEngine(cfg models.EngineConfig, l *logger.ZapLogger) *HTTPEngine {
	breaker := circuitbreaker.DefaultConfig("routing-engine")
	breaker.FailureThreshold = 3
	breaker.Timeout = 30 * time.Second

	return &HTTPEngine{
		client: httpclient.NewEnhancedClient(httpclient.Config{
			BaseURL: cfg.URL,
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			Retry: retry.Config{
				MaxRetries:    2,
				BaseDelay:     200 * time.Millisecond,
				MaxDelay:      2 * time.Second,
				Multiplier:    2,
				Jitter:        true,
				RetryableFunc: isConnectionError,
			},
			Breaker: breaker,
		}, l),
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset")
}

// Initialize loads bathymetry and coastline data into the engine
func (e *HTTPEngine) Initialize(ctx context.Context, bathymetryPath, coastlinePath string) (bool, error) {
	var status engineStatus
	err := e.client.PostJSON(ctx, engineInitializePath, initializeRequest{
		BathymetryPath: bathymetryPath,
		CoastlinePath:  coastlinePath,
	}, &status)
	if err != nil {
		return false, fmt.Errorf("failed to initialize routing engine: %w", err)
	}
	if !status.Success && status.Error != "" {
		return false, errors.New(status.Error)
	}
	return status.Success, nil
}

// LoadWeather loads weather grids from dir into the engine
func (e *HTTPEngine) LoadWeather(ctx context.Context, dir string) error {
	var status engineStatus
	if err := e.client.PostJSON(ctx, engineWeatherPath, weatherRequest{Directory: dir}, &status); err != nil {
		return fmt.Errorf("failed to load weather: %w", err)
	}
	if !status.Success {
		if status.Error == "" {
			status.Error = "engine refused weather directory"
		}
		return errors.New(status.Error)
	}
	return nil
}

// CalculateRoute asks the engine for the shortest and fuel-optimal paths
func (e *HTTPEngine) CalculateRoute(ctx context.Context, coords []models.Coordinate, speedMps float64) (*models.RouteResult, error) {
	var result models.RouteResult
	err := e.client.PostJSON(ctx, engineRoutePath, routeRequest{
		Waypoints: coords,
		SpeedMps:  speedMps,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate route: %w", err)
	}
	return &result, nil
}

// CheckHealth reports the engine unhealthy while its circuit breaker is open
func (e *HTTPEngine) CheckHealth(_ context.Context) error {
	if state := e.client.BreakerState(); state == circuitbreaker.StateOpen {
		return fmt.Errorf("routing engine circuit breaker is %s", state)
	}
	return nil
}
