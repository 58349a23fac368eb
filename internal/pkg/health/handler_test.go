package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("GIT_COMMIT", "abc123")
	t.Setenv("BUILD_TIME", "")

	e := echo.New()
	e.GET("/ping", NewPingHandler("planner", "1.2.0"))

	rec := serve(e, "/ping")
	require.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "planner", info.ServiceName)
	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.False(t, info.ServerTime.IsZero())

	hostname, err := os.Hostname()
	if err == nil {
		assert.Equal(t, hostname, info.Hostname)
	}
}

func TestRegisterHealthEndpoints_NoDependencies(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "planner", "", nil)

	for _, path := range []string{"/health", "/healthz", "/ready"} {
		rec := serve(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "OK", rec.Body.String(), path)
	}

	rec := serve(e, "/health/detailed")
	assert.Equal(t, http.StatusOK, rec.Code)
	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusHealthy, response.Status)
	assert.Empty(t, response.Dependencies)

	assert.Equal(t, http.StatusMethodNotAllowed, func() int {
		req := httptest.NewRequest(http.MethodPost, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}())
}

func TestRegisterHealthEndpoints_Dependencies(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hs := NewHealthService()
	hs.AddChecker("redis", NewRedisHealthChecker(redisPinger{client: client}))
	hs.AddChecker("routing_engine", CheckerFunc(func(ctx context.Context) error { return nil }))

	e := echo.New()
	RegisterHealthEndpoints(e, "planner", "1.0.0", hs)

	rec := serve(e, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)

	mr.Close()
	hs.AddChecker("routing_engine", CheckerFunc(func(ctx context.Context) error {
		return errors.New("routing engine circuit breaker is open")
	}))

	rec = serve(e, "/health/detailed")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, StatusUnhealthy, response.Status)
	assert.Equal(t, "planner", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, StatusUnhealthy, response.Dependencies["redis"].Status)
	assert.Equal(t, "routing engine circuit breaker is open", response.Dependencies["routing_engine"].Error)

	rec = serve(e, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	assert.Equal(t, []string{"redis", "routing_engine"}, hs.Names())
}

func TestNATSHealthChecker(t *testing.T) {
	server := test.RunRandClientPortServer()
	defer server.Shutdown()

	conn, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)

	checker := NewNATSHealthChecker(func() *nats.Conn { return conn })
	assert.NoError(t, checker.CheckHealth(context.Background()))

	conn.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))

	missing := NewNATSHealthChecker(func() *nats.Conn { return nil })
	assert.Error(t, missing.CheckHealth(context.Background()))
}
