package health

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// Dependency states
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// RedisHealthChecker checks the route cache connection
type RedisHealthChecker struct {
	client pinger
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client pinger) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// NATSHealthChecker checks the report publisher connection
type NATSHealthChecker struct {
	conn func() *nats.Conn
}

// NewNATSHealthChecker creates a new NATS health checker
func NewNATSHealthChecker(conn func() *nats.Conn) *NATSHealthChecker {
	return &NATSHealthChecker{conn: conn}
}

// CheckHealth checks if NATS is connected
func (n *NATSHealthChecker) CheckHealth(_ context.Context) error {
	conn := n.conn()
	if conn == nil || !conn.IsConnected() {
		return errors.New("NATS not connected")
	}
	return nil
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService() *HealthService {
	return &HealthService{
		checkers: make(map[string]HealthChecker),
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// Names lists the registered dependencies in sorted order
func (h *HealthService) Names() []string {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAllHealth performs health checks on all registered dependencies.
// A nil service reports healthy with no dependencies.
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}
	if h == nil {
		return response
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for name, checker := range h.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
			response.Status = StatusUnhealthy
			continue
		}
		response.Dependencies[name] = DependencyInfo{Status: StatusHealthy}
	}

	return response
}
