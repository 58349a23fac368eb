package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Taeppir/Link/internal/pkg/constants"
	"github.com/Taeppir/Link/internal/pkg/database"
	"github.com/Taeppir/Link/internal/pkg/logger"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/internal/utils"
	"github.com/Taeppir/Link/services/planner"
	"github.com/go-redis/redis/v8"
)

// CachedEngine answers repeated route searches from Redis. Only successful
// results are cached; loading new weather flushes the cache.
type CachedEngine struct {
	next  planner.RoutingEngine
	redis *database.RedisClient
	ttl   time.Duration
}

// NewCachedEngine wraps next with a route result cache
func NewCachedEngine(next planner.RoutingEngine, redisClient *database.RedisClient, ttl time.Duration) *CachedEngine {
	return &CachedEngine{
		next:  next,
		redis: redisClient,
		ttl:   ttl,
	}
}

func routeCacheKey(coords []models.Coordinate, speedMps float64) string {
	return fmt.Sprintf(constants.KeyRouteResult, utils.RouteFingerprint(coords, speedMps, constants.GeohashPrecision))
}

// Initialize passes through to the wrapped engine
func (c *CachedEngine) Initialize(ctx context.Context, bathymetryPath, coastlinePath string) (bool, error) {
	return c.next.Initialize(ctx, bathymetryPath, coastlinePath)
}

// LoadWeather loads weather and drops every cached route
func (c *CachedEngine) LoadWeather(ctx context.Context, dir string) error {
	if err := c.next.LoadWeather(ctx, dir); err != nil {
		return err
	}

	removed, err := c.redis.DeleteByPattern(ctx, fmt.Sprintf(constants.KeyRouteResult, "*"))
	if err != nil {
		logger.Warn("Failed to flush route cache", logger.Err(err))
		return nil
	}
	logger.Info("Route cache flushed after weather load", logger.Int("removed", removed))
	return nil
}

// CalculateRoute returns a cached result when one exists
func (c *CachedEngine) CalculateRoute(ctx context.Context, coords []models.Coordinate, speedMps float64) (*models.RouteResult, error) {
	key := routeCacheKey(coords, speedMps)

	cached, err := c.redis.Get(ctx, key)
	switch {
	case err == nil:
		var result models.RouteResult
		if jsonErr := json.Unmarshal([]byte(cached), &result); jsonErr == nil {
			logger.Debug("Route cache hit", logger.String("key", key))
			return &result, nil
		}
		logger.Warn("Discarding unreadable cached route", logger.String("key", key))
	case !errors.Is(err, redis.Nil):
		logger.Warn("Route cache unavailable", logger.Err(err))
	}

	result, err := c.next.CalculateRoute(ctx, coords, speedMps)
	if err != nil || result == nil || !result.Success {
		return result, err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	if err := c.redis.Set(ctx, key, data, c.ttl); err != nil {
		logger.Warn("Failed to cache route", logger.String("key", key), logger.Err(err))
	}
	return result, nil
}
