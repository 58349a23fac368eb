package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/Taeppir/Link/internal/pkg/database"
	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/Taeppir/Link/services/planner/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *mocks.MockRoutingEngine, *CachedEngine) {
	t.Helper()
	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	redisClient, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisClient.Close() })

	next := mocks.NewMockRoutingEngine(gomock.NewController(t))
	return mr, next, NewCachedEngine(next, redisClient, time.Hour)
}

var cacheCoords = []models.Coordinate{{Lat: 35.10, Lon: 129.04}, {Lat: 1.29, Lon: 103.85}}

func TestCachedEngine_CachesSuccess(t *testing.T) {
	mr, next, cache := setupCache(t)
	ctx := context.Background()

	result := &models.RouteResult{Success: true, Shortest: models.PathResult{TotalDistanceKm: 4600}}
	next.EXPECT().CalculateRoute(ctx, cacheCoords, 8.0).Return(result, nil).Times(1)

	first, err := cache.CalculateRoute(ctx, cacheCoords, 8.0)
	require.NoError(t, err)
	second, err := cache.CalculateRoute(ctx, cacheCoords, 8.0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(routeCacheKey(cacheCoords, 8.0)))
	assert.Equal(t, time.Hour, mr.TTL(routeCacheKey(cacheCoords, 8.0)))
}

func TestCachedEngine_DoesNotCacheFailures(t *testing.T) {
	mr, next, cache := setupCache(t)
	ctx := context.Background()

	next.EXPECT().CalculateRoute(ctx, cacheCoords, 8.0).
		Return(&models.RouteResult{Success: false, ErrorMessage: "on land"}, nil).Times(2)
	next.EXPECT().CalculateRoute(ctx, cacheCoords, 10.0).
		Return(nil, errors.New("connection refused"))

	for i := 0; i < 2; i++ {
		res, err := cache.CalculateRoute(ctx, cacheCoords, 8.0)
		require.NoError(t, err)
		assert.False(t, res.Success)
	}
	_, err := cache.CalculateRoute(ctx, cacheCoords, 10.0)
	assert.Error(t, err)

	assert.Empty(t, mr.Keys())
}

func TestCachedEngine_CorruptEntryFallsThrough(t *testing.T) {
	mr, next, cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(routeCacheKey(cacheCoords, 8.0), "{not json"))

	next.EXPECT().CalculateRoute(ctx, cacheCoords, 8.0).Return(&models.RouteResult{Success: true}, nil)

	res, err := cache.CalculateRoute(ctx, cacheCoords, 8.0)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestCachedEngine_WeatherFlushesCache(t *testing.T) {
	mr, next, cache := setupCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set(routeCacheKey(cacheCoords, 8.0), "{}"))
	require.NoError(t, mr.Set("unrelated", "x"))

	next.EXPECT().LoadWeather(ctx, "weather").Return(nil)
	require.NoError(t, cache.LoadWeather(ctx, "weather"))

	assert.Equal(t, []string{"unrelated"}, mr.Keys())

	next.EXPECT().LoadWeather(ctx, "bad").Return(errors.New("no files"))
	assert.Error(t, cache.LoadWeather(ctx, "bad"))

	next.EXPECT().Initialize(ctx, "b", "c").Return(true, nil)
	ok, err := cache.Initialize(ctx, "b", "c")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestCachedEngine_WeatherFlushesLargeCache(t *testing.T) {
	mr, next, cache := setupCache(t)
	ctx := context.Background()

	for i := 0; i < 250; i++ {
		coords := []models.Coordinate{{Lat: 35.10, Lon: 129.04}, {Lat: 1.29, Lon: 103.85 + float64(i)*0.01}}
		require.NoError(t, mr.Set(routeCacheKey(coords, 8.0), "{}"))
	}
	require.NoError(t, mr.Set("unrelated", "x"))
	require.Len(t, mr.Keys(), 251)

	next.EXPECT().LoadWeather(ctx, "weather").Return(nil)
	require.NoError(t, cache.LoadWeather(ctx, "weather"))

	assert.Equal(t, []string{"unrelated"}, mr.Keys(), fmt.Sprintf("%d keys left", len(mr.Keys())))
}
