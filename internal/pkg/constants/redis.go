package constants

// Redis key formats
const (
	// KeyRouteResult caches an engine answer by geohashed waypoints and speed
	KeyRouteResult = "route:result:%s"
)

// GeohashPrecision is the precision used to build route cache keys
const GeohashPrecision = 9
