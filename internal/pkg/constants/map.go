package constants

// Toggle-able map layers, in resync order
const (
	OverlayDepth     = "depth"
	OverlayCoastline = "coastline"
	OverlayWeather   = "weather"
)

// Overlays lists every toggle-able layer
var Overlays = []string{OverlayDepth, OverlayCoastline, OverlayWeather}

// Status lines shown by the map view
const (
	InfoWaypointsUpdated = "waypoints updated"
	InfoRouteShown       = "route result shown"
	InfoRouteFailed      = "route search failed: %s"
	InfoPointRejected    = "point rejected: %s"
)

// DefaultSpeedMps is the ship speed used when none is configured
const DefaultSpeedMps = 8.0

// MaxReportPathPoints caps the path points forwarded to report projectors
const MaxReportPathPoints = 100
