package models

import "time"

// DepartureLayout is the timestamp format used by the waypoint form and the map view
const DepartureLayout = "2006-01-02 15:04:05"

// RouteRequest is an immutable, validated request for the routing engine
type RouteRequest struct {
	ID            string       `json:"id"`
	DepartureTime time.Time    `json:"departure_time"`
	Coordinates   []Coordinate `json:"coordinates"`
}

// PathResult holds the metrics of a single computed path
type PathResult struct {
	TotalDistanceKm float64      `json:"total_distance_km"`
	TotalTimeHours  float64      `json:"total_time_hours"`
	TotalFuelKg     float64      `json:"total_fuel_kg"`
	FullPath        []Coordinate `json:"full_path"`
}

// RouteResult is the routing engine answer for a RouteRequest
type RouteResult struct {
	Success      bool       `json:"success"`
	ErrorMessage string     `json:"error_message,omitempty"`
	Shortest     PathResult `json:"shortest"`
	Optimal      PathResult `json:"optimal"`
}

// RouteReport is the payload forwarded to report projectors
type RouteReport struct {
	RequestID         string       `json:"request_id"`
	DepartureTime     time.Time    `json:"departure_time"`
	ArrivalTime       time.Time    `json:"arrival_time"`
	SpeedMps          float64      `json:"speed_mps"`
	DistanceKm        float64      `json:"distance_km"`
	TimeHours         float64      `json:"time_hours"`
	FuelTons          float64      `json:"fuel_tons"`
	SampledPath       []Coordinate `json:"path_points"`
	OptimalDistanceKm float64      `json:"optimal_distance_km"`
	OptimalTimeHours  float64      `json:"optimal_time_hours"`
	OptimalFuelTons   float64      `json:"optimal_fuel_tons"`
	FuelSavingTons    float64      `json:"fuel_saving_tons"`
	FuelSavingPercent float64      `json:"fuel_saving_percent"`
}

// RouteOutcome is what a route trigger resolves to once the engine answered
type RouteOutcome struct {
	Request RouteRequest `json:"request"`
	Result  *RouteResult `json:"result,omitempty"`
	Report  *RouteReport `json:"report,omitempty"`
	Err     error        `json:"-"`
}
