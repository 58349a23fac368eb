package models

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Role tags a waypoint with the position it must occupy in a route
type Role string

const (
	RoleStart Role = "START"
	RoleVia   Role = "VIA"
	RoleEnd   Role = "END"
)

// ParseRole converts a declared role into a known Role.
// The second return value is false when the role is not one of START, VIA or END.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleStart:
		return RoleStart, true
	case RoleVia:
		return RoleVia, true
	case RoleEnd:
		return RoleEnd, true
	default:
		return RoleVia, false
	}
}

// Coordinate is a geographic position in decimal degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Waypoint represents a single entry of the waypoint table
type Waypoint struct {
	Role  Role    `json:"type"`
	Label string  `json:"port"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// Coordinate returns the position of the waypoint
func (w Waypoint) Coordinate() Coordinate {
	return Coordinate{Lat: w.Lat, Lon: w.Lon}
}

// SamePosition reports whether both waypoints sit on identical coordinates
func (w Waypoint) SamePosition(o Waypoint) bool {
	return w.Lat == o.Lat && w.Lon == o.Lon
}

// MarshalLogObject writes the waypoint as a structured log object
func (w Waypoint) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", string(w.Role))
	if w.Label != "" {
		enc.AddString("port", w.Label)
	}
	enc.AddFloat64("lat", w.Lat)
	enc.AddFloat64("lon", w.Lon)
	return nil
}

// Snapshot is the full ordered waypoint sequence at a point in time
type Snapshot []Waypoint

// MarshalLogArray writes the snapshot as a structured log array
func (s Snapshot) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, wp := range s {
		if err := enc.AppendObject(wp); err != nil {
			return err
		}
	}
	return nil
}

// Count returns how many waypoints carry the given role
func (s Snapshot) Count(role Role) int {
	n := 0
	for _, wp := range s {
		if wp.Role == role {
			n++
		}
	}
	return n
}

// Coordinates returns the positions of the snapshot in list order
func (s Snapshot) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(s))
	for i, wp := range s {
		coords[i] = wp.Coordinate()
	}
	return coords
}

// WaypointInput is the form-entry payload for a new waypoint.
// Latitude and longitude stay optional so that empty fields can be reported.
type WaypointInput struct {
	Type string   `json:"type"`
	Port string   `json:"port"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// InsertResult describes where a waypoint landed and any advisory raised on the way
type InsertResult struct {
	Index    int      `json:"index"`
	Advisory string   `json:"advisory,omitempty"`
	Snapshot Snapshot `json:"waypoints"`
}

// Port is an entry of the static port list
type Port struct {
	Index string  `json:"index"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}
