package models

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationKind classifies a validation failure
type ValidationKind string

const (
	InvalidCoordinate   ValidationKind = "InvalidCoordinate"
	DuplicateEndpoint   ValidationKind = "DuplicateEndpoint"
	CoincidentEndpoints ValidationKind = "CoincidentEndpoints"
	MissingEndpoint     ValidationKind = "MissingEndpoint"
	MissingDeparture    ValidationKind = "MissingDeparture"
)

// ValidationError blocks a mutation or a request build. State is left unchanged.
type ValidationError struct {
	Kind    ValidationKind
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches any ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks
var (
	ErrInvalidCoordinate   = &ValidationError{Kind: InvalidCoordinate}
	ErrDuplicateEndpoint   = &ValidationError{Kind: DuplicateEndpoint}
	ErrCoincidentEndpoints = &ValidationError{Kind: CoincidentEndpoints}
	ErrMissingEndpoint     = &ValidationError{Kind: MissingEndpoint}
	ErrMissingDeparture    = &ValidationError{Kind: MissingDeparture}
)

// NewInvalidCoordinate reports fields that are empty or outside their range
func NewInvalidCoordinate(reason string, fields ...string) *ValidationError {
	return &ValidationError{
		Kind:    InvalidCoordinate,
		Fields:  fields,
		Message: fmt.Sprintf("%s %s", strings.Join(fields, ", "), reason),
	}
}

// NewDuplicateEndpoint reports a second START or END
func NewDuplicateEndpoint(role Role) *ValidationError {
	return &ValidationError{
		Kind:    DuplicateEndpoint,
		Fields:  []string{string(role)},
		Message: fmt.Sprintf("%s is already registered", role),
	}
}

// NewCoincidentEndpoints reports START and END on the same position
func NewCoincidentEndpoints() *ValidationError {
	return &ValidationError{
		Kind:    CoincidentEndpoints,
		Fields:  []string{"lat", "lon"},
		Message: "START and END cannot be identical",
	}
}

// NewMissingEndpoint lists the endpoints a route request still needs
func NewMissingEndpoint(roles ...Role) *ValidationError {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return &ValidationError{
		Kind:    MissingEndpoint,
		Fields:  names,
		Message: fmt.Sprintf("%s must be registered", strings.Join(names, ", ")),
	}
}

// NewMissingDeparture reports an unset departure time
func NewMissingDeparture() *ValidationError {
	return &ValidationError{
		Kind:    MissingDeparture,
		Fields:  []string{"depart_time"},
		Message: "departure time must be selected",
	}
}

// IndexError is returned when a position does not exist in the waypoint list
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Length)
}

// EngineError carries a failure reported by the routing engine
type EngineError struct {
	Message string
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("route search failed: %s", e.Message)
}

// IntegrityViolation means an ordering invariant was found broken.
// It is a defect, never a recoverable condition.
type IntegrityViolation struct {
	Index  int
	Reason string
}

func (e *IntegrityViolation) Error() string {
	return fmt.Sprintf("waypoint integrity violation at %d: %s", e.Index, e.Reason)
}

var (
	// ErrBridgeTimeout is logged when a command could not be delivered to the map view
	ErrBridgeTimeout = errors.New("map view did not accept command in time")
	// ErrRouteInFlight is returned when a route search is triggered while another one runs
	ErrRouteInFlight = errors.New("route search already in progress")
	// ErrLoopStopped is returned when work is posted to a stopped control loop
	ErrLoopStopped = errors.New("control loop stopped")
	// ErrUnknownOverlay is returned when toggling a layer the map view does not have
	ErrUnknownOverlay = errors.New("unknown overlay")
	// ErrViewNotConnected is returned when a view-only command is issued with no map view attached
	ErrViewNotConnected = errors.New("map view not connected")
	// ErrNoReport is returned when no route report has been produced yet
	ErrNoReport = errors.New("no route report available")
)
