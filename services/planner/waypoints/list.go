// Package waypoints holds the ordered waypoint sequence and the placement rules
// that keep START first and END last.
package waypoints

import (
	"math"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/google/uuid"
)

// AdvisoryDuplicateVia is raised when a VIA lands on coordinates already in the list.
// The insert still succeeds.
const AdvisoryDuplicateVia = "an identical waypoint already exists"

// Placement tells where an inserted waypoint landed
type Placement struct {
	Index    int
	Advisory string
}

// List is the authoritative, invariant-preserving waypoint sequence.
// It is not safe for concurrent use; the control loop owns it.
type List struct {
	items       []models.Waypoint
	subscribers []func(models.Snapshot)
}

// New creates an empty waypoint list
func New() *List {
	return &List{}
}

// Subscribe registers fn to receive the full snapshot after every mutation
func (l *List) Subscribe(fn func(models.Snapshot)) {
	l.subscribers = append(l.subscribers, fn)
}

// Len returns the number of waypoints
func (l *List) Len() int {
	return len(l.items)
}

// Snapshot returns a copy of the current sequence
func (l *List) Snapshot() models.Snapshot {
	s := make(models.Snapshot, len(l.items))
	copy(s, l.items)
	return s
}

// ValidateCoordinate range checks both axes and names every offending field
func ValidateCoordinate(lat, lon float64) error {
	var fields []string
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		fields = append(fields, "latitude")
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		fields = append(fields, "longitude")
	}
	if len(fields) > 0 {
		return models.NewInvalidCoordinate("out of range (latitude: -90~90, longitude: -180~180)", fields...)
	}
	return nil
}

// Insert validates and places a waypoint according to its role.
// Roles other than START and END are placed as VIA.
func (l *List) Insert(role models.Role, label string, lat, lon float64) (Placement, error) {
	if err := ValidateCoordinate(lat, lon); err != nil {
		return Placement{}, err
	}

	wp := models.Waypoint{Role: role, Label: label, Lat: lat, Lon: lon}
	var p Placement

	switch role {
	case models.RoleStart:
		if err := l.checkEndpoint(wp, models.RoleEnd); err != nil {
			return Placement{}, err
		}
		p.Index = 0
	case models.RoleEnd:
		if err := l.checkEndpoint(wp, models.RoleStart); err != nil {
			return Placement{}, err
		}
		p.Index = len(l.items)
	default:
		wp.Role = models.RoleVia
		for _, existing := range l.items {
			if existing.SamePosition(wp) {
				p.Advisory = AdvisoryDuplicateVia
				break
			}
		}
		p.Index = len(l.items)
		if n := len(l.items); n > 0 && l.items[n-1].Role == models.RoleEnd {
			p.Index = n - 1
		}
	}

	l.items = append(l.items, models.Waypoint{})
	copy(l.items[p.Index+1:], l.items[p.Index:])
	l.items[p.Index] = wp

	l.notify()
	return p, nil
}

// checkEndpoint rejects a second endpoint of the same role and an endpoint that
// coincides with its counterpart
func (l *List) checkEndpoint(wp models.Waypoint, counterpart models.Role) error {
	for _, existing := range l.items {
		if existing.Role == wp.Role {
			return models.NewDuplicateEndpoint(wp.Role)
		}
	}
	for _, existing := range l.items {
		if existing.Role == counterpart && existing.SamePosition(wp) {
			return models.NewCoincidentEndpoints()
		}
	}
	return nil
}

// DeleteAt removes the waypoint at index. Removal cannot break ordering, so nothing is revalidated.
func (l *List) DeleteAt(index int) error {
	if index < 0 || index >= len(l.items) {
		return &models.IndexError{Index: index, Length: len(l.items)}
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.notify()
	return nil
}

// Clear empties the list unconditionally
func (l *List) Clear() {
	l.items = nil
	l.notify()
}

// Has reports whether a waypoint with the given role exists
func (l *List) Has(role models.Role) bool {
	for _, wp := range l.items {
		if wp.Role == role {
			return true
		}
	}
	return false
}

// ToRouteRequest builds an immutable request from a list holding both endpoints
func (l *List) ToRouteRequest(departure time.Time) (models.RouteRequest, error) {
	var missing []models.Role
	if !l.Has(models.RoleStart) {
		missing = append(missing, models.RoleStart)
	}
	if !l.Has(models.RoleEnd) {
		missing = append(missing, models.RoleEnd)
	}
	if len(missing) > 0 {
		return models.RouteRequest{}, models.NewMissingEndpoint(missing...)
	}

	return models.RouteRequest{
		ID:            uuid.NewString(),
		DepartureTime: departure,
		Coordinates:   l.Snapshot().Coordinates(),
	}, nil
}

// Verify checks the ordering invariants. A failure is a defect in the placement rules.
func (l *List) Verify() error {
	last := len(l.items) - 1
	starts, ends := 0, 0
	for i, wp := range l.items {
		switch wp.Role {
		case models.RoleStart:
			starts++
			if i != 0 {
				return &models.IntegrityViolation{Index: i, Reason: "START is not first"}
			}
		case models.RoleEnd:
			ends++
			if i != last {
				return &models.IntegrityViolation{Index: i, Reason: "END is not last"}
			}
		case models.RoleVia:
		default:
			return &models.IntegrityViolation{Index: i, Reason: "unknown role " + string(wp.Role)}
		}
	}
	if starts > 1 {
		return &models.IntegrityViolation{Index: 0, Reason: "more than one START"}
	}
	if ends > 1 {
		return &models.IntegrityViolation{Index: last, Reason: "more than one END"}
	}
	return nil
}

func (l *List) notify() {
	for _, fn := range l.subscribers {
		fn(l.Snapshot())
	}
}
