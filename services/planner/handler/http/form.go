package http

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/Taeppir/Link/internal/pkg/models"
)

// formValue holds a form field as typed. JSON strings and numbers are both accepted.
type formValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *formValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

// waypointRequest is the waypoint form
type waypointRequest struct {
	Type string    `json:"type" form:"type"`
	Port string    `json:"port" form:"port"`
	Lat  formValue `json:"lat" form:"lat"`
	Lon  formValue `json:"lon" form:"lon"`
}

// toInput parses the coordinate fields. Blank fields stay nil so the
// usecase can report them together; unparsable ones fail here per field.
func (r waypointRequest) toInput() (models.WaypointInput, error) {
	lat, err := parseCoordinate(r.Lat, "latitude")
	if err != nil {
		return models.WaypointInput{}, err
	}
	lon, err := parseCoordinate(r.Lon, "longitude")
	if err != nil {
		return models.WaypointInput{}, err
	}
	return models.WaypointInput{
		Type: r.Type,
		Port: strings.TrimSpace(r.Port),
		Lat:  lat,
		Lon:  lon,
	}, nil
}

func parseCoordinate(v formValue, field string) (*float64, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, models.NewInvalidCoordinate("must be a number", field)
	}
	return &f, nil
}

// departureRequest sets the departure time
type departureRequest struct {
	DepartTime string `json:"depart_time" form:"depart_time"`
}

// parseDeparture accepts the form layout in local time or RFC3339
func parseDeparture(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, models.NewMissingDeparture()
	}
	if t, err := time.ParseInLocation(models.DepartureLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, &models.ValidationError{
			Kind:    models.MissingDeparture,
			Fields:  []string{"depart_time"},
			Message: "departure time must be formatted as yyyy-MM-dd HH:mm:ss",
		}
	}
	return t, nil
}

// overlayRequest switches a map layer
type overlayRequest struct {
	On bool `json:"on" form:"on"`
}
