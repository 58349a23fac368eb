package utils

import (
	"strconv"
	"strings"

	"github.com/Taeppir/Link/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lon, precision)
}

// DecodeGeohash converts a geohash string to the center of its cell
func DecodeGeohash(hash string) models.Coordinate {
	lat, lon := geohash.Decode(hash)
	return models.Coordinate{Lat: lat, Lon: lon}
}

// RouteFingerprint joins the geohash of every coordinate with the speed.
// Two requests with the same fingerprint describe the same voyage.
func RouteFingerprint(coords []models.Coordinate, speedMps float64, precision uint) string {
	var b strings.Builder
	for _, c := range coords {
		b.WriteString(EncodeCoordinate(c, precision))
		b.WriteByte('.')
	}
	b.WriteString(strconv.FormatFloat(speedMps, 'f', 2, 64))
	return b.String()
}
