package util

import (
	"strconv"

	"github.com/paulmach/orb"
)

// FormatCoordinate renders a coordinate with the shortest exact decimal form.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatLatLng renders a point as the "lat,lng" pair used by geo APIs.
func FormatLatLng(point orb.Point) string {
	return FormatCoordinate(point.Lat()) + "," + FormatCoordinate(point.Lon())
}

// ParseCoordinate parses a decimal coordinate string.
func ParseCoordinate(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
