// Package service declares the external collaborator interfaces the
// domain depends on.
package service

import (
	"context"

	"github.com/paulmach/orb"
)

// GeocodeResult is a resolved place: a coordinate pair plus the
// provider-formatted address string.
type GeocodeResult struct {
	Point            orb.Point // Longitude/latitude, orb order.
	FormattedAddress string
}

// Geocoder resolves between free-text addresses and coordinates through
// a mapping-provider HTTP API.
type Geocoder interface {
	// Forward geocodes a free-text address into a coordinate pair.
	Forward(ctx context.Context, address string) (*GeocodeResult, error)

	// Reverse resolves a coordinate pair into a formatted address.
	Reverse(ctx context.Context, point orb.Point) (string, error)
}
