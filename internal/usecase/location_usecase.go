package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// LocationUsecase manages the delivery location: restoring it across
// launches, resolving coordinates to a service zone, and the two entry
// paths for choosing a location (device position or typed address).
type LocationUsecase interface {
	// Restore rebuilds the location from the persisted record. A missing
	// or unreadable record resolves to no location without error.
	Restore(ctx context.Context) (*entity.Location, error)

	// Current returns the in-memory location, nil when none is set.
	Current() *entity.Location

	// SetLocation persists the location and its derived header values,
	// then updates memory. A storage failure is returned and leaves the
	// in-memory location untouched.
	SetLocation(ctx context.Context, loc entity.Location) error

	// ResolveZone maps a coordinate pair to its service zone id.
	ResolveZone(ctx context.Context, lat, lng float64) (string, error)

	// UseDeviceLocation acquires the device position, reverse-geocodes it
	// best effort, resolves the zone and stores the result.
	UseDeviceLocation(ctx context.Context) (*entity.Location, error)

	// SetManualAddress forward-geocodes a typed address, resolves the
	// zone and stores the result.
	SetManualAddress(ctx context.Context, address string) (*entity.Location, error)

	AvailableZones(ctx context.Context) ([]entity.Zone, error)
	CheckZone(ctx context.Context, lat, lng float64, zoneID string) (bool, error)
}
