// Package repository defines the persistence boundaries of the domain.
package repository

import (
	"context"

	"nosh/internal/errors"
)

// ErrKeyNotFound is returned when a key has no persisted value.
var ErrKeyNotFound = errors.New("key not found")

// Canonical store keys. The exact strings are part of the on-device
// storage contract; changing them invalidates existing installations.
const (
	KeyUserToken       = "userToken"
	KeyUserType        = "userType"
	KeyAlreadyLaunched = "alreadyLaunched"
	KeyUserLocation    = "userLocation"
	KeyZoneID          = "zoneId"
	KeyLongitude       = "longitude"
	KeyLatitude        = "latitude"
	KeyDeviceID        = "deviceId"
)

// KVStore is the durable device-local key-value store shared by the
// session, location, and gateway layers. Writes are last-writer-wins per
// key; callers are effectively serialized by user actions.
type KVStore interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set durably writes the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
