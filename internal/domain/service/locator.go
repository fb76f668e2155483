package service

import (
	"context"

	"nosh/internal/domain/entity"
	"nosh/internal/errors"
)

// ErrPositionTimeout is returned when a position fix could not be
// acquired within the configured acquisition timeout.
var ErrPositionTimeout = errors.New("position acquisition timed out")

// ErrPositionStale is returned when the only available fix is older than
// the configured maximum cached-position age.
var ErrPositionStale = errors.New("cached position too old")

// Locator acquires the device's current position. Acquisition is a
// single shot with a bounded wait, not a watch.
type Locator interface {
	Current(ctx context.Context) (*entity.Position, error)
}
