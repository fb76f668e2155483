package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
	"nosh/internal/usecase"
	"nosh/internal/util"

	"github.com/paulmach/orb"
)

type locationService struct {
	store    repository.KVStore
	zones    repository.ZoneGateway
	geocoder service.Geocoder
	locator  service.Locator
	logger   *slog.Logger

	mu      sync.RWMutex
	current *entity.Location
}

// NewLocationService creates a new location service instance
func NewLocationService(
	store repository.KVStore,
	zones repository.ZoneGateway,
	geocoder service.Geocoder,
	locator service.Locator,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		store:    store,
		zones:    zones,
		geocoder: geocoder,
		locator:  locator,
		logger:   logger,
	}
}

// Restore rebuilds the location from the persisted record. A missing
// record is the ordinary no-location state; an unreadable record is
// cleared instead of crashing the boot.
func (s *locationService) Restore(ctx context.Context) (*entity.Location, error) {
	raw, err := s.store.Get(ctx, repository.KeyUserLocation)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	var loc entity.Location
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		s.logger.Warn("Persisted location unreadable, clearing", slog.Any("error", err))
		if delErr := s.store.Delete(ctx, repository.KeyUserLocation); delErr != nil {
			s.logger.Warn("Failed to clear unreadable location", slog.Any("error", delErr))
		}

		return nil, nil
	}

	s.setCurrent(&loc)

	return &loc, nil
}

func (s *locationService) Current() *entity.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	loc := *s.current

	return &loc
}

// SetLocation persists the location record and the derived header values,
// then installs it in memory. Storage failures surface to the caller and
// leave memory untouched, so memory never claims state that did not land.
func (s *locationService) SetLocation(ctx context.Context, loc entity.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return errors.Wrap(err, "failed to encode location")
	}

	if err := s.store.Set(ctx, repository.KeyUserLocation, string(raw)); err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if err := s.store.Set(ctx, repository.KeyLatitude, util.FormatCoordinate(loc.Latitude)); err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if err := s.store.Set(ctx, repository.KeyLongitude, util.FormatCoordinate(loc.Longitude)); err != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if loc.ZoneID != "" {
		if err := s.store.Set(ctx, repository.KeyZoneID, loc.ZoneID); err != nil {
			return errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
		}
	}

	s.setCurrent(&loc)

	return nil
}

func (s *locationService) ResolveZone(ctx context.Context, lat, lng float64) (string, error) {
	return s.zones.ZoneID(ctx, lat, lng)
}

// UseDeviceLocation acquires the device position and turns it into a
// stored location. The reverse geocode is best effort: the flow proceeds
// with an empty display address rather than failing on it.
func (s *locationService) UseDeviceLocation(ctx context.Context) (*entity.Location, error) {
	position, err := s.locator.Current(ctx)
	if err != nil {
		return nil, err
	}

	address, err := s.geocoder.Reverse(ctx, orb.Point{position.Longitude, position.Latitude})
	if err != nil {
		s.logger.Warn("Reverse geocode failed, proceeding without address", slog.Any("error", err))
		address = ""
	}

	return s.resolveAndStore(ctx, position.Latitude, position.Longitude, address)
}

// SetManualAddress turns a typed address into a stored location.
func (s *locationService) SetManualAddress(ctx context.Context, address string) (*entity.Location, error) {
	result, err := s.geocoder.Forward(ctx, address)
	if err != nil {
		return nil, err
	}

	return s.resolveAndStore(ctx, result.Point.Lat(), result.Point.Lon(), result.FormattedAddress)
}

func (s *locationService) AvailableZones(ctx context.Context) ([]entity.Zone, error) {
	return s.zones.List(ctx)
}

func (s *locationService) CheckZone(ctx context.Context, lat, lng float64, zoneID string) (bool, error) {
	return s.zones.Check(ctx, lat, lng, zoneID)
}

func (s *locationService) resolveAndStore(ctx context.Context, lat, lng float64, address string) (*entity.Location, error) {
	zoneID, err := s.zones.ZoneID(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	loc := entity.Location{
		Latitude:  lat,
		Longitude: lng,
		ZoneID:    zoneID,
		Address:   address,
	}
	if err := s.SetLocation(ctx, loc); err != nil {
		return nil, err
	}

	return &loc, nil
}

func (s *locationService) setCurrent(loc *entity.Location) {
	s.mu.Lock()
	s.current = loc
	s.mu.Unlock()
}
