package impl

import (
	"context"
	"testing"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
	"nosh/internal/infra/storage"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationService_SetThenRestore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	service := NewLocationService(store, &fakeZoneGateway{}, &fakeGeocoder{}, &fakeLocator{}, discardLogger())

	loc := entity.Location{Latitude: 23.7808, Longitude: 90.4219, ZoneID: "[1]", Address: "Dhanmondi"}
	require.NoError(t, service.SetLocation(ctx, loc))
	require.NotNil(t, service.Current())
	assert.Equal(t, loc, *service.Current())

	// Derived header values must land alongside the record.
	lat, err := store.Get(ctx, repository.KeyLatitude)
	require.NoError(t, err)
	assert.Equal(t, "23.7808", lat)

	zoneID, err := store.Get(ctx, repository.KeyZoneID)
	require.NoError(t, err)
	assert.Equal(t, "[1]", zoneID)

	restored, err := NewLocationService(store, &fakeZoneGateway{}, &fakeGeocoder{}, &fakeLocator{}, discardLogger()).Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, loc, *restored)
}

func TestLocationService_StoreFailureLeavesMemoryUntouched(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{
		inner:    storage.NewMemoryStore(),
		failKeys: map[string]bool{repository.KeyUserLocation: true},
	}
	service := NewLocationService(store, &fakeZoneGateway{}, &fakeGeocoder{}, &fakeLocator{}, discardLogger())

	err := service.SetLocation(ctx, entity.Location{Latitude: 1, Longitude: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStorageFailed))
	assert.Nil(t, service.Current())
}

func TestLocationService_RestoreMissingIsNoLocation(t *testing.T) {
	service := NewLocationService(storage.NewMemoryStore(), &fakeZoneGateway{}, &fakeGeocoder{}, &fakeLocator{}, discardLogger())

	restored, err := service.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
	assert.Nil(t, service.Current())
}

func TestLocationService_RestoreClearsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, repository.KeyUserLocation, "{not json"))

	restored, err := NewLocationService(store, &fakeZoneGateway{}, &fakeGeocoder{}, &fakeLocator{}, discardLogger()).Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	_, err = store.Get(ctx, repository.KeyUserLocation)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}

func TestLocationService_UseDeviceLocation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	service := NewLocationService(
		store,
		&fakeZoneGateway{zoneID: "[4]"},
		&fakeGeocoder{reverse: "Road 27, Dhanmondi"},
		&fakeLocator{position: &entity.Position{Latitude: 23.78, Longitude: 90.42}},
		discardLogger(),
	)

	loc, err := service.UseDeviceLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[4]", loc.ZoneID)
	assert.Equal(t, "Road 27, Dhanmondi", loc.Address)
	assert.InDelta(t, 23.78, loc.Latitude, 1e-9)
	require.NotNil(t, service.Current())
}

func TestLocationService_UseDeviceLocationToleratesReverseFailure(t *testing.T) {
	service := NewLocationService(
		storage.NewMemoryStore(),
		&fakeZoneGateway{zoneID: "[4]"},
		&fakeGeocoder{reverseErr: errors.New("quota exceeded")},
		&fakeLocator{position: &entity.Position{Latitude: 23.78, Longitude: 90.42}},
		discardLogger(),
	)

	loc, err := service.UseDeviceLocation(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loc.Address)
	assert.Equal(t, "[4]", loc.ZoneID)
}

func TestLocationService_UseDeviceLocationPropagatesLocatorError(t *testing.T) {
	svc := NewLocationService(
		storage.NewMemoryStore(),
		&fakeZoneGateway{zoneID: "[4]"},
		&fakeGeocoder{},
		&fakeLocator{err: errors.WithStack(service.ErrPositionTimeout)},
		discardLogger(),
	)

	_, err := svc.UseDeviceLocation(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrPositionTimeout))
	assert.Nil(t, svc.Current())
}

func TestLocationService_SetManualAddress(t *testing.T) {
	svc := NewLocationService(
		storage.NewMemoryStore(),
		&fakeZoneGateway{zoneID: "[2]"},
		&fakeGeocoder{forward: &service.GeocodeResult{
			Point:            orb.Point{90.4219, 23.7808},
			FormattedAddress: "Road 27, Dhanmondi, Dhaka",
		}},
		&fakeLocator{},
		discardLogger(),
	)

	loc, err := svc.SetManualAddress(context.Background(), "Dhanmondi 27")
	require.NoError(t, err)
	assert.Equal(t, "[2]", loc.ZoneID)
	assert.Equal(t, "Road 27, Dhanmondi, Dhaka", loc.Address)
	assert.InDelta(t, 23.7808, loc.Latitude, 1e-9)
	assert.InDelta(t, 90.4219, loc.Longitude, 1e-9)
}

func TestLocationService_OutsideZoneFailsBeforeStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewLocationService(
		store,
		&fakeZoneGateway{err: errors.WithStack(domainerrors.ErrOutsideZone)},
		&fakeGeocoder{},
		&fakeLocator{position: &entity.Position{Latitude: 50, Longitude: 50}},
		discardLogger(),
	)

	_, err := svc.UseDeviceLocation(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOutsideZone))

	_, err = store.Get(ctx, repository.KeyUserLocation)
	assert.True(t, errors.Is(err, repository.ErrKeyNotFound))
}
