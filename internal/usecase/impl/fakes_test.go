package impl

import (
	"context"
	"io"
	"log/slog"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/errors"

	"github.com/paulmach/orb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuthGateway returns canned tokens and records the device ids it saw.
type fakeAuthGateway struct {
	token        string
	err          error
	guestDevices []string
}

func (f *fakeAuthGateway) Login(context.Context, entity.Credentials) (string, error) {
	return f.token, f.err
}

func (f *fakeAuthGateway) SignUp(context.Context, entity.SignUpPayload) (string, error) {
	return f.token, f.err
}

func (f *fakeAuthGateway) GuestLogin(_ context.Context, deviceID string) (string, error) {
	f.guestDevices = append(f.guestDevices, deviceID)

	return f.token, f.err
}

func (f *fakeAuthGateway) ForgotPassword(context.Context, string) error      { return f.err }
func (f *fakeAuthGateway) VerifyToken(context.Context, string, string) error { return f.err }
func (f *fakeAuthGateway) ResetPassword(context.Context, string, string, string) error {
	return f.err
}
func (f *fakeAuthGateway) VerifyPhone(context.Context, string, string) error { return f.err }
func (f *fakeAuthGateway) VerifyEmail(context.Context, string, string) error { return f.err }
func (f *fakeAuthGateway) CheckEmail(context.Context, string) error          { return f.err }

// fakeZoneGateway resolves every coordinate to a fixed zone.
type fakeZoneGateway struct {
	zoneID string
	err    error
	zones  []entity.Zone
	inside bool
}

func (f *fakeZoneGateway) ZoneID(context.Context, float64, float64) (string, error) {
	return f.zoneID, f.err
}

func (f *fakeZoneGateway) Check(context.Context, float64, float64, string) (bool, error) {
	return f.inside, f.err
}

func (f *fakeZoneGateway) List(context.Context) ([]entity.Zone, error) {
	return f.zones, f.err
}

func (f *fakeZoneGateway) UpdateZone(context.Context, string) error { return f.err }

type fakeGeocoder struct {
	forward    *service.GeocodeResult
	forwardErr error
	reverse    string
	reverseErr error
}

func (f *fakeGeocoder) Forward(context.Context, string) (*service.GeocodeResult, error) {
	return f.forward, f.forwardErr
}

func (f *fakeGeocoder) Reverse(context.Context, orb.Point) (string, error) {
	return f.reverse, f.reverseErr
}

type fakeLocator struct {
	position *entity.Position
	err      error
}

func (f *fakeLocator) Current(context.Context) (*entity.Position, error) {
	return f.position, f.err
}

// fakeCartGateway holds an in-memory cart keyed by item id.
type fakeCartGateway struct {
	lines   map[int]entity.CartItem
	listErr error
	opErr   error
}

func newFakeCartGateway() *fakeCartGateway {
	return &fakeCartGateway{lines: make(map[int]entity.CartItem)}
}

func (f *fakeCartGateway) List(context.Context) ([]entity.CartItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := make([]entity.CartItem, 0, len(f.lines))
	for _, item := range f.lines {
		items = append(items, item)
	}

	return items, nil
}

func (f *fakeCartGateway) Add(_ context.Context, m entity.CartMutation) error {
	if f.opErr != nil {
		return f.opErr
	}
	item := f.lines[m.ID]
	item.ID = m.ID
	item.Quantity += m.Quantity
	f.lines[m.ID] = item

	return nil
}

func (f *fakeCartGateway) Update(_ context.Context, m entity.CartMutation) error {
	if f.opErr != nil {
		return f.opErr
	}
	item := f.lines[m.ID]
	item.ID = m.ID
	item.Quantity = m.Quantity
	f.lines[m.ID] = item

	return nil
}

func (f *fakeCartGateway) Remove(_ context.Context, itemID int) error {
	if f.opErr != nil {
		return f.opErr
	}
	delete(f.lines, itemID)

	return nil
}

func (f *fakeCartGateway) AddMultiple(ctx context.Context, ms []entity.CartMutation) error {
	for _, m := range ms {
		if err := f.Add(ctx, m); err != nil {
			return err
		}
	}

	return nil
}

func (f *fakeCartGateway) Clear(context.Context) error {
	if f.opErr != nil {
		return f.opErr
	}
	f.lines = make(map[int]entity.CartItem)

	return nil
}

// failingStore wraps a KVStore and fails writes to selected keys.
type failingStore struct {
	inner    repository.KVStore
	failKeys map[string]bool
}

func (f *failingStore) Get(ctx context.Context, key string) (string, error) {
	return f.inner.Get(ctx, key)
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.failKeys[key] {
		return errors.New("disk full")
	}

	return f.inner.Set(ctx, key, value)
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	if f.failKeys[key] {
		return errors.New("disk full")
	}

	return f.inner.Delete(ctx, key)
}
