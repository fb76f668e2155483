package impl

import (
	"context"
	"testing"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderGateway struct {
	orderID int
	placed  []entity.PlaceOrderPayload
}

func (f *fakeOrderGateway) Place(_ context.Context, p entity.PlaceOrderPayload) (int, error) {
	f.placed = append(f.placed, p)

	return f.orderID, nil
}

func (f *fakeOrderGateway) Track(context.Context, int) (*entity.OrderTracking, error) {
	return &entity.OrderTracking{OrderStatus: "picked_up"}, nil
}

func (f *fakeOrderGateway) Running(context.Context) ([]entity.Order, error) { return nil, nil }
func (f *fakeOrderGateway) List(context.Context) ([]entity.Order, error)    { return nil, nil }
func (f *fakeOrderGateway) Details(context.Context, int) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderGateway) Cancel(context.Context, int, string) error { return nil }
func (f *fakeOrderGateway) CancellationReasons(context.Context) ([]entity.CancellationReason, error) {
	return nil, nil
}
func (f *fakeOrderGateway) RefundReasons(context.Context) ([]entity.RefundReason, error) {
	return nil, nil
}
func (f *fakeOrderGateway) RequestRefund(context.Context, entity.RefundRequest) error { return nil }
func (f *fakeOrderGateway) PaymentMethods(context.Context) ([]entity.PaymentMethod, error) {
	return nil, nil
}
func (f *fakeOrderGateway) SendNotification(context.Context, int, string) error { return nil }
func (f *fakeOrderGateway) ValidateRestaurant(context.Context, int) error       { return nil }
func (f *fakeOrderGateway) OrderAgain(context.Context, int) error               { return nil }
func (f *fakeOrderGateway) SubmitOfflinePayment(context.Context, entity.OfflinePaymentSubmission) error {
	return nil
}
func (f *fakeOrderGateway) UpdateOfflinePayment(context.Context, entity.OfflinePaymentSubmission) error {
	return nil
}

type fakeQRService struct {
	png []byte
}

func (f *fakeQRService) GenerateTrackingQR(int) ([]byte, error) { return f.png, nil }

func TestOrderService_PlaceRefreshesCart(t *testing.T) {
	ctx := context.Background()
	cartGateway := newFakeCartGateway()
	cart := NewCartService(cartGateway, discardLogger())

	_, err := cart.Add(ctx, entity.CartMutation{ID: 1, Quantity: 2})
	require.NoError(t, err)

	gateway := &fakeOrderGateway{orderID: 118}
	service := NewOrderService(gateway, &fakeQRService{}, cart, discardLogger())

	// Placement empties the backend cart; the local cache must follow.
	cartGateway.lines = map[int]entity.CartItem{}

	orderID, err := service.Place(ctx, entity.PlaceOrderPayload{
		Cart:          []entity.OrderLine{{FoodID: 1, Quantity: 2}},
		RestaurantID:  5,
		OrderAmount:   24.5,
		PaymentMethod: "cash_on_delivery",
	})
	require.NoError(t, err)
	assert.Equal(t, 118, orderID)
	assert.Empty(t, cart.Items())
	require.Len(t, gateway.placed, 1)
}

func TestOrderService_PlaceValidatesPayload(t *testing.T) {
	gateway := &fakeOrderGateway{}
	service := NewOrderService(gateway, &fakeQRService{}, NewCartService(newFakeCartGateway(), discardLogger()), discardLogger())

	_, err := service.Place(context.Background(), entity.PlaceOrderPayload{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, gateway.placed)
}

func TestOrderService_TrackingQR(t *testing.T) {
	service := NewOrderService(&fakeOrderGateway{}, &fakeQRService{png: []byte{0x89, 0x50}}, NewCartService(newFakeCartGateway(), discardLogger()), discardLogger())

	png, err := service.TrackingQR(118)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, png)
}
