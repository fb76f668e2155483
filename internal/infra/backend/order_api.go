package backend

import (
	"context"
	"net/url"
	"strconv"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
)

type orderAPI struct {
	client *Client
}

// NewOrderAPI is the constructor for the order lifecycle gateway.
func NewOrderAPI(client *Client) repository.OrderGateway {
	return &orderAPI{client: client}
}

func (a *orderAPI) Place(ctx context.Context, payload entity.PlaceOrderPayload) (int, error) {
	var resp struct {
		OrderID int `json:"order_id"`
	}
	if err := a.client.Post(ctx, endpointOrderPlace, payload, &resp); err != nil {
		return 0, err
	}

	return resp.OrderID, nil
}

func (a *orderAPI) Track(ctx context.Context, orderID int) (*entity.OrderTracking, error) {
	query := url.Values{"order_id": {strconv.Itoa(orderID)}}

	var tracking entity.OrderTracking
	if err := a.client.Get(ctx, endpointOrderTrack, query, &tracking); err != nil {
		return nil, err
	}

	return &tracking, nil
}

func (a *orderAPI) Running(ctx context.Context) ([]entity.Order, error) {
	return listGet[entity.Order](ctx, a.client, endpointOrderRunning, nil, "orders")
}

func (a *orderAPI) List(ctx context.Context) ([]entity.Order, error) {
	return listGet[entity.Order](ctx, a.client, endpointOrderList, nil, "orders")
}

func (a *orderAPI) Details(ctx context.Context, orderID int) (*entity.Order, error) {
	query := url.Values{"order_id": {strconv.Itoa(orderID)}}

	var order entity.Order
	if err := a.client.Get(ctx, endpointOrderDetails, query, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (a *orderAPI) Cancel(ctx context.Context, orderID int, reason string) error {
	body := map[string]any{"order_id": orderID, "reason": reason}

	return a.client.Post(ctx, endpointOrderCancel, body, nil)
}

func (a *orderAPI) CancellationReasons(ctx context.Context) ([]entity.CancellationReason, error) {
	return listGet[entity.CancellationReason](ctx, a.client, endpointOrderCancellationReasons, nil, "reasons")
}

func (a *orderAPI) RefundReasons(ctx context.Context) ([]entity.RefundReason, error) {
	return listGet[entity.RefundReason](ctx, a.client, endpointOrderRefundReasons, nil, "refund_reasons")
}

func (a *orderAPI) RequestRefund(ctx context.Context, req entity.RefundRequest) error {
	return a.client.Post(ctx, endpointOrderRefundRequest, req, nil)
}

func (a *orderAPI) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return listGet[entity.PaymentMethod](ctx, a.client, endpointOrderPaymentMethods, nil, "")
}

func (a *orderAPI) SendNotification(ctx context.Context, orderID int, message string) error {
	body := map[string]any{"order_id": orderID, "message": message}

	return a.client.Post(ctx, endpointOrderSendNotification, body, nil)
}

func (a *orderAPI) ValidateRestaurant(ctx context.Context, restaurantID int) error {
	query := url.Values{"restaurant_id": {strconv.Itoa(restaurantID)}}

	return a.client.Get(ctx, endpointOrderValidateRestaurant, query, nil)
}

func (a *orderAPI) OrderAgain(ctx context.Context, orderID int) error {
	return a.client.Post(ctx, endpointOrderAgain, map[string]int{"order_id": orderID}, nil)
}

func (a *orderAPI) SubmitOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error {
	return a.client.Post(ctx, endpointOrderOfflinePayment, sub, nil)
}

func (a *orderAPI) UpdateOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error {
	return a.client.Post(ctx, endpointOrderOfflinePaymentEdit, sub, nil)
}
