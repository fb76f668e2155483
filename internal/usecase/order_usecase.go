package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// OrderUsecase covers the order lifecycle from placement to tracking,
// cancellation and refunds.
type OrderUsecase interface {
	// Place validates and submits the order. On success the cart cache is
	// refreshed in the background, since the backend empties the cart as
	// part of placement.
	Place(ctx context.Context, payload entity.PlaceOrderPayload) (int, error)

	Track(ctx context.Context, orderID int) (*entity.OrderTracking, error)

	// TrackingQR renders the order tracking deep link as a PNG QR code.
	TrackingQR(orderID int) ([]byte, error)

	Running(ctx context.Context) ([]entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	Details(ctx context.Context, orderID int) (*entity.Order, error)

	Cancel(ctx context.Context, orderID int, reason string) error
	CancellationReasons(ctx context.Context) ([]entity.CancellationReason, error)
	RefundReasons(ctx context.Context) ([]entity.RefundReason, error)
	RequestRefund(ctx context.Context, req entity.RefundRequest) error

	PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	SubmitOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error
	UpdateOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error

	SendNotification(ctx context.Context, orderID int, message string) error
	ValidateRestaurant(ctx context.Context, restaurantID int) error
	OrderAgain(ctx context.Context, orderID int) error
}
