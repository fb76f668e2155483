package impl

import (
	"context"
	"log/slog"

	"nosh/internal/domain/entity"
	"nosh/internal/domain/repository"
	"nosh/internal/domain/service"
	"nosh/internal/usecase"
)

type orderService struct {
	gateway repository.OrderGateway
	qr      service.QRCodeService
	cart    usecase.CartUsecase
	logger  *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	gateway repository.OrderGateway,
	qr service.QRCodeService,
	cart usecase.CartUsecase,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		gateway: gateway,
		qr:      qr,
		cart:    cart,
		logger:  logger,
	}
}

// Place validates and submits the order. The backend empties the cart as
// part of placement, so the local cache is refreshed afterwards; a
// refresh failure only leaves the cache stale until the next read.
func (s *orderService) Place(ctx context.Context, payload entity.PlaceOrderPayload) (int, error) {
	if err := validateStruct(payload); err != nil {
		return 0, err
	}

	orderID, err := s.gateway.Place(ctx, payload)
	if err != nil {
		return 0, err
	}

	if _, err := s.cart.Refresh(ctx); err != nil {
		s.logger.Warn("Cart refresh after placement failed", slog.Any("error", err))
	}

	s.logger.Info("Order placed", slog.Int("orderId", orderID))

	return orderID, nil
}

func (s *orderService) Track(ctx context.Context, orderID int) (*entity.OrderTracking, error) {
	return s.gateway.Track(ctx, orderID)
}

func (s *orderService) TrackingQR(orderID int) ([]byte, error) {
	return s.qr.GenerateTrackingQR(orderID)
}

func (s *orderService) Running(ctx context.Context) ([]entity.Order, error) {
	return s.gateway.Running(ctx)
}

func (s *orderService) List(ctx context.Context) ([]entity.Order, error) {
	return s.gateway.List(ctx)
}

func (s *orderService) Details(ctx context.Context, orderID int) (*entity.Order, error) {
	return s.gateway.Details(ctx, orderID)
}

func (s *orderService) Cancel(ctx context.Context, orderID int, reason string) error {
	return s.gateway.Cancel(ctx, orderID, reason)
}

func (s *orderService) CancellationReasons(ctx context.Context) ([]entity.CancellationReason, error) {
	return s.gateway.CancellationReasons(ctx)
}

func (s *orderService) RefundReasons(ctx context.Context) ([]entity.RefundReason, error) {
	return s.gateway.RefundReasons(ctx)
}

func (s *orderService) RequestRefund(ctx context.Context, req entity.RefundRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}

	return s.gateway.RequestRefund(ctx, req)
}

func (s *orderService) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.gateway.PaymentMethods(ctx)
}

func (s *orderService) SubmitOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error {
	if err := validateStruct(sub); err != nil {
		return err
	}

	return s.gateway.SubmitOfflinePayment(ctx, sub)
}

func (s *orderService) UpdateOfflinePayment(ctx context.Context, sub entity.OfflinePaymentSubmission) error {
	if err := validateStruct(sub); err != nil {
		return err
	}

	return s.gateway.UpdateOfflinePayment(ctx, sub)
}

func (s *orderService) SendNotification(ctx context.Context, orderID int, message string) error {
	return s.gateway.SendNotification(ctx, orderID, message)
}

func (s *orderService) ValidateRestaurant(ctx context.Context, restaurantID int) error {
	return s.gateway.ValidateRestaurant(ctx, restaurantID)
}

func (s *orderService) OrderAgain(ctx context.Context, orderID int) error {
	return s.gateway.OrderAgain(ctx, orderID)
}
