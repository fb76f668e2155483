package handler

import (
	"log/slog"
	"net/http"

	"nosh/internal/delivery/http/response"
	"nosh/internal/domain/entity"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

type cancelOrderInput struct {
	Reason string `json:"reason" validate:"required"`
}

type orderMessageInput struct {
	Message string `json:"message" validate:"required"`
}

// Place submits an order built from the current cart.
func (h *OrderHandler) Place(c echo.Context) error {
	var payload entity.PlaceOrderPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	orderID, err := h.uc.Place(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"order_id": orderID}, "Order placed")
}

// Track returns the live tracking state of an order.
func (h *OrderHandler) Track(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	tracking, err := h.uc.Track(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tracking, "")
}

// TrackingQR renders the tracking link of an order as a PNG QR code.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	png, err := h.uc.TrackingQR(id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Running returns the orders still in flight.
func (h *OrderHandler) Running(c echo.Context) error {
	orders, err := h.uc.Running(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// List returns the order history.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// Details returns a single order.
func (h *OrderHandler) Details(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.uc.Details(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// Cancel cancels a running order with a reason.
func (h *OrderHandler) Cancel(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	var input cancelOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancel input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.Cancel(c.Request().Context(), id, input.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order cancelled")
}

// CancellationReasons returns the selectable cancellation reasons.
func (h *OrderHandler) CancellationReasons(c echo.Context) error {
	reasons, err := h.uc.CancellationReasons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reasons, "")
}

// RefundReasons returns the selectable refund reasons.
func (h *OrderHandler) RefundReasons(c echo.Context) error {
	reasons, err := h.uc.RefundReasons(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reasons, "")
}

// RequestRefund files a refund request for a delivered order.
func (h *OrderHandler) RequestRefund(c echo.Context) error {
	var req entity.RefundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refund input")
	}

	if err := h.uc.RequestRefund(c.Request().Context(), req); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Refund requested")
}

// PaymentMethods returns the available payment methods.
func (h *OrderHandler) PaymentMethods(c echo.Context) error {
	methods, err := h.uc.PaymentMethods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// SubmitOfflinePayment records an offline payment for an order.
func (h *OrderHandler) SubmitOfflinePayment(c echo.Context) error {
	var sub entity.OfflinePaymentSubmission
	if err := c.Bind(&sub); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := h.uc.SubmitOfflinePayment(c.Request().Context(), sub); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment submitted")
}

// UpdateOfflinePayment corrects a previously submitted offline payment.
func (h *OrderHandler) UpdateOfflinePayment(c echo.Context) error {
	var sub entity.OfflinePaymentSubmission
	if err := c.Bind(&sub); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := h.uc.UpdateOfflinePayment(c.Request().Context(), sub); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment updated")
}

// SendNotification pings the restaurant about an order.
func (h *OrderHandler) SendNotification(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	var input orderMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.SendNotification(c.Request().Context(), id, input.Message); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification sent")
}

// ValidateRestaurant checks that a restaurant can currently take orders.
func (h *OrderHandler) ValidateRestaurant(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant id")
	}

	if err := h.uc.ValidateRestaurant(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Restaurant available")
}

// OrderAgain refills the cart from a past order.
func (h *OrderHandler) OrderAgain(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order id")
	}

	if err := h.uc.OrderAgain(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart refilled from order")
}
