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

// WalletHandler holds dependencies for wallet and loyalty handlers.
type WalletHandler struct {
	uc     usecase.WalletUsecase
	logger *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler, injected by Fx.
func NewWalletHandler(uc usecase.WalletUsecase, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{uc: uc, logger: logger}
}

// Transactions returns the wallet transaction history.
func (h *WalletHandler) Transactions(c echo.Context) error {
	transactions, err := h.uc.Transactions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "")
}

// AddFund tops the wallet up through a payment gateway.
func (h *WalletHandler) AddFund(c echo.Context) error {
	var payload entity.AddFundPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fund input")
	}

	if err := h.uc.AddFund(c.Request().Context(), payload); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Fund request submitted")
}

// Bonuses returns the active wallet bonus campaigns.
func (h *WalletHandler) Bonuses(c echo.Context) error {
	bonuses, err := h.uc.Bonuses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bonuses, "")
}

// LoyaltyTransactions returns the loyalty point history.
func (h *WalletHandler) LoyaltyTransactions(c echo.Context) error {
	transactions, err := h.uc.LoyaltyTransactions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "")
}

// TransferPoints converts loyalty points into wallet balance.
func (h *WalletHandler) TransferPoints(c echo.Context) error {
	var payload entity.PointTransferPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transfer input")
	}

	if err := h.uc.TransferPoints(c.Request().Context(), payload); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Points transferred")
}

// OfflinePaymentMethods returns the configured offline payment channels.
func (h *WalletHandler) OfflinePaymentMethods(c echo.Context) error {
	methods, err := h.uc.OfflinePaymentMethods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}
