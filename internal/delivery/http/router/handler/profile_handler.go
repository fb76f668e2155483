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

// ProfileHandler holds dependencies for customer profile handlers,
// including the notification inbox.
type ProfileHandler struct {
	uc            usecase.ProfileUsecase
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, notifications usecase.NotificationUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, notifications: notifications, logger: logger}
}

type interestInput struct {
	CategoryIDs []int `json:"category_ids" validate:"required,min=1"`
}

// Info returns the customer profile.
func (h *ProfileHandler) Info(c echo.Context) error {
	customer, err := h.uc.Info(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// Update changes the customer profile.
func (h *ProfileHandler) Update(c echo.Context) error {
	var update entity.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := h.uc.Update(c.Request().Context(), update); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated")
}

// RemoveAccount deletes the account and ends the local session.
func (h *ProfileHandler) RemoveAccount(c echo.Context) error {
	if err := h.uc.RemoveAccount(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account removed")
}

// UpdateInterest replaces the customer's category interests.
func (h *ProfileHandler) UpdateInterest(c echo.Context) error {
	var input interestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid interest input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.UpdateInterest(c.Request().Context(), input.CategoryIDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Interests updated")
}

// SuggestedFoods returns the personalised suggestions.
func (h *ProfileHandler) SuggestedFoods(c echo.Context) error {
	products, err := h.uc.SuggestedFoods(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// FoodList returns the favourite food list.
func (h *ProfileHandler) FoodList(c echo.Context) error {
	products, err := h.uc.FoodList(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Notifications returns the notification inbox.
func (h *ProfileHandler) Notifications(c echo.Context) error {
	notifications, err := h.notifications.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}
