package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"nosh/internal/delivery/http/response"
	"nosh/internal/domain/entity"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// List returns the cached cart, refreshing it from the backend first.
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.uc.Refresh(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Add puts an item into the cart.
func (h *CartHandler) Add(c echo.Context) error {
	var m entity.CartMutation
	if err := c.Bind(&m); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(m); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	items, err := h.uc.Add(c.Request().Context(), m)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Item added")
}

// Update changes the quantity of a cart line.
func (h *CartHandler) Update(c echo.Context) error {
	var m entity.CartMutation
	if err := c.Bind(&m); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(m); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	items, err := h.uc.Update(c.Request().Context(), m)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Item updated")
}

// Remove deletes a single cart line.
func (h *CartHandler) Remove(c echo.Context) error {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item id")
	}

	items, err := h.uc.Remove(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Item removed")
}

type bulkCartInput struct {
	Items []entity.CartMutation `json:"items" validate:"required,min=1,dive"`
}

// AddMultiple puts several items into the cart in one call.
func (h *CartHandler) AddMultiple(c echo.Context) error {
	var input bulkCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	items, err := h.uc.AddMultiple(c.Request().Context(), input.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items added")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, []entity.CartItem{}, "Cart cleared")
}
