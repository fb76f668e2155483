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

// LocationHandler holds dependencies for delivery location handlers.
type LocationHandler struct {
	uc     usecase.LocationUsecase
	logger *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{uc: uc, logger: logger}
}

// Current returns the in-memory location.
func (h *LocationHandler) Current(c echo.Context) error {
	loc := h.uc.Current()
	if loc == nil {
		return response.NotFound(c, "NO_LOCATION", "No delivery location set")
	}

	return response.Success(c, http.StatusOK, loc, "")
}

type setLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Address   string  `json:"address,omitempty"`
}

// Set stores a location from explicit coordinates, resolving its zone.
func (h *LocationHandler) Set(c echo.Context) error {
	var input setLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	zoneID, err := h.uc.ResolveZone(c.Request().Context(), input.Latitude, input.Longitude)
	if err != nil {
		return errors.WithStack(err)
	}

	loc := entity.Location{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		ZoneID:    zoneID,
		Address:   input.Address,
	}
	if err := h.uc.SetLocation(c.Request().Context(), loc); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loc, "Location set")
}

// UseDevice acquires the device position and stores it as the location.
func (h *LocationHandler) UseDevice(c echo.Context) error {
	loc, err := h.uc.UseDeviceLocation(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loc, "Location set from device")
}

type manualAddressInput struct {
	Address string `json:"address" validate:"required"`
}

// SetManual geocodes a typed address and stores it as the location.
func (h *LocationHandler) SetManual(c echo.Context) error {
	var input manualAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	loc, err := h.uc.SetManualAddress(c.Request().Context(), input.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loc, "Location set from address")
}

// Zones lists the available service zones.
func (h *LocationHandler) Zones(c echo.Context) error {
	zones, err := h.uc.AvailableZones(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, zones, "")
}

// CheckZone reports whether a coordinate pair falls inside a zone.
func (h *LocationHandler) CheckZone(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lat query parameter")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lng query parameter")
	}

	inside, err := h.uc.CheckZone(c.Request().Context(), lat, lng, c.QueryParam("zone_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"inside": inside}, "")
}
