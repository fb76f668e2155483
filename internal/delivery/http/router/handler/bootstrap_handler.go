package handler

import (
	"log/slog"
	"net/http"

	"nosh/internal/delivery/http/response"
	"nosh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BootstrapHandler holds dependencies for startup resolution handlers.
type BootstrapHandler struct {
	uc     usecase.BootstrapUsecase
	logger *slog.Logger
}

// NewBootstrapHandler is the constructor for BootstrapHandler, injected by Fx.
func NewBootstrapHandler(uc usecase.BootstrapUsecase, logger *slog.Logger) *BootstrapHandler {
	return &BootstrapHandler{uc: uc, logger: logger}
}

// Run restores all persisted state and returns the resolved target.
func (h *BootstrapHandler) Run(c echo.Context) error {
	target, err := h.uc.Run(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"target":   target,
		"snapshot": h.uc.Snapshot(),
	}, "Bootstrap complete")
}

// Target re-evaluates the resolution against the current state.
func (h *BootstrapHandler) Target(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"target":   h.uc.Target(),
		"snapshot": h.uc.Snapshot(),
	}, "")
}

// CompleteOnboarding marks the first launch as consumed.
func (h *BootstrapHandler) CompleteOnboarding(c echo.Context) error {
	if err := h.uc.CompleteOnboarding(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"target": h.uc.Target()}, "Onboarding completed")
}
