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

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{uc: uc, logger: logger}
}

// Current returns the in-memory session state.
func (h *SessionHandler) Current(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Current(), "")
}

// Login handles the login request.
func (h *SessionHandler) Login(c echo.Context) error {
	var creds entity.Credentials
	if err := c.Bind(&creds); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(creds); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	session, err := h.uc.Login(c.Request().Context(), creds)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Login successful")
}

// SignUp handles the registration request.
func (h *SessionHandler) SignUp(c echo.Context) error {
	var payload entity.SignUpPayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	session, err := h.uc.SignUp(c.Request().Context(), payload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Account created")
}

// ContinueAsGuest obtains a guest session.
func (h *SessionHandler) ContinueAsGuest(c echo.Context) error {
	session, err := h.uc.ContinueAsGuest(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Guest session started")
}

// Logout tears the session down.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

type phoneInput struct {
	Phone string `json:"phone" validate:"required"`
}

type verifyTokenInput struct {
	Phone      string `json:"phone" validate:"required"`
	ResetToken string `json:"reset_token" validate:"required"`
}

type resetPasswordInput struct {
	Phone      string `json:"phone" validate:"required"`
	ResetToken string `json:"reset_token" validate:"required"`
	Password   string `json:"password" validate:"required,min=6"`
}

type otpInput struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	OTP   string `json:"otp" validate:"required"`
}

type emailInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword starts the password reset flow.
func (h *SessionHandler) ForgotPassword(c echo.Context) error {
	var input phoneInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input.Phone); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Reset code sent")
}

// VerifyToken checks a password reset token.
func (h *SessionHandler) VerifyToken(c echo.Context) error {
	var input verifyTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.VerifyToken(c.Request().Context(), input.Phone, input.ResetToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Token verified")
}

// ResetPassword completes the password reset flow.
func (h *SessionHandler) ResetPassword(c echo.Context) error {
	var input resetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input.Phone, input.ResetToken, input.Password); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset")
}

// VerifyPhone confirms a phone number with an OTP.
func (h *SessionHandler) VerifyPhone(c echo.Context) error {
	var input otpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.VerifyPhone(c.Request().Context(), input.Phone, input.OTP); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone verified")
}

// VerifyEmail confirms an email address with an OTP.
func (h *SessionHandler) VerifyEmail(c echo.Context) error {
	var input otpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.VerifyEmail(c.Request().Context(), input.Email, input.OTP); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email verified")
}

// CheckEmail reports whether an email is available for registration.
func (h *SessionHandler) CheckEmail(c echo.Context) error {
	var input emailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", err.Error())
	}

	if err := h.uc.CheckEmail(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Email available")
}
