package backend

import (
	"context"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"

	"github.com/pkg/errors"
)

type authAPI struct {
	client *Client
}

// NewAuthAPI is the constructor for the auth gateway.
func NewAuthAPI(client *Client) repository.AuthGateway {
	return &authAPI{client: client}
}

// tokenResponse is the shape shared by login, sign-up and guest login.
type tokenResponse struct {
	Token string `json:"token"`
}

func (a *authAPI) Login(ctx context.Context, creds entity.Credentials) (string, error) {
	var resp tokenResponse
	if err := a.client.Post(ctx, endpointAuthLogin, creds, &resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", errors.WithStack(domainerrors.ErrNoToken)
	}

	return resp.Token, nil
}

func (a *authAPI) SignUp(ctx context.Context, payload entity.SignUpPayload) (string, error) {
	var resp tokenResponse
	if err := a.client.Post(ctx, endpointAuthSignUp, payload, &resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", errors.WithStack(domainerrors.ErrNoToken)
	}

	return resp.Token, nil
}

func (a *authAPI) GuestLogin(ctx context.Context, deviceID string) (string, error) {
	body := map[string]string{"fcm_token": "", "device_id": deviceID}

	var resp tokenResponse
	if err := a.client.Post(ctx, endpointAuthGuestLogin, body, &resp); err != nil {
		return "", err
	}

	if resp.Token == "" {
		return "", errors.WithStack(domainerrors.ErrNoToken)
	}

	return resp.Token, nil
}

func (a *authAPI) ForgotPassword(ctx context.Context, phone string) error {
	return a.client.Post(ctx, endpointAuthForgotPassword, map[string]string{"phone": phone}, nil)
}

func (a *authAPI) VerifyToken(ctx context.Context, phone, resetToken string) error {
	body := map[string]string{"phone": phone, "reset_token": resetToken}

	return a.client.Post(ctx, endpointAuthVerifyToken, body, nil)
}

func (a *authAPI) ResetPassword(ctx context.Context, phone, resetToken, password string) error {
	body := map[string]string{
		"phone":            phone,
		"reset_token":      resetToken,
		"password":         password,
		"confirm_password": password,
	}

	return a.client.Post(ctx, endpointAuthResetPassword, body, nil)
}

func (a *authAPI) VerifyPhone(ctx context.Context, phone, otp string) error {
	body := map[string]string{"phone": phone, "otp": otp}

	return a.client.Post(ctx, endpointAuthVerifyPhone, body, nil)
}

func (a *authAPI) VerifyEmail(ctx context.Context, email, otp string) error {
	body := map[string]string{"email": email, "token": otp}

	return a.client.Post(ctx, endpointAuthVerifyEmail, body, nil)
}

func (a *authAPI) CheckEmail(ctx context.Context, email string) error {
	return a.client.Post(ctx, endpointAuthCheckEmail, map[string]string{"email": email}, nil)
}
