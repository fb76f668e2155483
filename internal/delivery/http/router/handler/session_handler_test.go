package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nosh/internal/delivery/http/validator"
	"nosh/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionUsecase struct {
	session  entity.Session
	loginErr error

	lastCreds entity.Credentials
}

func (s *stubSessionUsecase) Restore(ctx context.Context) (entity.Session, error) {
	return s.session, nil
}

func (s *stubSessionUsecase) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	s.lastCreds = creds
	if s.loginErr != nil {
		return entity.Session{}, s.loginErr
	}

	return s.session, nil
}

func (s *stubSessionUsecase) SignUp(ctx context.Context, payload entity.SignUpPayload) (entity.Session, error) {
	return s.session, nil
}

func (s *stubSessionUsecase) ContinueAsGuest(ctx context.Context) (entity.Session, error) {
	return s.session, nil
}

func (s *stubSessionUsecase) Logout(ctx context.Context) error { return nil }
func (s *stubSessionUsecase) ForceLogout(ctx context.Context)  {}
func (s *stubSessionUsecase) Current() entity.Session          { return s.session }

func (s *stubSessionUsecase) ForgotPassword(ctx context.Context, phone string) error { return nil }
func (s *stubSessionUsecase) VerifyToken(ctx context.Context, phone, resetToken string) error {
	return nil
}
func (s *stubSessionUsecase) ResetPassword(ctx context.Context, phone, resetToken, password string) error {
	return nil
}
func (s *stubSessionUsecase) VerifyPhone(ctx context.Context, phone, otp string) error { return nil }
func (s *stubSessionUsecase) VerifyEmail(ctx context.Context, email, otp string) error { return nil }
func (s *stubSessionUsecase) CheckEmail(ctx context.Context, email string) error       { return nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestSessionHandler_Login(t *testing.T) {
	stub := &stubSessionUsecase{session: entity.Session{IsLoggedIn: true, Token: "jwt-token"}}
	h := NewSessionHandler(stub, slog.Default())

	e := newTestEcho()
	body := `{"email_or_phone":"user@example.com","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@example.com", stub.lastCreds.EmailOrPhone)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "jwt-token")
}

func TestSessionHandler_LoginRejectsMissingPassword(t *testing.T) {
	stub := &stubSessionUsecase{}
	h := NewSessionHandler(stub, slog.Default())

	e := newTestEcho()
	body := `{"email_or_phone":"user@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/session/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	assert.Empty(t, stub.lastCreds.EmailOrPhone, "usecase must not be reached on invalid input")
}

func TestSessionHandler_Current(t *testing.T) {
	stub := &stubSessionUsecase{session: entity.Session{IsGuest: true, Token: "guest-token"}}
	h := NewSessionHandler(stub, slog.Default())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Current(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"IsGuest":true`)
}
