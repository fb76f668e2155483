// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nosh/internal/domain/entity"
	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/repository"
	"nosh/internal/errors"
	"nosh/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type sessionService struct {
	store  repository.KVStore
	auth   repository.AuthGateway
	logger *slog.Logger

	mu      sync.RWMutex
	current entity.Session
}

// NewSessionService creates a new session service instance
func NewSessionService(store repository.KVStore, auth repository.AuthGateway, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		store:  store,
		auth:   auth,
		logger: logger,
	}
}

// Restore rebuilds the session from the persisted token and user-type
// marker. Only a readable token paired with a valid marker produces an
// active session; every degenerate combination resolves to logged out,
// clearing whatever stale state it found.
func (s *sessionService) Restore(ctx context.Context) (entity.Session, error) {
	token, err := s.store.Get(ctx, repository.KeyUserToken)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return s.reset(), nil
		}

		return entity.Session{}, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	marker, err := s.store.Get(ctx, repository.KeyUserType)
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return entity.Session{}, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	userType := entity.UserType(marker)
	if !userType.Valid() {
		// A token without a usable marker cannot be attributed to either
		// session kind; drop it rather than guess.
		s.logger.Warn("Persisted token has no valid user-type marker, clearing",
			slog.String("marker", marker))
		s.clearPersisted(ctx)

		return s.reset(), nil
	}

	if tokenExpired(token) {
		s.logger.Info("Persisted token expired, clearing session")
		s.clearPersisted(ctx)

		return s.reset(), nil
	}

	session := entity.Session{
		IsLoggedIn: userType == entity.UserTypeRegistered,
		IsGuest:    userType == entity.UserTypeGuest,
		Token:      token,
	}
	s.setCurrent(session)

	return session, nil
}

func (s *sessionService) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return entity.Session{}, err
	}

	return s.adopt(ctx, token, entity.UserTypeRegistered)
}

func (s *sessionService) SignUp(ctx context.Context, payload entity.SignUpPayload) (entity.Session, error) {
	token, err := s.auth.SignUp(ctx, payload)
	if err != nil {
		return entity.Session{}, err
	}

	return s.adopt(ctx, token, entity.UserTypeRegistered)
}

func (s *sessionService) ContinueAsGuest(ctx context.Context) (entity.Session, error) {
	deviceID, err := s.deviceID(ctx)
	if err != nil {
		return entity.Session{}, err
	}

	token, err := s.auth.GuestLogin(ctx, deviceID)
	if err != nil {
		return entity.Session{}, err
	}

	return s.adopt(ctx, token, entity.UserTypeGuest)
}

// Logout clears the persisted token and marker. The teardown is best
// effort: one key failing does not leave the other behind, and the
// in-memory session resets either way.
func (s *sessionService) Logout(ctx context.Context) error {
	tokenErr := s.store.Delete(ctx, repository.KeyUserToken)
	markerErr := s.store.Delete(ctx, repository.KeyUserType)

	s.reset()

	if joined := errors.Join(tokenErr, markerErr); joined != nil {
		return errors.Wrap(domainerrors.ErrStorageFailed, joined.Error())
	}

	return nil
}

// ForceLogout is the unauthorized-response path. Unlike Logout it never
// fails: the in-memory session resets regardless of storage.
func (s *sessionService) ForceLogout(ctx context.Context) {
	s.logger.Warn("Forcing logout after unauthorized response")
	s.clearPersisted(ctx)
	s.reset()
}

func (s *sessionService) Current() entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *sessionService) ForgotPassword(ctx context.Context, phone string) error {
	return s.auth.ForgotPassword(ctx, phone)
}

func (s *sessionService) VerifyToken(ctx context.Context, phone, resetToken string) error {
	return s.auth.VerifyToken(ctx, phone, resetToken)
}

func (s *sessionService) ResetPassword(ctx context.Context, phone, resetToken, password string) error {
	return s.auth.ResetPassword(ctx, phone, resetToken, password)
}

func (s *sessionService) VerifyPhone(ctx context.Context, phone, otp string) error {
	return s.auth.VerifyPhone(ctx, phone, otp)
}

func (s *sessionService) VerifyEmail(ctx context.Context, email, otp string) error {
	return s.auth.VerifyEmail(ctx, email, otp)
}

func (s *sessionService) CheckEmail(ctx context.Context, email string) error {
	return s.auth.CheckEmail(ctx, email)
}

// adopt persists a fresh token and marker, then installs the session in
// memory. Memory only changes after both writes succeeded.
func (s *sessionService) adopt(ctx context.Context, token string, userType entity.UserType) (entity.Session, error) {
	if err := s.store.Set(ctx, repository.KeyUserToken, token); err != nil {
		return entity.Session{}, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}
	if err := s.store.Set(ctx, repository.KeyUserType, string(userType)); err != nil {
		return entity.Session{}, errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	session := entity.Session{
		IsLoggedIn: userType == entity.UserTypeRegistered,
		IsGuest:    userType == entity.UserTypeGuest,
		Token:      token,
	}
	s.setCurrent(session)

	return session, nil
}

// deviceID returns the stable device identifier, generating and
// persisting one on first use.
func (s *sessionService) deviceID(ctx context.Context) (string, error) {
	id, err := s.store.Get(ctx, repository.KeyDeviceID)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, repository.ErrKeyNotFound) {
		return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	id = uuid.NewString()
	if err := s.store.Set(ctx, repository.KeyDeviceID, id); err != nil {
		return "", errors.Wrap(domainerrors.ErrStorageFailed, err.Error())
	}

	return id, nil
}

func (s *sessionService) clearPersisted(ctx context.Context) {
	if err := s.store.Delete(ctx, repository.KeyUserToken); err != nil {
		s.logger.Warn("Failed to clear persisted token", slog.Any("error", err))
	}
	if err := s.store.Delete(ctx, repository.KeyUserType); err != nil {
		s.logger.Warn("Failed to clear persisted user type", slog.Any("error", err))
	}
}

func (s *sessionService) setCurrent(session entity.Session) {
	s.mu.Lock()
	s.current = session
	s.mu.Unlock()
}

func (s *sessionService) reset() entity.Session {
	s.setCurrent(entity.Session{})

	return entity.Session{}
}

// tokenExpired reports whether the token is a JWT whose exp claim has
// passed. Opaque tokens carry no readable expiry and are treated as live
// until the backend rejects them.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
