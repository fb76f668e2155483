package usecase

import (
	"context"

	"nosh/internal/domain/entity"
)

// SessionUsecase manages the authenticated state: obtaining a session,
// restoring it across launches, and tearing it down. The persisted token
// is the source of truth; the in-memory session is derived from it and
// only updated after the persisted write succeeded.
type SessionUsecase interface {
	// Restore rebuilds the session from the persisted token. A missing
	// token, a token without a valid user-type marker, or an expired token
	// all resolve to a logged-out session without error.
	Restore(ctx context.Context) (entity.Session, error)

	Login(ctx context.Context, creds entity.Credentials) (entity.Session, error)
	SignUp(ctx context.Context, payload entity.SignUpPayload) (entity.Session, error)

	// ContinueAsGuest obtains a guest session bound to the stable device
	// id, generating and persisting the id on first use.
	ContinueAsGuest(ctx context.Context) (entity.Session, error)

	// Logout clears the persisted token and marker, then the in-memory
	// session. A storage failure is returned and leaves the session as is.
	Logout(ctx context.Context) error

	// ForceLogout is the unauthorized-response path: best effort, never
	// fails, always resets the in-memory session.
	ForceLogout(ctx context.Context)

	// Current returns the in-memory session.
	Current() entity.Session

	ForgotPassword(ctx context.Context, phone string) error
	VerifyToken(ctx context.Context, phone, resetToken string) error
	ResetPassword(ctx context.Context, phone, resetToken, password string) error
	VerifyPhone(ctx context.Context, phone, otp string) error
	VerifyEmail(ctx context.Context, email, otp string) error
	CheckEmail(ctx context.Context, email string) error
}
