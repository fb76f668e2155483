// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// UserType discriminates how the current session was obtained.
// It is persisted alongside the token and read back on boot.
type UserType string

const (
	// UserTypeRegistered marks a session created through login or sign-up.
	UserTypeRegistered UserType = "registered"

	// UserTypeGuest marks a session obtained from the guest-login endpoint.
	UserTypeGuest UserType = "guest"
)

// Valid reports whether the user type is one of the known markers.
func (t UserType) Valid() bool {
	return t == UserTypeRegistered || t == UserTypeGuest
}

// Session is the client-side view of the authenticated state.
// At most one of IsLoggedIn/IsGuest is true at a time, and Token is
// non-empty exactly when one of them is.
type Session struct {
	IsLoggedIn bool   // True for a registered-user session.
	IsGuest    bool   // True for a guest session.
	Token      string // The bearer token issued by the backend.
}

// Active reports whether any session (registered or guest) is present.
func (s Session) Active() bool {
	return s.IsLoggedIn || s.IsGuest
}

// Credentials is the payload for a login attempt.
type Credentials struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required"`
	Password     string `json:"password" validate:"required"`
	LoginType    string `json:"login_type,omitempty"`
}

// SignUpPayload is the payload for registering a new account.
type SignUpPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	RefCode  string `json:"ref_code,omitempty"`
}
