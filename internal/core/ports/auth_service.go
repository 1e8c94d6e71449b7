package ports

import (
	"context"

	"github.com/jurisdesk/case-tracker/internal/core/domain"
)

// AuthService exposes registration, login and the per-request identity gate.
type AuthService interface {
	// Register stores a new account with a hashed password. No token is
	// issued; login is a separate step.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token together
	// with the public profile. Unknown email and wrong password are
	// indistinguishable to the caller.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Authenticate resolves a presented token to a live account with the
	// password hash stripped. It is the identity gate every protected
	// operation passes through.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// LoginThrottle limits consecutive failed login attempts per email.
type LoginThrottle interface {
	// Allow reports whether another attempt is permitted for email.
	Allow(ctx context.Context, email string) (bool, error)
	// Failure records a failed attempt.
	Failure(ctx context.Context, email string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, email string) error
}
