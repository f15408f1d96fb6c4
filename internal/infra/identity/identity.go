// Package identity owns admin sign-in and token verification. Two
// implementations exist, matching the two backing policies: a redis-session
// verifier for the local demo mode and a supabase verifier for remote mode.
package identity

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AdminVerifier is what the auth middleware and the login/logout handlers
// program against. Tokens are opaque bearer strings.
type AdminVerifier interface {
	SignIn(ctx context.Context, username, password string) (token string, err error)
	Verify(ctx context.Context, token string) error
	SignOut(ctx context.Context, token string) error
}
