package identity

import (
	"context"

	"github.com/atriumstudio/atrium/internal/config"
	"github.com/supabase-community/auth-go"
	"go.uber.org/zap"
)

// supabaseVerifier delegates credential checks and token verification to the
// hosted identity provider. Tokens are supabase access tokens; no local
// session state is kept.
type supabaseVerifier struct {
	client auth.Client
	log    *zap.Logger
}

func NewSupabaseVerifier(cfg *config.Config, log *zap.Logger) AdminVerifier {
	return &supabaseVerifier{
		client: auth.New(cfg.Supabase.ProjectRef, cfg.Supabase.AnonKey),
		log:    log,
	}
}

func (v *supabaseVerifier) SignIn(ctx context.Context, username, password string) (string, error) {
	resp, err := v.client.SignInWithEmailPassword(username, password)
	if err != nil {
		v.log.Debug("supabase sign-in rejected", zap.Error(err))
		return "", ErrInvalidCredentials
	}
	return resp.AccessToken, nil
}

func (v *supabaseVerifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	if _, err := v.client.WithToken(token).GetUser(); err != nil {
		return ErrInvalidToken
	}
	return nil
}

// SignOut invalidates the access token server-side; a failure only means the
// token lives until its natural expiry.
func (v *supabaseVerifier) SignOut(ctx context.Context, token string) error {
	if err := v.client.WithToken(token).Logout(); err != nil {
		v.log.Debug("supabase logout failed", zap.Error(err))
	}
	return nil
}
