package identity

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/pkg/secrets"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "atrium:admin_session:"

// localVerifier checks the fixed credential pair from config and keeps issued
// session tokens in redis with a TTL. Logout is an explicit key delete.
type localVerifier struct {
	rdb *redis.Client
	cfg *config.Config
	log *zap.Logger
}

func NewLocalVerifier(rdb *redis.Client, cfg *config.Config, log *zap.Logger) AdminVerifier {
	return &localVerifier{rdb: rdb, cfg: cfg, log: log}
}

func (v *localVerifier) checkPassword(password string) bool {
	if phc := v.cfg.Admin.PasswordPHC; phc != "" {
		ok, err := secrets.VerifyPassword(password, phc)
		if err != nil {
			v.log.Warn("admin password hash is malformed", zap.Error(err))
			return false
		}
		return ok
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(v.cfg.Admin.Password)) == 1
}

func (v *localVerifier) SignIn(ctx context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.cfg.Admin.Username)) == 1
	passOK := v.checkPassword(password)
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	ttl := time.Duration(v.cfg.Admin.SessionTTLMin) * time.Minute
	if err := v.rdb.Set(ctx, sessionKeyPrefix+token, v.cfg.Admin.Username, ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (v *localVerifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	err := v.rdb.Get(ctx, sessionKeyPrefix+token).Err()
	if err == redis.Nil {
		return ErrInvalidToken
	}
	return err
}

func (v *localVerifier) SignOut(ctx context.Context, token string) error {
	return v.rdb.Del(ctx, sessionKeyPrefix+token).Err()
}
