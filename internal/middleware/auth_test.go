package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/infra/identity"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	serializer.SetLogger(zap.NewNop())

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{Admin: config.AdminConfig{
		Username:      "admin",
		Password:      "hunter2",
		SessionTTLMin: 60,
	}}
	verifier := identity.NewLocalVerifier(rdb, cfg, zap.NewNop())

	token, err := verifier.SignIn(context.Background(), "admin", "hunter2")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", AdminAuth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, serializer.Response{Msg: "ok", Data: c.GetString("admin_token")})
	})
	return r, token
}

func TestAdminAuth(t *testing.T) {
	r, token := setupAuthRouter(t)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid token accepted", header: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header rejected", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme rejected", header: "Basic " + token, wantStatus: http.StatusUnauthorized},
		{name: "unknown token rejected", header: "Bearer not-a-session", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
