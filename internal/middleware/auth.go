package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/atriumstudio/atrium/internal/infra/identity"
	"github.com/atriumstudio/atrium/internal/modules/serializer"
)

// AdminAuth authenticates admin requests with a bearer token checked against
// the configured verifier. The raw token is stashed in the context so the
// logout handler can revoke it.
func AdminAuth(verifier identity.AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		ctx, authSpan := otel.Tracer("middleware").Start(ctx, "admin_auth",
			trace.WithAttributes(attribute.String("middleware", "admin_auth")))

		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}
		token := strings.TrimPrefix(auth, "Bearer ")

		if err := verifier.Verify(ctx, token); err != nil {
			authSpan.SetAttributes(attribute.Bool("authenticated", false))
			authSpan.End()
			c.AbortWithStatusJSON(http.StatusUnauthorized, serializer.AuthErr("Unauthorized"))
			return
		}

		authSpan.SetAttributes(attribute.Bool("authenticated", true))
		authSpan.End()

		c.Set("admin_token", token)
		c.Next()
	}
}
