package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/atriumstudio/atrium/internal/telemetry"
)

// OtelTracing instruments API requests with OpenTelemetry spans.
func OtelTracing(serviceName string) gin.HandlerFunc {
	return telemetry.GinMiddleware(serviceName)
}

// TraceID exposes the current trace id on the response for log correlation.
func TraceID() gin.HandlerFunc {
	return telemetry.TraceIDMiddleware()
}
