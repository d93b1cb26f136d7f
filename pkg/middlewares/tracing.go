package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"restaurants/pkg/utils/v"
)

var (
	methodKey  = attribute.Key("http.method")
	routeKey   = attribute.Key("http.route")
	statusKey  = attribute.Key("http.status_code")
	traceIDKey = attribute.Key("restaurants.trace_id")
)

// Tracing starts a server span per request named after the matched route
func Tracing(service string) gin.HandlerFunc {
	tracer := otel.Tracer(service)
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		ctx, span := tracer.Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				methodKey.String(c.Request.Method),
				routeKey.String(route),
				traceIDKey.String(c.GetHeader(v.HeaderTraceID)),
			))
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(statusKey.Int(status))
		if status >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
	}
}
