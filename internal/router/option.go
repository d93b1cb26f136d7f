package router

import (
	"net/http"

	"go.uber.org/zap"

	"restaurants/internal/controllers"
	"restaurants/pkg/clock"
	"restaurants/pkg/limit"
)

type option struct {
	serviceName string
	logger      *zap.Logger
	metrics     http.Handler
	health      controllers.Pinger
	origins     []string
	qps         float32
	burst       int
}

type Option func(*option)

func WithServiceName(name string) Option {
	return func(o *option) {
		if name != "" {
			o.serviceName = name
		}
	}
}

// WithLogger base logger of every request, trace id and client ip are appended
func WithLogger(l *zap.Logger) Option {
	return func(o *option) {
		o.logger = l
	}
}

// WithMetrics serves h on GET /metrics
func WithMetrics(h http.Handler) Option {
	return func(o *option) {
		o.metrics = h
	}
}

// WithHealthCheck makes GET /health ping db
func WithHealthCheck(db controllers.Pinger) Option {
	return func(o *option) {
		o.health = db
	}
}

func WithOrigins(origins ...string) Option {
	return func(o *option) {
		o.origins = origins
	}
}

// WithRateLimit qps <= 0 disables the limiter
func WithRateLimit(qps float32, burst int) Option {
	return func(o *option) {
		o.qps = qps
		o.burst = burst
	}
}

func (o *option) rateLimiter(string) limit.RateLimiter {
	return limit.NewStdRateLimiter(o.qps, o.burst, clock.RealClock{})
}
