package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurants/internal/controllers"
	"restaurants/internal/middleware"
	"restaurants/internal/service"
	"restaurants/pkg/logger"
	"restaurants/pkg/middlewares"
)

// New gin router
func New(srv service.Service, verifier middleware.Verifier, opts ...Option) *gin.Engine {
	o := &option{
		serviceName: "restaurants",
		logger:      zap.NewNop(),
	}
	for _, f := range opts {
		f(o)
	}
	router := gin.New()

	// add middleware
	router.Use(
		middlewares.SetZapLogger(o.logger),
		middlewares.Log,
		middlewares.Recovery,
		middlewares.CrossDomain(o.origins...),
		middlewares.Metric,
		middlewares.Tracing(o.serviceName),
	)
	if o.qps > 0 {
		router.Use(middlewares.RateLimit(o.rateLimiter))
	}

	router.GET("/health", controllers.Health(o.health))
	if o.metrics != nil {
		router.GET("/metrics", gin.WrapH(o.metrics))
	}
	logger.RegisterLog(router.Group("/debug"))

	api := router.Group("/api", middleware.Authenticate(verifier))
	registerCity(api, srv)
	registerRestaurant(api, srv)
	return router
}
