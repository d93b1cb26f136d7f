package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"restaurants/pkg/utils/v"
)

// CrossDomain applies rs/cors and ends preflight requests with 204, origins default to any
func CrossDomain(origins ...string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	policy := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{v.HeaderAuthorization, "Content-Type", v.HeaderTraceID},
		ExposedHeaders: []string{v.HeaderLocation, v.HeaderTraceID},
		MaxAge:         int((12 * time.Hour).Seconds()),
	})
	return func(c *gin.Context) {
		policy.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
		}
	}
}
