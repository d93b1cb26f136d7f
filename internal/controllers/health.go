package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurants/pkg/logger"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health 健康检查,用于k8s pod的心跳检查，db不为空时数据库不可达返回503
func Health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.From(ctx).Error("health check failed", zap.Error(err))
				c.Status(http.StatusServiceUnavailable)
				return
			}
		}
		c.Status(http.StatusNoContent)
	}
}
