package middlewares

import (
	"github.com/gin-gonic/gin"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"

	"restaurants/pkg/logger"
	"restaurants/pkg/utils/v"
)

// SetZapLogger 设置请求日志，请求头X-Trace-ID为空时自动生成
func SetZapLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(v.HeaderTraceID)
		if traceID == "" {
			traceID = uuid.NewV4().String()
			c.Request.Header.Set(v.HeaderTraceID, traceID) // 请求头
		}
		c.Writer.Header().Set(v.HeaderTraceID, traceID) // 响应头

		l := base.With(
			zap.String("trace_id", traceID),
			zap.String("client_ip", c.ClientIP()),
		)
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), l))
		c.Next()
	}
}
