package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"restaurants/pkg/logger"
)

// Log writes one access entry per request, 5xx at error level and 4xx at warn
func Log(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("route", c.FullPath()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
		zap.String("client_ip", c.ClientIP()),
		zap.Int("size", c.Writer.Size()),
	}
	if q := c.Request.URL.RawQuery; q != "" {
		fields = append(fields, zap.String("query", q))
	}
	if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
		fields = append(fields, zap.String("errors", msg))
	}
	level := zapcore.InfoLevel
	switch {
	case status >= 500:
		level = zapcore.ErrorLevel
	case status >= 400:
		level = zapcore.WarnLevel
	}
	if ce := logger.From(c.Request.Context()).Check(level, "access"); ce != nil {
		ce.Write(fields...)
	}
}
