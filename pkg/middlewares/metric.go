package middlewares

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"restaurants/pkg/prometheus"
)

// Metric 埋点，按路由统计请求数和耗时
func Metric(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	status := c.Writer.Status()
	if status == 0 {
		status = http.StatusOK
	}
	prometheus.RequestCounterVec.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
	prometheus.RequestDurationVec.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
}
