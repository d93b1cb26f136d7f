package middlewares

import (
	"errors"
	"net"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurants/pkg/code"
	"restaurants/pkg/logger"
	"restaurants/pkg/prometheus"
	"restaurants/pkg/resp"
	"restaurants/pkg/utils/v"
)

// Recovery turns a panic into a 500, counts it and logs the request with its credentials masked
func Recovery(c *gin.Context) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		l := logger.From(c.Request.Context())
		prometheus.PanicCounterVec.WithLabelValues(c.Request.Method, c.FullPath()).Inc()
		l.Error("panic recovered",
			zap.String("request", dumpMasked(c)),
			zap.Any("panic", r),
			zap.ByteString("stack", debug.Stack()))
		// 客户端已断开，无需响应
		if clientGone(r) {
			c.Abort()
			return
		}
		resp.Error(c, code.ErrInternalServerError.WithResult(r))
	}()
	c.Next()
}

func dumpMasked(c *gin.Context) string {
	req := c.Request.Clone(c.Request.Context())
	if req.Header.Get(v.HeaderAuthorization) != "" {
		req.Header.Set(v.HeaderAuthorization, "*")
	}
	dump, err := httputil.DumpRequest(req, false)
	if err != nil {
		return err.Error()
	}
	return string(dump)
}

func clientGone(r interface{}) bool {
	ne, ok := r.(*net.OpError)
	if !ok {
		return false
	}
	var se *os.SyscallError
	if !errors.As(ne.Err, &se) {
		return false
	}
	msg := strings.ToLower(se.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
