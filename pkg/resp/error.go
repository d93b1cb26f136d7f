package resp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurants/pkg/code"
	"restaurants/pkg/logger"
)

// Error answers with the first ErrorCode found in err's chain, anything else is an unknown 500
func Error(c *gin.Context, err error) {
	var e code.ErrorCode
	if !errors.As(err, &e) {
		e = code.ErrCodeUnknown.WithResult(fmt.Sprintf("%v", err))
	}
	l := logger.From(c.Request.Context())
	if e.StatusCode() >= http.StatusInternalServerError {
		l.Error("request failed", zap.Error(err))
	} else {
		l.Warn("request rejected", zap.Error(err))
	}
	c.AbortWithStatusJSON(e.StatusCode(), e)
}

// ErrorParam answers 400 with the binding error as result
func ErrorParam(c *gin.Context, err error) {
	Error(c, code.ErrInvalidParam.WithResult(err.Error()))
}
