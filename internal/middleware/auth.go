package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"restaurants/pkg/code"
	"restaurants/pkg/logger"
	"restaurants/pkg/resp"
	"restaurants/pkg/token"
	"restaurants/pkg/utils/v"
)

// Verifier checks a bearer token and returns its claims
type Verifier interface {
	Verify(tokenStr string) (*token.Claims, error)
}

// Authenticate 检查请求头中的Bearer Token，失败返回401
func Authenticate(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(v.HeaderAuthorization)
		if !strings.HasPrefix(header, v.BearerScheme) {
			resp.Error(c, code.ErrUnauthorized.WithResult("missing bearer token"))
			return
		}
		claims, err := verifier.Verify(strings.TrimSpace(strings.TrimPrefix(header, v.BearerScheme)))
		if err != nil {
			resp.Error(c, code.ErrUnauthorized.WithResult(err.Error()))
			return
		}
		c.Set(v.KeySubject, claims.Subject)
		ctx := c.Request.Context()
		c.Request = c.Request.WithContext(logger.With(ctx,
			logger.From(ctx).With(zap.String("subject", claims.Subject))))
		c.Next()
	}
}
