package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/mailgun/ttlmap"

	"restaurants/pkg/code"
	"restaurants/pkg/limit"
	"restaurants/pkg/resp"
)

const (
	maxClients = 65536
	// bucketTTL seconds an idle client keeps its bucket
	bucketTTL = 60
)

// RateLimit gives every client ip its own bucket built by newBucket, an empty bucket answers 429
func RateLimit(newBucket func(clientIP string) limit.RateLimiter) gin.HandlerFunc {
	buckets, err := ttlmap.NewConcurrent(maxClients)
	if err != nil {
		panic(err)
	}
	return func(c *gin.Context) {
		ip := c.ClientIP()
		b, ok := buckets.Get(ip)
		if !ok {
			b = newBucket(ip)
		}
		// 每次访问刷新过期时间
		if err := buckets.Set(ip, b, bucketTTL); err != nil {
			resp.Error(c, code.ErrInternalServerError.WithResult(err.Error()))
			return
		}
		if !b.(limit.RateLimiter).TryAccept() {
			resp.Error(c, code.ErrTooManyRequests.WithResult(ip))
			return
		}
		c.Next()
	}
}
