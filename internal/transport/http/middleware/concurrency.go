package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "customer-api/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时在处理的请求数，保护下游 DB 和 bcrypt 计算
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, resp.Message{Message: "Server busy"})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
