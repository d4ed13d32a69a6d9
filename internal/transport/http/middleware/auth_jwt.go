package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"customer-api/internal/core/auth"
	resp "customer-api/internal/transport/http/response"
)

const KeyUserID = "userId"

// AuthJWT 校验 Bearer 令牌并把 uid 放进上下文；失败的请求到不了 handler
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Message{Message: "Missing or invalid authorization header"})
			return
		}
		uid, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, resp.Message{Message: "Invalid or expired token"})
			return
		}
		c.Set(KeyUserID, uid)
		c.Next()
	}
}
