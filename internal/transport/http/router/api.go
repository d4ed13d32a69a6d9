package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"customer-api/internal/core/auth"
	"customer-api/internal/core/server"
	"customer-api/internal/transport/http/handler"
	mdw "customer-api/internal/transport/http/middleware"
)

type Options struct {
	// DebugUserList 挂不挂 /listofusers（全量 PII，默认不挂）
	DebugUserList bool
}

func NewAPIEngine(l *zap.Logger, h *handler.UserHandler, jwter *auth.JWTer, opt Options) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", h.Home)
	r.POST("/user", h.Register)
	r.POST("/login", h.Login)
	r.GET("/user", mdw.AuthJWT(jwter), h.Me)
	r.GET("/user/:id", h.GetByID)
	r.DELETE("/user/:id", h.Delete)

	if opt.DebugUserList {
		r.GET("/listofusers", h.ListAll)
	}

	return r
}
