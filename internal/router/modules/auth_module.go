package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulatrack/attendance-api/internal/container"
	handlers "github.com/aulatrack/attendance-api/internal/interface/http"
	"github.com/aulatrack/attendance-api/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; internal probes from
	// private addresses bypass them.
	allow := middleware.AllowPrivateIP()
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), allow)
	recoverLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), allow)
	resetLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), allow)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/recover", recoverLimiter, m.Handler.Recover)
	rg.POST("/auth/reset", resetLimiter, m.Handler.Reset)
}
