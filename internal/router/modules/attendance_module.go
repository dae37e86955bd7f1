package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulatrack/attendance-api/internal/container"
	handlers "github.com/aulatrack/attendance-api/internal/interface/http"
	"github.com/aulatrack/attendance-api/internal/interface/middleware"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

type AttendanceModule struct {
	Handler *handlers.AttendanceHandler
	JWT     *helpers.JWTManager
}

func NewAttendanceModule(h *handlers.AttendanceHandler, jwt *helpers.JWTManager) *AttendanceModule {
	return &AttendanceModule{Handler: h, JWT: jwt}
}

func (m *AttendanceModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/attendances", m.Handler.Create)
		auth.GET("/attendances", m.Handler.List)
		auth.GET("/attendances/:id", m.Handler.Get)
		auth.PUT("/attendances/:id", m.Handler.Update)
		auth.DELETE("/attendances/:id", m.Handler.Delete)
	}
}
