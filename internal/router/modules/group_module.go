package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulatrack/attendance-api/internal/container"
	handlers "github.com/aulatrack/attendance-api/internal/interface/http"
	"github.com/aulatrack/attendance-api/internal/interface/middleware"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

// GroupModule registers group routes plus student enrollment under a group.
type GroupModule struct {
	Groups   *handlers.GroupHandler
	Students *handlers.StudentHandler
	JWT      *helpers.JWTManager
}

func NewGroupModule(g *handlers.GroupHandler, s *handlers.StudentHandler, jwt *helpers.JWTManager) *GroupModule {
	return &GroupModule{Groups: g, Students: s, JWT: jwt}
}

func (m *GroupModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/groups", m.Groups.Create)
		auth.GET("/groups", m.Groups.List)
		auth.PUT("/groups/:id", m.Groups.Update)
		auth.POST("/groups/:id/students", m.Students.CreateInGroup)
		auth.GET("/groups/:id/students", m.Students.ListByGroup)
	}
}
