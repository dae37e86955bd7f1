package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aulatrack/attendance-api/internal/container"
	handlers "github.com/aulatrack/attendance-api/internal/interface/http"
	"github.com/aulatrack/attendance-api/internal/interface/middleware"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

type StudentModule struct {
	Handler *handlers.StudentHandler
	JWT     *helpers.JWTManager
}

func NewStudentModule(h *handlers.StudentHandler, jwt *helpers.JWTManager) *StudentModule {
	return &StudentModule{Handler: h, JWT: jwt}
}

func (m *StudentModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		// /students/search before /students/:id so the router does not
		// treat "search" as an id.
		auth.GET("/students", m.Handler.List)
		auth.GET("/students/search", m.Handler.Search)
		auth.GET("/students/:id", m.Handler.Get)
		auth.PUT("/students/:id", m.Handler.Update)
		auth.POST("/students/:id/photo", m.Handler.UploadPhoto)
	}
}
