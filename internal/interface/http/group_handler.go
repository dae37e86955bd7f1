package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/internal/interface/middleware"
	"github.com/aulatrack/attendance-api/pkg/response"
	"github.com/aulatrack/attendance-api/pkg/validation"
)

type GroupHandler struct {
	Svc    *application.GroupService
	Logger *logrus.Logger
}

func NewGroupHandler(svc *application.GroupService, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{Svc: svc, Logger: logger}
}

type groupRequest struct {
	Name string `json:"nombre" binding:"required"`
}

type updateGroupRequest struct {
	Name string `json:"nombre"`
}

func studentJSON(s entity.Student) gin.H {
	return gin.H{
		"id":       s.ID,
		"nombre":   s.FirstName,
		"apellido": s.LastName,
		"correo":   s.Email,
		"foto_url": s.PhotoURL,
	}
}

func groupJSON(g *entity.Group, withStudents bool) gin.H {
	out := gin.H{
		"id":         g.ID,
		"nombre":     g.Name,
		"idUsuario":  g.OwnerID,
		"created_at": g.CreatedAt,
		"updated_at": g.UpdatedAt,
	}
	if withStudents {
		students := make([]gin.H, 0, len(g.Students))
		for _, s := range g.Students {
			students = append(students, studentJSON(s))
		}
		out["alumnos"] = students
	}
	return out
}

// Create POST /api/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uid := c.GetString(middleware.CtxUserIDKey)
	g, err := h.Svc.Create(uid, req.Name)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("create group failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo crear el grupo", nil)
		return
	}
	response.Success(c, http.StatusCreated, groupJSON(g, false), "grupo creado")
}

// Update PUT /api/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	var req updateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	g, err := h.Svc.UpdateName(c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			response.Error[any](c, http.StatusNotFound, "Grupo no encontrado", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo actualizar el grupo", nil)
		return
	}
	response.Success(c, http.StatusOK, groupJSON(g, false), "grupo actualizado")
}

// List GET /api/groups returns the authenticated user's groups with students.
func (h *GroupHandler) List(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	groups, err := h.Svc.ListByOwner(uid)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "no se pudieron obtener los grupos", nil)
		return
	}
	out := make([]gin.H, 0, len(groups))
	for i := range groups {
		out = append(out, groupJSON(&groups[i], true))
	}
	response.Success(c, http.StatusOK, out, "grupos")
}
