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

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"nombre" binding:"required"`
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"rol" binding:"omitempty,rol"`
}

type updateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,pwd"`
	Role     string `json:"rol" binding:"omitempty,rol"`
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"nombre":     u.Name,
		"correo":     u.Email,
		"rol":        u.Role,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// Create POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(application.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("create user failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo crear el usuario", nil)
		return
	}
	response.Success(c, http.StatusCreated, userJSON(u), "usuario creado")
}

// Get GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	u, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Usuario no encontrado", nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "usuario")
}

// Update PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Param("id"), application.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if errors.Is(err, application.ErrAccountNotFound) {
			response.Error[any](c, http.StatusNotFound, "Usuario no encontrado", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo actualizar el usuario", nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "usuario actualizado")
}

// Profile GET /api/profile returns the authenticated user's own account.
func (h *UserHandler) Profile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetByID(uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Usuario no encontrado", nil)
		return
	}
	response.Success(c, http.StatusOK, userJSON(u), "perfil")
}
