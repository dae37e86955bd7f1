package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/pkg/response"
	"github.com/aulatrack/attendance-api/pkg/validation"
)

type StudentHandler struct {
	Svc    *application.StudentService
	Logger *logrus.Logger
}

func NewStudentHandler(svc *application.StudentService, logger *logrus.Logger) *StudentHandler {
	return &StudentHandler{Svc: svc, Logger: logger}
}

type createStudentRequest struct {
	FirstName string `json:"nombre" binding:"required"`
	LastName  string `json:"apellido" binding:"required"`
	Email     string `json:"correo" binding:"omitempty,email"`
}

type updateStudentRequest struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo" binding:"omitempty,email"`
}

func fullStudentJSON(s *entity.Student) gin.H {
	return gin.H{
		"id":         s.ID,
		"nombre":     s.FirstName,
		"apellido":   s.LastName,
		"correo":     s.Email,
		"foto_url":   s.PhotoURL,
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}

// CreateInGroup POST /api/groups/:id/students
func (h *StudentHandler) CreateInGroup(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	st, err := h.Svc.CreateInGroup(c.Request.Context(), c.Param("id"), application.StudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			response.Error[any](c, http.StatusNotFound, "Grupo no encontrado", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("create student failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo crear el alumno", nil)
		return
	}
	response.Success(c, http.StatusCreated, fullStudentJSON(st), "alumno creado")
}

// Get GET /api/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	st, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "Alumno no encontrado", nil)
		return
	}
	response.Success(c, http.StatusOK, fullStudentJSON(st), "alumno")
}

// Update PUT /api/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	var req updateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	st, err := h.Svc.Update(c.Request.Context(), c.Param("id"), application.StudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		if errors.Is(err, application.ErrStudentNotFound) {
			response.Error[any](c, http.StatusNotFound, "Alumno no encontrado", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo actualizar el alumno", nil)
		return
	}
	response.Success(c, http.StatusOK, fullStudentJSON(st), "alumno actualizado")
}

// List GET /api/students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.Svc.ListAll()
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "no se pudieron obtener los alumnos", nil)
		return
	}
	out := make([]gin.H, 0, len(students))
	for i := range students {
		out = append(out, fullStudentJSON(&students[i]))
	}
	response.Success(c, http.StatusOK, out, "alumnos")
}

// ListByGroup GET /api/groups/:id/students
func (h *StudentHandler) ListByGroup(c *gin.Context) {
	students, err := h.Svc.ListByGroup(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrGroupNotFound) {
			response.Error[any](c, http.StatusNotFound, "Grupo no encontrado", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudieron obtener los alumnos", nil)
		return
	}
	out := make([]gin.H, 0, len(students))
	for i := range students {
		out = append(out, fullStudentJSON(&students[i]))
	}
	response.Success(c, http.StatusOK, out, "alumnos")
}

// Search GET /api/students/search?q=...
func (h *StudentHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "q is required", nil)
		return
	}
	size := 10
	if v := c.Query("size"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			size = n
		}
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "búsqueda no disponible", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "resultados")
}

// UploadPhoto POST /api/students/:id/photo (multipart field "photo")
func (h *StudentHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("photo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "photo file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "cannot read photo", nil)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, application.ErrStudentNotFound) {
			response.Error[any](c, http.StatusNotFound, "Alumno no encontrado", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("photo upload failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo subir la foto", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"foto_url": url}, "foto actualizada")
}
