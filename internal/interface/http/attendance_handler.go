package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/internal/domain/repository"
	"github.com/aulatrack/attendance-api/pkg/response"
	"github.com/aulatrack/attendance-api/pkg/validation"
)

type AttendanceHandler struct {
	Svc    *application.AttendanceService
	Logger *logrus.Logger
}

func NewAttendanceHandler(svc *application.AttendanceService, logger *logrus.Logger) *AttendanceHandler {
	return &AttendanceHandler{Svc: svc, Logger: logger}
}

type createAttendanceRequest struct {
	StudentID string `json:"idAlumno" binding:"required,uuid"`
	Date      string `json:"fecha" binding:"required"`
	Status    string `json:"estado" binding:"required,estado"`
}

func attendanceJSON(a *entity.Attendance) gin.H {
	return gin.H{
		"id":         a.ID,
		"idAlumno":   a.StudentID,
		"fecha":      a.Date.Format("2006-01-02"),
		"estado":     a.Status,
		"created_at": a.CreatedAt,
		"updated_at": a.UpdatedAt,
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

// Create POST /api/attendances
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req createAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"fecha": "must be a valid date"})
		return
	}
	a, err := h.Svc.Create(req.StudentID, date, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrStudentNotFound):
			response.Error[any](c, http.StatusNotFound, "Alumno no encontrado", nil)
		case errors.Is(err, application.ErrInvalidStatus):
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"estado": "must be one of: presente, ausente, tardanza"})
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Warn("create attendance failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "no se pudo registrar la asistencia", nil)
		}
		return
	}
	response.Success(c, http.StatusCreated, attendanceJSON(a), "asistencia registrada")
}

type updateAttendanceRequest struct {
	Date   string `json:"fecha"`
	Status string `json:"estado" binding:"omitempty,estado"`
}

// Get GET /api/attendances/:id
func (h *AttendanceHandler) Get(c *gin.Context) {
	a, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrAttendanceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Asistencia no encontrada", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo obtener la asistencia", nil)
		return
	}
	response.Success(c, http.StatusOK, attendanceJSON(a), "asistencia")
}

// Update PUT /api/attendances/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req updateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	var date time.Time
	if req.Date != "" {
		var err error
		date, err = parseDate(req.Date)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"fecha": "must be a valid date"})
			return
		}
	}
	a, err := h.Svc.Update(c.Param("id"), date, req.Status)
	if err != nil {
		if errors.Is(err, application.ErrAttendanceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Asistencia no encontrada", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo actualizar la asistencia", nil)
		return
	}
	response.Success(c, http.StatusOK, attendanceJSON(a), "asistencia actualizada")
}

// Delete DELETE /api/attendances/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrAttendanceNotFound) {
			response.Error[any](c, http.StatusNotFound, "Asistencia no encontrada", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "no se pudo eliminar la asistencia", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "asistencia eliminada")
}

// List GET /api/attendances?alumno=<id>&desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *AttendanceHandler) List(c *gin.Context) {
	f := repository.AttendanceFilter{StudentID: c.Query("alumno")}
	if v := c.Query("desde"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"desde": "must be a valid date"})
			return
		}
		f.From = t
	}
	if v := c.Query("hasta"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"hasta": "must be a valid date"})
			return
		}
		f.To = t
	}
	records, err := h.Svc.List(f)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "no se pudieron obtener las asistencias", nil)
		return
	}
	out := make([]gin.H, 0, len(records))
	for i := range records {
		out = append(out, attendanceJSON(&records[i]))
	}
	response.Success(c, http.StatusOK, out, "asistencias")
}
