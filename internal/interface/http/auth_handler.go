package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/pkg/response"
	"github.com/aulatrack/attendance-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type recoverRequest struct {
	Email string `json:"correo" binding:"required,email"`
}

type resetRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,pwd"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error[any](c, http.StatusUnauthorized, "Credenciales inválidas", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "error interno", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"token": token, "expires_at": exp}, "inicio de sesión exitoso")
}

// Recover POST /api/auth/recover
// The response is identical whether or not the email matches an account.
func (h *AuthHandler) Recover(c *gin.Context) {
	var req recoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.RequestRecovery(c.Request.Context(), req.Email)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Error("recovery lookup failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "error interno", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg)
}

// Reset POST /api/auth/reset
func (h *AuthHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	msg, err := h.Svc.FinalizeReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidOrExpiredToken):
			response.Error[any](c, http.StatusUnauthorized, "Token inválido o expirado", nil)
		case errors.Is(err, application.ErrAccountNotFound):
			response.Error[any](c, http.StatusNotFound, "Usuario no encontrado", nil)
		default:
			if h.Logger != nil {
				h.Logger.WithError(err).Error("password reset failed")
			}
			response.Error[any](c, http.StatusInternalServerError, "error interno", nil)
		}
		return
	}
	response.Success[any](c, http.StatusOK, nil, msg)
}
