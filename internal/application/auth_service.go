package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/internal/domain/entity"
	repo "github.com/aulatrack/attendance-api/internal/domain/repository"
	"github.com/aulatrack/attendance-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot tell which half of the check failed.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// ErrInvalidOrExpiredToken is returned when a reset token fails the
	// signature or expiry check.
	ErrInvalidOrExpiredToken = errors.New("token inválido o expirado")
	// ErrAccountNotFound is returned when a valid reset token references an
	// account that no longer exists.
	ErrAccountNotFound = errors.New("usuario no encontrado")
)

// Messages returned by the recovery flow. GenericRecoveryMessage is identical
// whether or not the email matches an account.
const (
	GenericRecoveryMessage = "Si existe una cuenta asociada, se ha enviado un correo de recuperación."
	ResetConfirmedMessage  = "Contraseña actualizada exitosamente."
)

// RecoveryMailer dispatches password-recovery messages. Delivery is
// best-effort from the auth service's point of view.
type RecoveryMailer interface {
	SendRecoveryMessage(ctx context.Context, to, token string) error
}

// AuthService implements login, password-recovery issuance, and password
// reset. It holds no mutable state; every call is an independent
// request-scoped computation.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Mailer RecoveryMailer
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, mailer RecoveryMailer, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Mailer: mailer, Logger: logger}
}

// Login checks email+password and issues a session token on success. A
// missing account maps to ErrInvalidCredentials; persistence failures
// propagate unchanged.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.GenerateSessionToken(u.ID, u.Email, u.Role)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// RequestRecovery always returns the same generic message whether or not the
// email matches an account. When it does, a short-lived reset token is
// generated and handed to the mailer; mail or token failures are logged and
// deliberately not surfaced, since a different response would reveal whether
// the account exists. Only persistence failures return an error.
func (s *AuthService) RequestRecovery(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	switch {
	case err == nil:
		s.dispatchRecovery(ctx, u)
	case !errors.Is(err, repo.ErrNotFound):
		return "", err
	}
	return GenericRecoveryMessage, nil
}

func (s *AuthService) dispatchRecovery(ctx context.Context, u *entity.User) {
	token, _, err := s.JWT.GenerateResetToken(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate reset token failed")
		}
		return
	}
	if s.Mailer == nil {
		return
	}
	if err := s.Mailer.SendRecoveryMessage(ctx, u.Email, token); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("recovery mail dispatch failed")
	}
}

// FinalizeReset validates the reset token, resolves the account, and replaces
// its password hash in a single update. No session is issued; the caller
// must log in again.
func (s *AuthService) FinalizeReset(ctx context.Context, token, newPassword string) (string, error) {
	claims, err := s.JWT.ParseResetToken(token)
	if err != nil {
		return "", ErrInvalidOrExpiredToken
	}
	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", err
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return "", err
	}
	if err := s.Repo.UpdatePassword(u.ID, hash); err != nil {
		return "", err
	}
	return ResetConfirmedMessage, nil
}
