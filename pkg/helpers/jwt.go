package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A session token proves a completed login; a reset token
// only proves eligibility to replace one account's password. Both are signed
// with the same secret, so the purpose claim is what keeps a reset token from
// being accepted on authenticated routes (and vice versa).
const (
	purposeSession = "session"
	purposeReset   = "reset"
)

// JWTManager signs and verifies the session and password-reset tokens.
// The secret is injected at construction so the manager can be built with a
// throwaway secret in tests.
type JWTManager struct {
	Secret     []byte
	SessionTTL time.Duration
	ResetTTL   time.Duration
}

func NewJWTManager(secret string, sessionTTL, resetTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:     []byte(secret),
		SessionTTL: sessionTTL,
		ResetTTL:   resetTTL,
	}
}

type Claims struct {
	UserID  string `json:"uid"`
	Email   string `json:"correo,omitempty"`
	Role    string `json:"rol,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateSessionToken issues the bearer credential returned on login.
func (m *JWTManager) GenerateSessionToken(userID, email, role string) (string, time.Time, error) {
	return m.generate(&Claims{UserID: userID, Email: email, Role: role, Purpose: purposeSession}, m.SessionTTL)
}

// GenerateResetToken issues the short-lived credential mailed on password recovery.
// It carries the account id only.
func (m *JWTManager) GenerateResetToken(userID string) (string, time.Time, error) {
	return m.generate(&Claims{UserID: userID, Purpose: purposeReset}, m.ResetTTL)
}

func (m *JWTManager) generate(claims *Claims, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().Add(ttl)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) ParseSessionToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, purposeSession)
}

func (m *JWTManager) ParseResetToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, purposeReset)
}

func (m *JWTManager) parse(tokenStr, purpose string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Purpose != purpose {
		return nil, errors.New("token purpose mismatch")
	}
	return claims, nil
}
