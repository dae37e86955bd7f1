package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aulatrack/attendance-api/internal/application"
	"github.com/aulatrack/attendance-api/internal/domain/entity"
	"github.com/aulatrack/attendance-api/internal/domain/repository"
	"github.com/aulatrack/attendance-api/pkg/helpers"
	"github.com/aulatrack/attendance-api/pkg/validation"
)

var errNoRows = repository.ErrNotFound

type memUserRepo struct {
	users map[string]*entity.User // keyed by id
}

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNoRows
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNoRows
}

func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *memUserRepo) UpdatePassword(id, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return errNoRows
	}
	u.Password = hash
	return nil
}

type captureMailer struct{ tokens []string }

func (m *captureMailer) SendRecoveryMessage(ctx context.Context, to, token string) error {
	m.tokens = append(m.tokens, token)
	return nil
}

type authFixture struct {
	router *gin.Engine
	jwt    *helpers.JWTManager
	repo   *memUserRepo
	mailer *captureMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	hash, err := helpers.HashPassword("password123")
	require.NoError(t, err)
	repo := &memUserRepo{users: map[string]*entity.User{
		"u-1": {
			ID:       "u-1",
			Name:     "Laura Mendez",
			Email:    "laura@escuela.edu",
			Password: hash,
			Role:     entity.RoleTeacher,
		},
	}}

	jwt := helpers.NewJWTManager("test-secret", time.Hour, 15*time.Minute)
	mailer := &captureMailer{}
	svc := application.NewAuthService(repo, jwt, mailer, nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	auth := r.Group("/api/auth")
	auth.POST("/login", h.Login)
	auth.POST("/recover", h.Recover)
	auth.POST("/reset", h.Reset)

	return &authFixture{router: r, jwt: jwt, repo: repo, mailer: mailer}
}

func (f *authFixture) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestLoginEndpoint(t *testing.T) {
	f := newAuthFixture(t)

	w := f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "password123"})
	require.Equal(t, http.StatusOK, w.Code)

	e := decodeEnvelope(t, w)
	require.True(t, e.Success)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(e.Data, &data))
	claims, err := f.jwt.ParseSessionToken(data.Token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	f := newAuthFixture(t)

	wrongPwd := f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "wrongpass"})
	unknown := f.post(t, "/api/auth/login", gin.H{"correo": "nadie@escuela.edu", "password": "password123"})

	require.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, decodeEnvelope(t, wrongPwd).Message, decodeEnvelope(t, unknown).Message)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	f := newAuthFixture(t)

	w := f.post(t, "/api/auth/login", gin.H{"correo": "not-an-email", "password": "password123"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "short"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecoverEndpointIsGeneric(t *testing.T) {
	f := newAuthFixture(t)

	known := f.post(t, "/api/auth/recover", gin.H{"correo": "laura@escuela.edu"})
	unknown := f.post(t, "/api/auth/recover", gin.H{"correo": "nadie@escuela.edu"})

	require.Equal(t, http.StatusOK, known.Code)
	require.Equal(t, http.StatusOK, unknown.Code)
	require.Equal(t, decodeEnvelope(t, known).Message, decodeEnvelope(t, unknown).Message)
	require.Len(t, f.mailer.tokens, 1)
}

func TestResetEndpointRoundTrip(t *testing.T) {
	f := newAuthFixture(t)

	f.post(t, "/api/auth/recover", gin.H{"correo": "laura@escuela.edu"})
	require.Len(t, f.mailer.tokens, 1)

	w := f.post(t, "/api/auth/reset", gin.H{"token": f.mailer.tokens[0], "newPassword": "renovada1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Contraseña actualizada exitosamente.", decodeEnvelope(t, w).Message)

	w = f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "renovada1"})
	require.Equal(t, http.StatusOK, w.Code)
	w = f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "password123"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetEndpointInvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	w := f.post(t, "/api/auth/reset", gin.H{"token": "no.es.jwt", "newPassword": "renovada1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResetEndpointRejectsSessionToken(t *testing.T) {
	f := newAuthFixture(t)

	session, _, err := f.jwt.GenerateSessionToken("u-1", "laura@escuela.edu", entity.RoleTeacher)
	require.NoError(t, err)

	w := f.post(t, "/api/auth/reset", gin.H{"token": session, "newPassword": "renovada1"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

type downUserRepo struct{}

func (r *downUserRepo) Create(u *entity.User) error { return errors.New("connection refused") }
func (r *downUserRepo) GetByID(id string) (*entity.User, error) {
	return nil, errors.New("connection refused")
}
func (r *downUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, errors.New("connection refused")
}
func (r *downUserRepo) Update(u *entity.User) error { return errors.New("connection refused") }

func (r *downUserRepo) UpdatePassword(id, hash string) error {
	return errors.New("connection refused")
}

func TestAuthEndpointsReturn500WhenStoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	jwt := helpers.NewJWTManager("test-secret", time.Hour, 15*time.Minute)
	svc := application.NewAuthService(&downUserRepo{}, jwt, &captureMailer{}, nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/recover", h.Recover)
	r.POST("/api/auth/reset", h.Reset)
	f := &authFixture{router: r, jwt: jwt}

	w := f.post(t, "/api/auth/login", gin.H{"correo": "laura@escuela.edu", "password": "password123"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	w = f.post(t, "/api/auth/recover", gin.H{"correo": "laura@escuela.edu"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	token, _, err := jwt.GenerateResetToken("u-1")
	require.NoError(t, err)
	w = f.post(t, "/api/auth/reset", gin.H{"token": token, "newPassword": "renovada1"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestResetEndpointAccountGone(t *testing.T) {
	f := newAuthFixture(t)

	token, _, err := f.jwt.GenerateResetToken("u-gone")
	require.NoError(t, err)

	w := f.post(t, "/api/auth/reset", gin.H{"token": token, "newPassword": "renovada1"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
