package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aulatrack/attendance-api/pkg/helpers"
)

func newProtectedRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", Auth(jwt), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(CtxUserIDKey)})
	})
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthAcceptsSessionToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour, 15*time.Minute)
	r := newProtectedRouter(jwt)

	token, _, err := jwt.GenerateSessionToken("u-1", "a@b.com", "profesor")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "u-1")
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour, 15*time.Minute)
	w := get(newProtectedRouter(jwt), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour, 15*time.Minute)
	w := get(newProtectedRouter(jwt), "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsResetToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", time.Hour, 15*time.Minute)
	r := newProtectedRouter(jwt)

	reset, _, err := jwt.GenerateResetToken("u-1")
	require.NoError(t, err)

	w := get(r, "Bearer "+reset)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("secret", -time.Minute, 15*time.Minute)
	r := newProtectedRouter(jwt)

	token, _, err := jwt.GenerateSessionToken("u-1", "a@b.com", "profesor")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
