package validation

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Email    string `json:"correo" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Status   string `json:"estado" binding:"required,estado"`
}

func bindSample(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	Init()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", bytes.NewReader([]byte(body)))
	c.Request.Header.Set("Content-Type", "application/json")
	var p samplePayload
	return c.ShouldBindJSON(&p)
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	err := bindSample(t, `{"correo":"not-an-email","password":"abc123","estado":"presente"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Contains(t, details, "correo")
	require.Equal(t, "must be a valid email", details["correo"])
}

func TestPwdAliasEnforcesMinimumLength(t *testing.T) {
	err := bindSample(t, `{"correo":"a@b.com","password":"abc","estado":"presente"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Contains(t, details["password"], "at least 6")
}

func TestEstadoAliasRestrictsValues(t *testing.T) {
	err := bindSample(t, `{"correo":"a@b.com","password":"abc123","estado":"dormido"}`)
	require.Error(t, err)

	details := ToDetails(err)
	require.Contains(t, details["estado"], "must be one of")
}

func TestToDetailsInvalidJSON(t *testing.T) {
	err := bindSample(t, `{`)
	require.Error(t, err)
	require.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(err))
}

func TestValidPayloadBinds(t *testing.T) {
	err := bindSample(t, `{"correo":"a@b.com","password":"abc123","estado":"tardanza"}`)
	require.NoError(t, err)
}
