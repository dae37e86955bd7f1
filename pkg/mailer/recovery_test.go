package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetURL(t *testing.T) {
	url := ResetURL("https://aulatrack.example", "abc.def.ghi")
	require.Equal(t, "https://aulatrack.example/reset-password?token=abc.def.ghi", url)
}

func TestResetURLTrailingSlash(t *testing.T) {
	url := ResetURL("https://aulatrack.example/", "tok")
	require.Equal(t, "https://aulatrack.example/reset-password?token=tok", url)
}

func TestRenderRecovery(t *testing.T) {
	subject, text, html := RenderRecovery("https://aulatrack.example/reset-password?token=tok")

	require.Equal(t, "Recuperación de contraseña", subject)
	require.Contains(t, text, "https://aulatrack.example/reset-password?token=tok")
	require.Contains(t, html, `href="https://aulatrack.example/reset-password?token=tok"`)
}
