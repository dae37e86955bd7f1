package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aulatrack/attendance-api/pkg/helpers"
)

// TemplateRecovery is the EmailJob.Template for password-recovery messages.
const TemplateRecovery = "password_recovery"

// QueueDispatcher enqueues recovery emails on RabbitMQ instead of sending
// inline, so a slow or failing mail provider never delays the HTTP response.
type QueueDispatcher struct {
	Pub         *helpers.RabbitPublisher
	FrontendURL string
	Logger      *logrus.Logger
}

func NewQueueDispatcher(pub *helpers.RabbitPublisher, frontendURL string, logger *logrus.Logger) *QueueDispatcher {
	return &QueueDispatcher{Pub: pub, FrontendURL: frontendURL, Logger: logger}
}

// SendRecoveryMessage publishes a recovery email job for the given address.
func (d *QueueDispatcher) SendRecoveryMessage(ctx context.Context, to, token string) error {
	if d.Pub == nil {
		return fmt.Errorf("mail queue not configured")
	}
	job := EmailJob{
		To:       to,
		Template: TemplateRecovery,
		Data:     map[string]any{"ResetURL": ResetURL(d.FrontendURL, token)},
	}
	return d.Pub.PublishJSON(ctx, job)
}

// ResetURL builds the link embedded in recovery emails. It points at the
// front-end reset page, which collects the new password and posts it to the
// API together with the token.
func ResetURL(frontendURL, token string) string {
	return strings.TrimSuffix(frontendURL, "/") + "/reset-password?token=" + token
}

// RenderRecovery renders subject, text and html bodies for a recovery job.
func RenderRecovery(resetURL string) (subject, text, html string) {
	subject = "Recuperación de contraseña"
	text = "Has solicitado recuperar tu contraseña. Utiliza el siguiente enlace para reiniciarla: " + resetURL
	html = fmt.Sprintf(`<p>Has solicitado recuperar tu contraseña.</p>
<p>Haz clic <a href="%s">aquí</a> para reiniciarla.</p>`, resetURL)
	return subject, text, html
}
