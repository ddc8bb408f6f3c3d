// Package email implementa el puerto de correo sobre SendGrid.
package email

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/necesito-esto/admin-api/internal/application/correo"
	"github.com/necesito-esto/admin-api/pkg/config"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

// SendgridSender implementa correo.Sender contra la API v3 de SendGrid.
// Un mensaje por request; el throttling lo pone el llamador.
type SendgridSender struct {
	key  string
	from *sgmail.Email
}

var _ correo.Sender = (*SendgridSender)(nil)

// NewSendgridSender construye el sender con las credenciales del relay.
func NewSendgridSender(cfg config.MailConfig) *SendgridSender {
	return &SendgridSender{
		key:  cfg.SendGridAPIKey,
		from: sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
	}
}

// Send arma el SGMailV3 y lo despacha. Una respuesta 4xx/5xx del relay es
// error aunque el transporte HTTP haya funcionado.
func (s *SendgridSender) Send(ctx context.Context, msg correo.Mensaje) error {
	req := sendgrid.GetRequest(s.key, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

func (s *SendgridSender) prepare(msg correo.Mensaje) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Asunto
	p.AddTos(sgmail.NewEmail(msg.ParaNombre, msg.ParaEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.Texto),
		sgmail.NewContent("text/html", msg.HTML),
	)
	return m
}
