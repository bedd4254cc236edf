// Package mailer delivers one-time login codes by email.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/wneessen/go-mail"

	"github.com/heartmarshall/coursereg-backend/internal/config"
	"github.com/heartmarshall/coursereg-backend/internal/domain"
)

const codeSubject = "Your OTP for Login"

var codeTemplate = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="text-align: center;">Login Verification</h2>
  <p>Hello <strong>{{.Name}} {{.EmployeeID}}</strong>,</p>
  <p>Your OTP for login verification is:</p>
  <p style="text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 3px;">{{.Code}}</p>
  <p>This OTP is valid for {{.Minutes}} minutes. Please do not share this code with anyone.</p>
  <p style="color: #999; font-size: 12px; text-align: center;">If you didn't request this OTP, please ignore this email.</p>
</div>`))

// RenderCode builds the HTML body of a login-code email.
func RenderCode(m domain.OTPMessage) (string, error) {
	var buf bytes.Buffer
	err := codeTemplate.Execute(&buf, struct {
		Name, EmployeeID, Code string
		Minutes                int
	}{m.Name, m.EmployeeID, m.Code, int(m.TTL.Minutes())})
	if err != nil {
		return "", fmt.Errorf("render otp email: %w", err)
	}
	return buf.String(), nil
}

// SMTPSender sends login codes through an SMTP relay.
type SMTPSender struct {
	cfg config.MailConfig
	log *slog.Logger
}

// NewSMTPSender creates a sender for the configured relay.
func NewSMTPSender(cfg config.MailConfig, log *slog.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log.With("adapter", "mailer")}
}

// SendCode delivers exactly one email per call.
func (s *SMTPSender) SendCode(ctx context.Context, m domain.OTPMessage) error {
	body, err := RenderCode(m)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(codeSubject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send otp email: %w", err)
	}

	s.log.InfoContext(ctx, "otp email sent", slog.String("employee_id", m.EmployeeID))
	return nil
}

// LogSender logs instead of sending. It is used when mail is disabled.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("adapter", "mailer")}
}

// SendCode logs the delivery. The code itself is logged at debug level only.
func (s *LogSender) SendCode(ctx context.Context, m domain.OTPMessage) error {
	s.log.WarnContext(ctx, "mail disabled, otp email not sent",
		slog.String("employee_id", m.EmployeeID),
		slog.String("to", m.To),
	)
	s.log.DebugContext(ctx, "otp for local testing",
		slog.String("employee_id", m.EmployeeID),
		slog.String("code", m.Code),
	)
	return nil
}
