package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/salonhub/salon-backend/internal/config"
)

// Message is one outbound mail with both plain-text and HTML bodies.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(msg Message) error
}

type SMTPSender struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		fromName:  cfg.SMTPFromName,
		fromEmail: cfg.SMTPFromEmail,
	}
}

func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

var _ Sender = (*SMTPSender)(nil)

// ResetOTPMessage builds the password-reset mail for a generated code.
func ResetOTPMessage(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Password Reset OTP",
		Text:    fmt.Sprintf("Your OTP for password reset is: %s\nValid for 10 minutes.", code),
		HTML: fmt.Sprintf(
			"<h1>Password Reset</h1><p>Your OTP for password reset is: <strong>%s</strong></p><p>This OTP is valid for 10 minutes.</p>",
			code,
		),
	}
}
