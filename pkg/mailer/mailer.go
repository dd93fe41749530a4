package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"tour-booking/pkg/utils"
)

// Mailer sends transactional mail. Callers treat a send failure as a hard
// error and roll back whatever state the mail was meant to announce.
type Mailer interface {
	SendVerificationCode(to, fullName, code string) error
	SendPasswordResetCode(to, fullName, code string) error
	SendGuideApproval(to, fullName string, approved bool) error
	SendTourDecision(to, fullName, tourTitle string, approved bool) error
	SendContactReply(to, fullName, reply string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log.With(zap.String("service", "mailer")),
	}
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send email", zap.Error(err), zap.String("subject", subject))
		return fmt.Errorf("send email %q: %w", subject, err)
	}

	return nil
}

func (m *smtpMailer) SendVerificationCode(to, fullName, code string) error {
	body := fmt.Sprintf(`<h3>Hi %s,</h3>
		<p>Your Kenana verification code is <b>%s</b>.</p>
		<p>The code expires in 3 minutes.</p>`, fullName, code)
	return m.send(to, "Your verification code", body)
}

func (m *smtpMailer) SendPasswordResetCode(to, fullName, code string) error {
	body := fmt.Sprintf(`<h3>Hi %s,</h3>
		<p>We received a request to reset your Kenana password.</p>
		<p>Your reset code is <b>%s</b>. It expires in 3 minutes.</p>
		<p>If you did not request this, you can ignore this email.</p>`, fullName, code)
	return m.send(to, "Your password reset code", body)
}

func (m *smtpMailer) SendGuideApproval(to, fullName string, approved bool) error {
	if approved {
		body := fmt.Sprintf(`<h3>Congratulations %s!</h3>
			<p>Your tour guide application has been approved. You can start publishing tours now.</p>`, fullName)
		return m.send(to, "Tour guide application approved", body)
	}

	body := fmt.Sprintf(`<h3>Hi %s,</h3>
		<p>Unfortunately your tour guide application was not approved this time.</p>`, fullName)
	return m.send(to, "Tour guide application update", body)
}

func (m *smtpMailer) SendTourDecision(to, fullName, tourTitle string, approved bool) error {
	if approved {
		body := fmt.Sprintf(`<h3>Good news %s!</h3>
			<p>Your tour <b>%s</b> has been approved and is now visible to travelers.</p>`, fullName, tourTitle)
		return m.send(to, "Tour approved", body)
	}

	body := fmt.Sprintf(`<h3>Hi %s,</h3>
		<p>Your tour <b>%s</b> was not approved. Please review it and submit again.</p>`, fullName, tourTitle)
	return m.send(to, "Tour update", body)
}

func (m *smtpMailer) SendContactReply(to, fullName, reply string) error {
	body := fmt.Sprintf(`<h3>Hi %s,</h3>
		<p>Thanks for reaching out to Kenana. Here is our reply:</p>
		<blockquote>%s</blockquote>`, fullName, reply)
	return m.send(to, "Re: your message to Kenana", body)
}
