// Package mail sends account lifecycle emails over SMTP
package mail

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer is what the handlers depend on. The SMTP implementation is
// swapped for a recording fake in tests.
type Mailer interface {
	SendVerificationEmail(to, code string) error
	SendConfirmationEmail(to string) error
	SendResetEmail(to, code string) error
}

type SMTPMailer struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func NewSMTP(host string, port int, sender, password string) *SMTPMailer {
	return &SMTPMailer{
		Host:     host,
		Port:     port,
		Sender:   sender,
		Password: password,
	}
}

func (m *SMTPMailer) send(to, subject, body string) error {
	if to == m.Sender {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.Sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.Host, m.Port, m.Sender, m.Password)

	return d.DialAndSend(msg)
}

func (m *SMTPMailer) SendVerificationEmail(to, code string) error {
	return m.send(to, "Verification code",
		fmt.Sprintf("Your verification code is: %s. Enter it in the app to finish signing up. The code is valid for one use only.", code))
}

func (m *SMTPMailer) SendConfirmationEmail(to string) error {
	return m.send(to, "Registration complete",
		"Your registration is complete. Welcome to Pet Finder!")
}

func (m *SMTPMailer) SendResetEmail(to, code string) error {
	return m.send(to, "Password reset code",
		fmt.Sprintf("Your password reset code is: %s. It expires in 1 hour.", code))
}
