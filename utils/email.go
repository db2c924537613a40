package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

// SMTPMailer sends HTML email through a plain SMTP dialer.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPMailer(host, port, user, pass string) *SMTPMailer {
	p, _ := strconv.Atoi(port)
	return &SMTPMailer{host: host, port: p, user: user, pass: pass}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
