// file: internals/features/notificaciones/service/mailer.go
package service

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"aseguradora_backend/internals/configs"
)

// Mailer es el colaborador de transporte: fire-and-forget desde el punto
// de vista del barrido (los errores solo se loguean, no se reintenta).
type Mailer interface {
	Enviar(destino, asunto, html string) error
}

// SMTPMailer envía por SMTP con gomail.
type SMTPMailer struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPMailerFromEnv() *SMTPMailer {
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		Host: configs.SMTPHost,
		Port: port,
		User: configs.SMTPUser,
		Pass: configs.SMTPPass,
		From: configs.SMTPFrom,
	}
}

func (m *SMTPMailer) Enviar(destino, asunto, html string) error {
	if m.Host == "" {
		return fmt.Errorf("SMTP_HOST sin configurar")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", destino)
	msg.SetHeader("Subject", asunto)
	msg.SetBody("text/html", html)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	return d.DialAndSend(msg)
}
