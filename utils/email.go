package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strconv"

	"kost_market/config"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// NewMessageData feeds the new-message email template.
type NewMessageData struct {
	RecipientName string
	SenderName    string
	PropertyName  string
	Preview       string
	InboxLink     string
}

// SendNewMessageEmail notifies the chat recipient (async so the send
// handler does not wait on SMTP).
func SendNewMessageEmail(to string, data NewMessageData) {
	go func() {
		tmplPath := "templates/new_message.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := config.Config("SMTP_HOST")
		port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
		username := config.Config("SMTP_USERNAME")
		password := config.Config("SMTP_PASSWORD")
		from := config.Config("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", fmt.Sprintf("New message from %s", data.SenderName))
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send email: %v", err)
		}
	}()
}

// SendPasswordResetEmail sends the plain-text reset link synchronously so
// the handler can report delivery failure.
func SendPasswordResetEmail(to, resetLink string) error {
	host := config.Config("SMTP_HOST")
	port := config.ConfigOr("SMTP_PORT", "587")
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	from := config.Config("SMTP_FROM")

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Password reset"
	e.Text = []byte(fmt.Sprintf("Click the link to reset your password: %s", resetLink))
	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
