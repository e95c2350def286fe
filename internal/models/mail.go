package models

// MailMessage is a rendered HTML mail.
type MailMessage struct {
	Subject string
	Body    string
}
