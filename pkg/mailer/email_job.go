package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Text is the plaintext body; HTML is optional.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}

// ContactSubmission carries one contact-form submission on its way to the
// operator's inbox.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// NewContactJob builds the plaintext notification the operator receives for
// a contact-form submission.
func NewContactJob(operatorEmail string, sub ContactSubmission) EmailJob {
	text := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\nMessage: %s",
		sub.Name, sub.Email, sub.Phone, sub.Message)
	return EmailJob{
		To:      operatorEmail,
		Subject: "Form Contact",
		Text:    text,
	}
}
