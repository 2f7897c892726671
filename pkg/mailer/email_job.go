package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue by the reminder
// sweep and consumed by the reminder worker.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
