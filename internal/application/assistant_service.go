package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/pkg/mailer"
)

// SuggestionSystemPrompt is the fixed instruction sent with every generate
// request. The model is asked for structured output, but the completion is
// returned to the caller verbatim and never parsed into rows.
const SuggestionSystemPrompt = "You are a helpful AI assistant that generates actionable todo items. " +
	"Generate 3-5 clear, specific, and achievable tasks based on user input. " +
	"Format each task as a JSON object with title, description, and priority (low/medium/high)."

// TextGenerator produces a completion for a system instruction plus prompt.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// ReminderSender delivers a single reminder email.
type ReminderSender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// AssistantService backs the integration proxy: it forwards prompts to the
// generative-text gateway and reminder payloads to the email provider. It
// holds no state across calls.
type AssistantService struct {
	Generator TextGenerator
	Mailer    ReminderSender
	Logger    *logrus.Logger
}

// GenerateSuggestions forwards the free-text prompt and returns the raw
// completion text.
func (s *AssistantService) GenerateSuggestions(ctx context.Context, todoDescription string) (string, error) {
	out, err := s.Generator.Generate(ctx, SuggestionSystemPrompt, todoDescription)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Error("suggestion generation failed")
		}
		return "", err
	}
	return out, nil
}

// SendReminder renders the reminder template and sends it synchronously.
func (s *AssistantService) SendReminder(ctx context.Context, userEmail, title, priority, dueDate string) error {
	html, err := mailer.RenderReminderHTML(title, priority, dueDate)
	if err != nil {
		return err
	}
	if err := s.Mailer.Send(ctx, userEmail, mailer.ReminderSubject(title), "", html); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("to", userEmail).Error("reminder send failed")
		}
		return err
	}
	return nil
}
