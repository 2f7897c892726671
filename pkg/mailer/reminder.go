package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

var reminderTmpl = template.Must(template.New("reminder").Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">&#128203; Todo Reminder</h2>
  <div style="background: #f5f5f5; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #2563eb; margin-top: 0;">{{.Title}}</h3>
    <p style="color: #666; margin: 5px 0;">
      <strong>Priority:</strong>
      <span style="color: {{.PriorityColor}};">{{.PriorityLabel}}</span>
    </p>
    {{if .DueDate}}<p style="color: #666; margin: 5px 0;"><strong>Due:</strong> {{.DueDate}}</p>{{end}}
  </div>
  <p style="color: #666;">Don't forget to complete this task!</p>
  <p style="color: #999; font-size: 12px; margin-top: 30px;">
    This is an automated reminder from your Todo Assistant
  </p>
</div>
`))

func priorityColor(priority string) string {
	switch priority {
	case "high":
		return "#dc2626"
	case "medium":
		return "#f59e0b"
	default:
		return "#10b981"
	}
}

// ReminderSubject builds the subject line for a todo reminder email.
func ReminderSubject(title string) string {
	return "Todo Reminder: " + title
}

// RenderReminderHTML renders the reminder email body for a todo.
// dueDate is an optional ISO date string; when parseable it is shown in a
// human readable form, otherwise verbatim.
func RenderReminderHTML(title, priority, dueDate string) (string, error) {
	due := dueDate
	if dueDate != "" {
		if d, err := time.Parse("2006-01-02", dueDate); err == nil {
			due = d.Format("1/2/2006")
		}
	}
	data := map[string]string{
		"Title":         title,
		"PriorityColor": priorityColor(priority),
		"PriorityLabel": strings.ToUpper(priority),
		"DueDate":       due,
	}
	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
