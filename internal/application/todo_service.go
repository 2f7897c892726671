package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
	"github.com/yudhapratama/portfolio-api/pkg/mailer"
)

// ReminderPublisher enqueues reminder email jobs for out-of-band delivery.
type ReminderPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// TodoService manages the visitor todo list and the due-date reminder sweep.
type TodoService struct {
	Repo   repository.TodoRepository
	Pub    ReminderPublisher
	Logger *logrus.Logger
}

func (s *TodoService) List(ctx context.Context) ([]entity.Todo, error) {
	return s.Repo.List(ctx)
}

type AddTodoInput struct {
	UserEmail   string
	Title       string
	Description string
	Priority    string
	DueDate     string // ISO date, optional
}

func (s *TodoService) Add(ctx context.Context, in AddTodoInput) (*entity.Todo, error) {
	if in.Priority == "" {
		in.Priority = entity.PriorityMedium
	}
	var due *time.Time
	if in.DueDate != "" {
		if d, err := time.Parse("2006-01-02", in.DueDate); err == nil {
			due = &d
		}
	}
	t := &entity.Todo{
		UserEmail:   in.UserEmail,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     due,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TodoService) Toggle(ctx context.Context, id string) (*entity.Todo, error) {
	return s.Repo.Toggle(ctx, id)
}

func (s *TodoService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// SweepDueReminders enqueues one reminder email job per incomplete todo due
// on the given day. Returns the number of jobs enqueued.
func (s *TodoService) SweepDueReminders(ctx context.Context, day time.Time) (int, error) {
	if s.Pub == nil {
		return 0, nil
	}
	todos, err := s.Repo.ListDueOn(ctx, day)
	if err != nil {
		return 0, err
	}
	sent := 0
	for _, t := range todos {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.Format("2006-01-02")
		}
		html, err := mailer.RenderReminderHTML(t.Title, t.Priority, due)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("todo_id", t.ID).Warn("reminder render failed")
			}
			continue
		}
		job := mailer.EmailJob{
			To:      t.UserEmail,
			Subject: mailer.ReminderSubject(t.Title),
			HTML:    html,
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("todo_id", t.ID).Warn("reminder enqueue failed")
			}
			continue
		}
		sent++
	}
	return sent, nil
}
