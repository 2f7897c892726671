package application

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
	"github.com/yudhapratama/portfolio-api/pkg/mailer"
)

type fakeTodoRepo struct {
	rows []entity.Todo
}

func (f *fakeTodoRepo) List(context.Context) ([]entity.Todo, error) { return f.rows, nil }

func (f *fakeTodoRepo) Create(_ context.Context, t *entity.Todo) error {
	t.ID = strconv.Itoa(len(f.rows) + 1)
	f.rows = append(f.rows, *t)
	return nil
}

func (f *fakeTodoRepo) Toggle(_ context.Context, id string) (*entity.Todo, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Completed = !f.rows[i].Completed
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTodoRepo) Delete(_ context.Context, id string) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTodoRepo) ListDueOn(_ context.Context, day time.Time) ([]entity.Todo, error) {
	var out []entity.Todo
	for _, r := range f.rows {
		if r.Completed || r.DueDate == nil {
			continue
		}
		if r.DueDate.Format("2006-01-02") == day.Format("2006-01-02") {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, body.(mailer.EmailJob))
	return nil
}

func TestAddTodoDefaults(t *testing.T) {
	repo := &fakeTodoRepo{}
	svc := &TodoService{Repo: repo}

	todo, err := svc.Add(context.Background(), AddTodoInput{
		UserEmail: "a@b.com",
		Title:     "Buy milk",
		DueDate:   "2026-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PriorityMedium, todo.Priority)
	require.NotNil(t, todo.DueDate)
	assert.Equal(t, "2026-09-02", todo.DueDate.Format("2006-01-02"))
}

func TestToggleTodoIdempotentUnderDoubleToggle(t *testing.T) {
	repo := &fakeTodoRepo{}
	svc := &TodoService{Repo: repo}
	ctx := context.Background()

	todo, err := svc.Add(ctx, AddTodoInput{UserEmail: "a@b.com", Title: "Buy milk"})
	require.NoError(t, err)
	require.False(t, todo.Completed)

	once, err := svc.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, once.Completed)

	twice, err := svc.Toggle(ctx, todo.ID)
	require.NoError(t, err)
	assert.False(t, twice.Completed)
}

func TestSweepDueReminders(t *testing.T) {
	repo := &fakeTodoRepo{}
	pub := &fakePublisher{}
	svc := &TodoService{Repo: repo, Pub: pub}
	ctx := context.Background()

	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	_, err := svc.Add(ctx, AddTodoInput{UserEmail: "a@b.com", Title: "Buy milk", Priority: "high", DueDate: "2026-09-02"})
	require.NoError(t, err)
	_, err = svc.Add(ctx, AddTodoInput{UserEmail: "a@b.com", Title: "Other day", DueDate: "2026-09-05"})
	require.NoError(t, err)
	done, err := svc.Add(ctx, AddTodoInput{UserEmail: "a@b.com", Title: "Done already", DueDate: "2026-09-02"})
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, done.ID)
	require.NoError(t, err)

	n, err := svc.SweepDueReminders(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, pub.jobs, 1)

	job := pub.jobs[0]
	assert.Equal(t, "a@b.com", job.To)
	assert.Equal(t, "Todo Reminder: Buy milk", job.Subject)
	assert.Contains(t, job.HTML, "Buy milk")
	assert.Contains(t, job.HTML, "HIGH")
}

func TestSweepWithoutPublisher(t *testing.T) {
	svc := &TodoService{Repo: &fakeTodoRepo{}}
	n, err := svc.SweepDueReminders(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
