package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// TodoRepository persists todo items.
type TodoRepository struct {
	pool *pgxpool.Pool
}

func NewTodoRepository(pool *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{pool: pool}
}

func (r *TodoRepository) List(ctx context.Context) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, title, description, completed, priority, due_date, created_at
		FROM todos
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO todos (user_email, title, description, priority, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, completed, created_at
	`, t.UserEmail, t.Title, t.Description, t.Priority, t.DueDate)
	return row.Scan(&t.ID, &t.Completed, &t.CreatedAt)
}

func (r *TodoRepository) Toggle(ctx context.Context, id string) (*entity.Todo, error) {
	t := &entity.Todo{}
	row := r.pool.QueryRow(ctx, `
		UPDATE todos SET completed = NOT completed
		WHERE id = $1
		RETURNING id, user_email, title, description, completed, priority, due_date, created_at
	`, id)
	if err := row.Scan(&t.ID, &t.UserEmail, &t.Title, &t.Description, &t.Completed, &t.Priority, &t.DueDate, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TodoRepository) ListDueOn(ctx context.Context, day time.Time) ([]entity.Todo, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_email, title, description, completed, priority, due_date, created_at
		FROM todos
		WHERE due_date = $1 AND NOT completed
		ORDER BY created_at ASC
	`, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

func scanTodos(rows pgx.Rows) ([]entity.Todo, error) {
	out := []entity.Todo{}
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.UserEmail, &t.Title, &t.Description, &t.Completed, &t.Priority, &t.DueDate, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
