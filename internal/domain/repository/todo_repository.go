package repository

import (
	"context"
	"time"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// TodoRepository manages todo items ordered by created_at descending.
type TodoRepository interface {
	List(ctx context.Context) ([]entity.Todo, error)
	Create(ctx context.Context, t *entity.Todo) error
	// Toggle flips the completed flag and returns the updated row.
	Toggle(ctx context.Context, id string) (*entity.Todo, error)
	Delete(ctx context.Context, id string) error
	// ListDueOn returns incomplete todos whose due date falls on the given day.
	ListDueOn(ctx context.Context, day time.Time) ([]entity.Todo, error)
}
