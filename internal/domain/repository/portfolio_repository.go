package repository

import (
	"context"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// ProjectRepository manages portfolio projects ordered by order_index.
type ProjectRepository interface {
	List(ctx context.Context) ([]entity.Project, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, p *entity.Project) error
	Delete(ctx context.Context, id string) error
}

// ServiceRepository manages service entries ordered by order_index.
type ServiceRepository interface {
	List(ctx context.Context) ([]entity.Service, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, s *entity.Service) error
	Delete(ctx context.Context, id string) error
}
