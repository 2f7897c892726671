package repository

import (
	"context"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// EducationRepository manages resume education entries ordered by order_index.
type EducationRepository interface {
	List(ctx context.Context) ([]entity.Education, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, e *entity.Education) error
	Delete(ctx context.Context, id string) error
}

// CertificationRepository manages certification entries ordered by order_index.
type CertificationRepository interface {
	List(ctx context.Context) ([]entity.Certification, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, c *entity.Certification) error
	Delete(ctx context.Context, id string) error
}
