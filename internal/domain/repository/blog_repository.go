package repository

import (
	"context"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// BlogRepository manages blog posts ordered by published_date descending.
type BlogRepository interface {
	List(ctx context.Context) ([]entity.BlogPost, error)
	Create(ctx context.Context, p *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
}
