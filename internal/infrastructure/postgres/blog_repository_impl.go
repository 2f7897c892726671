package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// BlogRepository persists blog posts.
type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, excerpt, content, category, read_time, image_url, published_date, created_at
		FROM blog_posts
		ORDER BY published_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.BlogPost{}
	for rows.Next() {
		var p entity.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Category, &p.ReadTime, &p.ImageURL, &p.PublishedDate, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *BlogRepository) Create(ctx context.Context, p *entity.BlogPost) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts (title, excerpt, content, category, read_time, image_url, published_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, p.Title, p.Excerpt, p.Content, p.Category, p.ReadTime, p.ImageURL, p.PublishedDate)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
