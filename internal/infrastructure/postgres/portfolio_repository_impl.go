package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) List(ctx context.Context) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, category, image_url, live_url, github_url, tags, order_index, created_at
		FROM projects
		ORDER BY order_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Project{}
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.LiveURL, &p.GithubURL, &p.Tags, &p.OrderIndex, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (title, description, category, image_url, live_url, github_url, tags, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, p.Title, p.Description, p.Category, p.ImageURL, p.LiveURL, p.GithubURL, p.Tags, p.OrderIndex)
	return row.Scan(&p.ID, &p.CreatedAt)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ServiceRepository persists service entries.
type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

func (r *ServiceRepository) List(ctx context.Context) ([]entity.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, icon, order_index, created_at
		FROM services
		ORDER BY order_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Service{}
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Icon, &s.OrderIndex, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

func (r *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO services (title, description, icon, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, s.Title, s.Description, s.Icon, s.OrderIndex)
	return row.Scan(&s.ID, &s.CreatedAt)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var (
	_ repository.ProjectRepository = (*ProjectRepository)(nil)
	_ repository.ServiceRepository = (*ServiceRepository)(nil)
)
