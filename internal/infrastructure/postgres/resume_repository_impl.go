package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// EducationRepository persists resume education entries.
type EducationRepository struct {
	pool *pgxpool.Pool
}

func NewEducationRepository(pool *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{pool: pool}
}

func (r *EducationRepository) List(ctx context.Context) ([]entity.Education, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, degree, institution, year, description, order_index, created_at
		FROM education
		ORDER BY order_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Education{}
	for rows.Next() {
		var e entity.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.Description, &e.OrderIndex, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EducationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM education`).Scan(&n)
	return n, err
}

func (r *EducationRepository) Create(ctx context.Context, e *entity.Education) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO education (degree, institution, year, description, order_index)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, e.Degree, e.Institution, e.Year, e.Description, e.OrderIndex)
	return row.Scan(&e.ID, &e.CreatedAt)
}

func (r *EducationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CertificationRepository persists certification entries.
type CertificationRepository struct {
	pool *pgxpool.Pool
}

func NewCertificationRepository(pool *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{pool: pool}
}

func (r *CertificationRepository) List(ctx context.Context) ([]entity.Certification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, image_url, order_index, created_at
		FROM certifications
		ORDER BY order_index ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Certification{}
	for rows.Next() {
		var c entity.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.OrderIndex, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CertificationRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM certifications`).Scan(&n)
	return n, err
}

func (r *CertificationRepository) Create(ctx context.Context, c *entity.Certification) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO certifications (name, image_url, order_index)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, c.Name, c.ImageURL, c.OrderIndex)
	return row.Scan(&c.ID, &c.CreatedAt)
}

func (r *CertificationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var (
	_ repository.EducationRepository     = (*EducationRepository)(nil)
	_ repository.CertificationRepository = (*CertificationRepository)(nil)
)
