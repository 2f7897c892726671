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

// HeroRepository persists the singleton hero_content row.
type HeroRepository struct {
	pool *pgxpool.Pool
}

func NewHeroRepository(pool *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{pool: pool}
}

func (r *HeroRepository) Get(ctx context.Context) (*entity.HeroContent, error) {
	h := &entity.HeroContent{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, subtitle, title, description, image_url, updated_at
		FROM hero_content
		LIMIT 1
	`)
	if err := row.Scan(&h.ID, &h.Subtitle, &h.Title, &h.Description, &h.ImageURL, &h.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *HeroRepository) Update(ctx context.Context, h *entity.HeroContent) error {
	h.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE hero_content
		SET subtitle = $1, title = $2, description = $3, image_url = $4, updated_at = $5
		WHERE id = $6
	`, h.Subtitle, h.Title, h.Description, h.ImageURL, h.UpdatedAt, h.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ContactRepository persists the singleton contact_info row.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Get(ctx context.Context) (*entity.ContactInfo, error) {
	ci := &entity.ContactInfo{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, phone, location, map_latitude, map_longitude, updated_at
		FROM contact_info
		LIMIT 1
	`)
	if err := row.Scan(&ci.ID, &ci.Email, &ci.Phone, &ci.Location, &ci.MapLatitude, &ci.MapLongitude, &ci.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ci, nil
}

func (r *ContactRepository) Update(ctx context.Context, ci *entity.ContactInfo) error {
	ci.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE contact_info
		SET email = $1, phone = $2, location = $3, map_latitude = $4, map_longitude = $5, updated_at = $6
		WHERE id = $7
	`, ci.Email, ci.Phone, ci.Location, ci.MapLatitude, ci.MapLongitude, ci.UpdatedAt, ci.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var (
	_ repository.HeroRepository    = (*HeroRepository)(nil)
	_ repository.ContactRepository = (*ContactRepository)(nil)
)
