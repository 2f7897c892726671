package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
	"github.com/yudhapratama/portfolio-api/internal/domain/repository"
)

// AdminUserRepository persists operator accounts.
type AdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewAdminUserRepository(pool *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{pool: pool}
}

func (r *AdminUserRepository) GetByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	return r.get(ctx, `SELECT id, username, password_hash, created_at FROM admin_users WHERE id = $1`, id)
}

func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	return r.get(ctx, `SELECT id, username, password_hash, created_at FROM admin_users WHERE username = $1`, username)
}

func (r *AdminUserRepository) get(ctx context.Context, query, arg string) (*entity.AdminUser, error) {
	u := &entity.AdminUser{}
	row := r.pool.QueryRow(ctx, query, arg)
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.AdminUserRepository = (*AdminUserRepository)(nil)
