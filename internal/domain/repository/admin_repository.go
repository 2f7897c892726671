package repository

import (
	"context"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// AdminUserRepository accesses operator accounts.
type AdminUserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*entity.AdminUser, error)
}
