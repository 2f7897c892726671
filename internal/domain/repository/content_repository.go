package repository

import (
	"context"

	"github.com/yudhapratama/portfolio-api/internal/domain/entity"
)

// HeroRepository accesses the singleton hero_content row.
type HeroRepository interface {
	Get(ctx context.Context) (*entity.HeroContent, error)
	Update(ctx context.Context, h *entity.HeroContent) error
}

// ContactRepository accesses the singleton contact_info row.
type ContactRepository interface {
	Get(ctx context.Context) (*entity.ContactInfo, error)
	Update(ctx context.Context, ci *entity.ContactInfo) error
}
