package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// RegionRepository define el puerto de persistencia para Region (DIP).
// GetByID devuelve (nil, nil) si no existe.
type RegionRepository interface {
	Create(ctx context.Context, region *entity.Region) error
	GetByID(ctx context.Context, id int64) (*entity.Region, error)
	Update(ctx context.Context, region *entity.Region) error
	List(ctx context.Context, limit, offset int) ([]*entity.Region, error)
	Delete(ctx context.Context, id int64) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeAndNotID(ctx context.Context, code string, id int64) (bool, error)
}
