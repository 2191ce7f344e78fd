package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// ProvinceRepository define el puerto de persistencia para Province (DIP).
// Las lecturas cargan la región asociada.
type ProvinceRepository interface {
	Create(ctx context.Context, province *entity.Province) error
	GetByID(ctx context.Context, id int64) (*entity.Province, error)
	Update(ctx context.Context, province *entity.Province) error
	List(ctx context.Context, limit, offset int) ([]*entity.Province, error)
	Delete(ctx context.Context, id int64) error
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByCodeAndNotID(ctx context.Context, code string, id int64) (bool, error)
}
