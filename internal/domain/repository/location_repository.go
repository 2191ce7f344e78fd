package repository

import (
	"context"

	"github.com/jhoicas/ticket-logger-api/internal/domain/entity"
)

// LocationRepository define el puerto de persistencia para Location (DIP).
// Las lecturas cargan supermercado, provincia y región.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id int64) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	List(ctx context.Context, limit, offset int) ([]*entity.Location, error)
	Delete(ctx context.Context, id int64) error
	ExistsByAddress(ctx context.Context, address string) (bool, error)
	ExistsByAddressAndNotID(ctx context.Context, address string, id int64) (bool, error)
}
